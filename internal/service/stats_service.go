package service

import (
	"context"

	"fruitstand/internal/domain"
	"fruitstand/internal/repository"
)

// StatsService derives store statistics on demand.
type StatsService interface {
	Snapshot(ctx context.Context) (domain.Stats, error)
}

type statsService struct {
	items repository.ItemRepository
	users repository.UserRepository
}

func NewStatsService(items repository.ItemRepository, users repository.UserRepository) StatsService {
	return &statsService{
		items: items,
		users: users,
	}
}

// Snapshot counts both sequences at call time. Nothing is cached, so the
// result always reflects the latest successful append.
func (s *statsService) Snapshot(ctx context.Context) (domain.Stats, error) {
	itemCount, err := s.items.CountItems(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	userCount, err := s.users.CountUsers(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		TotalItems: itemCount,
		TotalUsers: userCount,
		Status:     domain.StatusActive,
	}, nil
}
