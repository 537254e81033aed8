package service

import (
	"context"

	"fruitstand/internal/domain"
	"fruitstand/internal/repository"
)

// UserService exposes read access to the seeded user records.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}
