package service

import (
	"context"
	"errors"
	"strings"

	"fruitstand/internal/repository"
)

// ErrItemNameRequired indicates the candidate item name was empty after
// trimming surrounding whitespace.
var ErrItemNameRequired = errors.New("item name is required")

// ItemService coordinates item operations backed by the repository.
type ItemService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) (string, []string, error)
}

type itemService struct {
	items repository.ItemRepository
}

func NewItemService(items repository.ItemRepository) ItemService {
	return &itemService{items: items}
}

func (s *itemService) List(ctx context.Context) ([]string, error) {
	return s.items.ListItems(ctx)
}

// Add validates and appends a candidate name. The stored value is the
// trimmed name; it is returned together with the full updated sequence.
func (s *itemService) Add(ctx context.Context, name string) (string, []string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, ErrItemNameRequired
	}

	items, err := s.items.AppendItem(ctx, name)
	if err != nil {
		return "", nil, err
	}
	return name, items, nil
}
