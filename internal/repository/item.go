package repository

import "context"

// ItemRepository exposes operations over the ordered item name sequence.
// Items are append-only: nothing ever edits or removes an entry.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]string, error)
	AppendItem(ctx context.Context, name string) ([]string, error)
	CountItems(ctx context.Context) (int, error)
}
