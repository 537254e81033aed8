package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitstand/internal/repository/memory"
)

func TestItemServiceAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("appends trimmed name and grows the sequence by one", func(t *testing.T) {
		store := memory.NewSeededStore()
		svc := NewItemService(store)

		before, err := svc.List(ctx)
		require.NoError(t, err)

		added, items, err := svc.Add(ctx, "  Fig  ")
		require.NoError(t, err)
		assert.Equal(t, "Fig", added)
		assert.Len(t, items, len(before)+1)
		assert.Equal(t, "Fig", items[len(items)-1])
	})

	t.Run("rejects empty and whitespace-only names", func(t *testing.T) {
		store := memory.NewSeededStore()
		svc := NewItemService(store)

		for _, name := range []string{"", "   ", "\t\n"} {
			_, _, err := svc.Add(ctx, name)
			assert.True(t, errors.Is(err, ErrItemNameRequired), "name %q", name)
		}

		items, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 5, "failed adds must leave the store untouched")
	})

	t.Run("allows duplicate names", func(t *testing.T) {
		store := memory.NewSeededStore()
		svc := NewItemService(store)

		_, _, err := svc.Add(ctx, "Apple")
		require.NoError(t, err)

		items, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Apple", items[0])
		assert.Equal(t, "Apple", items[len(items)-1])
	})
}

func TestItemServiceList(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(memory.NewSeededStore())

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana", "Cherry", "Date", "Elderberry"}, items)
}
