package memory

import "fruitstand/internal/domain"

// SeedItems returns the fixed item names every fresh store starts with.
func SeedItems() []string {
	return []string{"Apple", "Banana", "Cherry", "Date", "Elderberry"}
}

// SeedUsers returns the fixed user records every fresh store starts with.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
	}
}
