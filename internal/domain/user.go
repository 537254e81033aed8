package domain

// User represents a read-only identity record seeded into the store at startup.
type User struct {
	ID    int64
	Name  string
	Email string
}
