package domain

// StatusActive is the status reported while the store is serving requests.
// The demo store has no other lifecycle states.
const StatusActive = "active"

// Stats is a point-in-time snapshot of store counts. It is derived from
// live store state on every call and never cached.
type Stats struct {
	TotalItems int
	TotalUsers int
	Status     string
}
