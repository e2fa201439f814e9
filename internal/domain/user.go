package domain

// User owns time entries, leave entries and a work calendar, all of which
// cascade-delete with the account. Authentication lives outside the engine.
type User struct {
	ID        string
	Email     string
	CreatedAt int64
}
