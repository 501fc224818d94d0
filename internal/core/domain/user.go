package domain

// User is a registered traveller. A wallet Account is created for every user
// at registration time, in the same database transaction as the user row.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"` // Unique login identifier
	PasswordHash string `json:"-"`     // bcrypt hash, never serialized
	AuditFields
}
