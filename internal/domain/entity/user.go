package entity

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash, never as plaintext.
//
// Users are created by registration and never mutated or deleted afterwards.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
