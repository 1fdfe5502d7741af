package domain

import "time"

// User is one registered account. PasswordHash is the bcrypt-encoded hash,
// never the plaintext. Accounts are created at signup and mutated by profile
// and password changes; there is no deletion path.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"` // stored lowercased
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
