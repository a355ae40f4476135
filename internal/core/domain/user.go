package domain

import "time"

// User models an authenticated account. Categories and records are exclusively
// owned by one user; deleting the user removes everything it owns.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
