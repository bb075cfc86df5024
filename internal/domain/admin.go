package domain

import "time"

// Admin is a back-office account allowed to mutate the catalog.
type Admin struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullname"`
	Role         string    `json:"role"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
