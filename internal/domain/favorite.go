package domain

import "time"

// UserFavorite joins an opaque user id to an attraction. There is no
// authentication binding: user_id is whatever the client sends.
type UserFavorite struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	AttractionID string    `json:"attraction_id" db:"attraction_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
