package domain

import "time"

// StatusCheck is a legacy append-only log entry kept for backwards
// compatibility with early clients. Unrelated to the catalog.
type StatusCheck struct {
	ID         string    `json:"id" db:"id"`
	ClientName string    `json:"client_name" db:"client_name"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
}
