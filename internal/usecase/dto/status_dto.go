package dto

// CreateStatusCheckRequest is the legacy status log entry payload.
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}
