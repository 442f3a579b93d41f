package dto

// AddFavoriteRequest links a user to an attraction.
type AddFavoriteRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	AttractionID string `json:"attraction_id" validate:"required"`
}
