package dto

// ListAttractionsRequest carries the catalog listing query parameters.
// Limit is a pointer so an explicit limit=0 fails validation instead of
// blending into the absent-parameter default.
type ListAttractionsRequest struct {
	Category   string   `query:"category"`
	Difficulty string   `query:"difficulty"`
	RatingMin  *float64 `query:"rating_min" validate:"omitempty,min=0,max=5"`
	RatingMax  *float64 `query:"rating_max" validate:"omitempty,min=0,max=5"`
	Search     string   `query:"search"`
	Limit      *int     `query:"limit" validate:"omitempty,min=1,max=100"`
	Skip       int      `query:"skip" validate:"omitempty,min=0"`
}

// CreateAttractionRequest is the full create payload. Id is optional: the
// catalog is keyed by operator-assigned slugs, and a uuid is generated when
// none is given. Timestamps and is_active are system-assigned.
type CreateAttractionRequest struct {
	ID              string   `json:"id"`
	Name            string   `json:"name" validate:"required"`
	Image           string   `json:"image" validate:"required"`
	Photos          []string `json:"photos"`
	Duration        string   `json:"duration" validate:"required"`
	Activities      []string `json:"activities"`
	Difficulty      string   `json:"difficulty" validate:"required"`
	Rating          float64  `json:"rating" validate:"min=0,max=5"`
	Description     string   `json:"description" validate:"required"`
	Distance        string   `json:"distance" validate:"required"`
	Coordinates     string   `json:"coordinates" validate:"required"`
	FullDescription string   `json:"fullDescription" validate:"required"`
	Curiosities     []string `json:"curiosities"`
	Tips            []string `json:"tips"`
	Category        string   `json:"category" validate:"required"`
	Price           string   `json:"price" validate:"required"`
}

// UpdateAttractionRequest is the partial update payload: absent fields stay
// untouched, present fields are applied as-is.
type UpdateAttractionRequest struct {
	Name            *string   `json:"name"`
	Image           *string   `json:"image"`
	Photos          *[]string `json:"photos"`
	Duration        *string   `json:"duration"`
	Activities      *[]string `json:"activities"`
	Difficulty      *string   `json:"difficulty"`
	Rating          *float64  `json:"rating" validate:"omitempty,min=0,max=5"`
	Description     *string   `json:"description"`
	Distance        *string   `json:"distance"`
	Coordinates     *string   `json:"coordinates"`
	FullDescription *string   `json:"fullDescription"`
	Curiosities     *[]string `json:"curiosities"`
	Tips            *[]string `json:"tips"`
	Category        *string   `json:"category"`
	Price           *string   `json:"price"`
	IsActive        *bool     `json:"is_active"`
}

// NearbyAttractionsRequest carries the proximity search parameters. Target
// lat/lon come from the path and are not range-constrained. RadiusKm and
// Limit are pointers so explicit zeroes are distinguishable from absent
// parameters: radius_km=0 means a zero radius, limit=0 is rejected.
type NearbyAttractionsRequest struct {
	Lat      float64
	Lon      float64
	RadiusKm *float64 `query:"radius_km" validate:"omitempty,min=0"`
	Limit    *int     `query:"limit" validate:"omitempty,min=1,max=50"`
}
