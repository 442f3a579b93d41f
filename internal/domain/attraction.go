package domain

import "time"

// Attraction is a catalog entry for a single tour or sight. The id is an
// operator-assigned slug in practice ("gruta-lago-azul"); a random uuid is
// generated only when the caller omits it.
//
// Coordinates, price and distance are kept as the free-text strings the
// original catalog was authored with. The long-description field is the one
// place where wire and storage spellings differ: JSON "fullDescription",
// column "full_description".
type Attraction struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Image           string    `json:"image" db:"image"`
	Photos          []string  `json:"photos" db:"photos"`
	Duration        string    `json:"duration" db:"duration"`
	Activities      []string  `json:"activities" db:"activities"`
	Difficulty      string    `json:"difficulty" db:"difficulty"`
	Rating          float64   `json:"rating" db:"rating"`
	Description     string    `json:"description" db:"description"`
	Distance        string    `json:"distance" db:"distance"`
	Coordinates     string    `json:"coordinates" db:"coordinates"`
	FullDescription string    `json:"fullDescription" db:"full_description"`
	Curiosities     []string  `json:"curiosities" db:"curiosities"`
	Tips            []string  `json:"tips" db:"tips"`
	Category        string    `json:"category" db:"category"`
	Price           string    `json:"price" db:"price"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
	IsActive        bool      `json:"is_active" db:"is_active"`
}

// NearbyAttraction is an Attraction annotated with the distance computed
// by the proximity search, in kilometers.
type NearbyAttraction struct {
	Attraction
	CalculatedDistance float64 `json:"calculated_distance"`
}

// AttractionFilter holds the predicates of the catalog listing. All set
// predicates are combined with AND; is_active = true is always implied.
type AttractionFilter struct {
	Category   string
	Difficulty string
	RatingMin  *float64
	RatingMax  *float64
	Search     string
	Limit      int
	Skip       int
}

// AttractionUpdate carries a partial update: nil fields are left untouched.
type AttractionUpdate struct {
	Name            *string   `json:"name"`
	Image           *string   `json:"image"`
	Photos          *[]string `json:"photos"`
	Duration        *string   `json:"duration"`
	Activities      *[]string `json:"activities"`
	Difficulty      *string   `json:"difficulty"`
	Rating          *float64  `json:"rating"`
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
