package domain

// AttractionStats aggregates the active catalog. The four figures are
// computed in independent passes and need not be mutually consistent under
// concurrent writes. MostPopular tie order follows the database's default
// ordering and is not deterministic.
type AttractionStats struct {
	TotalAttractions int            `json:"total_attractions"`
	ByCategory       map[string]int `json:"by_category"`
	ByDifficulty     map[string]int `json:"by_difficulty"`
	AverageRating    float64        `json:"average_rating"`
	MostPopular      []string       `json:"most_popular"`
}
