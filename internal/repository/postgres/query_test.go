package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestBuildListQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, args := buildListQuery(domain.AttractionFilter{Limit: 50, Skip: 0})

		assert.Contains(t, query, "WHERE is_active = TRUE")
		assert.NotContains(t, query, "AND")
		assert.Contains(t, query, "LIMIT $1 OFFSET $2")
		assert.Equal(t, []interface{}{50, 0}, args)
	})

	t.Run("category and difficulty", func(t *testing.T) {
		query, args := buildListQuery(domain.AttractionFilter{
			Category:   "Gruta",
			Difficulty: "Fácil",
			Limit:      10,
			Skip:       5,
		})

		assert.Contains(t, query, "AND category = $1")
		assert.Contains(t, query, "AND difficulty = $2")
		assert.Contains(t, query, "LIMIT $3 OFFSET $4")
		assert.Equal(t, []interface{}{"Gruta", "Fácil", 10, 5}, args)
	})

	t.Run("closed rating interval", func(t *testing.T) {
		query, args := buildListQuery(domain.AttractionFilter{
			RatingMin: f64(4.0),
			RatingMax: f64(4.8),
			Limit:     50,
		})

		assert.Contains(t, query, "AND rating >= $1")
		assert.Contains(t, query, "AND rating <= $2")
		assert.Equal(t, []interface{}{4.0, 4.8, 50, 0}, args)
	})

	t.Run("search spans the three text fields", func(t *testing.T) {
		query, args := buildListQuery(domain.AttractionFilter{
			Search: "lago",
			Limit:  50,
		})

		assert.Contains(t, query,
			"AND (name ILIKE $1 OR description ILIKE $1 OR full_description ILIKE $1)")
		assert.Equal(t, []interface{}{"%lago%", 50, 0}, args)
	})

	t.Run("all filters number placeholders in order", func(t *testing.T) {
		query, args := buildListQuery(domain.AttractionFilter{
			Category:   "Rio",
			Difficulty: "Moderado",
			RatingMin:  f64(4.0),
			RatingMax:  f64(5.0),
			Search:     "prata",
			Limit:      20,
			Skip:       40,
		})

		assert.Contains(t, query, "category = $1")
		assert.Contains(t, query, "difficulty = $2")
		assert.Contains(t, query, "rating >= $3")
		assert.Contains(t, query, "rating <= $4")
		assert.Contains(t, query, "ILIKE $5")
		assert.Contains(t, query, "LIMIT $6 OFFSET $7")
		assert.Len(t, args, 7)
	})
}

func TestBuildUpdateQuery(t *testing.T) {
	name := "Gruta do Lago Azul"
	rating := 4.9
	tips := []string{"Use calçado fechado"}
	inactive := false

	t.Run("single field", func(t *testing.T) {
		query, args := buildUpdateQuery("gruta-lago-azul", domain.AttractionUpdate{
			Name: &name,
		})

		assert.Contains(t, query, "SET updated_at = NOW(), name = $1")
		assert.Contains(t, query, "WHERE id = $2 AND is_active = TRUE")
		assert.Contains(t, query, "RETURNING")
		assert.Len(t, args, 2)
		assert.Equal(t, name, args[0])
		assert.Equal(t, "gruta-lago-azul", args[1])
	})

	t.Run("no fields still touches updated_at", func(t *testing.T) {
		query, args := buildUpdateQuery("gruta-lago-azul", domain.AttractionUpdate{})

		assert.Contains(t, query, "SET updated_at = NOW() WHERE id = $1")
		assert.Equal(t, []interface{}{"gruta-lago-azul"}, args)
	})

	t.Run("mixed scalar, slice and bool fields", func(t *testing.T) {
		query, args := buildUpdateQuery("gruta-lago-azul", domain.AttractionUpdate{
			Rating:   &rating,
			Tips:     &tips,
			IsActive: &inactive,
		})

		assert.Contains(t, query, "rating = $1")
		assert.Contains(t, query, "tips = $2")
		assert.Contains(t, query, "is_active = $3")
		assert.Contains(t, query, "WHERE id = $4")
		assert.Len(t, args, 4)
		assert.Equal(t, rating, args[0])
		assert.Equal(t, inactive, args[2])
	})

	t.Run("clause order follows the struct", func(t *testing.T) {
		query, _ := buildUpdateQuery("x", domain.AttractionUpdate{
			Name:   &name,
			Rating: &rating,
		})

		nameIdx := strings.Index(query, "name = $1")
		ratingIdx := strings.Index(query, "rating = $2")
		assert.Greater(t, ratingIdx, nameIdx)
		assert.Greater(t, nameIdx, 0)
	})
}
