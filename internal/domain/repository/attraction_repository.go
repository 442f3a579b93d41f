package repository

import (
	"context"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
)

// AttractionRepository is the persistence contract for the catalog. Every
// read only ever sees active records; deletion is a soft-delete flag flip.
type AttractionRepository interface {
	// List returns active attractions matching the filter, paginated, in
	// the database's default order.
	List(ctx context.Context, filter domain.AttractionFilter) ([]*domain.Attraction, error)

	// ListAllActive returns up to limit active attractions with no
	// predicates, for the proximity scan.
	ListAllActive(ctx context.Context, limit int) ([]*domain.Attraction, error)

	// GetByID returns the active attraction with the given id.
	GetByID(ctx context.Context, id string) (*domain.Attraction, error)

	// GetByIDs returns the active attractions among the given ids.
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Attraction, error)

	// Create inserts a new attraction.
	Create(ctx context.Context, attraction *domain.Attraction) error

	// CreateBatch inserts several attractions in one transaction, used by
	// startup seeding.
	CreateBatch(ctx context.Context, attractions []*domain.Attraction) error

	// Update applies the non-nil fields, refreshes updated_at and returns
	// the resulting record. Returns ErrAttractionNotFound when no active
	// record matches.
	Update(ctx context.Context, id string, update domain.AttractionUpdate) (*domain.Attraction, error)

	// SoftDelete flips is_active off and stamps updated_at. Returns
	// ErrAttractionNotFound when no active record matches.
	SoftDelete(ctx context.Context, id string) error

	// Categories returns the distinct categories among active records.
	Categories(ctx context.Context) ([]string, error)

	// Difficulties returns the distinct difficulties among active records.
	Difficulties(ctx context.Context) ([]string, error)

	// Stats aggregates the active catalog.
	Stats(ctx context.Context) (*domain.AttractionStats, error)

	// CountAll counts every record, active or not. Used by seeding.
	CountAll(ctx context.Context) (int, error)
}
