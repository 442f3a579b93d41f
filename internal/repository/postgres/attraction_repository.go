package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/ecoexpedicoes/attractions-service/internal/domain"
	"github.com/ecoexpedicoes/attractions-service/internal/domain/repository"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/errors"
	"github.com/ecoexpedicoes/attractions-service/internal/pkg/utils"
)

const attractionColumns = `
	id, name, image, photos, duration, activities, difficulty, rating,
	description, distance, coordinates, full_description, curiosities,
	tips, category, price, created_at, updated_at, is_active`

type attractionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAttractionRepository(db *DB) repository.AttractionRepository {
	return &attractionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func scanAttraction(row interface{ Scan(...interface{}) error }) (*domain.Attraction, error) {
	var a domain.Attraction
	err := row.Scan(
		&a.ID, &a.Name, &a.Image, pq.Array(&a.Photos), &a.Duration,
		pq.Array(&a.Activities), &a.Difficulty, &a.Rating, &a.Description,
		&a.Distance, &a.Coordinates, &a.FullDescription,
		pq.Array(&a.Curiosities), pq.Array(&a.Tips), &a.Category, &a.Price,
		&a.CreatedAt, &a.UpdatedAt, &a.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// buildListQuery translates the filter into SQL. Exposed within the package
// so the predicate translation can be tested without a database.
func buildListQuery(filter domain.AttractionFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("SELECT " + attractionColumns + " FROM attractions WHERE is_active = TRUE")

	var args []interface{}
	argIdx := 1

	if filter.Category != "" {
		sb.WriteString(fmt.Sprintf(" AND category = $%d", argIdx))
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.Difficulty != "" {
		sb.WriteString(fmt.Sprintf(" AND difficulty = $%d", argIdx))
		args = append(args, filter.Difficulty)
		argIdx++
	}
	if filter.RatingMin != nil {
		sb.WriteString(fmt.Sprintf(" AND rating >= $%d", argIdx))
		args = append(args, *filter.RatingMin)
		argIdx++
	}
	if filter.RatingMax != nil {
		sb.WriteString(fmt.Sprintf(" AND rating <= $%d", argIdx))
		args = append(args, *filter.RatingMax)
		argIdx++
	}
	if filter.Search != "" {
		sb.WriteString(fmt.Sprintf(
			" AND (name ILIKE $%d OR description ILIKE $%d OR full_description ILIKE $%d)",
			argIdx, argIdx, argIdx,
		))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1))
	args = append(args, filter.Limit, filter.Skip)

	return sb.String(), args
}

func (r *attractionRepository) List(ctx context.Context, filter domain.AttractionFilter) ([]*domain.Attraction, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list attractions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	attractions := make([]*domain.Attraction, 0)
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			r.logger.Error("Failed to scan attraction", zap.Error(err))
			continue
		}
		attractions = append(attractions, a)
	}

	return attractions, rows.Err()
}

func (r *attractionRepository) ListAllActive(ctx context.Context, limit int) ([]*domain.Attraction, error) {
	query := "SELECT " + attractionColumns + " FROM attractions WHERE is_active = TRUE LIMIT $1"

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to list active attractions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	attractions := make([]*domain.Attraction, 0)
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			r.logger.Error("Failed to scan attraction", zap.Error(err))
			continue
		}
		attractions = append(attractions, a)
	}

	return attractions, rows.Err()
}

func (r *attractionRepository) GetByID(ctx context.Context, id string) (*domain.Attraction, error) {
	query := "SELECT " + attractionColumns + " FROM attractions WHERE id = $1 AND is_active = TRUE"

	a, err := scanAttraction(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrAttractionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get attraction", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return a, nil
}

func (r *attractionRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Attraction, error) {
	if len(ids) == 0 {
		return []*domain.Attraction{}, nil
	}

	query := "SELECT " + attractionColumns + " FROM attractions WHERE id = ANY($1) AND is_active = TRUE"

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to get attractions by ids", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	attractions := make([]*domain.Attraction, 0, len(ids))
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			r.logger.Error("Failed to scan attraction", zap.Error(err))
			continue
		}
		attractions = append(attractions, a)
	}

	return attractions, rows.Err()
}

const insertAttractionQuery = `
	INSERT INTO attractions (
		id, name, image, photos, duration, activities, difficulty, rating,
		description, distance, coordinates, full_description, curiosities,
		tips, category, price, created_at, updated_at, is_active
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		$11, $12, $13, $14, $15, $16, $17, $18, $19
	)`

func (r *attractionRepository) Create(ctx context.Context, a *domain.Attraction) error {
	_, err := r.db.ExecContext(ctx, insertAttractionQuery,
		a.ID, a.Name, a.Image, pq.Array(a.Photos), a.Duration,
		pq.Array(a.Activities), a.Difficulty, a.Rating, a.Description,
		a.Distance, a.Coordinates, a.FullDescription, pq.Array(a.Curiosities),
		pq.Array(a.Tips), a.Category, a.Price, a.CreatedAt, a.UpdatedAt,
		a.IsActive,
	)
	if err != nil {
		r.logger.Error("Failed to create attraction", zap.String("id", a.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *attractionRepository) CreateBatch(ctx context.Context, attractions []*domain.Attraction) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin batch insert", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	for _, a := range attractions {
		_, err := tx.ExecContext(ctx, insertAttractionQuery,
			a.ID, a.Name, a.Image, pq.Array(a.Photos), a.Duration,
			pq.Array(a.Activities), a.Difficulty, a.Rating, a.Description,
			a.Distance, a.Coordinates, a.FullDescription, pq.Array(a.Curiosities),
			pq.Array(a.Tips), a.Category, a.Price, a.CreatedAt, a.UpdatedAt,
			a.IsActive,
		)
		if err != nil {
			r.logger.Error("Failed to insert attraction in batch", zap.String("id", a.ID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit batch insert", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// buildUpdateQuery translates a partial update into a SET clause over the
// supplied fields only. updated_at is always refreshed.
func buildUpdateQuery(id string, update domain.AttractionUpdate) (string, []interface{}) {
	sets := []string{"updated_at = NOW()"}
	var args []interface{}
	argIdx := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Image != nil {
		add("image", *update.Image)
	}
	if update.Photos != nil {
		add("photos", pq.Array(*update.Photos))
	}
	if update.Duration != nil {
		add("duration", *update.Duration)
	}
	if update.Activities != nil {
		add("activities", pq.Array(*update.Activities))
	}
	if update.Difficulty != nil {
		add("difficulty", *update.Difficulty)
	}
	if update.Rating != nil {
		add("rating", *update.Rating)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Distance != nil {
		add("distance", *update.Distance)
	}
	if update.Coordinates != nil {
		add("coordinates", *update.Coordinates)
	}
	if update.FullDescription != nil {
		add("full_description", *update.FullDescription)
	}
	if update.Curiosities != nil {
		add("curiosities", pq.Array(*update.Curiosities))
	}
	if update.Tips != nil {
		add("tips", pq.Array(*update.Tips))
	}
	if update.Category != nil {
		add("category", *update.Category)
	}
	if update.Price != nil {
		add("price", *update.Price)
	}
	if update.IsActive != nil {
		add("is_active", *update.IsActive)
	}

	query := fmt.Sprintf(
		"UPDATE attractions SET %s WHERE id = $%d AND is_active = TRUE RETURNING %s",
		strings.Join(sets, ", "), argIdx, attractionColumns,
	)
	args = append(args, id)

	return query, args
}

func (r *attractionRepository) Update(ctx context.Context, id string, update domain.AttractionUpdate) (*domain.Attraction, error) {
	query, args := buildUpdateQuery(id, update)

	// The conditional UPDATE matches existing rows regardless of whether
	// any value actually changes, so a no-op update on an existing record
	// succeeds. No rows means absent or soft-deleted.
	a, err := scanAttraction(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, errors.ErrAttractionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update attraction", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return a, nil
}

func (r *attractionRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE attractions
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to soft-delete attraction", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrAttractionNotFound
	}

	return nil
}

func (r *attractionRepository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

func (r *attractionRepository) Difficulties(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "difficulty")
}

func (r *attractionRepository) distinct(ctx context.Context, column string) ([]string, error) {
	// column is one of two fixed identifiers, never caller input.
	query := fmt.Sprintf("SELECT DISTINCT %s FROM attractions WHERE is_active = TRUE", column)

	values := make([]string, 0)
	if err := r.db.SelectContext(ctx, &values, query); err != nil {
		r.logger.Error("Failed to list distinct values", zap.String("column", column), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return values, nil
}

func (r *attractionRepository) Stats(ctx context.Context) (*domain.AttractionStats, error) {
	stats := &domain.AttractionStats{
		ByCategory:   make(map[string]int),
		ByDifficulty: make(map[string]int),
		MostPopular:  make([]string, 0, 5),
	}

	// Four independent passes, mirroring the original aggregation
	// pipelines. They are not transactionally consistent with each other.
	if err := r.db.GetContext(ctx, &stats.TotalAttractions,
		"SELECT COUNT(*) FROM attractions WHERE is_active = TRUE",
	); err != nil {
		r.logger.Error("Failed to count attractions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.groupCount(ctx, "category", stats.ByCategory); err != nil {
		return nil, err
	}
	if err := r.groupCount(ctx, "difficulty", stats.ByDifficulty); err != nil {
		return nil, err
	}

	var avg float64
	if err := r.db.GetContext(ctx, &avg,
		"SELECT COALESCE(AVG(rating), 0) FROM attractions WHERE is_active = TRUE",
	); err != nil {
		r.logger.Error("Failed to average ratings", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	stats.AverageRating = utils.Round2(avg)

	if err := r.db.SelectContext(ctx, &stats.MostPopular,
		"SELECT name FROM attractions WHERE is_active = TRUE ORDER BY rating DESC LIMIT 5",
	); err != nil {
		r.logger.Error("Failed to list top rated attractions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stats, nil
}

func (r *attractionRepository) groupCount(ctx context.Context, column string, out map[string]int) error {
	query := fmt.Sprintf(
		"SELECT %s, COUNT(*) FROM attractions WHERE is_active = TRUE GROUP BY %s",
		column, column,
	)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to group attractions", zap.String("column", column), zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			r.logger.Error("Failed to scan group row", zap.Error(err))
			continue
		}
		out[key] = count
	}

	return rows.Err()
}

func (r *attractionRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM attractions"); err != nil {
		r.logger.Error("Failed to count all attractions", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
