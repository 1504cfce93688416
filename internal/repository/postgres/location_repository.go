package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type locationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const locationColumns = `id, name, type, address, latitude, longitude, is_active, created_at, updated_at`

func (r *locationRepository) ListActive(ctx context.Context, limit int) ([]*domain.LocationSummary, error) {
	query := `
		SELECT id, name, type, address, latitude, longitude
		FROM locations
		WHERE is_active = true
		ORDER BY name
		LIMIT $1
	`

	locations := make([]*domain.LocationSummary, 0)
	if err := r.db.SelectContext(ctx, &locations, query, limit); err != nil {
		r.logger.Error("Failed to list active locations", zap.Int("limit", limit), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return locations, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	var loc domain.Location
	err := r.db.GetContext(ctx, &loc, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get location by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &loc, nil
}

func (r *locationRepository) List(ctx context.Context, page domain.Page) ([]*domain.Location, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM locations`); err != nil {
		r.logger.Error("Failed to count locations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY name, id LIMIT $1 OFFSET $2`

	locations := make([]*domain.Location, 0)
	if err := r.db.SelectContext(ctx, &locations, query, page.Size, pageOffset(page)); err != nil {
		r.logger.Error("Failed to list locations", zap.Int("page", page.Number), zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return locations, total, nil
}

func (r *locationRepository) Create(ctx context.Context, loc *domain.Location) error {
	query := `
		INSERT INTO locations (name, type, address, latitude, longitude, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		loc.Name, loc.Type, loc.Address, loc.Latitude, loc.Longitude, loc.IsActive,
	).Scan(&loc.ID, &loc.CreatedAt, &loc.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create location", zap.String("name", loc.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *locationRepository) Update(ctx context.Context, loc *domain.Location) error {
	loc.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		UPDATE locations
		SET name = $1, type = $2, address = $3, latitude = $4, longitude = $5, is_active = $6, updated_at = $7
		WHERE id = $8`,
		loc.Name, loc.Type, loc.Address, loc.Latitude, loc.Longitude, loc.IsActive, loc.UpdatedAt, loc.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update location", zap.Int64("id", loc.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return expectAffected(res, errors.ErrLocationNotFound)
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return errors.ErrResourceInUse
	}
	if err != nil {
		r.logger.Error("Failed to delete location", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return expectAffected(res, errors.ErrLocationNotFound)
}
