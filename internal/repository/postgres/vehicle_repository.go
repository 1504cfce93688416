package postgres

import (
	"context"
	"database/sql"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type vehicleRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewVehicleRepository(db *DB) repository.VehicleRepository {
	return &vehicleRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const vehicleColumns = `id, name, type, capacity, luggage_capacity, image_url`

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := r.db.GetContext(ctx, &v, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrVehicleNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get vehicle by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0)
	err := r.db.SelectContext(ctx, &vehicles, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY capacity, name`)
	if err != nil {
		r.logger.Error("Failed to list vehicles", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return vehicles, nil
}

func (r *vehicleRepository) ListByMinCapacity(ctx context.Context, passengers int) ([]*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE capacity >= $1 ORDER BY capacity, name`

	vehicles := make([]*domain.Vehicle, 0)
	if err := r.db.SelectContext(ctx, &vehicles, query, passengers); err != nil {
		r.logger.Error("Failed to list vehicles by capacity", zap.Int("passengers", passengers), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return vehicles, nil
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (name, type, capacity, luggage_capacity, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, v.Name, v.Type, v.Capacity, v.LuggageCapacity, v.ImageURL).Scan(&v.ID)
	if err != nil {
		r.logger.Error("Failed to create vehicle", zap.String("name", v.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vehicles
		SET name = $1, type = $2, capacity = $3, luggage_capacity = $4, image_url = $5
		WHERE id = $6`,
		v.Name, v.Type, v.Capacity, v.LuggageCapacity, v.ImageURL, v.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update vehicle", zap.Int64("id", v.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return expectAffected(res, errors.ErrVehicleNotFound)
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return errors.ErrResourceInUse
	}
	if err != nil {
		r.logger.Error("Failed to delete vehicle", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return expectAffected(res, errors.ErrVehicleNotFound)
}
