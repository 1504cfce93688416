package postgres

import (
	"context"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type extraRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewExtraRepository(db *DB) repository.ExtraRepository {
	return &extraRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *extraRepository) List(ctx context.Context) ([]*domain.Extra, error) {
	extras := make([]*domain.Extra, 0)
	if err := r.db.SelectContext(ctx, &extras, `SELECT id, name, price FROM extras ORDER BY name`); err != nil {
		r.logger.Error("Failed to list extras", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return extras, nil
}

func (r *extraRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Extra, error) {
	extras := make([]*domain.Extra, 0, len(ids))
	if len(ids) == 0 {
		return extras, nil
	}

	query := `SELECT id, name, price FROM extras WHERE id = ANY($1) ORDER BY id`
	if err := r.db.SelectContext(ctx, &extras, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get extras by IDs", zap.Int64s("ids", ids), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return extras, nil
}
