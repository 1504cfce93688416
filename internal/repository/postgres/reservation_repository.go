package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type reservationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReservationRepository(db *DB) repository.ReservationRepository {
	return &reservationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// reservationColumns - колонки бронирования с алиасом r
const reservationColumns = `
	r.id, r.code, r.pickup_location_id, r.dropoff_location_id, r.vehicle_id,
	r.transfer_type, r.transfer_date, r.passenger_count,
	r.customer_name, r.customer_email, r.customer_phone, r.flight_number, r.notes,
	r.extra_ids, r.total_price, r.currency, r.status, r.created_at, r.updated_at`

// reservationJoinColumns - колонки связанных локаций и автомобиля
const reservationJoinColumns = `
	pl.id AS pickup_id, pl.name AS pickup_name, pl.type AS pickup_type,
	pl.address AS pickup_address, pl.latitude AS pickup_latitude, pl.longitude AS pickup_longitude,
	dl.id AS dropoff_id, dl.name AS dropoff_name, dl.type AS dropoff_type,
	dl.address AS dropoff_address, dl.latitude AS dropoff_latitude, dl.longitude AS dropoff_longitude,
	v.id AS v_id, v.name AS v_name, v.type AS v_type, v.capacity AS v_capacity,
	v.luggage_capacity AS v_luggage_capacity, v.image_url AS v_image_url`

const reservationJoins = `
	FROM reservations r
	LEFT JOIN locations pl ON pl.id = r.pickup_location_id
	LEFT JOIN locations dl ON dl.id = r.dropoff_location_id
	LEFT JOIN vehicles v ON v.id = r.vehicle_id`

// reservationRow - плоская строка результата join-запроса
type reservationRow struct {
	domain.Reservation
	ExtraIDs pq.Int64Array `db:"extra_ids"`

	PickupID        *int64   `db:"pickup_id"`
	PickupName      *string  `db:"pickup_name"`
	PickupType      *string  `db:"pickup_type"`
	PickupAddress   *string  `db:"pickup_address"`
	PickupLatitude  *float64 `db:"pickup_latitude"`
	PickupLongitude *float64 `db:"pickup_longitude"`

	DropoffID        *int64   `db:"dropoff_id"`
	DropoffName      *string  `db:"dropoff_name"`
	DropoffType      *string  `db:"dropoff_type"`
	DropoffAddress   *string  `db:"dropoff_address"`
	DropoffLatitude  *float64 `db:"dropoff_latitude"`
	DropoffLongitude *float64 `db:"dropoff_longitude"`

	VehicleRowID           *int64  `db:"v_id"`
	VehicleName            *string `db:"v_name"`
	VehicleType            *string `db:"v_type"`
	VehicleCapacity        *int    `db:"v_capacity"`
	VehicleLuggageCapacity *int    `db:"v_luggage_capacity"`
	VehicleImageURL        *string `db:"v_image_url"`
}

func (row *reservationRow) toDetail() *domain.ReservationDetail {
	res := row.Reservation
	res.ExtraIDs = []int64(row.ExtraIDs)
	if res.ExtraIDs == nil {
		res.ExtraIDs = []int64{}
	}

	detail := &domain.ReservationDetail{Reservation: res}

	if row.PickupID != nil {
		detail.PickupLocation = joinedLocation(*row.PickupID, row.PickupName, row.PickupType,
			row.PickupAddress, row.PickupLatitude, row.PickupLongitude)
	}
	if row.DropoffID != nil {
		detail.DropoffLocation = joinedLocation(*row.DropoffID, row.DropoffName, row.DropoffType,
			row.DropoffAddress, row.DropoffLatitude, row.DropoffLongitude)
	}
	if row.VehicleRowID != nil {
		v := &domain.Vehicle{
			ID:              *row.VehicleRowID,
			LuggageCapacity: row.VehicleLuggageCapacity,
			ImageURL:        row.VehicleImageURL,
		}
		if row.VehicleName != nil {
			v.Name = *row.VehicleName
		}
		if row.VehicleType != nil {
			v.Type = *row.VehicleType
		}
		if row.VehicleCapacity != nil {
			v.Capacity = *row.VehicleCapacity
		}
		detail.Vehicle = v
	}

	return detail
}

func joinedLocation(id int64, name, typ, address *string, lat, lon *float64) *domain.Location {
	loc := &domain.Location{
		ID:        id,
		Address:   address,
		Latitude:  lat,
		Longitude: lon,
		IsActive:  true,
	}
	if name != nil {
		loc.Name = *name
	}
	if typ != nil {
		loc.Type = domain.LocationType(*typ)
	}
	return loc
}

func (r *reservationRepository) GetDetailByCode(ctx context.Context, code string) (*domain.ReservationDetail, error) {
	query := `SELECT ` + reservationColumns + `,` + reservationJoinColumns + reservationJoins + `
	WHERE r.code = $1`

	var row reservationRow
	err := r.db.GetContext(ctx, &row, query, code)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReservationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get reservation by code", zap.String("code", code), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return row.toDetail(), nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations r WHERE r.id = $1`

	var row reservationRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrReservationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get reservation by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	res := row.Reservation
	res.ExtraIDs = []int64(row.ExtraIDs)
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (
			code, pickup_location_id, dropoff_location_id, vehicle_id, transfer_type,
			transfer_date, passenger_count, customer_name, customer_email, customer_phone,
			flight_number, notes, extra_ids, total_price, currency, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		res.Code, res.PickupLocationID, res.DropoffLocationID, res.VehicleID, res.TransferType,
		res.TransferDate, res.PassengerCount, res.CustomerName, res.CustomerEmail, res.CustomerPhone,
		res.FlightNumber, res.Notes, pq.Array(res.ExtraIDs), res.TotalPrice, res.Currency, res.Status,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)

	if isUniqueViolation(err) {
		return errors.ErrReservationCodeConflict
	}
	if err != nil {
		r.logger.Error("Failed to create reservation", zap.String("code", res.Code), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *reservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetail, int, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("r.status = $%d", len(args)))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM reservations r`+whereSQL, args...); err != nil {
		r.logger.Error("Failed to count reservations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	args = append(args, filter.Page.Size, pageOffset(filter.Page))
	query := `SELECT ` + reservationColumns + `,` + reservationJoinColumns + reservationJoins + whereSQL +
		fmt.Sprintf(" ORDER BY r.transfer_date DESC, r.id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	var rows []reservationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to list reservations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	result := make([]*domain.ReservationDetail, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDetail())
	}

	return result, total, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), id,
	)
	if err != nil {
		r.logger.Error("Failed to update reservation status",
			zap.Int64("id", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return expectAffected(res, errors.ErrReservationNotFound)
}
