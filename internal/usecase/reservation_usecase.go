package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/cyprus-transfer/internal/domain/repository"
	"github.com/cyprus-transfer/internal/pkg/errors"
	"github.com/cyprus-transfer/internal/pkg/pagination"
	"github.com/cyprus-transfer/internal/pkg/validator"
	"github.com/cyprus-transfer/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxCodeAttempts - сколько раз генерировать код при коллизии уникального индекса
const maxCodeAttempts = 3

// ReservationUseCase - поиск по коду, создание и администрирование бронирований
type ReservationUseCase struct {
	reservationRepo repository.ReservationRepository
	extraRepo       repository.ExtraRepository
	streamRepo      repository.StreamRepository
	transferUC      *TransferUseCase
	logger          *zap.Logger
	pageSize        int
	now             func() time.Time
	generateCode    func() string
}

func NewReservationUseCase(
	reservationRepo repository.ReservationRepository,
	extraRepo repository.ExtraRepository,
	streamRepo repository.StreamRepository,
	transferUC *TransferUseCase,
	logger *zap.Logger,
	pageSize int,
) *ReservationUseCase {
	return &ReservationUseCase{
		reservationRepo: reservationRepo,
		extraRepo:       extraRepo,
		streamRepo:      streamRepo,
		transferUC:      transferUC,
		logger:          logger,
		pageSize:        pageSize,
		now:             time.Now,
		generateCode:    GenerateReservationCode,
	}
}

// GetByCode - бронирование с локациями, автомобилем и доп. услугами
func (uc *ReservationUseCase) GetByCode(ctx context.Context, code string) (*domain.ReservationDetail, error) {
	code = NormalizeReservationCode(code)
	if code == "" {
		return nil, errors.ErrInvalidReservationCode
	}

	detail, err := uc.reservationRepo.GetDetailByCode(ctx, code)
	if stderrors.Is(err, errors.ErrReservationNotFound) {
		return nil, errors.ErrReservationNotFound.WithMessage(
			fmt.Sprintf("Reservation with code %s not found", code))
	}
	if err != nil {
		return nil, err
	}

	if len(detail.ExtraIDs) > 0 {
		extras, err := uc.extraRepo.GetByIDs(ctx, detail.ExtraIDs)
		if err != nil {
			uc.logger.Warn("Failed to load reservation extras",
				zap.String("code", code),
				zap.Error(err))
		} else {
			detail.Extras = make([]domain.Extra, 0, len(extras))
			for _, e := range extras {
				detail.Extras = append(detail.Extras, *e)
			}
		}
	}

	return detail, nil
}

// Create проверяет ввод, пересчитывает цену по сохранённым тарифам,
// сохраняет бронирование со статусом pending и публикует событие
func (uc *ReservationUseCase) Create(ctx context.Context, req dto.CreateReservationRequest) (*domain.Reservation, error) {
	req.Normalize()
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	transferDate, ok := parseTransferDate(req.TransferDate)
	if !ok {
		return nil, invalidField("transfer_date", "datetime")
	}
	if !transferDate.After(uc.now()) {
		return nil, invalidField("transfer_date", "future")
	}

	transferType := domain.TransferType(req.TransferType)
	option, err := uc.transferUC.Quote(ctx,
		req.PickupLocationID, req.DropoffLocationID, req.VehicleID, transferType, req.PassengerCount)
	if err != nil {
		return nil, err
	}

	total := option.Total()
	extraIDs := uniqueIDs(req.ExtraIDs)
	if len(extraIDs) > 0 {
		extras, err := uc.extraRepo.GetByIDs(ctx, extraIDs)
		if err != nil {
			return nil, err
		}
		if len(extras) != len(extraIDs) {
			return nil, invalidField("extra_ids", "exists")
		}
		for _, e := range extras {
			total += e.Price
		}
	}

	res := &domain.Reservation{
		PickupLocationID:  req.PickupLocationID,
		DropoffLocationID: req.DropoffLocationID,
		VehicleID:         req.VehicleID,
		TransferType:      transferType,
		TransferDate:      transferDate,
		PassengerCount:    req.PassengerCount,
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     req.CustomerPhone,
		FlightNumber:      optionalString(req.FlightNumber),
		Notes:             optionalString(req.Notes),
		ExtraIDs:          extraIDs,
		TotalPrice:        roundMoney(total),
		Currency:          option.Currency(),
		Status:            domain.ReservationStatusPending,
	}

	for attempt := 1; ; attempt++ {
		res.Code = uc.generateCode()
		err = uc.reservationRepo.Create(ctx, res)
		if err == nil {
			break
		}
		if !stderrors.Is(err, errors.ErrReservationCodeConflict) || attempt == maxCodeAttempts {
			return nil, err
		}
		uc.logger.Warn("Reservation code collision, regenerating",
			zap.String("code", res.Code),
			zap.Int("attempt", attempt))
	}

	uc.logger.Info("Reservation created",
		zap.Int64("id", res.ID),
		zap.String("code", res.Code),
		zap.String("transfer_type", string(res.TransferType)),
		zap.Float64("total_price", res.TotalPrice))

	uc.publishCreated(ctx, res, option)
	return res, nil
}

// publishCreated - ошибка публикации только логируется, бронирование уже сохранено
func (uc *ReservationUseCase) publishCreated(ctx context.Context, res *domain.Reservation, option *domain.TransferOption) {
	if uc.streamRepo == nil {
		return
	}

	event := &domain.ReservationCreatedEvent{
		EventID:        uuid.New(),
		ReservationID:  res.ID,
		Code:           res.Code,
		CustomerName:   res.CustomerName,
		CustomerEmail:  res.CustomerEmail,
		VehicleName:    option.Vehicle.Name,
		TransferType:   res.TransferType,
		TransferDate:   res.TransferDate,
		PassengerCount: res.PassengerCount,
		TotalPrice:     res.TotalPrice,
		Currency:       res.Currency,
		FlightNumber:   res.FlightNumber,
		OccurredAt:     uc.now().UTC(),
	}

	if detail, err := uc.reservationRepo.GetDetailByCode(ctx, res.Code); err == nil {
		if detail.PickupLocation != nil {
			event.PickupName = detail.PickupLocation.Name
		}
		if detail.DropoffLocation != nil {
			event.DropoffName = detail.DropoffLocation.Name
		}
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamReservationCreated, event); err != nil {
		uc.logger.Error("Failed to publish reservation created event",
			zap.String("code", res.Code),
			zap.Error(err))
	}
}

// List - страница бронирований для админки, status пустой - все
func (uc *ReservationUseCase) List(ctx context.Context, status string, page int) (*dto.ReservationPage, error) {
	if page < 1 {
		page = 1
	}

	filter := domain.ReservationFilter{Page: domain.Page{Number: page, Size: uc.pageSize}}
	if status != "" {
		st := domain.ReservationStatus(status)
		if !st.Valid() {
			return nil, invalidField("status", "oneof")
		}
		filter.Status = &st
	}

	items, total, err := uc.reservationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ReservationPage{
		Items:  items,
		Total:  total,
		Status: status,
		Pager:  pagination.New(page, pagination.LastPage(total, uc.pageSize)),
	}, nil
}

// UpdateStatus меняет статус; из cancelled/completed переходов нет
func (uc *ReservationUseCase) UpdateStatus(ctx context.Context, id int64, form dto.ReservationStatusForm) error {
	if err := validator.Validate(&form); err != nil {
		return err
	}

	res, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	next := domain.ReservationStatus(form.Status)
	if res.Status == next {
		return nil
	}
	if res.Status.Final() {
		return errors.ErrInvalidStatusTransition.WithMessage(
			fmt.Sprintf("Reservation %s is %s and cannot be changed", res.Code, res.Status))
	}

	if err := uc.reservationRepo.UpdateStatus(ctx, id, next); err != nil {
		return err
	}

	uc.logger.Info("Reservation status changed",
		zap.Int64("id", id),
		zap.String("from", string(res.Status)),
		zap.String("to", string(next)))
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
