package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/haruyasu/booking-service/internal/domain"
	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
	reservationRepo "github.com/haruyasu/booking-service/internal/infra/storage/reservation"
)

// UseCase use case бронирования слота клиентом
type UseCase struct {
	staffRepo       StaffRepository
	reservationRepo ReservationRepository
	window          domain.BusinessWindow
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	reservationRepo ReservationRepository,
	window domain.BusinessWindow,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:       staffRepo,
		reservationRepo: reservationRepo,
		window:          window,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute бронирует часовой слот
// Проверка занятости и вставка выполняются в сериализуемой транзакции;
// вдобавок уникальный индекс (staff_id, start_at) в схеме превращает гонку
// двух одновременных бронирований в ErrSlotTaken у проигравшего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: staff=%d, slot=%s",
		req.StaffID, req.SlotStart.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.window); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим сотрудника
	if _, err := uc.staffRepo.GetStaffByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, directoryRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateReservation: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateReservation: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	var result *domain.Reservation

	// 3. Проверка занятости и вставка в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.reservationRepo.ExistsAtSlot(txCtx, req.StaffID, req.SlotStart)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateReservation: slot %s already taken for staff=%d",
				req.SlotStart.Format(domain.TimeFormat), req.StaffID)
			return ErrSlotTaken
		}

		rsv := &domain.Reservation{
			StaffID:           req.StaffID,
			StartAt:           req.SlotStart,
			EndAt:             req.SlotStart.Add(domain.SlotDuration),
			Kind:              domain.KindBooking,
			CustomerFirstName: &req.FirstName,
			CustomerLastName:  &req.LastName,
			CustomerTel:       &req.Tel,
			Remarks:           req.Remarks,
		}

		created, err := uc.reservationRepo.Create(txCtx, rsv)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				// Конкурирующая запись успела раньше, ограничение схемы сработало
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		StaffID:   result.StaffID,
		StartAt:   result.StartAt,
		EndAt:     result.EndAt,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Tel:       req.Tel,
		Remarks:   result.Remarks,
		CreatedAt: result.CreatedAt,
	}, nil
}
