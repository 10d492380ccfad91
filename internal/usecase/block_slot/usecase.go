package block_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/haruyasu/booking-service/internal/domain"
	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
	reservationRepo "github.com/haruyasu/booking-service/internal/infra/storage/reservation"
	accountsClient "github.com/haruyasu/booking-service/internal/integrations/accounts"
)

// UseCase use case блокировки слота сотрудником (отгул, перерыв)
type UseCase struct {
	staffRepo       StaffRepository
	reservationRepo ReservationRepository
	accountsClient  AccountsClient
	window          domain.BusinessWindow
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	reservationRepo ReservationRepository,
	accountsClient AccountsClient,
	window domain.BusinessWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:       staffRepo,
		reservationRepo: reservationRepo,
		accountsClient:  accountsClient,
		window:          window,
		logger:          logger,
	}
}

// Execute блокирует часовой слот сотрудника
// Разрешено связанному пользователю сотрудника или администратору.
// Предварительной проверки занятости нет - сотрудник забирает слот сразу;
// если слот уже занят, уникальный индекс хранилища вернёт ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockSlot: staff=%d, slot=%s, actingUser=%d",
		req.StaffID, req.SlotStart.Format(domain.DateFormat+" "+domain.TimeFormat), req.ActingUserID)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.window); err != nil {
		uc.logger.Warn("BlockSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим сотрудника
	staff, err := uc.staffRepo.GetStaffByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrStaffNotFound) {
			uc.logger.Warn("BlockSlot: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("BlockSlot: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Проверка прав: связанный пользователь или администратор
	if err := uc.checkAccess(ctx, staff, req.ActingUserID); err != nil {
		return nil, err
	}

	// 4. Создаем блокировку; занятый слот превращается в ErrSlotTaken на вставке
	rsv := &domain.Reservation{
		StaffID: req.StaffID,
		StartAt: req.SlotStart,
		EndAt:   req.SlotStart.Add(domain.SlotDuration),
		Kind:    domain.KindBlock,
	}

	created, err := uc.reservationRepo.Create(ctx, rsv)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.logger.Warn("BlockSlot: slot %s already taken for staff=%d",
				req.SlotStart.Format(domain.TimeFormat), req.StaffID)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("BlockSlot: failed to create block: %v", err)
		return nil, fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
	}

	uc.logger.Info("BlockSlot: successfully created block id=%d", created.ID)

	return &Response{
		ID:        created.ID,
		StaffID:   created.StaffID,
		StartAt:   created.StartAt,
		EndAt:     created.EndAt,
		CreatedAt: created.CreatedAt,
	}, nil
}

// checkAccess проверяет, что действующий пользователь связан с сотрудником
// или является администратором
func (uc *UseCase) checkAccess(ctx context.Context, staff *domain.Staff, actingUserID int64) error {
	if staff.IsOwnedBy(actingUserID) {
		return nil
	}

	user, err := uc.accountsClient.GetUser(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, accountsClient.ErrUserNotFound) {
			uc.logger.Warn("BlockSlot: acting user id=%d not found", actingUserID)
			return ErrAccessDenied
		}
		uc.logger.Error("BlockSlot: failed to get user id=%d: %v", actingUserID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin {
		uc.logger.Warn("BlockSlot: user id=%d is neither staff owner nor admin", actingUserID)
		return ErrAccessDenied
	}

	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, window domain.BusinessWindow) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ActingUserID <= 0 {
		return fmt.Errorf("%w: actingUserID must be positive", ErrInvalidInput)
	}

	if req.SlotStart.IsZero() {
		return fmt.Errorf("%w: slotStart is required", ErrInvalidInput)
	}

	if req.SlotStart.Minute() != 0 || req.SlotStart.Second() != 0 || req.SlotStart.Nanosecond() != 0 {
		return ErrSlotNotAligned
	}

	if !window.ContainsHour(req.SlotStart.Hour()) {
		return ErrSlotOutsideWindow
	}

	return nil
}
