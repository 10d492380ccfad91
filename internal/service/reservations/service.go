package reservations

import (
	"context"
	"errors"
	"fmt"

	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
	reservationRepo "github.com/haruyasu/booking-service/internal/infra/storage/reservation"
	accountsClient "github.com/haruyasu/booking-service/internal/integrations/accounts"
	"github.com/haruyasu/booking-service/internal/service/reservations/models"
)

// Service сервис для работы с записями
type Service struct {
	reservationRepo ReservationRepository
	staffRepo       StaffRepository
	accountsClient  AccountsClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	reservationRepo ReservationRepository,
	staffRepo StaffRepository,
	accountsClient AccountsClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		staffRepo:       staffRepo,
		accountsClient:  accountsClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Delete удаляет запись
// Единая политика доступа: удалять может связанный пользователь сотрудника,
// которому принадлежит запись, или администратор
func (s *Service) Delete(ctx context.Context, reservationID int64, actingUserID int64) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", reservationID, actingUserID)

	rsv, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerOrAdmin(ctx, rsv.StaffID, actingUserID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to reservation id=%d", actingUserID, reservationID)
		return err
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found during deletion", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", reservationID)
	return nil
}

// ListUpcomingByStaff получает будущие записи сотрудника
// Доступно связанному пользователю сотрудника или администратору
func (s *Service) ListUpcomingByStaff(ctx context.Context, staffID int64, actingUserID int64) (*models.ReservationListResponse, error) {
	s.logger.Info("ListUpcomingByStaff: fetching reservations for staff=%d by user=%d", staffID, actingUserID)

	if err := s.checkOwnerOrAdmin(ctx, staffID, actingUserID); err != nil {
		s.logger.Warn("ListUpcomingByStaff: access denied for user=%d to staff=%d", actingUserID, staffID)
		return nil, err
	}

	reservations, err := s.reservationRepo.ListUpcomingByStaff(ctx, staffID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListUpcomingByStaff: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListUpcomingByStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcomingByStaff: successfully fetched %d reservations for staff=%d", len(reservations), staffID)
	return models.FromDomainReservationList(reservations), nil
}

// checkOwnerOrAdmin проверяет, что действующий пользователь связан с сотрудником
// или является администратором
func (s *Service) checkOwnerOrAdmin(ctx context.Context, staffID int64, actingUserID int64) error {
	staff, err := s.staffRepo.GetStaffByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrStaffNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("%w: checkOwnerOrAdmin - failed to get staff: %v", ErrInternal, err)
	}

	if staff.IsOwnedBy(actingUserID) {
		return nil
	}

	user, err := s.accountsClient.GetUser(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, accountsClient.ErrUserNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkOwnerOrAdmin - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin {
		return ErrAccessDenied
	}

	return nil
}
