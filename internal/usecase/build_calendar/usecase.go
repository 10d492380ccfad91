package build_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/haruyasu/booking-service/internal/domain"
	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
)

// UseCase use case построения недельного календаря занятости сотрудника
type UseCase struct {
	staffRepo       StaffRepository
	reservationRepo ReservationRepository
	window          domain.BusinessWindow
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// Рабочее окно передаётся явно: в разных инсталляциях часы различаются
func NewUseCase(
	staffRepo StaffRepository,
	reservationRepo ReservationRepository,
	window domain.BusinessWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:       staffRepo,
		reservationRepo: reservationRepo,
		window:          window,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит сетку занятости на 7 дней
// Операция только читает данные: повторный вызов без записей между ними
// возвращает идентичный результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	// 1. Резолвим сотрудника
	staff, err := uc.staffRepo.GetStaffByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, directoryRepo.ErrStaffNotFound) {
			uc.logger.Warn("BuildCalendar: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("BuildCalendar: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 2. Определяем первый день окна: явная дата или сегодня
	now := uc.timeProvider.Now()
	baseDate := now
	if req.StartDate != nil {
		baseDate = *req.StartDate
	}
	startDate := uc.window.NormalizeStart(dateOnly(baseDate))

	// 3. Семь последовательных дат и пустая сетка
	days := buildDays(startDate)
	cells := newGrid(uc.window, days)

	// 4. Записи, пересекающиеся с рабочим интервалом окна
	windowStart, windowEnd := windowBounds(days, uc.window)
	reservations, err := uc.reservationRepo.FindOverlapping(ctx, req.StaffID, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("BuildCalendar: failed to find reservations for staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to find reservations: %v", ErrInternal, err)
	}

	// 5. Помечаем занятые ячейки
	markOccupied(cells, reservations, startDate.Location())

	uc.logger.Info("BuildCalendar: staff=%d, window=%s..%s, reservations=%d",
		req.StaffID, days[0].Format(domain.DateFormat), days[len(days)-1].Format(domain.DateFormat), len(reservations))

	return &Response{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		Days:      days,
		Hours:     uc.window.Hours(),
		Cells:     cells,
		FirstDay:  days[0],
		LastDay:   days[len(days)-1],
		PrevStart: days[0].AddDate(0, 0, -domain.CalendarDays),
		NextStart: days[len(days)-1].AddDate(0, 0, 1),
		Today:     dateOnly(now),
	}, nil
}
