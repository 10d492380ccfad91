package get_staff_reservations

import (
	"context"

	"github.com/haruyasu/booking-service/internal/service/reservations/models"
)

// ReservationService - получение списка записей сотрудника
type ReservationService interface {
	ListUpcomingByStaff(ctx context.Context, staffID, actingUserID int64) (*models.ReservationListResponse, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
