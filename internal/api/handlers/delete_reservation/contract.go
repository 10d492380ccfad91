package delete_reservation

import "context"

// ReservationService - удаление резерваций
type ReservationService interface {
	Delete(ctx context.Context, reservationID, actingUserID int64) error
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
