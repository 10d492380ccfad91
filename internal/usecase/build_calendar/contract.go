package build_calendar

import (
	"context"
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
)

// StaffRepository интерфейс репозитория справочника сотрудников
type StaffRepository interface {
	GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	// FindOverlapping получает записи сотрудника, пересекающиеся с окном [windowStart, windowEnd]
	FindOverlapping(ctx context.Context, staffID int64, windowStart, windowEnd time.Time) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
