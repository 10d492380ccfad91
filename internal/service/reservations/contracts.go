package reservations

import (
	"context"
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
	"github.com/haruyasu/booking-service/internal/integrations/accounts"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListUpcomingByStaff(ctx context.Context, staffID int64, now time.Time) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// StaffRepository интерфейс репозитория справочника сотрудников
type StaffRepository interface {
	GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// AccountsClient интерфейс клиента сервиса аккаунтов
type AccountsClient interface {
	GetUser(ctx context.Context, userID int64) (*accounts.User, error)
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
