package create_reservation

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
	ExistsAtSlot(ctx context.Context, staffID int64, startAt time.Time) (bool, error)
	Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
