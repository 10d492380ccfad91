package block_slot

import (
	"context"

	"github.com/haruyasu/booking-service/internal/domain"
	"github.com/haruyasu/booking-service/internal/integrations/accounts"
)

// StaffRepository интерфейс репозитория справочника сотрудников
type StaffRepository interface {
	GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error)
}

// AccountsClient интерфейс клиента сервиса аккаунтов
type AccountsClient interface {
	GetUser(ctx context.Context, userID int64) (*accounts.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
