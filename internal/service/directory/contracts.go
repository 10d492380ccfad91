package directory

import (
	"context"

	"github.com/haruyasu/booking-service/internal/domain"
)

// DirectoryRepository интерфейс репозитория справочника
type DirectoryRepository interface {
	ListStores(ctx context.Context) ([]*domain.Store, error)
	GetStoreByID(ctx context.Context, id int64) (*domain.Store, error)
	ListStaffByStore(ctx context.Context, storeID int64) ([]*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
