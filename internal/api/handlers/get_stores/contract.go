package get_stores

import (
	"context"

	"github.com/haruyasu/booking-service/internal/service/directory/models"
)

type DirectoryService interface {
	ListStores(ctx context.Context) (*models.StoreListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
