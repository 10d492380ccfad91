package block_slot

import (
	"context"

	blockSlot "github.com/haruyasu/booking-service/internal/usecase/block_slot"
)

// BlockSlotUseCase - закрытие слота сотрудником
type BlockSlotUseCase interface {
	Execute(ctx context.Context, req *blockSlot.Request) (*blockSlot.Response, error)
}

// Logger - интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
