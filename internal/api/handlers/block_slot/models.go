package block_slot

import (
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
	blockSlot "github.com/haruyasu/booking-service/internal/usecase/block_slot"
)

// BlockSlotRequest - запрос на закрытие слота
type BlockSlotRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
	Hour int    `json:"hour"`
}

// BlockResponse - закрытый слот
type BlockResponse struct {
	ID      int64  `json:"id"`
	StaffID int64  `json:"staff_id"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
	Kind    string `json:"kind"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель usecase
func (r *BlockSlotRequest) ToUseCaseRequest(staffID, actingUserID int64) (*blockSlot.Request, error) {
	day, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	slotStart := time.Date(day.Year(), day.Month(), day.Day(), r.Hour, 0, 0, 0, time.Local)

	return &blockSlot.Request{
		StaffID:      staffID,
		SlotStart:    slotStart,
		ActingUserID: actingUserID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *blockSlot.Response) *BlockResponse {
	return &BlockResponse{
		ID:      resp.ID,
		StaffID: resp.StaffID,
		StartAt: resp.StartAt.Format(time.RFC3339),
		EndAt:   resp.EndAt.Format(time.RFC3339),
		Kind:    string(domain.KindBlock),
	}
}
