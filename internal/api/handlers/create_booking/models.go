package create_booking

import (
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
	createReservation "github.com/haruyasu/booking-service/internal/usecase/create_reservation"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date      string  `json:"date"` // "2024-06-10"
	Hour      int     `json:"hour"` // час начала слота
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Tel       string  `json:"tel"`
	Remarks   *string `json:"remarks,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64   `json:"id"`
	StaffID   int64   `json:"staffId"`
	StartAt   string  `json:"startAt"` // ISO 8601
	EndAt     string  `json:"endAt"`   // ISO 8601
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Tel       string  `json:"tel"`
	Remarks   *string `json:"remarks,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и час собираются в момент начала слота в локальном времени сервиса
func (r *CreateBookingRequest) ToUseCaseRequest(staffID int64) (*createReservation.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	slotStart := time.Date(date.Year(), date.Month(), date.Day(), r.Hour, 0, 0, 0, time.Local)

	return &createReservation.Request{
		StaffID:   staffID,
		SlotStart: slotStart,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Tel:       r.Tel,
		Remarks:   r.Remarks,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		StaffID:   resp.StaffID,
		StartAt:   resp.StartAt.Format(time.RFC3339),
		EndAt:     resp.EndAt.Format(time.RFC3339),
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Tel:       resp.Tel,
		Remarks:   resp.Remarks,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
