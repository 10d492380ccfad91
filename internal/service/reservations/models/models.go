package models

import (
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
)

// ReservationResponse ответ с данными записи
type ReservationResponse struct {
	ID        int64   `json:"id"`
	StaffID   int64   `json:"staffId"`
	StartAt   string  `json:"startAt"` // ISO 8601
	EndAt     string  `json:"endAt"`   // ISO 8601
	Kind      string  `json:"kind"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Tel       *string `json:"tel,omitempty"`
	Remarks   *string `json:"remarks,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ReservationListResponse ответ со списком записей
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:        r.ID,
		StaffID:   r.StaffID,
		StartAt:   r.StartAt.Format(time.RFC3339),
		EndAt:     r.EndAt.Format(time.RFC3339),
		Kind:      string(r.Kind),
		FirstName: r.CustomerFirstName,
		LastName:  r.CustomerLastName,
		Tel:       r.CustomerTel,
		Remarks:   r.Remarks,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}
