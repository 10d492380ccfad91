package domain

import "time"

// ReservationKind distinguishes a customer booking from a staff self-block
type ReservationKind string

const (
	KindBooking ReservationKind = "booking"
	KindBlock   ReservationKind = "block"
)

// Reservation represents one occupied hour slot of a staff member.
// EndAt is always exactly one hour after StartAt.
// Within one staff member no two reservations share the same StartAt;
// the guarantee lives in the storage layer as a uniqueness constraint.
type Reservation struct {
	ID      int64
	StaffID int64
	StartAt time.Time
	EndAt   time.Time
	Kind    ReservationKind

	// Contact fields are set for bookings and empty for blocks
	CustomerFirstName *string
	CustomerLastName  *string
	CustomerTel       *string
	Remarks           *string

	CreatedAt time.Time
}

// IsBlock returns true if the reservation is a staff self-block
func (r *Reservation) IsBlock() bool {
	return r.Kind == KindBlock
}

// OccupantLabel returns the display name of whoever holds the slot,
// or nil for a block (the slot is taken but has no customer)
func (r *Reservation) OccupantLabel() *string {
	if r.IsBlock() {
		return nil
	}
	if r.CustomerLastName == nil && r.CustomerFirstName == nil {
		return nil
	}
	var label string
	if r.CustomerLastName != nil {
		label = *r.CustomerLastName
	}
	if r.CustomerFirstName != nil {
		if label != "" {
			label += " "
		}
		label += *r.CustomerFirstName
	}
	return &label
}
