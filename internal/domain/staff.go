package domain

// Staff represents a bookable staff member of a store.
// Every staff member belongs to exactly one store and is linked one-to-one
// to a user account in the external accounts service.
type Staff struct {
	ID          int64
	UserID      int64
	StoreID     int64
	Name        string
	Description string
	ImageURL    *string
}

// IsOwnedBy returns true if the staff identity is linked to the given user
func (s *Staff) IsOwnedBy(userID int64) bool {
	return s.UserID == userID
}
