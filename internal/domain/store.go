package domain

// Store represents a physical store that staff members belong to
type Store struct {
	ID          int64
	Name        string
	Address     *string
	Tel         *string
	Description string
	ImageURL    *string
}
