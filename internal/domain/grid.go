package domain

// GridCell is the state of one (hour, date) cell of the weekly calendar:
// either free, or taken with an optional occupant label
type GridCell struct {
	Taken         bool
	OccupantLabel *string
}

// FreeCell returns a free calendar cell
func FreeCell() GridCell {
	return GridCell{}
}

// TakenCell returns a taken calendar cell with an optional occupant label
func TakenCell(label *string) GridCell {
	return GridCell{Taken: true, OccupantLabel: label}
}
