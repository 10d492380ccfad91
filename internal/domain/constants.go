package domain

import "time"

// Slot geometry
const (
	// SlotDuration длительность одного слота; дизайн фиксирует ровно час
	SlotDuration = time.Hour

	// CalendarDays количество дней в недельном окне календаря
	CalendarDays = 7
)

// WeekStartDay день, к которому откатывается начало окна при нормализации
const WeekStartDay = time.Sunday

// Business validation constants
const (
	MaxNameLength    = 30
	MaxTelLength     = 30
	MaxRemarksLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
