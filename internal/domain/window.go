package domain

import "time"

// BusinessWindow is the deployment-owned set of bookable hours per day.
// Slots are one hour long; FirstHour and LastHour are the first and last
// bookable slot start hours, inclusive (e.g. 9 and 17 mean slots 9:00..17:00).
type BusinessWindow struct {
	FirstHour int
	LastHour  int

	// NormalizeWeekStart, when set, rolls calendar windows back to the
	// most recent week start day before computing the 7-day range
	NormalizeWeekStart bool
}

// Hours returns the ordered list of bookable slot start hours
func (w BusinessWindow) Hours() []int {
	hours := make([]int, 0, w.SlotCount())
	for h := w.FirstHour; h <= w.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// SlotCount returns the number of bookable hour rows per day
func (w BusinessWindow) SlotCount() int {
	return w.LastHour - w.FirstHour + 1
}

// ContainsHour reports whether the hour is a bookable slot start
func (w BusinessWindow) ContainsHour(hour int) bool {
	return hour >= w.FirstHour && hour <= w.LastHour
}

// NormalizeStart rolls the date back to the most recent WeekStartDay
// when normalization is enabled, otherwise returns the date unchanged
func (w BusinessWindow) NormalizeStart(date time.Time) time.Time {
	if !w.NormalizeWeekStart {
		return date
	}
	for date.Weekday() != WeekStartDay {
		date = date.AddDate(0, 0, -1)
	}
	return date
}
