package build_calendar

import (
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
)

// buildDays возвращает 7 последовательных дат начиная с startDate
func buildDays(startDate time.Time) []time.Time {
	days := make([]time.Time, domain.CalendarDays)
	for i := range days {
		days[i] = startDate.AddDate(0, 0, i)
	}
	return days
}

// newGrid создает сетку занятости со всеми свободными ячейками:
// строка на каждый час рабочего окна, колонка на каждый день
func newGrid(window domain.BusinessWindow, days []time.Time) map[int]map[string]domain.GridCell {
	cells := make(map[int]map[string]domain.GridCell, window.SlotCount())
	for _, hour := range window.Hours() {
		row := make(map[string]domain.GridCell, len(days))
		for _, day := range days {
			row[day.Format(domain.DateFormat)] = domain.FreeCell()
		}
		cells[hour] = row
	}
	return cells
}

// windowBounds возвращает границы окна для выборки пересекающихся записей:
// от первого рабочего часа первого дня до последнего рабочего часа последнего дня
func windowBounds(days []time.Time, window domain.BusinessWindow) (time.Time, time.Time) {
	first := days[0]
	last := days[len(days)-1]

	start := time.Date(first.Year(), first.Month(), first.Day(), window.FirstHour, 0, 0, 0, first.Location())
	end := time.Date(last.Year(), last.Month(), last.Day(), window.LastHour, 0, 0, 0, last.Location())

	return start, end
}

// markOccupied помечает занятые ячейки сетки по пересекающимся записям.
// Запись ложится в ячейку (час начала, дата начала) в локальном времени окна.
// Запись с часом вне рабочего окна не попадает в сетку: календарь отражает
// только рабочие часы, сама запись при этом остаётся в хранилище.
func markOccupied(
	cells map[int]map[string]domain.GridCell,
	reservations []*domain.Reservation,
	loc *time.Location,
) {
	for _, rsv := range reservations {
		localStart := rsv.StartAt.In(loc)
		dateKey := localStart.Format(domain.DateFormat)
		hour := localStart.Hour()

		row, ok := cells[hour]
		if !ok {
			continue
		}
		if _, ok := row[dateKey]; !ok {
			continue
		}

		row[dateKey] = domain.TakenCell(rsv.OccupantLabel())
	}
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
