package build_calendar

import (
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
)

// Request модель запроса на построение недельного календаря
type Request struct {
	StaffID   int64      // ID сотрудника
	StartDate *time.Time // Первый день окна; nil = сегодня
}

// Response модель ответа с сеткой занятости и навигацией по неделям
type Response struct {
	StaffID   int64
	StaffName string

	// Days ровно 7 последовательных дат окна
	Days []time.Time

	// Hours часы рабочего окна в порядке возрастания
	Hours []int

	// Cells сетка занятости: час -> дата (в формате YYYY-MM-DD) -> ячейка
	Cells map[int]map[string]domain.GridCell

	FirstDay time.Time
	LastDay  time.Time

	// PrevStart и NextStart якоря для ссылок на соседние окна
	PrevStart time.Time
	NextStart time.Time

	// Today текущая дата для подсветки в сетке
	Today time.Time
}

// CellAt возвращает ячейку сетки для часа и даты
func (r *Response) CellAt(hour int, day time.Time) (domain.GridCell, bool) {
	row, ok := r.Cells[hour]
	if !ok {
		return domain.GridCell{}, false
	}
	cell, ok := row[day.Format(domain.DateFormat)]
	return cell, ok
}
