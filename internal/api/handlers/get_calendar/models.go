package get_calendar

import (
	"time"

	"github.com/haruyasu/booking-service/internal/domain"
	buildCalendar "github.com/haruyasu/booking-service/internal/usecase/build_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	StaffID   int64  `json:"staffId"`
	StaffName string `json:"staffName"`

	Days  []string `json:"days"`  // 7 дат окна, YYYY-MM-DD
	Hours []int    `json:"hours"` // часы рабочего окна

	// Cells час -> дата -> состояние ячейки
	Cells map[int]map[string]Cell `json:"cells"`

	FirstDay  string `json:"firstDay"`
	LastDay   string `json:"lastDay"`
	PrevStart string `json:"prevStart"`
	NextStart string `json:"nextStart"`
	Today     string `json:"today"`
}

// Cell состояние одной ячейки сетки
type Cell struct {
	Taken    bool    `json:"taken"`
	Occupant *string `json:"occupant,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(staffID int64, dateStr string) (*buildCalendar.Request, error) {
	req := &buildCalendar.Request{StaffID: staffID}

	if dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildCalendar.Response) *CalendarResponse {
	days := make([]string, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = day.Format(domain.DateFormat)
	}

	cells := make(map[int]map[string]Cell, len(resp.Cells))
	for hour, row := range resp.Cells {
		converted := make(map[string]Cell, len(row))
		for date, cell := range row {
			converted[date] = Cell{
				Taken:    cell.Taken,
				Occupant: cell.OccupantLabel,
			}
		}
		cells[hour] = converted
	}

	return &CalendarResponse{
		StaffID:   resp.StaffID,
		StaffName: resp.StaffName,
		Days:      days,
		Hours:     resp.Hours,
		Cells:     cells,
		FirstDay:  resp.FirstDay.Format(domain.DateFormat),
		LastDay:   resp.LastDay.Format(domain.DateFormat),
		PrevStart: resp.PrevStart.Format(domain.DateFormat),
		NextStart: resp.NextStart.Format(domain.DateFormat),
		Today:     resp.Today.Format(domain.DateFormat),
	}
}
