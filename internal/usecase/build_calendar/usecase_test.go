package build_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruyasu/booking-service/internal/domain"
	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
	"github.com/haruyasu/booking-service/pkg/ptr"
)

type fakeStaffRepo struct {
	staff map[int64]*domain.Staff
}

func (f *fakeStaffRepo) GetStaffByID(_ context.Context, id int64) (*domain.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, directoryRepo.ErrStaffNotFound
	}
	return s, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation

	lastWindowStart time.Time
	lastWindowEnd   time.Time
}

func (f *fakeReservationRepo) FindOverlapping(_ context.Context, staffID int64, windowStart, windowEnd time.Time) ([]*domain.Reservation, error) {
	f.lastWindowStart = windowStart
	f.lastWindowEnd = windowEnd

	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.StaffID != staffID {
			continue
		}
		if r.StartAt.After(windowEnd) || r.EndAt.Before(windowStart) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(staffID int64, start time.Time, firstName, lastName string) *domain.Reservation {
	return &domain.Reservation{
		StaffID:           staffID,
		StartAt:           start,
		EndAt:             start.Add(domain.SlotDuration),
		Kind:              domain.KindBooking,
		CustomerFirstName: ptr.Ptr(firstName),
		CustomerLastName:  ptr.Ptr(lastName),
	}
}

func newTestUseCase(staffRepo *fakeStaffRepo, rsvRepo *fakeReservationRepo, window domain.BusinessWindow, now time.Time) *UseCase {
	uc := NewUseCase(staffRepo, rsvRepo, window, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_EmptyWeek(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, StoreID: 1, Name: "Анна"},
	}}
	rsvRepo := &fakeReservationRepo{}

	uc := newTestUseCase(staffRepo, rsvRepo, window, sunday)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, StartDate: &sunday})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.StaffID)
	assert.Equal(t, "Анна", resp.StaffName)

	// Ровно 7 последовательных дат
	require.Len(t, resp.Days, 7)
	for i, day := range resp.Days {
		assert.Equal(t, sunday.AddDate(0, 0, i), day)
	}

	// Строка на каждый рабочий час, все ячейки свободны
	assert.Equal(t, window.Hours(), resp.Hours)
	require.Len(t, resp.Cells, window.SlotCount())
	for _, hour := range resp.Hours {
		row := resp.Cells[hour]
		require.Len(t, row, 7)
		for _, cell := range row {
			assert.False(t, cell.Taken)
		}
	}
}

func TestExecute_MarksReservations(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	tuesday14 := time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC)

	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	rsvRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		booking(1, tuesday14, "Иван", "Петров"),
		// Блокировка занимает ячейку без подписи
		{
			StaffID: 1,
			StartAt: time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2024, 6, 12, 11, 0, 0, 0, time.UTC),
			Kind:    domain.KindBlock,
		},
		// Запись другого сотрудника не попадает в сетку
		booking(2, tuesday14, "Пётр", "Сидоров"),
	}}

	uc := newTestUseCase(staffRepo, rsvRepo, window, sunday)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, StartDate: &sunday})
	require.NoError(t, err)

	cell, ok := resp.CellAt(14, tuesday14)
	require.True(t, ok)
	assert.True(t, cell.Taken)
	require.NotNil(t, cell.OccupantLabel)
	assert.Equal(t, "Петров Иван", *cell.OccupantLabel)

	blockCell, ok := resp.CellAt(10, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.True(t, blockCell.Taken)
	assert.Nil(t, blockCell.OccupantLabel)

	// Остальные ячейки свободны
	free, ok := resp.CellAt(15, tuesday14)
	require.True(t, ok)
	assert.False(t, free.Taken)
}

func TestExecute_IgnoresReservationOutsideWindowHours(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	rsvRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		// Час 8 вне рабочего окна: запись существует, но в сетке её нет
		booking(1, time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC), "Иван", "Петров"),
	}}

	uc := newTestUseCase(staffRepo, rsvRepo, window, sunday)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, StartDate: &sunday})
	require.NoError(t, err)

	_, ok := resp.Cells[8]
	assert.False(t, ok)
	for _, hour := range resp.Hours {
		for _, cell := range resp.Cells[hour] {
			assert.False(t, cell.Taken)
		}
	}
}

func TestExecute_Navigation(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	rsvRepo := &fakeReservationRepo{}

	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	uc := newTestUseCase(staffRepo, rsvRepo, window, now)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, StartDate: &sunday})
	require.NoError(t, err)

	assert.Equal(t, sunday, resp.FirstDay)
	assert.Equal(t, sunday.AddDate(0, 0, 6), resp.LastDay)
	assert.Equal(t, sunday.AddDate(0, 0, -7), resp.PrevStart)
	assert.Equal(t, sunday.AddDate(0, 0, 7), resp.NextStart)

	// Today - дата без времени
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), resp.Today)
}

func TestExecute_DefaultsToToday(t *testing.T) {
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	rsvRepo := &fakeReservationRepo{}

	now := time.Date(2024, 6, 11, 9, 45, 0, 0, time.UTC)
	uc := newTestUseCase(staffRepo, rsvRepo, window, now)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), resp.FirstDay)
}

func TestExecute_NormalizesWeekStart(t *testing.T) {
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20, NormalizeWeekStart: true}

	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	rsvRepo := &fakeReservationRepo{}

	// 2024-06-12 - среда, окно откатывается к воскресенью 2024-06-09
	wednesday := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(staffRepo, rsvRepo, window, wednesday)

	resp, err := uc.Execute(context.Background(), &Request{StaffID: 1, StartDate: &wednesday})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), resp.FirstDay)
}

func TestExecute_QueryWindowBounds(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	rsvRepo := &fakeReservationRepo{}

	uc := newTestUseCase(staffRepo, rsvRepo, window, sunday)

	_, err := uc.Execute(context.Background(), &Request{StaffID: 1, StartDate: &sunday})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC), rsvRepo.lastWindowStart)
	assert.Equal(t, time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC), rsvRepo.lastWindowEnd)
}

func TestExecute_Idempotent(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	rsvRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		booking(1, time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC), "Иван", "Петров"),
	}}

	uc := newTestUseCase(staffRepo, rsvRepo, window, sunday)

	first, err := uc.Execute(context.Background(), &Request{StaffID: 1, StartDate: &sunday})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{StaffID: 1, StartDate: &sunday})
	require.NoError(t, err)

	assert.Equal(t, first.Cells, second.Cells)
	assert.Equal(t, first.Days, second.Days)
}

func TestExecute_StaffNotFound(t *testing.T) {
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	uc := newTestUseCase(&fakeStaffRepo{}, &fakeReservationRepo{}, window, time.Now())

	_, err := uc.Execute(context.Background(), &Request{StaffID: 42})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_InvalidStaffID(t *testing.T) {
	window := domain.BusinessWindow{FirstHour: 10, LastHour: 20}

	uc := newTestUseCase(&fakeStaffRepo{}, &fakeReservationRepo{}, window, time.Now())

	_, err := uc.Execute(context.Background(), &Request{StaffID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
