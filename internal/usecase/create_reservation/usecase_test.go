package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruyasu/booking-service/internal/domain"
	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
	reservationRepo "github.com/haruyasu/booking-service/internal/infra/storage/reservation"
	"github.com/haruyasu/booking-service/pkg/ptr"
)

var testWindow = domain.BusinessWindow{FirstHour: 10, LastHour: 20}

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

// fakeReservationRepo хранит записи в памяти и повторяет поведение
// уникального индекса (staff_id, start_at)
type fakeReservationRepo struct {
	nextID int64
	stored []*domain.Reservation

	createErr error
}

func (f *fakeReservationRepo) ExistsAtSlot(_ context.Context, staffID int64, startAt time.Time) (bool, error) {
	for _, r := range f.stored {
		if r.StaffID == staffID && r.StartAt.Equal(startAt) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, r := range f.stored {
		if r.StaffID == rsv.StaffID && r.StartAt.Equal(rsv.StartAt) {
			return nil, reservationRepo.ErrSlotTaken
		}
	}

	f.nextID++
	created := *rsv
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.stored = append(f.stored, &created)
	return &created, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		StaffID:   1,
		SlotStart: time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC),
		FirstName: "Иван",
		LastName:  "Петров",
		Tel:       "+79001234567",
	}
}

func newTestUseCase(rsvRepo *fakeReservationRepo, txMgr *fakeTxManager) *UseCase {
	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	return NewUseCase(staffRepo, rsvRepo, testWindow, txMgr, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	rsvRepo := &fakeReservationRepo{}
	txMgr := &fakeTxManager{}
	uc := newTestUseCase(rsvRepo, txMgr)

	req := validRequest()
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, req.StaffID, resp.StaffID)
	assert.Equal(t, req.SlotStart, resp.StartAt)
	assert.Equal(t, req.SlotStart.Add(time.Hour), resp.EndAt)
	assert.Equal(t, "Иван", resp.FirstName)
	assert.Equal(t, 1, txMgr.calls)

	require.Len(t, rsvRepo.stored, 1)
	assert.Equal(t, domain.KindBooking, rsvRepo.stored[0].Kind)
}

func TestExecute_SlotTakenPreCheck(t *testing.T) {
	rsvRepo := &fakeReservationRepo{}
	uc := newTestUseCase(rsvRepo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повторная попытка на тот же слот
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, rsvRepo.stored, 1)
}

func TestExecute_SlotTakenOnInsert(t *testing.T) {
	// Конкурент вставил запись между проверкой и вставкой:
	// репозиторий возвращает ошибку уникального индекса
	rsvRepo := &fakeReservationRepo{createErr: reservationRepo.ErrSlotTaken}
	uc := newTestUseCase(rsvRepo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SlotNotAligned(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeTxManager{})

	req := validRequest()
	req.SlotStart = time.Date(2024, 6, 11, 14, 30, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAligned)
}

func TestExecute_SlotOutsideWindow(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeTxManager{})

	req := validRequest()
	req.SlotStart = time.Date(2024, 6, 11, 21, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotOutsideWindow)
}

func TestExecute_StaffNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeTxManager{})

	req := validRequest()
	req.StaffID = 42

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_ContactValidation(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeTxManager{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing first name", func(r *Request) { r.FirstName = "" }},
		{"missing last name", func(r *Request) { r.LastName = "" }},
		{"missing tel", func(r *Request) { r.Tel = "" }},
		{"first name too long", func(r *Request) { r.FirstName = string(make([]byte, domain.MaxNameLength+1)) }},
		{"tel too long", func(r *Request) { r.Tel = string(make([]byte, domain.MaxTelLength+1)) }},
		{"remarks too long", func(r *Request) { r.Remarks = ptr.Ptr(string(make([]byte, domain.MaxRemarksLength+1))) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_DifferentSlotsDoNotConflict(t *testing.T) {
	rsvRepo := &fakeReservationRepo{}
	uc := newTestUseCase(rsvRepo, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.SlotStart = req.SlotStart.Add(time.Hour)

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, rsvRepo.stored, 2)
}
