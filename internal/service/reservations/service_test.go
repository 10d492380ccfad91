package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haruyasu/booking-service/internal/domain"
	directoryRepo "github.com/haruyasu/booking-service/internal/infra/storage/directory"
	reservationRepo "github.com/haruyasu/booking-service/internal/infra/storage/reservation"
	"github.com/haruyasu/booking-service/internal/integrations/accounts"
	"github.com/haruyasu/booking-service/pkg/ptr"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	deleted      []int64
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) ListUpcomingByStaff(_ context.Context, staffID int64, now time.Time) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.StaffID == staffID && !r.StartAt.Before(now) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.reservations, id)
	f.deleted = append(f.deleted, id)
	return nil
}

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

type fakeAccountsClient struct {
	users map[int64]*accounts.User
}

func (f *fakeAccountsClient) GetUser(_ context.Context, userID int64) (*accounts.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, accounts.ErrUserNotFound
	}
	return u, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(rsvRepo *fakeReservationRepo, now time.Time) *Service {
	staffRepo := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		1: {ID: 1, UserID: 100, Name: "Анна"},
	}}
	accountsClient := &fakeAccountsClient{users: map[int64]*accounts.User{
		100: {ID: 100, IsAdmin: false},
		200: {ID: 200, IsAdmin: true},
		300: {ID: 300, IsAdmin: false},
	}}
	svc := NewService(rsvRepo, staffRepo, accountsClient, nopLogger{})
	svc.timeProvider = &fixedTime{now: now}
	return svc
}

func testBooking(id, staffID int64, start time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:                id,
		StaffID:           staffID,
		StartAt:           start,
		EndAt:             start.Add(domain.SlotDuration),
		Kind:              domain.KindBooking,
		CustomerFirstName: ptr.Ptr("Иван"),
		CustomerLastName:  ptr.Ptr("Петров"),
		CustomerTel:       ptr.Ptr("+79001234567"),
		CreatedAt:         start.AddDate(0, 0, -1),
	}
}

func TestDelete_ByOwner(t *testing.T) {
	start := time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC)
	rsvRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: testBooking(5, 1, start),
	}}
	svc := newTestService(rsvRepo, start.AddDate(0, 0, -2))

	err := svc.Delete(context.Background(), 5, 100)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, rsvRepo.deleted)
}

func TestDelete_ByAdmin(t *testing.T) {
	start := time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC)
	rsvRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: testBooking(5, 1, start),
	}}
	svc := newTestService(rsvRepo, start.AddDate(0, 0, -2))

	err := svc.Delete(context.Background(), 5, 200)
	require.NoError(t, err)
}

func TestDelete_AccessDenied(t *testing.T) {
	start := time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC)
	rsvRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: testBooking(5, 1, start),
	}}
	svc := newTestService(rsvRepo, start.AddDate(0, 0, -2))

	err := svc.Delete(context.Background(), 5, 300)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, rsvRepo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}, time.Now())

	err := svc.Delete(context.Background(), 42, 100)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete_ThenSlotIsFree(t *testing.T) {
	// После удаления повторный запрос списка не содержит запись
	start := time.Date(2024, 6, 11, 14, 0, 0, 0, time.UTC)
	rsvRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		5: testBooking(5, 1, start),
	}}
	svc := newTestService(rsvRepo, start.AddDate(0, 0, -2))

	before, err := svc.ListUpcomingByStaff(context.Background(), 1, 100)
	require.NoError(t, err)
	require.Len(t, before.Reservations, 1)

	require.NoError(t, svc.Delete(context.Background(), 5, 100))

	after, err := svc.ListUpcomingByStaff(context.Background(), 1, 100)
	require.NoError(t, err)
	assert.Empty(t, after.Reservations)
}

func TestListUpcomingByStaff_FiltersPast(t *testing.T) {
	now := time.Date(2024, 6, 11, 12, 0, 0, 0, time.UTC)
	rsvRepo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: testBooking(1, 1, now.Add(-3*time.Hour)),
		2: testBooking(2, 1, now.Add(2*time.Hour)),
	}}
	svc := newTestService(rsvRepo, now)

	resp, err := svc.ListUpcomingByStaff(context.Background(), 1, 100)
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)
}

func TestListUpcomingByStaff_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}, time.Now())

	_, err := svc.ListUpcomingByStaff(context.Background(), 1, 300)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestListUpcomingByStaff_StaffNotFound(t *testing.T) {
	svc := newTestService(&fakeReservationRepo{reservations: map[int64]*domain.Reservation{}}, time.Now())

	_, err := svc.ListUpcomingByStaff(context.Background(), 42, 100)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
