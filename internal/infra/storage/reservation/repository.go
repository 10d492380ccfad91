package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/haruyasu/booking-service/internal/domain"
	"github.com/haruyasu/booking-service/pkg/dbmetrics"
	"github.com/haruyasu/booking-service/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = pq.ErrorCode("23505")

var reservationColumns = []string{
	"id",
	"staff_id",
	"start_at",
	"end_at",
	"kind",
	"customer_first_name",
	"customer_last_name",
	"customer_tel",
	"remarks",
	"created_at",
}

// Repository репозиторий для работы с записями (бронирования и блокировки слотов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Нарушение уникальности (staff_id, start_at) превращается в ErrSlotTaken:
// ограничение в схеме - последний рубеж против двойного бронирования,
// предварительная проверка занятости слота сама по себе не атомарна.
func (r *Repository) Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"staff_id",
			"start_at",
			"end_at",
			"kind",
			"customer_first_name",
			"customer_last_name",
			"customer_tel",
			"remarks",
		).
		Values(
			rsv.StaffID,
			rsv.StartAt,
			rsv.EndAt,
			rsv.Kind,
			rsv.CustomerFirstName,
			rsv.CustomerLastName,
			rsv.CustomerTel,
			rsv.Remarks,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rsv.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rsv.CreatedAt = createdAt.Time

	return rsv, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rsv, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return rsv, nil
}

// FindOverlapping получает все записи сотрудника, пересекающиеся с окном [windowStart, windowEnd]
// Запись отбрасывается только если она целиком раньше или целиком позже окна:
// NOT (start_at > windowEnd OR end_at < windowStart)
func (r *Repository) FindOverlapping(ctx context.Context, staffID int64, windowStart, windowEnd time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.LtOrEq{"start_at": windowEnd}).
		Where(squirrel.GtOrEq{"end_at": windowStart}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ExistsAtSlot проверяет, есть ли у сотрудника запись ровно на это время начала
// Внутри транзакции добавляет FOR UPDATE для блокировки строки
func (r *Repository) ExistsAtSlot(ctx context.Context, staffID int64, startAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("reservations").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.Eq{"start_at": startAt})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsAtSlot - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListUpcomingByStaff получает будущие записи сотрудника, отсортированные по времени начала
func (r *Repository) ListUpcomingByStaff(ctx context.Context, staffID int64, now time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.GtOrEq{"start_at": now}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingByStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingByStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Delete удаляет запись (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну запись
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var rsv domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&rsv.ID,
		&rsv.StaffID,
		&rsv.StartAt,
		&rsv.EndAt,
		&rsv.Kind,
		&rsv.CustomerFirstName,
		&rsv.CustomerLastName,
		&rsv.CustomerTel,
		&rsv.Remarks,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	rsv.CreatedAt = createdAt.Time
	return &rsv, nil
}

// scanReservations сканирует результаты запроса в слайс записей
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		rsv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, rsv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
