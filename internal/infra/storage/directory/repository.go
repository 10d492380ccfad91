package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/haruyasu/booking-service/internal/domain"
	"github.com/haruyasu/booking-service/pkg/dbmetrics"
	"github.com/haruyasu/booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var storeColumns = []string{"id", "name", "address", "tel", "description", "image_url"}

var staffColumns = []string{"id", "user_id", "store_id", "name", "description", "image_url"}

// Repository репозиторий справочника магазинов и сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListStores получает все магазины, отсортированные по названию
func (r *Repository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(storeColumns...).
		From("stores").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStores - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStores - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		var store domain.Store
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Address,
			&store.Tel,
			&store.Description,
			&store.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStores - scan row: %v", ErrScanRow, err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStores - rows error: %v", ErrScanRow, err)
	}

	return stores, nil
}

// GetStoreByID получает магазин по ID
func (r *Repository) GetStoreByID(ctx context.Context, id int64) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(storeColumns...).
		From("stores").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStoreByID - build select query: %v", ErrBuildQuery, err)
	}

	var store domain.Store
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&store.ID,
		&store.Name,
		&store.Address,
		&store.Tel,
		&store.Description,
		&store.ImageURL,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStoreByID - scan store: %v", ErrScanRow, err)
	}

	return &store, nil
}

// ListStaffByStore получает сотрудников магазина, отсортированных по имени
func (r *Repository) ListStaffByStore(ctx context.Context, storeID int64) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffByStore - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffByStore - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staffList := make([]*domain.Staff, 0)
	for rows.Next() {
		var staff domain.Staff
		err := rows.Scan(
			&staff.ID,
			&staff.UserID,
			&staff.StoreID,
			&staff.Name,
			&staff.Description,
			&staff.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListStaffByStore - scan row: %v", ErrScanRow, err)
		}
		staffList = append(staffList, &staff)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaffByStore - rows error: %v", ErrScanRow, err)
	}

	return staffList, nil
}

// GetStaffByID получает сотрудника по ID
func (r *Repository) GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffByID - build select query: %v", ErrBuildQuery, err)
	}

	var staff domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&staff.ID,
		&staff.UserID,
		&staff.StoreID,
		&staff.Name,
		&staff.Description,
		&staff.ImageURL,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffByID - scan staff: %v", ErrScanRow, err)
	}

	return &staff, nil
}
