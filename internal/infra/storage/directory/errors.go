package directory

import "errors"

var (
	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("directory.repository: store not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("directory.repository: staff not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("directory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("directory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("directory.repository: failed to scan row")
)
