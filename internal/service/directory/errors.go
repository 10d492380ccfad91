package directory

import "errors"

var (
	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
