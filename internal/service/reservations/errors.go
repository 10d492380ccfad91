package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда запись не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
