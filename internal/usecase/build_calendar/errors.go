package build_calendar

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("build_calendar: staff not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("build_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_calendar: internal error")
)
