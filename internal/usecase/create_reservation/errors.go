package create_reservation

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("create_reservation: staff not found")

	// ErrSlotTaken возвращается, когда слот уже занят
	// Конфликт терминален для запроса: пользователь выбирает другое время
	ErrSlotTaken = errors.New("create_reservation: slot already taken")

	// ErrSlotOutsideWindow возвращается, когда время начала вне рабочих часов
	ErrSlotOutsideWindow = errors.New("create_reservation: slot is outside business hours")

	// ErrSlotNotAligned возвращается, когда время начала не выровнено на час
	ErrSlotNotAligned = errors.New("create_reservation: slot start must be on the hour")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
