package block_slot

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("block_slot: staff not found")

	// ErrAccessDenied возвращается, когда действующий пользователь
	// не связан с сотрудником и не администратор
	ErrAccessDenied = errors.New("block_slot: access denied")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("block_slot: slot already taken")

	// ErrSlotOutsideWindow возвращается, когда время начала вне рабочих часов
	ErrSlotOutsideWindow = errors.New("block_slot: slot is outside business hours")

	// ErrSlotNotAligned возвращается, когда время начала не выровнено на час
	ErrSlotNotAligned = errors.New("block_slot: slot start must be on the hour")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_slot: internal error")
)
