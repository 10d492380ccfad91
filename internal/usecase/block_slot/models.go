package block_slot

import "time"

// Request модель запроса на блокировку слота сотрудником
type Request struct {
	StaffID      int64     // ID сотрудника, чей слот блокируется
	SlotStart    time.Time // Начало слота, выровненное на час
	ActingUserID int64     // Пользователь, выполняющий блокировку
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID        int64
	StaffID   int64
	StartAt   time.Time
	EndAt     time.Time
	CreatedAt time.Time
}
