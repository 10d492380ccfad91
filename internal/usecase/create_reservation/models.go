package create_reservation

import "time"

// Request модель запроса на бронирование слота
type Request struct {
	StaffID   int64     // ID сотрудника
	SlotStart time.Time // Начало слота, выровненное на час
	FirstName string    // Имя клиента
	LastName  string    // Фамилия клиента
	Tel       string    // Телефон
	Remarks   *string   // Примечания (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	StaffID   int64
	StartAt   time.Time
	EndAt     time.Time
	FirstName string
	LastName  string
	Tel       string
	Remarks   *string
	CreatedAt time.Time
}
