package accounts

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("accounts.client: user not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса аккаунтов
	ErrInvalidResponse = errors.New("accounts.client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("accounts.client: internal error")
)
