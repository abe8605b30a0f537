package staffservice

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("staffservice client: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("staffservice client: service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
