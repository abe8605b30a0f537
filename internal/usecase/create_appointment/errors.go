package create_appointment

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrProfessionalInactive возвращается, когда профессионал не принимает записи
	ErrProfessionalInactive = errors.New("create_appointment: professional is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге компании
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidDuration возвращается при пустом списке услуг
	// или неположительной суммарной длительности
	ErrInvalidDuration = errors.New("create_appointment: invalid total duration")

	// ErrOutOfWindow возвращается, когда день недоступен или интервал
	// выходит за рабочее окно профессионала
	ErrOutOfWindow = errors.New("create_appointment: interval is outside the working window")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с
	// существующей записью или обедом, либо слот занят конкурентной вставкой
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
