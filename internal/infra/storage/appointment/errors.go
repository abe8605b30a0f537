package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда вставка нарушила exclusion constraint
	// на (professional_id, date, интервал времени) - интервал уже занят
	ErrSlotTaken = errors.New("appointment.repository: time interval already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrEncodeServices возвращается при ошибке сериализации услуг записи
	ErrEncodeServices = errors.New("appointment.repository: failed to encode services")
)
