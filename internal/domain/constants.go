package domain

// Slot granularity constants
const (
	// SlotStepMinutes шаг сетки слотов - атомарная единица бронирования
	SlotStepMinutes = 15

	// LabelStepMinutes шаг подписей временной оси (только отображение)
	LabelStepMinutes = 30
)

// Display fallback window. Used ONLY to render an empty grid when the
// professional has no schedule for the day - booking validation never
// consults these values.
const (
	DisplayFallbackStart = "08:00"
	DisplayFallbackEnd   = "18:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxServicesPerAppointment = 10
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы записей, занимающих слоты.
// Используется при выборке записей для расчёта доступности.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusFree,
}
