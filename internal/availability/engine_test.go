package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// 2026-02-02 - понедельник
var monday = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

// Понедельник 09:00-18:00, обед 12:00-13:00
func mondaySchedule() domain.ProfessionalSchedule {
	return domain.ProfessionalSchedule{
		ProfessionalID: 42,
		Days: []domain.WeekdaySchedule{
			{
				Weekday:    time.Monday,
				StartTime:  "09:00",
				EndTime:    "18:00",
				LunchStart: ptr.Ptr(types.TimeString("12:00")),
				LunchEnd:   ptr.Ptr(types.TimeString("13:00")),
			},
			{Weekday: time.Sunday, IsDayOff: true},
		},
	}
}

func appointment(id int64, start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:             id,
		ProfessionalID: 42,
		Date:           monday,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		Status:         status,
	}
}

func stateOf(t *testing.T, slots []Slot, start string) SlotState {
	t.Helper()
	for _, s := range slots {
		if s.Start == types.TimeString(start) {
			return s.State
		}
	}
	t.Fatalf("slot %s not found in grid", start)
	return ""
}

func TestClassifyFullGrid(t *testing.T) {
	appts := []*domain.Appointment{
		appointment(1, "10:00", "10:30", domain.StatusConfirmed),
	}

	slots, err := Classify(mondaySchedule(), monday, appts)
	require.NoError(t, err)

	// Окно 09:00-18:00 по 15 минут - 36 слотов
	require.Len(t, slots, 36)

	assert.Equal(t, SlotFree, stateOf(t, slots, "09:00"))
	assert.Equal(t, SlotBooked, stateOf(t, slots, "10:00"))
	assert.Equal(t, SlotBooked, stateOf(t, slots, "10:15"))
	// Полуинтервал: конец записи слот не занимает
	assert.Equal(t, SlotFree, stateOf(t, slots, "10:30"))
	assert.Equal(t, SlotLunch, stateOf(t, slots, "12:00"))
	assert.Equal(t, SlotLunch, stateOf(t, slots, "12:45"))
	assert.Equal(t, SlotFree, stateOf(t, slots, "13:00"))
	assert.Equal(t, SlotFree, stateOf(t, slots, "17:45"))
}

func TestClassifyCancelledDoesNotBlock(t *testing.T) {
	appts := []*domain.Appointment{
		appointment(1, "10:00", "11:00", domain.StatusCancelled),
	}

	slots, err := Classify(mondaySchedule(), monday, appts)
	require.NoError(t, err)
	assert.Equal(t, SlotFree, stateOf(t, slots, "10:00"))
	assert.Equal(t, SlotFree, stateOf(t, slots, "10:45"))
}

func TestClassifyFreeBlockerBlocks(t *testing.T) {
	// Статус free - блокер профессионала, занимает слоты как обычная запись
	appts := []*domain.Appointment{
		appointment(1, "15:00", "16:00", domain.StatusFree),
	}

	slots, err := Classify(mondaySchedule(), monday, appts)
	require.NoError(t, err)
	assert.Equal(t, SlotBooked, stateOf(t, slots, "15:00"))
	assert.Equal(t, SlotBooked, stateOf(t, slots, "15:45"))
	assert.Equal(t, SlotFree, stateOf(t, slots, "16:00"))
}

func TestClassifyLunchBeatsBooking(t *testing.T) {
	// Запись, наехавшая на обед: приоритет классификации у обеда
	appts := []*domain.Appointment{
		appointment(1, "11:30", "12:30", domain.StatusConfirmed),
	}

	slots, err := Classify(mondaySchedule(), monday, appts)
	require.NoError(t, err)
	assert.Equal(t, SlotBooked, stateOf(t, slots, "11:30"))
	assert.Equal(t, SlotLunch, stateOf(t, slots, "12:00"))
	assert.Equal(t, SlotLunch, stateOf(t, slots, "12:15"))
}

func TestClassifyDayOffRendersFallbackGrid(t *testing.T) {
	sunday := monday.AddDate(0, 0, 6)

	slots, err := Classify(mondaySchedule(), sunday, nil)
	require.NoError(t, err)

	// Отображаемое окно 08:00-18:00 - 40 слотов, все day_off
	require.Len(t, slots, 40)
	assert.Equal(t, types.TimeString("08:00"), slots[0].Start)
	for _, s := range slots {
		assert.Equal(t, SlotDayOff, s.State)
	}
}

func TestClassifyEmptyScheduleRendersFallbackGrid(t *testing.T) {
	empty := domain.ProfessionalSchedule{ProfessionalID: 42}

	slots, err := Classify(empty, monday, nil)
	require.NoError(t, err)
	require.Len(t, slots, 40)
	for _, s := range slots {
		assert.Equal(t, SlotDayOff, s.State)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	appts := []*domain.Appointment{
		appointment(1, "10:00", "10:30", domain.StatusConfirmed),
		appointment(2, "14:00", "15:15", domain.StatusPending),
	}

	first, err := Classify(mondaySchedule(), monday, appts)
	require.NoError(t, err)
	second, err := Classify(mondaySchedule(), monday, appts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Сценарий A из бизнес-требований: обед блокирует, рабочее время - нет
func TestIsIntervalFreeLunch(t *testing.T) {
	ps := mondaySchedule()

	free, err := IsIntervalFree(ps, monday, nil, "12:15", 15)
	require.NoError(t, err)
	assert.False(t, free, "lunch slot must not be free")

	free, err = IsIntervalFree(ps, monday, nil, "11:45", 15)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestIsIntervalFreeOverlap(t *testing.T) {
	ps := mondaySchedule()
	appts := []*domain.Appointment{
		appointment(1, "10:00", "10:30", domain.StatusConfirmed),
	}

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{"inside booked interval", "10:15", 30, false},
		{"covers booked interval", "09:45", 60, false},
		{"abuts end of booking", "10:30", 15, true},
		{"abuts start of booking", "09:45", 15, true},
		{"well clear of booking", "16:00", 45, true},
		{"crosses window end", "17:45", 30, false},
		{"before window", "08:00", 15, false},
		{"spans lunch", "11:45", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free, err := IsIntervalFree(ps, monday, appts, types.TimeString(tt.start), tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, free)
		})
	}
}

func TestIsIntervalFreeDayOff(t *testing.T) {
	sunday := monday.AddDate(0, 0, 6)

	free, err := IsIntervalFree(mondaySchedule(), sunday, nil, "10:00", 30)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestIsIntervalFreeEmptySchedule(t *testing.T) {
	// Сценарий C: пустой шаблон рендерит сетку, но интервалы не свободны
	empty := domain.ProfessionalSchedule{ProfessionalID: 42}

	free, err := IsIntervalFree(empty, monday, nil, "10:00", 30)
	require.NoError(t, err)
	assert.False(t, free)
}

func TestIsIntervalFreeInvalidDuration(t *testing.T) {
	_, err := IsIntervalFree(mondaySchedule(), monday, nil, "10:00", 0)
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = IsIntervalFree(mondaySchedule(), monday, nil, "10:00", -15)
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestIntervalStatesOutsideWindowPastMidnight(t *testing.T) {
	states, err := IntervalStates(mondaySchedule(), monday, nil, "23:45", 30)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, SlotOutsideWindow, states[0])
	assert.Equal(t, SlotOutsideWindow, states[1])
}

func TestClassifyRejectsMalformedAppointment(t *testing.T) {
	appts := []*domain.Appointment{
		appointment(1, "11:00", "10:00", domain.StatusConfirmed),
	}

	_, err := Classify(mondaySchedule(), monday, appts)
	require.ErrorIs(t, err, ErrInvalidAppointment)
}
