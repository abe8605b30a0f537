package schedule

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

func weekSchedule() domain.ProfessionalSchedule {
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
			{
				Weekday:   time.Tuesday,
				StartTime: "10:00",
				EndTime:   "16:00",
			},
			{
				Weekday:  time.Sunday,
				IsDayOff: true,
			},
		},
	}
}

func TestResolveDayWorkingDay(t *testing.T) {
	window, ok := ResolveDay(weekSchedule(), monday)
	require.True(t, ok)

	assert.Equal(t, types.TimeString("09:00"), window.Start)
	assert.Equal(t, types.TimeString("18:00"), window.End)
	require.True(t, window.HasLunch())
	assert.Equal(t, types.TimeString("12:00"), *window.LunchStart)
	assert.Equal(t, types.TimeString("13:00"), *window.LunchEnd)
}

func TestResolveDayNoLunch(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	window, ok := ResolveDay(weekSchedule(), tuesday)
	require.True(t, ok)
	assert.False(t, window.HasLunch())
}

func TestResolveDayDayOff(t *testing.T) {
	sunday := monday.AddDate(0, 0, 6)

	_, ok := ResolveDay(weekSchedule(), sunday)
	assert.False(t, ok)
}

func TestResolveDayMissingWeekday(t *testing.T) {
	// Среды в шаблоне нет - день недоступен
	wednesday := monday.AddDate(0, 0, 2)

	_, ok := ResolveDay(weekSchedule(), wednesday)
	assert.False(t, ok)
}

func TestResolveDayEmptySchedule(t *testing.T) {
	// Пустой шаблон: ни одна дата не доступна, дефолтного окна нет
	empty := domain.ProfessionalSchedule{ProfessionalID: 42}

	for offset := 0; offset < 7; offset++ {
		_, ok := ResolveDay(empty, monday.AddDate(0, 0, offset))
		assert.False(t, ok)
	}
}

func TestDisplayWindow(t *testing.T) {
	window := DisplayWindow()
	assert.Equal(t, types.TimeString("08:00"), window.Start)
	assert.Equal(t, types.TimeString("18:00"), window.End)
	assert.False(t, window.HasLunch())
}

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name    string
		day     domain.WeekdaySchedule
		wantErr error
	}{
		{
			name: "valid working day",
			day: domain.WeekdaySchedule{
				Weekday:   time.Monday,
				StartTime: "09:00",
				EndTime:   "18:00",
			},
		},
		{
			name: "valid with lunch",
			day: domain.WeekdaySchedule{
				Weekday:    time.Monday,
				StartTime:  "09:00",
				EndTime:    "18:00",
				LunchStart: ptr.Ptr(types.TimeString("12:00")),
				LunchEnd:   ptr.Ptr(types.TimeString("13:00")),
			},
		},
		{
			name: "day off skips time checks",
			day: domain.WeekdaySchedule{
				Weekday:  time.Sunday,
				IsDayOff: true,
			},
		},
		{
			name: "start after end",
			day: domain.WeekdaySchedule{
				Weekday:   time.Monday,
				StartTime: "18:00",
				EndTime:   "09:00",
			},
			wantErr: ErrInvalidWindow,
		},
		{
			name: "start equals end",
			day: domain.WeekdaySchedule{
				Weekday:   time.Monday,
				StartTime: "09:00",
				EndTime:   "09:00",
			},
			wantErr: ErrInvalidWindow,
		},
		{
			name: "unaligned start",
			day: domain.WeekdaySchedule{
				Weekday:   time.Monday,
				StartTime: "09:10",
				EndTime:   "18:00",
			},
			wantErr: ErrUnalignedTime,
		},
		{
			name: "lunch outside window",
			day: domain.WeekdaySchedule{
				Weekday:    time.Monday,
				StartTime:  "09:00",
				EndTime:    "18:00",
				LunchStart: ptr.Ptr(types.TimeString("18:00")),
				LunchEnd:   ptr.Ptr(types.TimeString("19:00")),
			},
			wantErr: ErrLunchOutsideWindow,
		},
		{
			name: "lunch start only",
			day: domain.WeekdaySchedule{
				Weekday:    time.Monday,
				StartTime:  "09:00",
				EndTime:    "18:00",
				LunchStart: ptr.Ptr(types.TimeString("12:00")),
			},
			wantErr: ErrIncompleteLunch,
		},
		{
			name: "malformed time",
			day: domain.WeekdaySchedule{
				Weekday:   time.Monday,
				StartTime: "morning",
				EndTime:   "18:00",
			},
			wantErr: ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDay(tt.day)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateWeekDuplicateWeekday(t *testing.T) {
	days := []domain.WeekdaySchedule{
		{Weekday: time.Monday, StartTime: "09:00", EndTime: "18:00"},
		{Weekday: time.Monday, StartTime: "10:00", EndTime: "16:00"},
	}

	err := ValidateWeek(days)
	require.ErrorIs(t, err, ErrDuplicateWeekday)
}

func TestValidateWeekOK(t *testing.T) {
	require.NoError(t, ValidateWeek(weekSchedule().Days))
}
