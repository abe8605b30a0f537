package get_daily_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	staffClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// 2026-03-02 - понедельник
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// Фейки зависимостей

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type fakeScheduleRepo struct {
	schedule domain.ProfessionalSchedule
	err      error
}

func (f *fakeScheduleRepo) GetByProfessional(_ context.Context, _ int64) (domain.ProfessionalSchedule, error) {
	return f.schedule, f.err
}

type fakeStaffClient struct {
	professional *staffClient.Professional
	err          error
}

func (f *fakeStaffClient) GetProfessional(_ context.Context, _ int64) (*staffClient.Professional, error) {
	return f.professional, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Фикстуры

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
		},
	}
}

func newTestUseCase(schedule domain.ProfessionalSchedule, appointments []*domain.Appointment) *UseCase {
	return NewUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeScheduleRepo{schedule: schedule},
		&fakeStaffClient{professional: &staffClient.Professional{ID: 42, CompanyID: 7, Active: true}},
		noopLogger{},
	)
}

func stateAt(t *testing.T, slots []Slot, start types.TimeString) availability.SlotState {
	t.Helper()
	for _, slot := range slots {
		if slot.StartTime == start {
			return slot.State
		}
	}
	t.Fatalf("slot %s not found", start)
	return ""
}

// Тесты

func TestExecuteFullGrid(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 1, ProfessionalID: 42, Date: monday, StartTime: "10:00", EndTime: "10:45", Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(weekSchedule(), appointments)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 42, Date: monday})
	require.NoError(t, err)

	// Окно 09:00-18:00 с шагом 15 минут - 36 слотов
	assert.Len(t, resp.Slots, 36)
	assert.True(t, resp.Available)

	assert.Equal(t, availability.SlotFree, stateAt(t, resp.Slots, "09:00"))
	assert.Equal(t, availability.SlotBooked, stateAt(t, resp.Slots, "10:00"))
	assert.Equal(t, availability.SlotBooked, stateAt(t, resp.Slots, "10:30"))
	// Запись закончилась в 10:45 - слот свободен
	assert.Equal(t, availability.SlotFree, stateAt(t, resp.Slots, "10:45"))
	assert.Equal(t, availability.SlotLunch, stateAt(t, resp.Slots, "12:00"))
	assert.Equal(t, availability.SlotFree, stateAt(t, resp.Slots, "13:00"))
	assert.Equal(t, availability.SlotFree, stateAt(t, resp.Slots, "17:45"))
}

func TestExecuteLabels(t *testing.T) {
	uc := newTestUseCase(weekSchedule(), nil)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 42, Date: monday})
	require.NoError(t, err)

	// Подписи с шагом 30 минут по тому же окну
	require.NotEmpty(t, resp.Labels)
	assert.Equal(t, types.TimeString("09:00"), resp.Labels[0])
	assert.Equal(t, types.TimeString("09:30"), resp.Labels[1])
	assert.Equal(t, types.TimeString("17:30"), resp.Labels[len(resp.Labels)-1])
}

// Окно, выровненное только по 15-минутной сетке, не ломает построение
// подписей: их границы округляются до шага подписей
func TestExecuteQuarterHourWindow(t *testing.T) {
	ps := domain.ProfessionalSchedule{
		ProfessionalID: 42,
		Days: []domain.WeekdaySchedule{
			{Weekday: time.Monday, StartTime: "09:00", EndTime: "17:45"},
		},
	}
	uc := newTestUseCase(ps, nil)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 42, Date: monday})
	require.NoError(t, err)

	// 09:00-17:45 - 35 слотов по 15 минут
	assert.Len(t, resp.Slots, 35)
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[len(resp.Slots)-1].StartTime)

	require.NotEmpty(t, resp.Labels)
	assert.Equal(t, types.TimeString("09:00"), resp.Labels[0])
	assert.Equal(t, types.TimeString("17:30"), resp.Labels[len(resp.Labels)-1])
}

func TestExecuteDayWithoutSchedule(t *testing.T) {
	// 2026-03-03 - вторник, в шаблоне его нет
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(weekSchedule(), nil)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 42, Date: tuesday})
	require.NoError(t, err)

	// Отображаемое окно 08:00-18:00 - 40 слотов, все day_off
	assert.Len(t, resp.Slots, 40)
	assert.False(t, resp.Available)
	for _, slot := range resp.Slots {
		assert.Equal(t, availability.SlotDayOff, slot.State)
	}

	// Подписи строятся по отображаемому окну
	assert.Equal(t, types.TimeString("08:00"), resp.Labels[0])
}

func TestExecuteEmptySchedule(t *testing.T) {
	uc := newTestUseCase(domain.ProfessionalSchedule{ProfessionalID: 42}, nil)

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 42, Date: monday})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	for _, slot := range resp.Slots {
		assert.Equal(t, availability.SlotDayOff, slot.State)
	}
}

func TestExecuteCompanyScope(t *testing.T) {
	uc := newTestUseCase(weekSchedule(), nil)

	// Профессионал принадлежит компании 7
	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 42, CompanyID: 7, Date: monday})
	require.NoError(t, err)

	// Чужая компания - профессионал не найден
	_, err = uc.Execute(context.Background(), &Request{ProfessionalID: 42, CompanyID: 8, Date: monday})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecuteProfessionalNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{},
		&fakeStaffClient{err: staffClient.ErrProfessionalNotFound},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 42, Date: monday})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := newTestUseCase(weekSchedule(), nil)

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProfessionalID: 42})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
