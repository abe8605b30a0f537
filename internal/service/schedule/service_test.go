package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

const professionalID int64 = 42

// Фейки зависимостей

type fakeScheduleRepo struct {
	schedule domain.ProfessionalSchedule
	getErr   error

	upserted []domain.WeekdaySchedule
}

func (f *fakeScheduleRepo) GetByProfessional(_ context.Context, _ int64) (domain.ProfessionalSchedule, error) {
	if f.getErr != nil {
		return domain.ProfessionalSchedule{}, f.getErr
	}
	return f.schedule, nil
}

func (f *fakeScheduleRepo) UpsertWeek(_ context.Context, professionalID int64, days []domain.WeekdaySchedule) error {
	f.upserted = days
	f.schedule = domain.ProfessionalSchedule{ProfessionalID: professionalID, Days: days}
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validWeekRequest() *models.UpsertWeekRequest {
	return &models.UpsertWeekRequest{
		UserID: professionalID,
		Days: []models.DaySchedule{
			{Weekday: 1, StartTime: "09:00", EndTime: "18:00", LunchStart: ptr.Ptr("12:00"), LunchEnd: ptr.Ptr("13:00")},
			{Weekday: 2, StartTime: "10:00", EndTime: "19:00"},
			{Weekday: 0, IsDayOff: true},
		},
	}
}

func newTestService(repo *fakeScheduleRepo, tx *fakeTxManager) *Service {
	return NewService(repo, tx, noopLogger{})
}

func TestUpsertWeekOK(t *testing.T) {
	repo := &fakeScheduleRepo{}
	tx := &fakeTxManager{}
	svc := newTestService(repo, tx)

	resp, err := svc.UpsertWeek(context.Background(), professionalID, validWeekRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Len(t, repo.upserted, 3)

	// Ответ читается из хранилища после замены
	assert.Equal(t, professionalID, resp.ProfessionalID)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "09:00", resp.Days[0].StartTime)
	require.NotNil(t, resp.Days[0].LunchStart)
	assert.Equal(t, "12:00", *resp.Days[0].LunchStart)

	// У выходного дня времена не сериализуются
	assert.True(t, resp.Days[2].IsDayOff)
	assert.Empty(t, resp.Days[2].StartTime)
}

func TestUpsertWeekAccessDenied(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeTxManager{})

	req := validWeekRequest()
	req.UserID = 99

	_, err := svc.UpsertWeek(context.Background(), professionalID, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpsertWeekInvalidSchedule(t *testing.T) {
	tests := []struct {
		name string
		days []models.DaySchedule
	}{
		{
			name: "start after end",
			days: []models.DaySchedule{{Weekday: 1, StartTime: "18:00", EndTime: "09:00"}},
		},
		{
			name: "unaligned window",
			days: []models.DaySchedule{{Weekday: 1, StartTime: "09:10", EndTime: "18:00"}},
		},
		{
			name: "lunch outside window",
			days: []models.DaySchedule{{Weekday: 1, StartTime: "09:00", EndTime: "12:00", LunchStart: ptr.Ptr("13:00"), LunchEnd: ptr.Ptr("14:00")}},
		},
		{
			name: "half lunch",
			days: []models.DaySchedule{{Weekday: 1, StartTime: "09:00", EndTime: "18:00", LunchStart: ptr.Ptr("12:00")}},
		},
		{
			name: "duplicate weekday",
			days: []models.DaySchedule{
				{Weekday: 1, StartTime: "09:00", EndTime: "18:00"},
				{Weekday: 1, StartTime: "10:00", EndTime: "19:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTxManager{}
			svc := newTestService(&fakeScheduleRepo{}, tx)

			_, err := svc.UpsertWeek(context.Background(), professionalID, &models.UpsertWeekRequest{
				UserID: professionalID,
				Days:   tt.days,
			})
			assert.ErrorIs(t, err, ErrInvalidSchedule)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestUpsertWeekInvalidInput(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, &fakeTxManager{})

	_, err := svc.UpsertWeek(context.Background(), professionalID, &models.UpsertWeekRequest{
		UserID: professionalID,
		Days:   []models.DaySchedule{{Weekday: 7, StartTime: "09:00", EndTime: "18:00"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpsertWeek(context.Background(), professionalID, &models.UpsertWeekRequest{
		UserID: professionalID,
		Days:   []models.DaySchedule{{Weekday: 1, StartTime: "9am", EndTime: "18:00"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWeekEmpty(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{schedule: domain.ProfessionalSchedule{ProfessionalID: professionalID}}, &fakeTxManager{})

	resp, err := svc.GetWeek(context.Background(), professionalID)
	require.NoError(t, err)
	assert.Equal(t, professionalID, resp.ProfessionalID)
	assert.Empty(t, resp.Days)
}
