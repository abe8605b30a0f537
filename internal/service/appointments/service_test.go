package appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	clientID       int64 = 10
	professionalID int64 = 42
	strangerID     int64 = 99
)

// Фейковый репозиторий записей

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	getErr      error

	cancelledID     int64
	cancelledReason string
	updatedStatus   domain.AppointmentStatus
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeAppointmentRepo) GetByClientID(_ context.Context, _ int64, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appointment}, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appointment}, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.updatedStatus = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:             1,
		UID:            uuid.New(),
		CompanyID:      7,
		ProfessionalID: professionalID,
		ClientID:       clientID,
		Date:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "10:45",
		Status:         status,
	}
}

func newTestService(repo *fakeAppointmentRepo) *Service {
	return NewService(repo, noopLogger{})
}

// GetByID

func TestGetByIDByParticipants(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)})

	for _, userID := range []int64{clientID, professionalID} {
		resp, err := svc.GetByID(context.Background(), 1, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	}
}

func TestGetByIDAccessDenied(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)})

	_, err := svc.GetByID(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{getErr: apptRepo.ErrAppointmentNotFound})

	_, err := svc.GetByID(context.Background(), 1, clientID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

// Cancel

func TestCancelByClient(t *testing.T) {
	repo := &fakeAppointmentRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		UserID:             clientID,
		CancellationReason: "не смогу прийти",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "не смогу прийти", repo.cancelledReason)
}

func TestCancelByStrangerDenied(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: strangerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancelNotCancellable(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		svc := newTestService(&fakeAppointmentRepo{appointment: testAppointment(status)})

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: clientID})
		assert.ErrorIs(t, err, ErrCannotCancel, "status=%s", status)
	}
}

func TestCancelReasonTooLong(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		UserID:             clientID,
		CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLen+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// UpdateStatus

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      string
		wantErr error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "pending to completed", from: domain.StatusPending, to: "completed"},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "confirmed to pending", from: domain.StatusConfirmed, to: "pending", wantErr: ErrInvalidTransition},
		{name: "completed is final", from: domain.StatusCompleted, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "cancelled is final", from: domain.StatusCancelled, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "cancel goes through Cancel", from: domain.StatusPending, to: "cancelled", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "done", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{appointment: testAppointment(tt.from)}
			svc := newTestService(repo)

			err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
				UserID: professionalID,
				Status: tt.to,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.AppointmentStatus(tt.to), repo.updatedStatus)
		})
	}
}

func TestUpdateStatusClientDenied(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: clientID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// Списки

func TestGetProfessionalAppointmentsSelfOnly(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)})

	resp, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
		UserID:         professionalID,
		ProfessionalID: professionalID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	_, err = svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
		UserID:         strangerID,
		ProfessionalID: professionalID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetClientAppointmentsInvalidStatus(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appointment: testAppointment(domain.StatusPending)})

	bad := "done"
	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: clientID,
		Status:   &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
