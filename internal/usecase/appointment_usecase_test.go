package usecase

import (
	"context"
	"testing"

	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/service"
	"medicenter-portal/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentUsecase(t *testing.T, patient *fakePatientGateway, doctor *fakeDoctorGateway) AppointmentUsecase {
	t.Helper()
	sessionRepo, _ := newTestRepos(t)
	return NewAppointmentUsecase(testLogger(), patient, doctor, sessionRepo, service.NewPrescriptionService())
}

func TestCancelRejectsBlankReasonLocally(t *testing.T) {
	patient := &fakePatientGateway{}
	doctor := &fakeDoctorGateway{}
	uc := newAppointmentUsecase(t, patient, doctor)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	for _, reason := range []string{"", "   ", "\t\n"} {
		err := uc.CancelAppointment(context.Background(), session, "a1", &dto.CancelAppointmentRequest{CancellationReason: reason})
		require.ErrorIs(t, err, ErrEmptyCancellationReason)
	}
	assert.Zero(t, patient.cancelCalls, "a blank reason must never reach the upstream")
	assert.Zero(t, doctor.cancelCalls)
}

func TestCancelRoutesByRole(t *testing.T) {
	patient := &fakePatientGateway{}
	doctor := &fakeDoctorGateway{}
	uc := newAppointmentUsecase(t, patient, doctor)

	patientSession := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)
	require.NoError(t, uc.CancelAppointment(context.Background(), patientSession, "a1",
		&dto.CancelAppointmentRequest{CancellationReason: "can't make it"}))
	assert.Equal(t, 1, patient.cancelCalls)
	assert.Zero(t, doctor.cancelCalls)

	doctorSession := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)
	require.NoError(t, uc.CancelAppointment(context.Background(), doctorSession, "a1",
		&dto.CancelAppointmentRequest{CancellationReason: "emergency"}))
	assert.Equal(t, 1, doctor.cancelCalls)
}

func TestCompleteRejectsEmptyDiagnosis(t *testing.T) {
	doctor := &fakeDoctorGateway{}
	uc := newAppointmentUsecase(t, &fakePatientGateway{}, doctor)
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)

	err := uc.CompleteAppointment(context.Background(), session, "a1", &dto.CompleteAppointmentRequest{
		Diagnosis:   "  ",
		Medications: []string{"Rest"},
	})
	require.ErrorIs(t, err, ErrEmptyDiagnosis)
	assert.Zero(t, doctor.completeCalls)
}

func TestCompleteRejectsAllBlankMedications(t *testing.T) {
	doctor := &fakeDoctorGateway{}
	uc := newAppointmentUsecase(t, &fakePatientGateway{}, doctor)
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)

	err := uc.CompleteAppointment(context.Background(), session, "a1", &dto.CompleteAppointmentRequest{
		Diagnosis:   "Flu",
		Medications: []string{"", "   "},
	})
	require.ErrorIs(t, err, ErrNoMedications)
	assert.Zero(t, doctor.completeCalls)
}

func TestCompleteSubmitsComposedPrescription(t *testing.T) {
	doctor := &fakeDoctorGateway{}
	uc := newAppointmentUsecase(t, &fakePatientGateway{}, doctor)
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)

	err := uc.CompleteAppointment(context.Background(), session, "a1", &dto.CompleteAppointmentRequest{
		Diagnosis:    "Flu",
		Medications:  []string{"Paracetamol", "Rest"},
		Notes:        "Stay hydrated",
		FollowUpDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, doctor.completeCalls)
	assert.Contains(t, doctor.lastPrescription, "Diagnosis: Flu")
	assert.Contains(t, doctor.lastPrescription, "1. Paracetamol")
	assert.Contains(t, doctor.lastPrescription, "2. Rest")
	assert.Contains(t, doctor.lastPrescription, "Follow-up: 2026-09-15")
	assert.Equal(t, "Stay hydrated", doctor.lastNotes)
}

func TestPatientAppointmentsMarksPastDue(t *testing.T) {
	patient := &fakePatientGateway{
		appointments: []entity.Appointment{
			{ID: "a1", Date: "2020-01-01", Time: "09:00", Status: entity.AppointmentStatusScheduled},
			{ID: "a2", Date: "2020-01-01", Time: "09:00", Status: entity.AppointmentStatusCompleted},
			{ID: "a3", Date: "2099-01-01", Time: "09:00", Status: entity.AppointmentStatusScheduled},
		},
	}
	uc := newAppointmentUsecase(t, patient, &fakeDoctorGateway{})
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	got, err := uc.PatientAppointments(context.Background(), session)
	require.NoError(t, err)
	require.Equal(t, 3, got.Total)

	assert.True(t, got.Appointments[0].PastDue)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), got.Appointments[0].Status,
		"past due never changes the status itself")
	assert.False(t, got.Appointments[1].PastDue, "completed appointments are never past due")
	assert.False(t, got.Appointments[2].PastDue)
}

func TestDoctorAppointmentsUnauthorizedDestroysSession(t *testing.T) {
	doctor := &fakeDoctorGateway{appointmentsErr: upstream.ErrUnauthorized}
	sessionRepo, _ := newTestRepos(t)
	uc := NewAppointmentUsecase(testLogger(), &fakePatientGateway{}, doctor, sessionRepo, service.NewPrescriptionService())
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)
	require.NoError(t, sessionRepo.Save(context.Background(), session))

	_, err := uc.DoctorAppointments(context.Background(), session)
	require.ErrorIs(t, err, ErrSessionExpired)

	stored, err := sessionRepo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
