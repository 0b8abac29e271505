package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/gateway"
	"medicenter-portal/internal/domain/repository"
	internalRepo "medicenter-portal/internal/repository"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRepos(t *testing.T) (repository.SessionRepository, repository.DraftRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sessionRepo := internalRepo.NewSessionRepository(client, time.Hour)
	draftRepo := internalRepo.NewDraftRepository(client, time.Hour, 30*time.Second)
	return sessionRepo, draftRepo
}

func newTestSession(role string, provider entity.AuthProvider, hasAge bool) *entity.Session {
	return &entity.Session{
		ID:            uuid.New(),
		UserID:        "user-1",
		Role:          role,
		DisplayName:   "Test User",
		Email:         "user@example.com",
		AuthProvider:  provider,
		HasAgeSet:     hasAge,
		UpstreamToken: "upstream-token",
		CreatedAt:     time.Now(),
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

var errGatewayBoom = errors.New("gateway boom")

// fakeAuthGateway records calls and plays back configured results.
type fakeAuthGateway struct {
	loginResult    *gateway.AuthResult
	loginErr       error
	registerResult *gateway.AuthResult
	registerErr    error
	googleResult   *gateway.AuthResult
	googleErr      error
	completeErr    error
	currentFields  *gateway.AccountFields
	currentErr     error

	completeCalls int
	currentCalls  int
}

func (f *fakeAuthGateway) Login(ctx context.Context, email, password string) (*gateway.AuthResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthGateway) Register(ctx context.Context, input gateway.RegisterInput) (*gateway.AuthResult, error) {
	return f.registerResult, f.registerErr
}

func (f *fakeAuthGateway) GoogleLogin(ctx context.Context, credential string) (*gateway.AuthResult, error) {
	return f.googleResult, f.googleErr
}

func (f *fakeAuthGateway) CompleteProfile(ctx context.Context, token string, age int, phone string) error {
	f.completeCalls++
	return f.completeErr
}

func (f *fakeAuthGateway) CurrentUser(ctx context.Context, token string) (*gateway.AccountFields, error) {
	f.currentCalls++
	return f.currentFields, f.currentErr
}

// fakePatientGateway records calls and plays back configured results.
type fakePatientGateway struct {
	doctors         []entity.Doctor
	specializations []entity.Specialization
	availability    *entity.SlotAvailability
	availabilityErr error
	createdResult   *entity.Appointment
	createErr       error
	appointments    []entity.Appointment
	appointmentsErr error
	cancelErr       error

	createCalls int
	cancelCalls int
}

func (f *fakePatientGateway) Doctors(ctx context.Context, token, specializationID string) ([]entity.Doctor, error) {
	return f.doctors, nil
}

func (f *fakePatientGateway) Specializations(ctx context.Context, token string) ([]entity.Specialization, error) {
	return f.specializations, nil
}

func (f *fakePatientGateway) AvailableSlots(ctx context.Context, token, doctorID, date string) (*entity.SlotAvailability, error) {
	return f.availability, f.availabilityErr
}

func (f *fakePatientGateway) CreateAppointment(ctx context.Context, token string, input gateway.BookingInput) (*entity.Appointment, error) {
	f.createCalls++
	return f.createdResult, f.createErr
}

func (f *fakePatientGateway) PatientAppointments(ctx context.Context, token string) ([]entity.Appointment, error) {
	return f.appointments, f.appointmentsErr
}

func (f *fakePatientGateway) CancelPatientAppointment(ctx context.Context, token, appointmentID, reason string) error {
	f.cancelCalls++
	return f.cancelErr
}

// fakeDoctorGateway records calls and plays back configured results.
type fakeDoctorGateway struct {
	appointments    []entity.Appointment
	appointmentsErr error
	cancelErr       error
	completeErr     error
	schedule        *entity.ScheduleOverride
	scheduleErr     error
	saveErr         error

	cancelCalls      int
	completeCalls    int
	lastPrescription string
	lastNotes        string
	savedOverride    *entity.ScheduleOverride
}

func (f *fakeDoctorGateway) DoctorAppointments(ctx context.Context, token string) ([]entity.Appointment, error) {
	return f.appointments, f.appointmentsErr
}

func (f *fakeDoctorGateway) CancelDoctorAppointment(ctx context.Context, token, appointmentID, reason string) error {
	f.cancelCalls++
	return f.cancelErr
}

func (f *fakeDoctorGateway) CompleteAppointment(ctx context.Context, token, appointmentID, prescription, notes string) error {
	f.completeCalls++
	f.lastPrescription = prescription
	f.lastNotes = notes
	return f.completeErr
}

func (f *fakeDoctorGateway) Schedule(ctx context.Context, token, date string) (*entity.ScheduleOverride, error) {
	return f.schedule, f.scheduleErr
}

func (f *fakeDoctorGateway) SaveSchedule(ctx context.Context, token string, override *entity.ScheduleOverride) error {
	f.savedOverride = override
	return f.saveErr
}
