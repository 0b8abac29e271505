package gateway

import (
	"context"

	"medicenter-portal/internal/domain/entity"
)

// AccountFields is the user payload the upstream returns from auth endpoints.
// Age is a pointer because Google-originated accounts may omit it, which is
// the signal that profile completion is still required.
type AccountFields struct {
	ID           string
	Email        string
	DisplayName  string
	Role         string
	AuthProvider string
	Age          *int
	Phone        string
}

// AuthResult couples the upstream bearer token with the account it belongs to.
type AuthResult struct {
	Token string
	User  AccountFields
}

// RegisterInput carries the fields of a password registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Age      int
}

// BookingInput carries a booking submission.
type BookingInput struct {
	DoctorID         string
	SpecializationID string
	Date             string
	Time             string
	Notes            string
}

// AuthGateway is the upstream authentication surface.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	GoogleLogin(ctx context.Context, credential string) (*AuthResult, error)
	CompleteProfile(ctx context.Context, token string, age int, phone string) error
	CurrentUser(ctx context.Context, token string) (*AccountFields, error)
}

// PatientGateway is the upstream surface consumed by patient flows.
type PatientGateway interface {
	Doctors(ctx context.Context, token, specializationID string) ([]entity.Doctor, error)
	Specializations(ctx context.Context, token string) ([]entity.Specialization, error)
	AvailableSlots(ctx context.Context, token, doctorID, date string) (*entity.SlotAvailability, error)
	CreateAppointment(ctx context.Context, token string, input BookingInput) (*entity.Appointment, error)
	PatientAppointments(ctx context.Context, token string) ([]entity.Appointment, error)
	CancelPatientAppointment(ctx context.Context, token, appointmentID, reason string) error
}

// DoctorGateway is the upstream surface consumed by doctor flows.
type DoctorGateway interface {
	DoctorAppointments(ctx context.Context, token string) ([]entity.Appointment, error)
	CancelDoctorAppointment(ctx context.Context, token, appointmentID, reason string) error
	CompleteAppointment(ctx context.Context, token, appointmentID, prescription, notes string) error
	Schedule(ctx context.Context, token, date string) (*entity.ScheduleOverride, error)
	SaveSchedule(ctx context.Context, token string, override *entity.ScheduleOverride) error
}

// AdminGateway is the upstream surface consumed by admin flows.
type AdminGateway interface {
	Users(ctx context.Context, token string) ([]entity.User, error)
	UpdateUserRole(ctx context.Context, token, userID, role string) (*entity.User, error)
	AdminSpecializations(ctx context.Context, token string) ([]entity.Specialization, error)
	CreateSpecialization(ctx context.Context, token string, spec *entity.Specialization) (*entity.Specialization, error)
	UpdateSpecialization(ctx context.Context, token string, spec *entity.Specialization) (*entity.Specialization, error)
	DeleteSpecialization(ctx context.Context, token, specializationID string) error
}
