package usecase

import (
	"context"
	"errors"
	"strings"

	"medicenter-portal/internal/converter"
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/gateway"
	"medicenter-portal/internal/domain/repository"
	"medicenter-portal/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyCancellationReason = errors.New("a cancellation reason is required")
	ErrEmptyDiagnosis          = errors.New("a diagnosis is required")
	ErrNoMedications           = errors.New("at least one medication is required")
)

type AppointmentUsecase interface {
	PatientAppointments(ctx context.Context, session *entity.Session) (*dto.AppointmentListResponse, error)
	DoctorAppointments(ctx context.Context, session *entity.Session) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, session *entity.Session, appointmentID string, req *dto.CancelAppointmentRequest) error
	CompleteAppointment(ctx context.Context, session *entity.Session, appointmentID string, req *dto.CompleteAppointmentRequest) error
}

type appointmentUsecase struct {
	log            *logrus.Logger
	patientGateway gateway.PatientGateway
	doctorGateway  gateway.DoctorGateway
	sessionRepo    repository.SessionRepository
	prescriptions  *service.PrescriptionService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	patientGateway gateway.PatientGateway,
	doctorGateway gateway.DoctorGateway,
	sessionRepo repository.SessionRepository,
	prescriptions *service.PrescriptionService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:            log,
		patientGateway: patientGateway,
		doctorGateway:  doctorGateway,
		sessionRepo:    sessionRepo,
		prescriptions:  prescriptions,
	}
}

func (u *appointmentUsecase) PatientAppointments(ctx context.Context, session *entity.Session) (*dto.AppointmentListResponse, error) {
	appointments, err := u.patientGateway.PatientAppointments(ctx, session.UpstreamToken)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}
	return converter.AppointmentsToListResponse(appointments, timeNow()), nil
}

func (u *appointmentUsecase) DoctorAppointments(ctx context.Context, session *entity.Session) (*dto.AppointmentListResponse, error) {
	appointments, err := u.doctorGateway.DoctorAppointments(ctx, session.UpstreamToken)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}
	return converter.AppointmentsToListResponse(appointments, timeNow()), nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, session *entity.Session, appointmentID string, req *dto.CancelAppointmentRequest) error {
	// A whitespace-only reason never reaches the upstream.
	reason := strings.TrimSpace(req.CancellationReason)
	if reason == "" {
		return ErrEmptyCancellationReason
	}

	var err error
	if session.Role == entity.RoleDoctor {
		err = u.doctorGateway.CancelDoctorAppointment(ctx, session.UpstreamToken, appointmentID, reason)
	} else {
		err = u.patientGateway.CancelPatientAppointment(ctx, session.UpstreamToken, appointmentID, reason)
	}
	return invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
}

func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, session *entity.Session, appointmentID string, req *dto.CompleteAppointmentRequest) error {
	if strings.TrimSpace(req.Diagnosis) == "" {
		return ErrEmptyDiagnosis
	}

	hasMedication := false
	for _, medication := range req.Medications {
		if strings.TrimSpace(medication) != "" {
			hasMedication = true
			break
		}
	}
	if !hasMedication {
		return ErrNoMedications
	}

	prescription := u.prescriptions.Compose(req.Diagnosis, req.Medications, req.Notes, req.FollowUpDate)

	err := u.doctorGateway.CompleteAppointment(ctx, session.UpstreamToken, appointmentID, prescription, req.Notes)
	return invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
}
