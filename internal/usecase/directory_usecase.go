package usecase

import (
	"context"

	"medicenter-portal/internal/converter"
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/gateway"
	"medicenter-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DirectoryUsecase serves the patient-facing doctor and specialization
// listings that feed the booking flow.
type DirectoryUsecase interface {
	Doctors(ctx context.Context, session *entity.Session, specializationID string) ([]dto.DoctorResponse, error)
	Specializations(ctx context.Context, session *entity.Session) ([]dto.SpecializationResponse, error)
}

type directoryUsecase struct {
	log            *logrus.Logger
	patientGateway gateway.PatientGateway
	sessionRepo    repository.SessionRepository
}

func NewDirectoryUsecase(
	log *logrus.Logger,
	patientGateway gateway.PatientGateway,
	sessionRepo repository.SessionRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		log:            log,
		patientGateway: patientGateway,
		sessionRepo:    sessionRepo,
	}
}

func (u *directoryUsecase) Doctors(ctx context.Context, session *entity.Session, specializationID string) ([]dto.DoctorResponse, error) {
	doctors, err := u.patientGateway.Doctors(ctx, session.UpstreamToken, specializationID)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}
	return converter.DoctorsToResponse(doctors), nil
}

func (u *directoryUsecase) Specializations(ctx context.Context, session *entity.Session) ([]dto.SpecializationResponse, error) {
	specs, err := u.patientGateway.Specializations(ctx, session.UpstreamToken)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}
	return converter.SpecializationsToResponse(specs), nil
}
