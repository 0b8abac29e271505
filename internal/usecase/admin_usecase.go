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

type AdminUsecase interface {
	Users(ctx context.Context, session *entity.Session) ([]dto.AdminUserResponse, error)
	UpdateUserRole(ctx context.Context, session *entity.Session, userID string, req *dto.UpdateUserRoleRequest) (*dto.AdminUserResponse, error)
	Specializations(ctx context.Context, session *entity.Session) ([]dto.SpecializationResponse, error)
	CreateSpecialization(ctx context.Context, session *entity.Session, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error)
	UpdateSpecialization(ctx context.Context, session *entity.Session, specializationID string, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error)
	DeleteSpecialization(ctx context.Context, session *entity.Session, specializationID string) error
}

type adminUsecase struct {
	log          *logrus.Logger
	adminGateway gateway.AdminGateway
	sessionRepo  repository.SessionRepository
}

func NewAdminUsecase(
	log *logrus.Logger,
	adminGateway gateway.AdminGateway,
	sessionRepo repository.SessionRepository,
) AdminUsecase {
	return &adminUsecase{
		log:          log,
		adminGateway: adminGateway,
		sessionRepo:  sessionRepo,
	}
}

func (u *adminUsecase) Users(ctx context.Context, session *entity.Session) ([]dto.AdminUserResponse, error) {
	users, err := u.adminGateway.Users(ctx, session.UpstreamToken)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}
	return converter.UsersToResponse(users), nil
}

// UpdateUserRole returns the updated user so callers can patch their table
// row in place. This is the single sanctioned local patch; every other
// mutation re-fetches the authoritative list.
func (u *adminUsecase) UpdateUserRole(ctx context.Context, session *entity.Session, userID string, req *dto.UpdateUserRoleRequest) (*dto.AdminUserResponse, error) {
	user, err := u.adminGateway.UpdateUserRole(ctx, session.UpstreamToken, userID, req.Role)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}

	response := dto.AdminUserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		IsActive:    user.IsActive,
	}
	return &response, nil
}

func (u *adminUsecase) Specializations(ctx context.Context, session *entity.Session) ([]dto.SpecializationResponse, error) {
	specs, err := u.adminGateway.AdminSpecializations(ctx, session.UpstreamToken)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}
	return converter.SpecializationsToResponse(specs), nil
}

func (u *adminUsecase) CreateSpecialization(ctx context.Context, session *entity.Session, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error) {
	created, err := u.adminGateway.CreateSpecialization(ctx, session.UpstreamToken, &entity.Specialization{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}

	response := dto.SpecializationResponse{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}
	return &response, nil
}

func (u *adminUsecase) UpdateSpecialization(ctx context.Context, session *entity.Session, specializationID string, req *dto.SpecializationRequest) (*dto.SpecializationResponse, error) {
	updated, err := u.adminGateway.UpdateSpecialization(ctx, session.UpstreamToken, &entity.Specialization{
		ID:          specializationID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}

	response := dto.SpecializationResponse{
		ID:          updated.ID,
		Name:        updated.Name,
		Description: updated.Description,
	}
	return &response, nil
}

func (u *adminUsecase) DeleteSpecialization(ctx context.Context, session *entity.Session, specializationID string) error {
	err := u.adminGateway.DeleteSpecialization(ctx, session.UpstreamToken, specializationID)
	return invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
}
