package usecase

import (
	"context"
	"errors"
	"time"

	"medicenter-portal/internal/converter"
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/gateway"
	"medicenter-portal/internal/domain/repository"
	"medicenter-portal/internal/upstream"
	"medicenter-portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrProfileAlreadyComplete = errors.New("profile is already complete")
	ErrAgeOutOfRange          = errors.New("age must be between 1 and 150")
	ErrUnknownRole            = errors.New("upstream reported an unknown role")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error)
	GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.SessionResponse, error)
	CompleteProfile(ctx context.Context, session *entity.Session, req *dto.CompleteProfileRequest) (*dto.UserResponse, error)
	CurrentUser(ctx context.Context, session *entity.Session) (*dto.UserResponse, error)
	Logout(ctx context.Context, session *entity.Session) error
}

type authUsecase struct {
	log          *logrus.Logger
	authGateway  gateway.AuthGateway
	sessionRepo  repository.SessionRepository
	tokenService *jwt.TokenService
}

func NewAuthUsecase(
	log *logrus.Logger,
	authGateway gateway.AuthGateway,
	sessionRepo repository.SessionRepository,
	tokenService *jwt.TokenService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		authGateway:  authGateway,
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
	}
}

// createSession stores a session for a fresh upstream auth result and issues
// the portal token for it. The role is taken verbatim from the upstream;
// an unrecognized role is rejected rather than guessed at.
func (u *authUsecase) createSession(ctx context.Context, result *gateway.AuthResult, provider entity.AuthProvider) (*dto.SessionResponse, error) {
	if !entity.IsValidRole(result.User.Role) {
		u.log.Warnf("Upstream returned unknown role %q for user %s", result.User.Role, result.User.ID)
		return nil, ErrUnknownRole
	}

	session := &entity.Session{
		ID:            uuid.New(),
		UserID:        result.User.ID,
		Role:          result.User.Role,
		DisplayName:   result.User.DisplayName,
		Email:         result.User.Email,
		AuthProvider:  provider,
		HasAgeSet:     result.User.Age != nil,
		UpstreamToken: result.Token,
		CreatedAt:     time.Now(),
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}

	token, err := u.tokenService.GenerateSessionToken(session.ID, session.UserID, session.Role)
	if err != nil {
		u.log.Warnf("Failed to sign session token: %+v", err)
		return nil, err
	}

	expiresIn := int64(u.tokenService.GetExpiry().Seconds())
	return converter.SessionToResponse(session, token, expiresIn), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	result, err := u.authGateway.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return u.createSession(ctx, result, entity.AuthProviderPassword)
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	result, err := u.authGateway.Register(ctx, gateway.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Age:      req.Age,
	})
	if err != nil {
		return nil, err
	}
	return u.createSession(ctx, result, entity.AuthProviderPassword)
}

func (u *authUsecase) GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.SessionResponse, error) {
	result, err := u.authGateway.GoogleLogin(ctx, req.Credential)
	if err != nil {
		return nil, err
	}
	return u.createSession(ctx, result, entity.AuthProviderGoogle)
}

func (u *authUsecase) CompleteProfile(ctx context.Context, session *entity.Session, req *dto.CompleteProfileRequest) (*dto.UserResponse, error) {
	if !session.RequiresProfileCompletion() {
		return nil, ErrProfileAlreadyComplete
	}

	// Checked before any upstream traffic: an out-of-range age never
	// leaves the gateway.
	if req.Age < 1 || req.Age > 150 {
		return nil, ErrAgeOutOfRange
	}

	if err := u.authGateway.CompleteProfile(ctx, session.UpstreamToken, req.Age, req.Phone); err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}

	session.HasAgeSet = true
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to update session after profile completion: %+v", err)
		return nil, err
	}

	response := converter.SessionToUserResponse(session)
	return &response, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, session *entity.Session) (*dto.UserResponse, error) {
	fields, err := u.authGateway.CurrentUser(ctx, session.UpstreamToken)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}

	if fields.DisplayName != "" {
		session.DisplayName = fields.DisplayName
	}
	if entity.IsValidRole(fields.Role) {
		session.Role = fields.Role
	}
	// Completion never reverts without a fresh login, even if a later
	// /auth/me response omits the age field.
	session.HasAgeSet = session.HasAgeSet || fields.Age != nil

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to refresh session: %+v", err)
		return nil, err
	}

	response := converter.SessionToUserResponse(session)
	return &response, nil
}

func (u *authUsecase) Logout(ctx context.Context, session *entity.Session) error {
	if err := u.sessionRepo.Delete(ctx, session.ID); err != nil {
		u.log.Warnf("Failed to delete session on logout: %+v", err)
		return err
	}
	return nil
}
