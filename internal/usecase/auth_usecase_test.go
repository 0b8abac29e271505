package usecase

import (
	"context"
	"testing"
	"time"

	"medicenter-portal/config"
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/gateway"
	"medicenter-portal/internal/domain/repository"
	"medicenter-portal/internal/upstream"
	"medicenter-portal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUsecase(t *testing.T, gw *fakeAuthGateway) (AuthUsecase, repository.SessionRepository) {
	t.Helper()
	sessionRepo, _ := newTestRepos(t)
	tokenService := jwt.NewTokenService(config.SessionConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
	return NewAuthUsecase(testLogger(), gw, sessionRepo, tokenService), sessionRepo
}

func TestLoginCreatesSession(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult: &gateway.AuthResult{
			Token: "upstream-token",
			User: gateway.AccountFields{
				ID:          "u1",
				Email:       "ada@example.com",
				DisplayName: "Ada",
				Role:        entity.RolePatient,
				Age:         intPtr(30),
			},
		},
	}
	uc, _ := newAuthUsecase(t, gw)

	got, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.NotEmpty(t, got.Token)
	assert.Equal(t, "u1", got.User.ID)
	assert.Equal(t, entity.RolePatient, got.User.Role)
	assert.False(t, got.User.RequiresProfileCompletion)
}

func TestLoginMapsUnauthorizedToInvalidCredentials(t *testing.T) {
	gw := &fakeAuthGateway{loginErr: upstream.ErrUnauthorized}
	uc, _ := newAuthUsecase(t, gw)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	gw := &fakeAuthGateway{
		loginResult: &gateway.AuthResult{
			Token: "t",
			User:  gateway.AccountFields{ID: "u1", Role: "superuser"},
		},
	}
	uc, _ := newAuthUsecase(t, gw)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "x"})
	require.ErrorIs(t, err, ErrUnknownRole)
}

func TestGoogleLoginWithoutAgeRequiresCompletion(t *testing.T) {
	gw := &fakeAuthGateway{
		googleResult: &gateway.AuthResult{
			Token: "t",
			User:  gateway.AccountFields{ID: "u1", Role: entity.RolePatient, Age: nil},
		},
	}
	uc, _ := newAuthUsecase(t, gw)

	got, err := uc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{Credential: "cred"})
	require.NoError(t, err)
	assert.True(t, got.User.RequiresProfileCompletion)
	assert.Equal(t, string(entity.AuthProviderGoogle), got.User.AuthProvider)
}

func TestGoogleLoginWithAgeNeedsNoCompletion(t *testing.T) {
	gw := &fakeAuthGateway{
		googleResult: &gateway.AuthResult{
			Token: "t",
			User:  gateway.AccountFields{ID: "u1", Role: entity.RolePatient, Age: intPtr(42)},
		},
	}
	uc, _ := newAuthUsecase(t, gw)

	got, err := uc.GoogleLogin(context.Background(), &dto.GoogleLoginRequest{Credential: "cred"})
	require.NoError(t, err)
	assert.False(t, got.User.RequiresProfileCompletion)
}

func TestCompleteProfileRejectsWhenAlreadyComplete(t *testing.T) {
	gw := &fakeAuthGateway{}
	uc, _ := newAuthUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	_, err := uc.CompleteProfile(context.Background(), session, &dto.CompleteProfileRequest{Age: 30})
	require.ErrorIs(t, err, ErrProfileAlreadyComplete)
	assert.Zero(t, gw.completeCalls)
}

func TestCompleteProfileRejectsOutOfRangeAgeLocally(t *testing.T) {
	gw := &fakeAuthGateway{}
	uc, _ := newAuthUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderGoogle, false)

	for _, age := range []int{0, -5, 151, 200} {
		_, err := uc.CompleteProfile(context.Background(), session, &dto.CompleteProfileRequest{Age: age})
		require.ErrorIs(t, err, ErrAgeOutOfRange)
	}
	assert.Zero(t, gw.completeCalls, "an out-of-range age must never reach the upstream")
}

func TestCompleteProfileMarksSessionComplete(t *testing.T) {
	gw := &fakeAuthGateway{}
	uc, sessionRepo := newAuthUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderGoogle, false)
	require.NoError(t, sessionRepo.Save(context.Background(), session))

	got, err := uc.CompleteProfile(context.Background(), session, &dto.CompleteProfileRequest{Age: 30, Phone: "5551234567"})
	require.NoError(t, err)
	assert.Equal(t, 1, gw.completeCalls)
	assert.False(t, got.RequiresProfileCompletion)

	stored, err := sessionRepo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.HasAgeSet)
}

func TestCurrentUserNeverRevertsCompletion(t *testing.T) {
	// A later /auth/me response that omits the age must not resurrect the
	// completion requirement.
	gw := &fakeAuthGateway{
		currentFields: &gateway.AccountFields{ID: "u1", Role: entity.RolePatient, Age: nil},
	}
	uc, sessionRepo := newAuthUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderGoogle, true)
	require.NoError(t, sessionRepo.Save(context.Background(), session))

	got, err := uc.CurrentUser(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, got.RequiresProfileCompletion)
}

func TestCurrentUserUnauthorizedDestroysSession(t *testing.T) {
	gw := &fakeAuthGateway{currentErr: upstream.ErrUnauthorized}
	uc, sessionRepo := newAuthUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)
	require.NoError(t, sessionRepo.Save(context.Background(), session))

	_, err := uc.CurrentUser(context.Background(), session)
	require.ErrorIs(t, err, ErrSessionExpired)

	stored, err := sessionRepo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Nil(t, stored, "the session record must be gone after an upstream 401")
}

func TestLogoutDeletesSession(t *testing.T) {
	gw := &fakeAuthGateway{}
	uc, sessionRepo := newAuthUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)
	require.NoError(t, sessionRepo.Save(context.Background(), session))

	require.NoError(t, uc.Logout(context.Background(), session))

	stored, err := sessionRepo.FindByID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
