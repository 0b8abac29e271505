package middleware

import (
	"context"
	"net/http"
	"strings"

	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/repository"
	"medicenter-portal/pkg/jwt"
	"medicenter-portal/pkg/response"
)

type contextKey string

const SessionKey contextKey = "session"

// completionExemptPaths stay reachable while a session still requires
// profile completion; everything else redirects to the completion route.
var completionExemptPaths = map[string]struct{}{
	"/api/v1/auth/complete-profile": {},
	"/api/v1/auth/me":               {},
	"/api/v1/auth/logout":           {},
}

type AuthMiddleware struct {
	tokenService *jwt.TokenService
	sessionRepo  repository.SessionRepository
}

func NewAuthMiddleware(tokenService *jwt.TokenService, sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		sessionRepo:  sessionRepo,
	}
}

// Authenticate resolves the portal token to a live session record and applies
// the login and profile-completion gate rules. Role checks are layered on by
// RequireRole so that the completion redirect always wins over a role denial.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.RedirectError(w, http.StatusUnauthorized, "Authorization header is required", GateRedirectLogin.Redirect())
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RedirectError(w, http.StatusUnauthorized, "Invalid authorization header format", GateRedirectLogin.Redirect())
			return
		}

		claims, err := m.tokenService.ValidateToken(parts[1])
		if err != nil {
			response.RedirectError(w, http.StatusUnauthorized, "Invalid or expired token", GateRedirectLogin.Redirect())
			return
		}

		// The token alone proves nothing: the session record must still
		// exist. A record destroyed by logout or an upstream 401 makes
		// every outstanding portal token worthless at once.
		session, err := m.sessionRepo.FindByID(r.Context(), claims.SessionID)
		if err != nil {
			response.InternalServerError(w, "Failed to load session")
			return
		}

		_, onCompletionRoute := completionExemptPaths[r.URL.Path]
		switch EvaluateGate(session, nil, onCompletionRoute) {
		case GateRedirectLogin:
			response.RedirectError(w, http.StatusUnauthorized, "Session has expired", GateRedirectLogin.Redirect())
			return
		case GateRedirectCompleteProfile:
			response.RedirectError(w, http.StatusForbidden, "Profile completion is required", GateRedirectCompleteProfile.Redirect())
			return
		}

		ctx := context.WithValue(r.Context(), SessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionFromContext extracts the session placed by Authenticate.
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok
}
