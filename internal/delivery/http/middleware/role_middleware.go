package middleware

import (
	"net/http"

	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/pkg/response"
)

// RequireRole creates a middleware that checks if the session's role is one
// of the allowed roles. It runs after Authenticate, so the completion
// redirect has already had its chance; a role mismatch sends the caller to
// their own dashboard. This mirrors the upstream's authorization rules as a
// UX convenience only; the upstream re-enforces every rule itself.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok {
				response.RedirectError(w, http.StatusUnauthorized, "Session information not found", GateRedirectLogin.Redirect())
				return
			}

			if EvaluateGate(session, allowedRoles, true) == GateRedirectDashboard {
				response.RedirectError(w, http.StatusForbidden, "You don't have permission to access this resource", GateRedirectDashboard.Redirect())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}
