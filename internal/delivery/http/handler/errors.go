package handler

import (
	"errors"
	"net/http"

	"medicenter-portal/internal/delivery/http/middleware"
	"medicenter-portal/internal/upstream"
	"medicenter-portal/internal/usecase"
	"medicenter-portal/pkg/response"
)

// respondUsecaseError maps the error taxonomy onto HTTP responses:
// validation failures are 400s that never touched the upstream, an expired
// session is a 401 with a login redirect, upstream business errors keep
// their status and message verbatim, and transport failures become a 502
// with a generic message. Nothing is retried automatically.
func respondUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrSessionExpired):
		response.RedirectError(w, http.StatusUnauthorized, "Session has expired", middleware.GateRedirectLogin.Redirect())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, usecase.ErrInvalidCredentials.Error())
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		response.Conflict(w, usecase.ErrSubmissionInFlight.Error())
	case isValidationError(err):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, upstream.ErrUnavailable):
		response.BadGateway(w, "")
	default:
		if apiErr, ok := upstream.AsAPIError(err); ok {
			message := apiErr.Message
			if message == "" {
				message = "The request could not be completed"
			}
			response.Error(w, apiErr.StatusCode, message, nil)
			return
		}
		response.InternalServerError(w, "")
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		usecase.ErrInvalidDateFormat,
		usecase.ErrDateOutOfHorizon,
		usecase.ErrSlotUnavailable,
		usecase.ErrNoDraft,
		usecase.ErrIncompleteDraft,
		usecase.ErrEmptyCancellationReason,
		usecase.ErrEmptyDiagnosis,
		usecase.ErrNoMedications,
		usecase.ErrAgeOutOfRange,
		usecase.ErrProfileAlreadyComplete,
		usecase.ErrNoWorkingTimes,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
