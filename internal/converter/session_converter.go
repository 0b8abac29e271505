package converter

import (
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
)

// SessionToUserResponse converts a session to the user payload returned from
// auth endpoints. RequiresProfileCompletion is recomputed here on every
// conversion, never cached.
func SessionToUserResponse(session *entity.Session) dto.UserResponse {
	return dto.UserResponse{
		ID:                        session.UserID,
		Email:                     session.Email,
		DisplayName:               session.DisplayName,
		Role:                      session.Role,
		AuthProvider:              string(session.AuthProvider),
		RequiresProfileCompletion: session.RequiresProfileCompletion(),
	}
}

// SessionToResponse converts a session plus its freshly issued portal token.
func SessionToResponse(session *entity.Session, token string, expiresIn int64) *dto.SessionResponse {
	return &dto.SessionResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      SessionToUserResponse(session),
		CreatedAt: session.CreatedAt,
	}
}
