package repository

import (
	"context"

	"medicenter-portal/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionRepository stores the gateway's ephemeral session records. Records
// expire with the configured session TTL; a missing record is returned as
// (nil, nil).
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
