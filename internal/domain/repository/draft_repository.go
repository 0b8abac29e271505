package repository

import (
	"context"

	"medicenter-portal/internal/domain/entity"
)

// DraftRepository stores per-session booking drafts and the single-flight
// submission lock. A missing draft is returned as (nil, nil).
type DraftRepository interface {
	Save(ctx context.Context, draft *entity.BookingDraft) error
	FindBySession(ctx context.Context, sessionID string) (*entity.BookingDraft, error)
	Delete(ctx context.Context, sessionID string) error

	// AcquireSubmitLock returns false when a submission is already in
	// flight for the session. The lock expires on its own so a crashed
	// submission cannot wedge the dialog.
	AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}
