package usecase

import (
	"context"
	"errors"
	"time"

	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/repository"
	"medicenter-portal/internal/upstream"

	"github.com/sirupsen/logrus"
)

var timeNow = time.Now

// ErrSessionExpired is returned whenever the upstream rejected the session's
// credential token. By the time a caller sees it the session record has
// already been destroyed, regardless of which operation hit the 401.
var ErrSessionExpired = errors.New("session is no longer valid")

// invalidateOnUnauthorized enforces the global deauthentication rule: an
// upstream 401 from any endpoint destroys the session before the error is
// surfaced, so no later call can read the stale token.
func invalidateOnUnauthorized(ctx context.Context, log *logrus.Logger, sessions repository.SessionRepository, session *entity.Session, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, upstream.ErrUnauthorized) {
		if delErr := sessions.Delete(ctx, session.ID); delErr != nil {
			log.Warnf("Failed to delete session after upstream 401: %+v", delErr)
		}
		return ErrSessionExpired
	}
	return err
}
