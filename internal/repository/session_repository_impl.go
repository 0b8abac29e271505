package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicenter-portal/internal/domain/entity"
	domainRepo "medicenter-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// storedSession is the wire form of a session record. The upstream token is
// excluded from Session's public JSON, so it is carried explicitly here.
type storedSession struct {
	Session       entity.Session `json:"session"`
	UpstreamToken string         `json:"upstream_token"`
}

type sessionRepository struct {
	redisClient *redis.Client
	expiry      time.Duration
}

func NewSessionRepository(redisClient *redis.Client, expiry time.Duration) domainRepo.SessionRepository {
	return &sessionRepository{
		redisClient: redisClient,
		expiry:      expiry,
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id.String())
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(storedSession{
		Session:       *session,
		UpstreamToken: session.UpstreamToken,
	})
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, sessionKey(session.ID), payload, r.expiry).Err()
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	payload, err := r.redisClient.Get(ctx, sessionKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stored storedSession
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, err
	}

	session := stored.Session
	session.UpstreamToken = stored.UpstreamToken
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.redisClient.Del(ctx, sessionKey(id)).Err()
}
