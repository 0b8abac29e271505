package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicenter-portal/internal/domain/entity"
	domainRepo "medicenter-portal/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type draftRepository struct {
	redisClient *redis.Client
	draftTTL    time.Duration
	lockTTL     time.Duration
}

func NewDraftRepository(redisClient *redis.Client, draftTTL, lockTTL time.Duration) domainRepo.DraftRepository {
	return &draftRepository{
		redisClient: redisClient,
		draftTTL:    draftTTL,
		lockTTL:     lockTTL,
	}
}

func draftKey(sessionID string) string {
	return fmt.Sprintf("booking_draft:%s", sessionID)
}

func submitLockKey(sessionID string) string {
	return fmt.Sprintf("booking_submit:%s", sessionID)
}

func (r *draftRepository) Save(ctx context.Context, draft *entity.BookingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, draftKey(draft.SessionID), payload, r.draftTTL).Err()
}

func (r *draftRepository) FindBySession(ctx context.Context, sessionID string) (*entity.BookingDraft, error) {
	payload, err := r.redisClient.Get(ctx, draftKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var draft entity.BookingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, sessionID string) error {
	return r.redisClient.Del(ctx, draftKey(sessionID)).Err()
}

func (r *draftRepository) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	return r.redisClient.SetNX(ctx, submitLockKey(sessionID), "pending", r.lockTTL).Result()
}

func (r *draftRepository) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return r.redisClient.Del(ctx, submitLockKey(sessionID)).Err()
}
