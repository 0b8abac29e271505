package usecase

import (
	"context"
	"errors"
	"time"

	"medicenter-portal/internal/converter"
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/gateway"
	"medicenter-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDateOutOfHorizon  = errors.New("date must be between tomorrow and the end of the booking horizon")
)

type AvailabilityUsecase interface {
	GetAvailableSlots(ctx context.Context, session *entity.Session, doctorID, date string) (*dto.SlotAvailabilityResponse, error)
}

type availabilityUsecase struct {
	log            *logrus.Logger
	patientGateway gateway.PatientGateway
	sessionRepo    repository.SessionRepository
	draftRepo      repository.DraftRepository
	horizonDays    int
}

func NewAvailabilityUsecase(
	log *logrus.Logger,
	patientGateway gateway.PatientGateway,
	sessionRepo repository.SessionRepository,
	draftRepo repository.DraftRepository,
	horizonDays int,
) AvailabilityUsecase {
	return &availabilityUsecase{
		log:            log,
		patientGateway: patientGateway,
		sessionRepo:    sessionRepo,
		draftRepo:      draftRepo,
		horizonDays:    horizonDays,
	}
}

// validateHorizon restricts the date picker window to [tomorrow, today +
// horizon]. This is a UX guard, not a security boundary: the upstream
// re-checks every booking date.
func (u *availabilityUsecase) validateHorizon(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrInvalidDateFormat
	}

	// The window is anchored on the local calendar day; truncating to a
	// UTC midnight would shift the bounds by a day on non-UTC hosts.
	now := timeNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	limit := today.AddDate(0, 0, u.horizonDays)

	if parsed.Before(tomorrow) || parsed.After(limit) {
		return ErrDateOutOfHorizon
	}
	return nil
}

func (u *availabilityUsecase) GetAvailableSlots(ctx context.Context, session *entity.Session, doctorID, date string) (*dto.SlotAvailabilityResponse, error) {
	if err := u.validateHorizon(date); err != nil {
		return nil, err
	}

	availability, err := u.patientGateway.AvailableSlots(ctx, session.UpstreamToken, doctorID, date)
	if err != nil {
		// A failed fetch must not leave a stale slot list looking
		// valid: drop the draft's snapshot before surfacing the error.
		u.clearStaleSnapshot(ctx, session.ID.String(), doctorID)
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}

	u.recordSnapshot(ctx, session.ID.String(), doctorID, date, availability)

	return converter.SlotAvailabilityToResponse(availability), nil
}

// recordSnapshot folds the fetch into the session's booking draft: a date
// switch clears the previously selected time, and the available set becomes
// the snapshot submissions are validated against.
func (u *availabilityUsecase) recordSnapshot(ctx context.Context, sessionID, doctorID, date string, availability *entity.SlotAvailability) {
	draft, err := u.draftRepo.FindBySession(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to load booking draft: %+v", err)
		return
	}
	if draft == nil {
		draft = &entity.BookingDraft{SessionID: sessionID, DoctorID: doctorID}
	}
	if draft.DoctorID != doctorID {
		// Slots were fetched for another doctor; leave the draft alone.
		return
	}

	draft.SetDate(date)
	draft.SetSnapshot(availability.AvailableSlots, time.Now())

	if err := u.draftRepo.Save(ctx, draft); err != nil {
		u.log.Warnf("Failed to save booking draft snapshot: %+v", err)
	}
}

func (u *availabilityUsecase) clearStaleSnapshot(ctx context.Context, sessionID, doctorID string) {
	draft, err := u.draftRepo.FindBySession(ctx, sessionID)
	if err != nil || draft == nil || draft.DoctorID != doctorID {
		return
	}

	draft.SetSnapshot(nil, time.Time{})
	draft.Time = ""

	if err := u.draftRepo.Save(ctx, draft); err != nil {
		u.log.Warnf("Failed to clear stale snapshot: %+v", err)
	}
}
