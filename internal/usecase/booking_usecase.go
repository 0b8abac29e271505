package usecase

import (
	"context"
	"errors"

	"medicenter-portal/internal/converter"
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/gateway"
	"medicenter-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoDraft            = errors.New("no booking in progress")
	ErrIncompleteDraft    = errors.New("a date and time must be selected before booking")
	ErrSlotUnavailable    = errors.New("the selected time is not available")
	ErrSubmissionInFlight = errors.New("a booking submission is already in progress")
)

type BookingUsecase interface {
	GetDraft(ctx context.Context, session *entity.Session) (*dto.BookingDraftResponse, error)
	UpdateDraft(ctx context.Context, session *entity.Session, req *dto.UpdateDraftRequest) (*dto.BookingDraftResponse, error)
	ClearDraft(ctx context.Context, session *entity.Session) error
	Submit(ctx context.Context, session *entity.Session, req *dto.SubmitBookingRequest) (*dto.AppointmentResponse, error)
}

type bookingUsecase struct {
	log            *logrus.Logger
	patientGateway gateway.PatientGateway
	sessionRepo    repository.SessionRepository
	draftRepo      repository.DraftRepository
}

func NewBookingUsecase(
	log *logrus.Logger,
	patientGateway gateway.PatientGateway,
	sessionRepo repository.SessionRepository,
	draftRepo repository.DraftRepository,
) BookingUsecase {
	return &bookingUsecase{
		log:            log,
		patientGateway: patientGateway,
		sessionRepo:    sessionRepo,
		draftRepo:      draftRepo,
	}
}

func (u *bookingUsecase) GetDraft(ctx context.Context, session *entity.Session) (*dto.BookingDraftResponse, error) {
	draft, err := u.draftRepo.FindBySession(ctx, session.ID.String())
	if err != nil {
		u.log.Warnf("Failed to load booking draft: %+v", err)
		return nil, err
	}
	return converter.DraftToResponse(draft), nil
}

func (u *bookingUsecase) UpdateDraft(ctx context.Context, session *entity.Session, req *dto.UpdateDraftRequest) (*dto.BookingDraftResponse, error) {
	draft, err := u.draftRepo.FindBySession(ctx, session.ID.String())
	if err != nil {
		u.log.Warnf("Failed to load booking draft: %+v", err)
		return nil, err
	}
	if draft == nil {
		draft = &entity.BookingDraft{SessionID: session.ID.String()}
	}

	if req.DoctorID != nil && *req.DoctorID != draft.DoctorID {
		// A new doctor means a new slot grid: the whole selection resets.
		draft.DoctorID = *req.DoctorID
		draft.Date = ""
		draft.Time = ""
		draft.AvailableSlots = nil
	}
	if req.SpecializationID != nil {
		draft.SpecializationID = *req.SpecializationID
	}
	if req.Date != nil {
		draft.SetDate(*req.Date)
	}
	if req.Notes != nil {
		draft.Notes = *req.Notes
	}
	if req.Time != nil {
		// Only a slot that was selectable in the last fetched grid can
		// be chosen; booked or unknown slots are rejected here, with no
		// upstream traffic.
		if !draft.SlotAvailableInSnapshot(*req.Time) {
			return nil, ErrSlotUnavailable
		}
		draft.Time = *req.Time
	}

	if err := u.draftRepo.Save(ctx, draft); err != nil {
		u.log.Warnf("Failed to save booking draft: %+v", err)
		return nil, err
	}
	return converter.DraftToResponse(draft), nil
}

func (u *bookingUsecase) ClearDraft(ctx context.Context, session *entity.Session) error {
	return u.draftRepo.Delete(ctx, session.ID.String())
}

func (u *bookingUsecase) Submit(ctx context.Context, session *entity.Session, req *dto.SubmitBookingRequest) (*dto.AppointmentResponse, error) {
	draft, err := u.draftRepo.FindBySession(ctx, session.ID.String())
	if err != nil {
		u.log.Warnf("Failed to load booking draft: %+v", err)
		return nil, err
	}
	if draft == nil || draft.DoctorID == "" {
		return nil, ErrNoDraft
	}

	if req != nil && req.Notes != nil {
		draft.Notes = *req.Notes
	}

	if draft.Date == "" || draft.Time == "" {
		return nil, ErrIncompleteDraft
	}
	if !draft.SlotAvailableInSnapshot(draft.Time) {
		return nil, ErrSlotUnavailable
	}

	// One outstanding submission per dialog: a second submit while the
	// lock is held is rejected, never queued.
	acquired, err := u.draftRepo.AcquireSubmitLock(ctx, session.ID.String())
	if err != nil {
		u.log.Warnf("Failed to acquire submit lock: %+v", err)
		return nil, err
	}
	if !acquired {
		return nil, ErrSubmissionInFlight
	}
	defer func() {
		if err := u.draftRepo.ReleaseSubmitLock(ctx, session.ID.String()); err != nil {
			u.log.Warnf("Failed to release submit lock: %+v", err)
		}
	}()

	appointment, err := u.patientGateway.CreateAppointment(ctx, session.UpstreamToken, gateway.BookingInput{
		DoctorID:         draft.DoctorID,
		SpecializationID: draft.SpecializationID,
		Date:             draft.Date,
		Time:             draft.Time,
		Notes:            draft.Notes,
	})
	if err != nil {
		// The draft and its selection survive a failed submission so
		// the user can retry manually.
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}

	if err := u.draftRepo.Delete(ctx, session.ID.String()); err != nil {
		u.log.Warnf("Failed to clear booking draft after submission: %+v", err)
	}

	return converter.AppointmentToResponse(appointment, timeNow()), nil
}
