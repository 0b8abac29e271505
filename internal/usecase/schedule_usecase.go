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

var ErrNoWorkingTimes = errors.New("a working day requires at least one available time")

type ScheduleUsecase interface {
	GetSchedule(ctx context.Context, session *entity.Session, date string) (*dto.ScheduleResponse, error)
	SaveSchedule(ctx context.Context, session *entity.Session, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error)
}

type scheduleUsecase struct {
	log           *logrus.Logger
	doctorGateway gateway.DoctorGateway
	sessionRepo   repository.SessionRepository
}

func NewScheduleUsecase(
	log *logrus.Logger,
	doctorGateway gateway.DoctorGateway,
	sessionRepo repository.SessionRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		log:           log,
		doctorGateway: doctorGateway,
		sessionRepo:   sessionRepo,
	}
}

func (u *scheduleUsecase) GetSchedule(ctx context.Context, session *entity.Session, date string) (*dto.ScheduleResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDateFormat
	}

	override, err := u.doctorGateway.Schedule(ctx, session.UpstreamToken, date)
	if err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}
	return converter.ScheduleToResponse(override), nil
}

func (u *scheduleUsecase) SaveSchedule(ctx context.Context, session *entity.Session, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error) {
	if req.IsWorkingDay && len(req.AvailableTimes) == 0 {
		return nil, ErrNoWorkingTimes
	}

	times := req.AvailableTimes
	if !req.IsWorkingDay {
		times = []string{}
	}

	override := &entity.ScheduleOverride{
		DoctorID:       session.UserID,
		Date:           req.Date,
		IsWorkingDay:   req.IsWorkingDay,
		AvailableTimes: times,
	}

	if err := u.doctorGateway.SaveSchedule(ctx, session.UpstreamToken, override); err != nil {
		return nil, invalidateOnUnauthorized(ctx, u.log, u.sessionRepo, session, err)
	}
	return converter.ScheduleToResponse(override), nil
}
