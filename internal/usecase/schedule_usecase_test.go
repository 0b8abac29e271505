package usecase

import (
	"context"
	"testing"

	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleUsecase(t *testing.T, gw *fakeDoctorGateway) ScheduleUsecase {
	t.Helper()
	sessionRepo, _ := newTestRepos(t)
	return NewScheduleUsecase(testLogger(), gw, sessionRepo)
}

func TestGetScheduleRejectsBadDate(t *testing.T) {
	uc := newScheduleUsecase(t, &fakeDoctorGateway{})
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)

	_, err := uc.GetSchedule(context.Background(), session, "not-a-date")
	require.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestGetScheduleReturnsOverride(t *testing.T) {
	gw := &fakeDoctorGateway{
		schedule: &entity.ScheduleOverride{
			DoctorID:       "doc-1",
			Date:           "2026-09-01",
			IsWorkingDay:   false,
			AvailableTimes: []string{},
		},
	}
	uc := newScheduleUsecase(t, gw)
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)

	got, err := uc.GetSchedule(context.Background(), session, "2026-09-01")
	require.NoError(t, err)
	assert.False(t, got.IsWorkingDay)
	assert.Empty(t, got.AvailableTimes)
}

func TestSaveScheduleRequiresTimesOnWorkingDay(t *testing.T) {
	gw := &fakeDoctorGateway{}
	uc := newScheduleUsecase(t, gw)
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)

	_, err := uc.SaveSchedule(context.Background(), session, &dto.SaveScheduleRequest{
		Date:         "2026-09-01",
		IsWorkingDay: true,
	})
	require.ErrorIs(t, err, ErrNoWorkingTimes)
	assert.Nil(t, gw.savedOverride)
}

func TestSaveScheduleNonWorkingDayDropsTimes(t *testing.T) {
	gw := &fakeDoctorGateway{}
	uc := newScheduleUsecase(t, gw)
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)

	got, err := uc.SaveSchedule(context.Background(), session, &dto.SaveScheduleRequest{
		Date:           "2026-09-01",
		IsWorkingDay:   false,
		AvailableTimes: []string{"09:00"},
	})
	require.NoError(t, err)
	assert.Empty(t, got.AvailableTimes)
	require.NotNil(t, gw.savedOverride)
	assert.Empty(t, gw.savedOverride.AvailableTimes)
}

func TestSaveScheduleWorkingDay(t *testing.T) {
	gw := &fakeDoctorGateway{}
	uc := newScheduleUsecase(t, gw)
	session := newTestSession(entity.RoleDoctor, entity.AuthProviderPassword, true)

	got, err := uc.SaveSchedule(context.Background(), session, &dto.SaveScheduleRequest{
		Date:           "2026-09-01",
		IsWorkingDay:   true,
		AvailableTimes: []string{"09:00", "09:30"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, got.AvailableTimes)
	require.NotNil(t, gw.savedOverride)
	assert.Equal(t, session.UserID, gw.savedOverride.DoctorID)
}
