package usecase

import (
	"context"
	"testing"
	"time"

	"medicenter-portal/internal/domain/entity"
	"medicenter-portal/internal/domain/repository"
	"medicenter-portal/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailabilityUsecase(t *testing.T, gw *fakePatientGateway) (AvailabilityUsecase, repository.SessionRepository, repository.DraftRepository) {
	t.Helper()
	sessionRepo, draftRepo := newTestRepos(t)
	return NewAvailabilityUsecase(testLogger(), gw, sessionRepo, draftRepo, 30), sessionRepo, draftRepo
}

func dateFromToday(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestGetAvailableSlotsRejectsBadDate(t *testing.T) {
	uc, _, _ := newAvailabilityUsecase(t, &fakePatientGateway{})
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	for _, date := range []string{"09/01/2026", "2026-9-1", "tomorrow", ""} {
		_, err := uc.GetAvailableSlots(context.Background(), session, "d1", date)
		require.ErrorIs(t, err, ErrInvalidDateFormat, "date %q", date)
	}
}

func TestGetAvailableSlotsEnforcesHorizon(t *testing.T) {
	uc, _, _ := newAvailabilityUsecase(t, &fakePatientGateway{})
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	for _, days := range []int{0, -1, 31} {
		_, err := uc.GetAvailableSlots(context.Background(), session, "d1", dateFromToday(days))
		require.ErrorIs(t, err, ErrDateOutOfHorizon, "offset %d days", days)
	}
}

func TestGetAvailableSlotsHorizonUsesCalendarDay(t *testing.T) {
	restore := timeNow
	t.Cleanup(func() { timeNow = restore })

	// Local wall times whose UTC instant falls on a different calendar
	// day. Anchoring the window on a UTC truncation instead of the local
	// day shifts the bounds by one for exactly these cases.
	for _, tc := range []struct {
		name string
		now  time.Time
	}{
		{"morning east of utc", time.Date(2026, time.August, 29, 8, 0, 0, 0, time.FixedZone("UTC+14", 14*3600))},
		{"evening west of utc", time.Date(2026, time.August, 29, 22, 0, 0, 0, time.FixedZone("UTC-12", -12*3600))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			timeNow = func() time.Time { return tc.now }

			gw := &fakePatientGateway{
				availability: entity.NewSlotAvailability("d1", "2026-08-30", []string{"09:00"}, nil),
			}
			uc, _, _ := newAvailabilityUsecase(t, gw)
			session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

			_, err := uc.GetAvailableSlots(context.Background(), session, "d1", "2026-08-29")
			require.ErrorIs(t, err, ErrDateOutOfHorizon, "the current local day is never bookable")

			_, err = uc.GetAvailableSlots(context.Background(), session, "d1", "2026-08-30")
			require.NoError(t, err, "the next local day is always bookable")
		})
	}
}

func TestGetAvailableSlotsAcceptsHorizonBounds(t *testing.T) {
	gw := &fakePatientGateway{
		availability: entity.NewSlotAvailability("d1", dateFromToday(1), []string{"09:00"}, nil),
	}
	uc, _, _ := newAvailabilityUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	for _, days := range []int{1, 30} {
		_, err := uc.GetAvailableSlots(context.Background(), session, "d1", dateFromToday(days))
		require.NoError(t, err, "offset %d days", days)
	}
}

func TestGetAvailableSlotsRecordsSnapshot(t *testing.T) {
	date := dateFromToday(3)
	gw := &fakePatientGateway{
		availability: entity.NewSlotAvailability("d1", date, []string{"09:00", "10:00"}, []string{"10:00"}),
	}
	uc, _, draftRepo := newAvailabilityUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	got, err := uc.GetAvailableSlots(context.Background(), session, "d1", date)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, got.AvailableSlots)

	// No draft existed, the fetch starts one for the doctor.
	draft, err := draftRepo.FindBySession(context.Background(), session.ID.String())
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, "d1", draft.DoctorID)
	assert.Equal(t, date, draft.Date)
	assert.Equal(t, []string{"09:00"}, draft.AvailableSlots)
}

func TestGetAvailableSlotsDateChangeClearsSelectedTime(t *testing.T) {
	firstDate := dateFromToday(3)
	secondDate := dateFromToday(4)
	gw := &fakePatientGateway{
		availability: entity.NewSlotAvailability("d1", secondDate, []string{"11:00"}, nil),
	}
	uc, _, draftRepo := newAvailabilityUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	draft := &entity.BookingDraft{
		SessionID: session.ID.String(),
		DoctorID:  "d1",
		Date:      firstDate,
		Time:      "09:00",
	}
	draft.SetSnapshot([]string{"09:00"}, time.Now())
	require.NoError(t, draftRepo.Save(context.Background(), draft))

	_, err := uc.GetAvailableSlots(context.Background(), session, "d1", secondDate)
	require.NoError(t, err)

	stored, err := draftRepo.FindBySession(context.Background(), session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, secondDate, stored.Date)
	assert.Empty(t, stored.Time, "switching the date must drop the previously selected time")
	assert.Equal(t, []string{"11:00"}, stored.AvailableSlots)
}

func TestGetAvailableSlotsOtherDoctorLeavesDraftAlone(t *testing.T) {
	date := dateFromToday(3)
	gw := &fakePatientGateway{
		availability: entity.NewSlotAvailability("d2", date, []string{"11:00"}, nil),
	}
	uc, _, draftRepo := newAvailabilityUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	draft := &entity.BookingDraft{SessionID: session.ID.String(), DoctorID: "d1", Date: date, Time: "09:00"}
	draft.SetSnapshot([]string{"09:00"}, time.Now())
	require.NoError(t, draftRepo.Save(context.Background(), draft))

	_, err := uc.GetAvailableSlots(context.Background(), session, "d2", date)
	require.NoError(t, err)

	stored, err := draftRepo.FindBySession(context.Background(), session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "d1", stored.DoctorID)
	assert.Equal(t, "09:00", stored.Time)
}

func TestGetAvailableSlotsFailureClearsStaleSnapshot(t *testing.T) {
	date := dateFromToday(3)
	gw := &fakePatientGateway{availabilityErr: upstream.ErrUnavailable}
	uc, _, draftRepo := newAvailabilityUsecase(t, gw)
	session := newTestSession(entity.RolePatient, entity.AuthProviderPassword, true)

	draft := &entity.BookingDraft{SessionID: session.ID.String(), DoctorID: "d1", Date: date, Time: "09:00"}
	draft.SetSnapshot([]string{"09:00"}, time.Now())
	require.NoError(t, draftRepo.Save(context.Background(), draft))

	_, err := uc.GetAvailableSlots(context.Background(), session, "d1", date)
	require.ErrorIs(t, err, upstream.ErrUnavailable)

	stored, err := draftRepo.FindBySession(context.Background(), session.ID.String())
	require.NoError(t, err)
	assert.Empty(t, stored.AvailableSlots, "a failed fetch must not leave a stale slot list")
	assert.Empty(t, stored.Time)
}
