package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func draftWithSnapshot() *BookingDraft {
	draft := &BookingDraft{
		SessionID: "s1",
		DoctorID:  "d1",
		Date:      "2026-09-01",
		Time:      "09:00",
	}
	draft.SetSnapshot([]string{"09:00", "10:00"}, time.Now())
	return draft
}

func TestSetDateClearsTimeAndSnapshotOnChange(t *testing.T) {
	draft := draftWithSnapshot()

	draft.SetDate("2026-09-02")

	assert.Equal(t, "2026-09-02", draft.Date)
	assert.Empty(t, draft.Time)
	assert.Nil(t, draft.AvailableSlots)
	assert.True(t, draft.SnapshotAt.IsZero())
}

func TestSetDateKeepsSelectionOnSameDate(t *testing.T) {
	draft := draftWithSnapshot()

	draft.SetDate("2026-09-01")

	assert.Equal(t, "09:00", draft.Time)
	assert.Equal(t, []string{"09:00", "10:00"}, draft.AvailableSlots)
}

func TestSlotAvailableInSnapshot(t *testing.T) {
	draft := draftWithSnapshot()

	assert.True(t, draft.SlotAvailableInSnapshot("10:00"))
	assert.False(t, draft.SlotAvailableInSnapshot("11:00"))

	draft.SetSnapshot(nil, time.Time{})
	assert.False(t, draft.SlotAvailableInSnapshot("10:00"))
}

func TestReadyToSubmit(t *testing.T) {
	draft := draftWithSnapshot()
	assert.True(t, draft.ReadyToSubmit())

	draft.Time = "11:00"
	assert.False(t, draft.ReadyToSubmit(), "time outside the snapshot is not submittable")

	draft = draftWithSnapshot()
	draft.Time = ""
	assert.False(t, draft.ReadyToSubmit())

	draft = draftWithSnapshot()
	draft.Date = ""
	assert.False(t, draft.ReadyToSubmit())
}
