package entity

import "time"

// BookingDraft is the per-session state of an open booking dialog: the
// current selection plus the last fetched availability snapshot for the
// selected date. Submission is validated against the snapshot, never against
// a fresh fetch; the upstream resolves the remaining race authoritatively.
type BookingDraft struct {
	SessionID        string    `json:"session_id"`
	DoctorID         string    `json:"doctor_id"`
	SpecializationID string    `json:"specialization_id"`
	Date             string    `json:"date,omitempty"` // YYYY-MM-DD
	Time             string    `json:"time,omitempty"` // HH:MM
	Notes            string    `json:"notes,omitempty"`
	AvailableSlots   []string  `json:"available_slots,omitempty"`
	SnapshotAt       time.Time `json:"snapshot_at,omitempty"`
}

// SetDate records a date selection. Changing to a different date clears the
// selected time and the slot snapshot so a stale selection can never be
// submitted against another day's grid.
func (d *BookingDraft) SetDate(date string) {
	if d.Date == date {
		return
	}
	d.Date = date
	d.Time = ""
	d.AvailableSlots = nil
	d.SnapshotAt = time.Time{}
}

// SetSnapshot stores the availability last fetched for the draft's date.
func (d *BookingDraft) SetSnapshot(slots []string, at time.Time) {
	d.AvailableSlots = slots
	d.SnapshotAt = at
}

// SlotAvailableInSnapshot reports whether the slot was selectable in the last
// fetched availability for the draft's date.
func (d *BookingDraft) SlotAvailableInSnapshot(slot string) bool {
	for _, candidate := range d.AvailableSlots {
		if candidate == slot {
			return true
		}
	}
	return false
}

// ReadyToSubmit checks the local submission preconditions: a date and time
// are both selected and the time was selectable in the last fetched slots.
func (d *BookingDraft) ReadyToSubmit() bool {
	return d.Date != "" && d.Time != "" && d.SlotAvailableInSnapshot(d.Time)
}
