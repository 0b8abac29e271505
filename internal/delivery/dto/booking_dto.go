package dto

import "time"

// Request DTOs

// UpdateDraftRequest merges into the session's booking draft. Pointer fields
// distinguish "not sent" from "sent empty".
type UpdateDraftRequest struct {
	DoctorID         *string `json:"doctor_id,omitempty"`
	SpecializationID *string `json:"specialization_id,omitempty"`
	Date             *string `json:"date,omitempty" validate:"omitempty,date_ymd"`
	Time             *string `json:"time,omitempty" validate:"omitempty,slot_time"`
	Notes            *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type SubmitBookingRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// Response DTOs

type BookingDraftResponse struct {
	DoctorID         string    `json:"doctor_id,omitempty"`
	SpecializationID string    `json:"specialization_id,omitempty"`
	Date             string    `json:"date,omitempty"`
	Time             string    `json:"time,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	AvailableSlots   []string  `json:"available_slots"`
	SnapshotAt       time.Time `json:"snapshot_at,omitempty"`
	ReadyToSubmit    bool      `json:"ready_to_submit"`
}

type SlotAvailabilityResponse struct {
	DoctorID       string   `json:"doctor_id"`
	Date           string   `json:"date"`
	AllSlots       []string `json:"all_slots"`
	BookedSlots    []string `json:"booked_slots"`
	AvailableSlots []string `json:"available_slots"`
}
