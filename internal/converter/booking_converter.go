package converter

import (
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
)

// DraftToResponse converts a booking draft to its response DTO. A nil draft
// converts to an empty dialog state.
func DraftToResponse(draft *entity.BookingDraft) *dto.BookingDraftResponse {
	if draft == nil {
		return &dto.BookingDraftResponse{AvailableSlots: []string{}}
	}

	slots := draft.AvailableSlots
	if slots == nil {
		slots = []string{}
	}

	return &dto.BookingDraftResponse{
		DoctorID:         draft.DoctorID,
		SpecializationID: draft.SpecializationID,
		Date:             draft.Date,
		Time:             draft.Time,
		Notes:            draft.Notes,
		AvailableSlots:   slots,
		SnapshotAt:       draft.SnapshotAt,
		ReadyToSubmit:    draft.ReadyToSubmit(),
	}
}

// SlotAvailabilityToResponse converts the canonical slot picture.
func SlotAvailabilityToResponse(availability *entity.SlotAvailability) *dto.SlotAvailabilityResponse {
	if availability == nil {
		return nil
	}

	return &dto.SlotAvailabilityResponse{
		DoctorID:       availability.DoctorID,
		Date:           availability.Date,
		AllSlots:       availability.AllSlots,
		BookedSlots:    availability.BookedSlots,
		AvailableSlots: availability.AvailableSlots,
	}
}

// ScheduleToResponse converts a doctor's per-date schedule override.
func ScheduleToResponse(override *entity.ScheduleOverride) *dto.ScheduleResponse {
	if override == nil {
		return nil
	}

	times := override.AvailableTimes
	if times == nil {
		times = []string{}
	}

	return &dto.ScheduleResponse{
		DoctorID:       override.DoctorID,
		Date:           override.Date,
		IsWorkingDay:   override.IsWorkingDay,
		AvailableTimes: times,
	}
}
