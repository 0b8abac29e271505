package entity

import "sort"

// SlotAvailability is the canonical slot picture for one doctor on one date,
// derived at the normalization boundary from whatever shape the upstream
// sent. AvailableSlots is always AllSlots minus BookedSlots.
type SlotAvailability struct {
	DoctorID       string   `json:"doctor_id"`
	Date           string   `json:"date"` // YYYY-MM-DD
	AllSlots       []string `json:"all_slots"`
	BookedSlots    []string `json:"booked_slots"`
	AvailableSlots []string `json:"available_slots"`
}

// NewSlotAvailability builds the canonical availability from the all/booked
// sets: both are deduped and sorted (HH:MM sorts lexicographically), and
// available is derived as the difference. Nil inputs degrade to empty sets.
func NewSlotAvailability(doctorID, date string, all, booked []string) *SlotAvailability {
	allSet := normalizeSlots(all)
	bookedSet := normalizeSlots(booked)

	bookedIndex := make(map[string]struct{}, len(bookedSet))
	for _, slot := range bookedSet {
		bookedIndex[slot] = struct{}{}
	}

	available := make([]string, 0, len(allSet))
	for _, slot := range allSet {
		if _, ok := bookedIndex[slot]; !ok {
			available = append(available, slot)
		}
	}

	return &SlotAvailability{
		DoctorID:       doctorID,
		Date:           date,
		AllSlots:       allSet,
		BookedSlots:    bookedSet,
		AvailableSlots: available,
	}
}

func normalizeSlots(slots []string) []string {
	seen := make(map[string]struct{}, len(slots))
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot == "" {
			continue
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		out = append(out, slot)
	}
	sort.Strings(out)
	return out
}
