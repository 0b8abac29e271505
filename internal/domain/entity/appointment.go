package entity

import "time"

// AppointmentStatus represents the status of an appointment as reported by
// the upstream API. The gateway never flips a status locally; every
// transition is a confirmed upstream round-trip.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment mirrors the upstream appointment resource.
type Appointment struct {
	ID                 string            `json:"id"`
	DoctorID           string            `json:"doctor_id"`
	PatientID          string            `json:"patient_id"`
	SpecializationID   string            `json:"specialization_id"`
	DoctorName         string            `json:"doctor_name"`
	PatientName        string            `json:"patient_name"`
	Date               string            `json:"date"` // YYYY-MM-DD
	Time               string            `json:"time"` // HH:MM
	Status             AppointmentStatus `json:"status"`
	Notes              string            `json:"notes"`
	Prescription       string            `json:"prescription,omitempty"`
	CancellationReason string            `json:"cancellation_reason,omitempty"`
	CompletedAt        *time.Time        `json:"completed_at,omitempty"`
}

// IsScheduled checks if the appointment is still scheduled
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// PastDue reports whether the appointment's date+time has passed while the
// status is still scheduled. It is an advisory only: it never alters the
// status or the actions available on the appointment.
func (a *Appointment) PastDue(now time.Time) bool {
	if !a.IsScheduled() {
		return false
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, now.Location())
	if err != nil {
		return false
	}
	return now.After(at)
}
