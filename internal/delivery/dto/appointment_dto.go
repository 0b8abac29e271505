package dto

import "time"

// Request DTOs

type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellation_reason" validate:"required"`
}

type CompleteAppointmentRequest struct {
	Diagnosis    string   `json:"diagnosis" validate:"required"`
	Medications  []string `json:"medications" validate:"required,min=1"`
	Notes        string   `json:"notes" validate:"omitempty,max=2000"`
	FollowUpDate string   `json:"follow_up_date" validate:"omitempty,date_ymd"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                 string     `json:"id"`
	DoctorID           string     `json:"doctor_id"`
	PatientID          string     `json:"patient_id"`
	SpecializationID   string     `json:"specialization_id,omitempty"`
	DoctorName         string     `json:"doctor_name,omitempty"`
	PatientName        string     `json:"patient_name,omitempty"`
	Date               string     `json:"date"`
	Time               string     `json:"time"`
	Status             string     `json:"status"`
	Notes              string     `json:"notes,omitempty"`
	Prescription       string     `json:"prescription,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`

	// PastDue is advisory only: the date+time has passed while the
	// status is still scheduled. It never changes the status itself.
	PastDue bool `json:"past_due"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
