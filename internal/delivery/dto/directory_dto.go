package dto

// Response DTOs for the patient-facing doctor directory.

type DayAvailabilityResponse struct {
	Day       string   `json:"day"`
	TimeSlots []string `json:"time_slots"`
}

type DoctorResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	SpecializationID   string                    `json:"specialization_id"`
	SpecializationName string                    `json:"specialization_name,omitempty"`
	ExperienceYears    int                       `json:"experience_years"`
	WeeklyAvailability []DayAvailabilityResponse `json:"weekly_availability"`
}

type SpecializationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
