package entity

// DayAvailability is one weekday of a doctor's configured weekly schedule.
type DayAvailability struct {
	Day       string   `json:"day"` // monday..sunday, lowercase
	TimeSlots []string `json:"time_slots"`
}

// Doctor is the patient-facing view of a doctor as reported by the upstream.
// Read-only through the gateway except for the doctor's own schedule
// overrides.
type Doctor struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	SpecializationID   string            `json:"specialization_id"`
	SpecializationName string            `json:"specialization_name"`
	ExperienceYears    int               `json:"experience_years"`
	WeeklyAvailability []DayAvailability `json:"weekly_availability"`
}

// Specialization is an upstream-owned lookup record. Admins manage the set.
type Specialization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// User is the admin-facing view of an account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
}

// ScheduleOverride is a doctor's per-date override of the weekly schedule.
type ScheduleOverride struct {
	DoctorID       string   `json:"doctor_id"`
	Date           string   `json:"date"` // YYYY-MM-DD
	IsWorkingDay   bool     `json:"is_working_day"`
	AvailableTimes []string `json:"available_times"`
}
