package dto

// Request DTOs

type SaveScheduleRequest struct {
	Date           string   `json:"date" validate:"required,date_ymd"`
	IsWorkingDay   bool     `json:"is_working_day"`
	AvailableTimes []string `json:"available_times" validate:"omitempty,dive,slot_time"`
}

// Response DTOs

type ScheduleResponse struct {
	DoctorID       string   `json:"doctor_id,omitempty"`
	Date           string   `json:"date"`
	IsWorkingDay   bool     `json:"is_working_day"`
	AvailableTimes []string `json:"available_times"`
}
