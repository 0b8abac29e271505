package converter

import (
	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its response DTO.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	days := make([]dto.DayAvailabilityResponse, 0, len(doctor.WeeklyAvailability))
	for _, day := range doctor.WeeklyAvailability {
		days = append(days, dto.DayAvailabilityResponse{
			Day:       day.Day,
			TimeSlots: day.TimeSlots,
		})
	}

	return &dto.DoctorResponse{
		ID:                 doctor.ID,
		Name:               doctor.Name,
		SpecializationID:   doctor.SpecializationID,
		SpecializationName: doctor.SpecializationName,
		ExperienceYears:    doctor.ExperienceYears,
		WeeklyAvailability: days,
	}
}

// DoctorsToResponse converts a list of doctors.
func DoctorsToResponse(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}

// SpecializationsToResponse converts a list of specializations.
func SpecializationsToResponse(specs []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, 0, len(specs))
	for _, spec := range specs {
		responses = append(responses, dto.SpecializationResponse{
			ID:          spec.ID,
			Name:        spec.Name,
			Description: spec.Description,
		})
	}
	return responses
}

// UsersToResponse converts the admin user list.
func UsersToResponse(users []entity.User) []dto.AdminUserResponse {
	responses := make([]dto.AdminUserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.AdminUserResponse{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Role:        user.Role,
			IsActive:    user.IsActive,
		})
	}
	return responses
}
