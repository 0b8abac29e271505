package converter

import (
	"time"

	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO,
// computing the advisory past-due flag against now.
func AppointmentToResponse(appointment *entity.Appointment, now time.Time) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                 appointment.ID,
		DoctorID:           appointment.DoctorID,
		PatientID:          appointment.PatientID,
		SpecializationID:   appointment.SpecializationID,
		DoctorName:         appointment.DoctorName,
		PatientName:        appointment.PatientName,
		Date:               appointment.Date,
		Time:               appointment.Time,
		Status:             string(appointment.Status),
		Notes:              appointment.Notes,
		Prescription:       appointment.Prescription,
		CancellationReason: appointment.CancellationReason,
		CompletedAt:        appointment.CompletedAt,
		PastDue:            appointment.PastDue(now),
	}
}

// AppointmentsToListResponse converts a list of appointments.
func AppointmentsToListResponse(appointments []entity.Appointment, now time.Time) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i], now))
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}
}
