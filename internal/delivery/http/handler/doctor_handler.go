package handler

import (
	"encoding/json"
	"net/http"

	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/delivery/http/middleware"
	"medicenter-portal/internal/usecase"
	"medicenter-portal/pkg/response"
	"medicenter-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	scheduleUsecase    usecase.ScheduleUsecase
	validator          *validator.CustomValidator
}

func NewDoctorHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	scheduleUsecase usecase.ScheduleUsecase,
	validator *validator.CustomValidator,
) *DoctorHandler {
	return &DoctorHandler{
		appointmentUsecase: appointmentUsecase,
		scheduleUsecase:    scheduleUsecase,
		validator:          validator,
	}
}

func (h *DoctorHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	appointments, err := h.appointmentUsecase.DoctorAppointments(r.Context(), session)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", appointments)
}

func (h *DoctorHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.CancelAppointment(r.Context(), session, mux.Vars(r)["id"], &req); err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled", nil)
}

// CompleteAppointment records a visit's outcome and prescription
// @Summary Complete an appointment
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CompleteAppointmentRequest true "Completion"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/appointments/{id}/complete [put]
func (h *DoctorHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CompleteAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.CompleteAppointment(r.Context(), session, mux.Vars(r)["id"], &req); err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed", nil)
}

func (h *DoctorHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	schedule, err := h.scheduleUsecase.GetSchedule(r.Context(), session, r.URL.Query().Get("date"))
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", schedule)
}

// SaveSchedule stores a per-date override of the doctor's weekly schedule
// @Summary Save a schedule override
// @Tags Doctor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveScheduleRequest true "Schedule Override"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /doctor/schedule [post]
func (h *DoctorHandler) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.SaveScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.SaveSchedule(r.Context(), session, &req)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule saved", schedule)
}
