package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"medicenter-portal/internal/delivery/dto"
	"medicenter-portal/internal/delivery/http/middleware"
	"medicenter-portal/internal/usecase"
	"medicenter-portal/pkg/response"
	"medicenter-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	directoryUsecase    usecase.DirectoryUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	bookingUsecase      usecase.BookingUsecase
	appointmentUsecase  usecase.AppointmentUsecase
	validator           *validator.CustomValidator
}

func NewPatientHandler(
	directoryUsecase usecase.DirectoryUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
	bookingUsecase usecase.BookingUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	validator *validator.CustomValidator,
) *PatientHandler {
	return &PatientHandler{
		directoryUsecase:    directoryUsecase,
		availabilityUsecase: availabilityUsecase,
		bookingUsecase:      bookingUsecase,
		appointmentUsecase:  appointmentUsecase,
		validator:           validator,
	}
}

// Doctors lists bookable doctors, optionally filtered by specialization
// @Summary List doctors
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/doctors [get]
func (h *PatientHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	doctors, err := h.directoryUsecase.Doctors(r.Context(), session, r.URL.Query().Get("specialization"))
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", doctors)
}

func (h *PatientHandler) Specializations(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	specs, err := h.directoryUsecase.Specializations(r.Context(), session)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", specs)
}

// AvailableSlots resolves the bookable slots for a doctor on a date
// @Summary Get available slots
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Param doctorId path string true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patient/available-slots/{doctorId} [get]
func (h *PatientHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	doctorID := mux.Vars(r)["doctorId"]
	date := r.URL.Query().Get("date")

	availability, err := h.availabilityUsecase.GetAvailableSlots(r.Context(), session, doctorID, date)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", availability)
}

func (h *PatientHandler) GetBookingDraft(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	draft, err := h.bookingUsecase.GetDraft(r.Context(), session)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", draft)
}

// UpdateBookingDraft merges a partial selection into the booking dialog state
// @Summary Update the booking draft
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDraftRequest true "Draft Update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patient/booking/draft [put]
func (h *PatientHandler) UpdateBookingDraft(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	draft, err := h.bookingUsecase.UpdateDraft(r.Context(), session, &req)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", draft)
}

func (h *PatientHandler) ClearBookingDraft(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.bookingUsecase.ClearDraft(r.Context(), session); err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking draft discarded", nil)
}

// BookAppointment submits the session's booking draft
// @Summary Book an appointment
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest false "Booking Submission"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/appointments [post]
func (h *PatientHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.SubmitBookingRequest
	if r.Body != nil {
		// An empty body submits the draft as-is; anything else must be
		// valid JSON.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.Submit(r.Context(), session, &req)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked", appointment)
}

func (h *PatientHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	appointments, err := h.appointmentUsecase.PatientAppointments(r.Context(), session)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", appointments)
}

// CancelAppointment cancels a scheduled appointment with a reason
// @Summary Cancel an appointment
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CancelAppointmentRequest true "Cancellation"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patient/appointments/{id}/cancel [put]
func (h *PatientHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
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
