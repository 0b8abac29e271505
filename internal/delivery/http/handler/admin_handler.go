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

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	users, err := h.adminUsecase.Users(r.Context(), session)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", users)
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.adminUsecase.UpdateUserRole(r.Context(), session, mux.Vars(r)["id"], &req)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Role updated", user)
}

func (h *AdminHandler) Specializations(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	specs, err := h.adminUsecase.Specializations(r.Context(), session)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", specs)
}

func (h *AdminHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.SpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	spec, err := h.adminUsecase.CreateSpecialization(r.Context(), session, &req)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Specialization created", spec)
}

func (h *AdminHandler) UpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.SpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	spec, err := h.adminUsecase.UpdateSpecialization(r.Context(), session, mux.Vars(r)["id"], &req)
	if err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Specialization updated", spec)
}

func (h *AdminHandler) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.adminUsecase.DeleteSpecialization(r.Context(), session, mux.Vars(r)["id"]); err != nil {
		respondUsecaseError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Specialization deleted", nil)
}
