package http

import (
	"net/http"

	"medicenter-portal/internal/delivery/http/handler"
	"medicenter-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	patientHandler    *handler.PatientHandler
	doctorHandler     *handler.DoctorHandler
	adminHandler      *handler.AdminHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
	registry          *prometheus.Registry
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	registry *prometheus.Registry,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		patientHandler:    patientHandler,
		doctorHandler:     doctorHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		metricsMiddleware: metricsMiddleware,
		registry:          registry,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/google", r.authHandler.GoogleLogin).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/me", r.authHandler.CurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/complete-profile", r.authHandler.CompleteProfile).Methods(http.MethodPatch)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/doctors", r.patientHandler.Doctors).Methods(http.MethodGet)
	patient.HandleFunc("/specializations", r.patientHandler.Specializations).Methods(http.MethodGet)
	patient.HandleFunc("/available-slots/{doctorId}", r.patientHandler.AvailableSlots).Methods(http.MethodGet)
	patient.HandleFunc("/booking/draft", r.patientHandler.GetBookingDraft).Methods(http.MethodGet)
	patient.HandleFunc("/booking/draft", r.patientHandler.UpdateBookingDraft).Methods(http.MethodPut)
	patient.HandleFunc("/booking/draft", r.patientHandler.ClearBookingDraft).Methods(http.MethodDelete)
	patient.HandleFunc("/appointments", r.patientHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.patientHandler.Appointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.patientHandler.CancelAppointment).Methods(http.MethodPut)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.doctorHandler.Appointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/cancel", r.doctorHandler.CancelAppointment).Methods(http.MethodPut)
	doctor.HandleFunc("/appointments/{id}/complete", r.doctorHandler.CompleteAppointment).Methods(http.MethodPut)
	doctor.HandleFunc("/schedule", r.doctorHandler.GetSchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/schedule", r.doctorHandler.SaveSchedule).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.adminHandler.Users).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", r.adminHandler.UpdateUserRole).Methods(http.MethodPatch)
	admin.HandleFunc("/specializations", r.adminHandler.Specializations).Methods(http.MethodGet)
	admin.HandleFunc("/specializations", r.adminHandler.CreateSpecialization).Methods(http.MethodPost)
	admin.HandleFunc("/specializations/{id}", r.adminHandler.UpdateSpecialization).Methods(http.MethodPut)
	admin.HandleFunc("/specializations/{id}", r.adminHandler.DeleteSpecialization).Methods(http.MethodDelete)

	// Cross-cutting middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
