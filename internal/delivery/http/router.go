package http

import (
	"net/http"

	"healthconnect/internal/delivery/http/handler"
	"healthconnect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	hospitalHandler       *handler.HospitalHandler
	appointmentHandler    *handler.AppointmentHandler
	medicalRecordHandler  *handler.MedicalRecordHandler
	prescriptionHandler   *handler.PrescriptionHandler
	healthTrackingHandler *handler.HealthTrackingHandler
	alertHandler          *handler.AlertHandler
	adminHandler          *handler.AdminHandler
	authMiddleware        *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	hospitalHandler *handler.HospitalHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	healthTrackingHandler *handler.HealthTrackingHandler,
	alertHandler *handler.AlertHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		hospitalHandler:       hospitalHandler,
		appointmentHandler:    appointmentHandler,
		medicalRecordHandler:  medicalRecordHandler,
		prescriptionHandler:   prescriptionHandler,
		healthTrackingHandler: healthTrackingHandler,
		alertHandler:          alertHandler,
		adminHandler:          adminHandler,
		authMiddleware:        authMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/me", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	// Protected routes (any authenticated role; fine-grained checks run
	// in the usecases through the access policy)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Hospital browsing
	protected.HandleFunc("/hospitals", r.hospitalHandler.GetHospitals).Methods(http.MethodGet)
	protected.HandleFunc("/hospitals/{id}", r.hospitalHandler.GetHospital).Methods(http.MethodGet)
	protected.HandleFunc("/hospitals/{id}/doctors", r.hospitalHandler.GetHospitalDoctors).Methods(http.MethodGet)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	protected.Handle("/appointments",
		middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.CreateAppointment))).Methods(http.MethodPost)
	protected.Handle("/appointments/{id}",
		middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.UpdateAppointment))).Methods(http.MethodPut)
	protected.Handle("/appointments/{id}/confirm",
		middleware.RequireDoctor(http.HandlerFunc(r.appointmentHandler.ConfirmAppointment))).Methods(http.MethodPost)
	protected.Handle("/appointments/{id}/cancel",
		middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.CancelAppointment))).Methods(http.MethodPost)

	// Medical records
	protected.HandleFunc("/medical-records", r.medicalRecordHandler.GetMyRecords).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.GetRecord).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/{id}/attachments/{path}", r.medicalRecordHandler.GetAttachment).Methods(http.MethodGet)
	protected.Handle("/medical-records",
		middleware.RequireDoctor(http.HandlerFunc(r.medicalRecordHandler.CreateRecord))).Methods(http.MethodPost)

	// Prescriptions
	protected.HandleFunc("/prescriptions", r.prescriptionHandler.GetMyPrescriptions).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}/attachments/{path}", r.prescriptionHandler.GetAttachment).Methods(http.MethodGet)
	protected.Handle("/prescriptions",
		middleware.RequireDoctor(http.HandlerFunc(r.prescriptionHandler.CreatePrescription))).Methods(http.MethodPost)

	// Health tracking
	protected.Handle("/health-tracking",
		middleware.RequirePatient(http.HandlerFunc(r.healthTrackingHandler.RecordVitals))).Methods(http.MethodPost)
	protected.Handle("/health-tracking",
		middleware.RequirePatient(http.HandlerFunc(r.healthTrackingHandler.GetMyVitals))).Methods(http.MethodGet)
	protected.Handle("/health-tracking/latest",
		middleware.RequirePatient(http.HandlerFunc(r.healthTrackingHandler.GetLatestVitals))).Methods(http.MethodGet)

	// Alerts
	protected.Handle("/alerts",
		middleware.RequirePatient(http.HandlerFunc(r.alertHandler.GetMyAlerts))).Methods(http.MethodGet)
	protected.Handle("/alerts/unread-count",
		middleware.RequirePatient(http.HandlerFunc(r.alertHandler.GetUnreadCount))).Methods(http.MethodGet)
	protected.Handle("/alerts/mark-read",
		middleware.RequirePatient(http.HandlerFunc(r.alertHandler.MarkAllRead))).Methods(http.MethodPost)
	protected.Handle("/alerts/stream",
		middleware.RequirePatient(http.HandlerFunc(r.alertHandler.StreamAlerts))).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/stats", r.adminHandler.GetDashboardStats).Methods(http.MethodGet)
	admin.HandleFunc("/hospitals", r.adminHandler.CreateHospital).Methods(http.MethodPost)
	admin.HandleFunc("/hospitals/{id}", r.adminHandler.UpdateHospital).Methods(http.MethodPut)
	admin.HandleFunc("/hospitals/{id}", r.adminHandler.DeleteHospital).Methods(http.MethodDelete)
	admin.HandleFunc("/hospitals/{id}/doctors", r.adminHandler.AssignDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/unassigned", r.adminHandler.GetUnassignedDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.adminHandler.GetUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.adminHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.adminHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.adminHandler.GetAuditLogs).Methods(http.MethodGet)

	r.router.Use(middleware.CORS)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
