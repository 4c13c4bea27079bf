package http

import (
	"fmt"
	"net/http"
	"time"

	"lifelink-backend/internal/delivery/http/handler"
	"lifelink-backend/internal/delivery/http/middleware"
	"lifelink-backend/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	hospitalHandler     *handler.HospitalHandler
	bloodRequestHandler *handler.BloodRequestHandler
	donationHandler     *handler.DonationHandler
	donorHandler        *handler.DonorHandler
	notificationHandler *handler.NotificationHandler
	analyticsHandler    *handler.AnalyticsHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	hospitalHandler *handler.HospitalHandler,
	bloodRequestHandler *handler.BloodRequestHandler,
	donationHandler *handler.DonationHandler,
	donorHandler *handler.DonorHandler,
	notificationHandler *handler.NotificationHandler,
	analyticsHandler *handler.AnalyticsHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		hospitalHandler:     hospitalHandler,
		bloodRequestHandler: bloodRequestHandler,
		donationHandler:     donationHandler,
		donorHandler:        donorHandler,
		notificationHandler: notificationHandler,
		analyticsHandler:    analyticsHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		metricsMiddleware:   metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Observability endpoints sit outside the versioned API
	r.router.Handle("/metrics", middleware.MetricsHandler()).Methods(http.MethodGet)

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
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Hospital routes (public)
	api.HandleFunc("/hospitals", r.hospitalHandler.Apply).Methods(http.MethodPost)
	api.HandleFunc("/hospitals", r.hospitalHandler.ListApproved).Methods(http.MethodGet)

	// Protected routes (any authenticated user)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Donor profile
	protected.HandleFunc("/profiles/me", r.profileHandler.GetOwn).Methods(http.MethodGet)
	protected.HandleFunc("/profiles/me", r.profileHandler.UpdateOwn).Methods(http.MethodPut)

	// Blood requests
	protected.HandleFunc("/blood-requests", r.bloodRequestHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/blood-requests/me", r.bloodRequestHandler.ListOwn).Methods(http.MethodGet)
	protected.HandleFunc("/blood-requests/{id}/status", r.bloodRequestHandler.UpdateStatus).Methods(http.MethodPut)

	// Donations
	protected.HandleFunc("/donations/me", r.donationHandler.ListOwn).Methods(http.MethodGet)

	// Donor matching; any authenticated caller, including the requester
	protected.HandleFunc("/find-donors", r.donorHandler.FindDonors).Methods(http.MethodPost)
	protected.HandleFunc("/notify-donors", r.donorHandler.NotifyDonors).Methods(http.MethodPost)

	// Notifications
	protected.HandleFunc("/notifications/{donorId}", r.notificationHandler.ListForDonor).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPut)

	// Hospital-admin routes (hospital admins and platform admins)
	hospitalAdmin := api.PathPrefix("").Subrouter()
	hospitalAdmin.Use(r.authMiddleware.Authenticate)
	hospitalAdmin.Use(middleware.RequireRole(entity.RoleHospitalAdmin, entity.RolePlatformAdmin))

	hospitalAdmin.HandleFunc("/blood-requests/{id}/verify", r.bloodRequestHandler.Verify).Methods(http.MethodPost)
	hospitalAdmin.HandleFunc("/hospitals/{id}/blood-requests", r.bloodRequestHandler.ListForHospital).Methods(http.MethodGet)
	hospitalAdmin.HandleFunc("/hospitals/{id}/donations", r.donationHandler.ListForHospital).Methods(http.MethodGet)
	hospitalAdmin.HandleFunc("/donations", r.donationHandler.Record).Methods(http.MethodPost)
	hospitalAdmin.HandleFunc("/analytics/hospital/{id}", r.analyticsHandler.HospitalStats).Methods(http.MethodGet)

	// Admin routes (platform admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequirePlatformAdmin)

	admin.HandleFunc("/hospitals", r.hospitalHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/hospitals/{id}/approve", r.hospitalHandler.Approve).Methods(http.MethodPut)
	admin.HandleFunc("/hospitals/{id}/suspend", r.hospitalHandler.Suspend).Methods(http.MethodPut)
	admin.HandleFunc("/hospitals/{id}", r.hospitalHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/users/{userId}/role", r.profileHandler.AssignRole).Methods(http.MethodPut)

	// Platform analytics (platform admin only, outside the /admin prefix)
	analytics := api.PathPrefix("/analytics").Subrouter()
	analytics.Use(r.authMiddleware.Authenticate)
	analytics.Use(middleware.RequirePlatformAdmin)
	analytics.HandleFunc("/platform-stats", r.analyticsHandler.PlatformStats).Methods(http.MethodGet)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.rateLimitMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status": "ok", "time": %q}`, time.Now().UTC().Format(time.RFC3339))
}
