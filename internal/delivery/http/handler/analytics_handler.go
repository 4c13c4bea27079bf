package handler

import (
	"net/http"

	"lifelink-backend/internal/delivery/http/middleware"
	"lifelink-backend/internal/usecase"
	"lifelink-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
	}
}

// PlatformStats returns platform-wide aggregates
// @Summary Get platform statistics
// @Description Platform-wide user, hospital, request, and donation aggregates (platform admin only)
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /analytics/platform-stats [get]
func (h *AnalyticsHandler) PlatformStats(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	stats, err := h.analyticsUsecase.PlatformStats(r.Context(), callerID)
	if err != nil {
		switch err {
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "Only platform admins can view platform statistics")
		default:
			response.InternalServerError(w, "Failed to get platform statistics")
		}
		return
	}

	response.Success(w, http.StatusOK, "Platform statistics retrieved successfully", stats)
}

// HospitalStats returns one hospital's aggregates
// @Summary Get hospital statistics
// @Description Per-hospital request and donation aggregates (its admins or platform admins)
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /analytics/hospital/{id} [get]
func (h *AnalyticsHandler) HospitalStats(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	stats, err := h.analyticsUsecase.HospitalStats(r.Context(), callerID, hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have access to this hospital")
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get hospital statistics")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital statistics retrieved successfully", stats)
}
