package handler

import (
	"net/http"

	"lifelink-backend/internal/delivery/http/middleware"
	"lifelink-backend/internal/usecase"
	"lifelink-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// ListForDonor lists a donor's notifications newest-first
// @Summary List donor notifications
// @Description List the donor's notifications; donors can only read their own
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param donorId path string true "Donor ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /notifications/{donorId} [get]
func (h *NotificationHandler) ListForDonor(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	donorID, err := uuid.Parse(mux.Vars(r)["donorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid donor ID", nil)
		return
	}

	notifications, err := h.notificationUsecase.ListForDonor(r.Context(), callerID, donorID)
	if err != nil {
		switch err {
		case usecase.ErrNotOwnNotifications:
			response.Forbidden(w, "You can only read your own notifications")
		default:
			response.InternalServerError(w, "Failed to list notifications")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

// MarkRead marks a notification as read
// @Summary Mark a notification read
// @Description Mark a single notification as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	notification, err := h.notificationUsecase.MarkRead(r.Context(), notificationID)
	if err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notification not found")
		default:
			response.InternalServerError(w, "Failed to mark notification as read")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", notification)
}
