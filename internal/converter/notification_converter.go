package converter

import (
	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"
)

// NotificationToResponse converts a Notification entity to its response DTO
func NotificationToResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}

	return &dto.NotificationResponse{
		ID:        n.ID,
		DonorID:   n.DonorID,
		RequestID: n.RequestID,
		Message:   n.Message,
		Urgency:   string(n.Urgency),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// NotificationsToResponses converts a slice of Notification entities to DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *NotificationToResponse(&notifications[i])
	}
	return responses
}
