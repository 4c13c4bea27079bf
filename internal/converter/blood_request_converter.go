package converter

import (
	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// BloodRequestToResponse converts a BloodRequest entity to its response DTO
func BloodRequestToResponse(request *entity.BloodRequest) *dto.BloodRequestResponse {
	if request == nil {
		return nil
	}

	resp := &dto.BloodRequestResponse{
		ID:          request.ID,
		RequesterID: request.RequesterID,
		PatientName: request.PatientName,
		PatientAge:  request.PatientAge,
		BloodType:   string(request.BloodType),
		Urgency:     string(request.Urgency),
		HospitalID:  request.HospitalID,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
	if request.Hospital.ID != uuid.Nil {
		resp.Hospital = HospitalToResponse(&request.Hospital)
	}
	return resp
}

// BloodRequestsToResponses converts a slice of BloodRequest entities to DTOs
func BloodRequestsToResponses(requests []entity.BloodRequest) []dto.BloodRequestResponse {
	responses := make([]dto.BloodRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *BloodRequestToResponse(&requests[i])
	}
	return responses
}
