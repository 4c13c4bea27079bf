package converter

import (
	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:            hospital.ID,
		Name:          hospital.Name,
		Address:       hospital.Address,
		Latitude:      hospital.Latitude,
		Longitude:     hospital.Longitude,
		ContactPerson: hospital.ContactPerson,
		ContactPhone:  hospital.ContactPhone,
		ContactEmail:  hospital.ContactEmail,
		LicenseNumber: hospital.LicenseNumber,
		AppliedAt:     hospital.AppliedAt,
		Status:        string(hospital.Status),
		CreatedAt:     hospital.CreatedAt,
		UpdatedAt:     hospital.UpdatedAt,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to response DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}
