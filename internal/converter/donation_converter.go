package converter

import (
	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"
)

// DonationToResponse converts a Donation entity to DonationResponse DTO
func DonationToResponse(donation *entity.Donation) *dto.DonationResponse {
	if donation == nil {
		return nil
	}

	return &dto.DonationResponse{
		ID:           donation.ID,
		DonorID:      donation.DonorID,
		DonorName:    donation.Donor.FullName,
		HospitalID:   donation.HospitalID,
		HospitalName: donation.Hospital.Name,
		DonationDate: donation.DonationDate,
		RequestID:    donation.RequestID,
		CreatedAt:    donation.CreatedAt,
	}
}

// DonationsToResponses converts a slice of Donation entities to DTOs
func DonationsToResponses(donations []entity.Donation) []dto.DonationResponse {
	responses := make([]dto.DonationResponse, len(donations))
	for i := range donations {
		responses[i] = *DonationToResponse(&donations[i])
	}
	return responses
}
