package converter

import (
	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/domain/entity"
)

// ProfileToResponse converts a Profile entity to ProfileResponse DTO
func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfileResponse{
		UserID:          profile.UserID,
		FullName:        profile.User.FullName,
		Email:           profile.User.Email,
		Role:            string(profile.User.Role),
		PhoneNumber:     profile.PhoneNumber,
		DateOfBirth:     profile.DateOfBirth,
		BloodType:       string(profile.BloodType),
		Latitude:        profile.Latitude,
		Longitude:       profile.Longitude,
		Availability:    string(profile.Availability),
		ProfileComplete: profile.ProfileComplete,
		HospitalID:      profile.HospitalID,
		Hospital:        HospitalToResponse(profile.Hospital),
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

// ProfileToDonorResponse converts a matched donor profile to the slimmer
// DonorResponse used by find-donors
func ProfileToDonorResponse(profile *entity.Profile) dto.DonorResponse {
	return dto.DonorResponse{
		UserID:      profile.UserID,
		FullName:    profile.User.FullName,
		BloodType:   string(profile.BloodType),
		PhoneNumber: profile.PhoneNumber,
		Latitude:    profile.Latitude,
		Longitude:   profile.Longitude,
	}
}

// ProfilesToDonorResponses converts matched donor profiles to DonorResponse DTOs
func ProfilesToDonorResponses(profiles []entity.Profile) []dto.DonorResponse {
	donors := make([]dto.DonorResponse, len(profiles))
	for i := range profiles {
		donors[i] = ProfileToDonorResponse(&profiles[i])
	}
	return donors
}
