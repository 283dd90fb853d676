package converter

import (
	"clinical-platform/internal/delivery/dto"
	"clinical-platform/internal/domain/entity"
)

func ProfileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        profile.ID,
		Name:      profile.Name,
		Email:     profile.Email,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt,
	}
}

func ProfilesToResponses(profiles []entity.Profile) []dto.ProfileResponse {
	responses := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *ProfileToResponse(&profiles[i]))
	}
	return responses
}
