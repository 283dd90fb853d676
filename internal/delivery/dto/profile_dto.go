package dto

import (
	"time"

	"clinical-platform/internal/domain/entity"
)

// CreateProfileRequest is the payload of the internal, machine-credential
// protected endpoint. The ID comes from the auth service's credential
// record and is stored verbatim.
type CreateProfileRequest struct {
	ID    uint   `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required,min=2,max=150"`
	Email string `json:"email" validate:"required,email,max=150"`
	Role  string `json:"role" validate:"required,oneof=medico paciente admin"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=150"`
	Email *string `json:"email" validate:"omitempty,email,max=150"`
	Role  *string `json:"role" validate:"omitempty,oneof=medico paciente admin"`
}

type ProfileResponse struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type ProfileListResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
	Total    int               `json:"total"`
}
