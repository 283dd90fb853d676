package dto

import (
	"time"

	"clinical-platform/internal/domain/entity"
)

type CreateAppointmentRequest struct {
	PatientID   uint      `json:"patient_id" validate:"required"`
	DoctorID    uint      `json:"doctor_id" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Notes       *string   `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateAppointmentRequest uses pointers so that absent fields are left
// untouched on the stored record.
type UpdateAppointmentRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Notes       *string    `json:"notes" validate:"omitempty,max=2000"`
	Diagnosis   *string    `json:"diagnosis" validate:"omitempty,max=2000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=agendada realizada cancelada"`
}

// AppointmentQuery carries the optional listing filters an admin may
// supply. Patients and doctors are force-scoped regardless of it.
type AppointmentQuery struct {
	Status    string
	DoctorID  uint
	PatientID uint
}

type AppointmentResponse struct {
	ID          uint                     `json:"id"`
	PatientID   uint                     `json:"patient_id"`
	DoctorID    uint                     `json:"doctor_id"`
	ScheduledAt time.Time                `json:"scheduled_at"`
	Notes       *string                  `json:"notes,omitempty"`
	Diagnosis   *string                  `json:"diagnosis,omitempty"`
	Status      entity.AppointmentStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
