package repository

import (
	"context"

	"clinical-platform/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id uint) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uint) error
}
