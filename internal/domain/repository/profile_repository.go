package repository

import (
	"context"

	"clinical-platform/internal/domain/entity"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindAll(ctx context.Context) ([]entity.Profile, error)
	FindByID(ctx context.Context, id uint) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id uint) error
}
