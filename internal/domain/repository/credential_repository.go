package repository

import (
	"context"

	"clinical-platform/internal/domain/entity"
)

type CredentialRepository interface {
	Create(ctx context.Context, credential *entity.Credential) error
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
	FindByID(ctx context.Context, id uint) (*entity.Credential, error)
	// Delete is the saga's compensating action. Deleting an already absent
	// credential is not an error.
	Delete(ctx context.Context, id uint) error
}
