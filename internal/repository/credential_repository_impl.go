package repository

import (
	"context"
	"errors"

	"clinical-platform/internal/domain/entity"
	domainRepo "clinical-platform/internal/domain/repository"

	"gorm.io/gorm"
)

type credentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) domainRepo.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	return r.db.WithContext(ctx).Create(credential).Error
}

func (r *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credential entity.Credential
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

func (r *credentialRepository) FindByID(ctx context.Context, id uint) (*entity.Credential, error) {
	var credential entity.Credential
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&credential).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &credential, nil
}

func (r *credentialRepository) Delete(ctx context.Context, id uint) error {
	// Deleting zero rows is fine: compensation must stay idempotent.
	return r.db.WithContext(ctx).Delete(&entity.Credential{}, id).Error
}
