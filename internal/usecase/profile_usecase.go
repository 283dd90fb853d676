package usecase

import (
	"context"
	"errors"

	"clinical-platform/internal/converter"
	"clinical-platform/internal/delivery/dto"
	"clinical-platform/internal/domain/entity"
	"clinical-platform/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

type ProfileUsecase interface {
	// CreateInternal is reached only through the machine-credential gate;
	// it trusts the caller-assigned ID (the auth service's credential ID).
	CreateInternal(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	List(ctx context.Context) (*dto.ProfileListResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProfileResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Delete(ctx context.Context, id uint) error
}

type profileUsecase struct {
	log         *logrus.Logger
	profileRepo repository.ProfileRepository
}

func NewProfileUsecase(log *logrus.Logger, profileRepo repository.ProfileRepository) ProfileUsecase {
	return &profileUsecase{
		log:         log,
		profileRepo: profileRepo,
	}
}

func (u *profileUsecase) CreateInternal(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	role := entity.Role(req.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	profile := &entity.Profile{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "profiles") {
			// A profile for this credential (or this email) already
			// exists, most likely a replayed saga step.
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	return converter.ProfileToResponse(profile), nil
}

func (u *profileUsecase) List(ctx context.Context) (*dto.ProfileListResponse, error) {
	profiles, err := u.profileRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list profiles: %+v", err)
		return nil, err
	}

	return &dto.ProfileListResponse{
		Profiles: converter.ProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

func (u *profileUsecase) GetByID(ctx context.Context, id uint) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find profile %d: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	return converter.ProfileToResponse(profile), nil
}

func (u *profileUsecase) Update(ctx context.Context, id uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find profile %d: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		if !role.IsValid() {
			return nil, ErrInvalidRole
		}
		// Updating the role here does not touch the credential held by
		// the auth service; tokens already issued keep their old role.
		profile.Role = role
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to update profile %d: %+v", id, err)
		return nil, err
	}

	return converter.ProfileToResponse(profile), nil
}

func (u *profileUsecase) Delete(ctx context.Context, id uint) error {
	profile, err := u.profileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find profile %d: %+v", id, err)
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	if err := u.profileRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete profile %d: %+v", id, err)
		return err
	}

	return nil
}
