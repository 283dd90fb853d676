package usecase

import (
	"context"
	"errors"
	"strings"

	"clinical-platform/internal/delivery/dto"
	"clinical-platform/internal/domain/entity"
	"clinical-platform/internal/domain/repository"
	"clinical-platform/internal/service"
	"clinical-platform/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrProfileCreation    = errors.New("failed to create user profile")
)

// bcryptCost keeps hashing above the ~100ms mark on commodity hardware.
const bcryptCost = 12

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authUsecase struct {
	log              *logrus.Logger
	credentialRepo   repository.CredentialRepository
	profileRegistrar service.ProfileRegistrar
	tokenService     *jwt.TokenService
}

func NewAuthUsecase(
	log *logrus.Logger,
	credentialRepo repository.CredentialRepository,
	profileRegistrar service.ProfileRegistrar,
	tokenService *jwt.TokenService,
) AuthUsecase {
	return &authUsecase{
		log:              log,
		credentialRepo:   credentialRepo,
		profileRegistrar: profileRegistrar,
		tokenService:     tokenService,
	}
}

// Register runs the cross-service registration saga: create the credential
// locally, then the profile remotely, and compensate by deleting the
// credential if the remote step fails. There is no shared transaction
// between the two services, so the credential insert is the durable commit
// point and the delete is its compensating action.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := entity.Role(req.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	// Uniqueness pre-check. Not atomic with the insert below under
	// concurrent registrations; the store's unique constraint is the
	// final authority.
	existing, err := u.credentialRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing credential: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	credential := &entity.Credential{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := u.credentialRepo.Create(ctx, credential); err != nil {
		if isDuplicateKeyError(err, "email") {
			// A concurrent registration won the race; treat exactly
			// like the pre-check conflict.
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create credential: %+v", err)
		return nil, err
	}

	// Remote step: synchronous, bounded by the client's timeout and the
	// request context. Any failure means the registration did not happen
	// as a whole and the local commit must be undone.
	if err := u.profileRegistrar.CreateProfile(ctx, credential.ID, req.Name, req.Email, role); err != nil {
		u.log.Warnf("Profile creation failed for credential %d, compensating: %+v", credential.ID, err)

		if delErr := u.credentialRepo.Delete(context.WithoutCancel(ctx), credential.ID); delErr != nil {
			// Single best-effort attempt. An orphan credential without a
			// profile is a known failure mode; surface it in the logs
			// rather than masking it.
			u.log.Errorf("Compensation failed, orphan credential %d left behind: %+v", credential.ID, delErr)
		}
		return nil, ErrProfileCreation
	}

	return &dto.RegisterResponse{
		ID:        credential.ID,
		Name:      req.Name,
		Email:     credential.Email,
		Role:      credential.Role,
		CreatedAt: credential.CreatedAt,
	}, nil
}

// Login verifies the password and issues a token binding {id, role}.
// An unknown email and a wrong password return the same error so the
// response shape never reveals whether the email exists.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	credential, err := u.credentialRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find credential by email: %+v", err)
		return nil, err
	}
	if credential == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokenService.Generate(credential.ID, credential.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int64(u.tokenService.GetExpiry().Seconds()),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique
// constraint violation containing the specified constraint name.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
