package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"clinical-platform/config"
	"clinical-platform/internal/delivery/dto"
	"clinical-platform/internal/domain/entity"
	"clinical-platform/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubCredentialRepo is an in-memory credential store. createErr lets a
// test inject the constraint violation a concurrent insert would cause.
type stubCredentialRepo struct {
	nextID      uint
	byEmail     map[string]*entity.Credential
	createErr   error
	deleteErr   error
	deleteCalls []uint
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{nextID: 1, byEmail: make(map[string]*entity.Credential)}
}

func (r *stubCredentialRepo) Create(_ context.Context, credential *entity.Credential) error {
	if r.createErr != nil {
		return r.createErr
	}
	credential.ID = r.nextID
	credential.CreatedAt = time.Now()
	r.nextID++
	clone := *credential
	r.byEmail[credential.Email] = &clone
	return nil
}

func (r *stubCredentialRepo) FindByEmail(_ context.Context, email string) (*entity.Credential, error) {
	credential, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	clone := *credential
	return &clone, nil
}

func (r *stubCredentialRepo) FindByID(_ context.Context, id uint) (*entity.Credential, error) {
	for _, credential := range r.byEmail {
		if credential.ID == id {
			clone := *credential
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubCredentialRepo) Delete(_ context.Context, id uint) error {
	r.deleteCalls = append(r.deleteCalls, id)
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for email, credential := range r.byEmail {
		if credential.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

// stubRegistrar records profile-creation calls and optionally fails them.
type stubRegistrar struct {
	err     error
	created []uint
}

func (s *stubRegistrar) CreateProfile(_ context.Context, id uint, _, _ string, _ entity.Role) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, id)
	return nil
}

func newAuthUsecase(repo *stubCredentialRepo, registrar *stubRegistrar) AuthUsecase {
	tokenService := jwt.NewTokenService(config.JWTConfig{Secret: "test-secret", Expiry: 8 * time.Hour})
	return NewAuthUsecase(testLogger(), repo, registrar, tokenService)
}

func TestAuthUsecase_Register_CreatesCredentialAndProfile(t *testing.T) {
	repo := newStubCredentialRepo()
	registrar := &stubRegistrar{}
	uc := newAuthUsecase(repo, registrar)

	resp, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Dr. Silva",
		Email:    "dr@x.com",
		Password: "Senha123",
		Role:     "medico",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Dr. Silva", resp.Name)
	assert.Equal(t, "dr@x.com", resp.Email)
	assert.Equal(t, entity.RoleDoctor, resp.Role)

	stored, _ := repo.FindByEmail(context.Background(), "dr@x.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "Senha123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Senha123")))
	assert.Equal(t, []uint{stored.ID}, registrar.created, "profile must be created with the credential's id")
}

func TestAuthUsecase_Register_InvalidRole(t *testing.T) {
	repo := newStubCredentialRepo()
	registrar := &stubRegistrar{}
	uc := newAuthUsecase(repo, registrar)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Dr. Silva",
		Email:    "dr@x.com",
		Password: "Senha123",
		Role:     "invalido",
	})
	require.ErrorIs(t, err, ErrInvalidRole)

	stored, _ := repo.FindByEmail(context.Background(), "dr@x.com")
	assert.Nil(t, stored, "no credential may be created on validation failure")
	assert.Empty(t, registrar.created)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	repo := newStubCredentialRepo()
	uc := newAuthUsecase(repo, &stubRegistrar{})

	req := &dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "Senha123", Role: "paciente"}
	_, err := uc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthUsecase_Register_ConstraintRace(t *testing.T) {
	// The pre-check passes (store looks empty) but the insert hits the
	// unique constraint, as happens when two registrations race.
	repo := newStubCredentialRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_credentials_email"}
	uc := newAuthUsecase(repo, &stubRegistrar{})

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name: "A", Email: "a@x.com", Password: "Senha123", Role: "paciente",
	})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthUsecase_Register_CompensatesOnProfileFailure(t *testing.T) {
	repo := newStubCredentialRepo()
	registrar := &stubRegistrar{err: errors.New("connection refused")}
	uc := newAuthUsecase(repo, registrar)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Dr. Silva",
		Email:    "dr@x.com",
		Password: "Senha123",
		Role:     "medico",
	})
	require.ErrorIs(t, err, ErrProfileCreation)

	stored, _ := repo.FindByEmail(context.Background(), "dr@x.com")
	assert.Nil(t, stored, "credential must be deleted when the remote step fails")
	assert.Len(t, repo.deleteCalls, 1)
}

func TestAuthUsecase_Register_CompensationFailureLeavesOrphan(t *testing.T) {
	repo := newStubCredentialRepo()
	repo.deleteErr = errors.New("db down")
	registrar := &stubRegistrar{err: errors.New("timeout")}
	uc := newAuthUsecase(repo, registrar)

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name: "A", Email: "a@x.com", Password: "Senha123", Role: "paciente",
	})
	// The caller still sees the profile failure; the orphan is surfaced
	// in logs, not masked by a second error.
	require.ErrorIs(t, err, ErrProfileCreation)
	assert.Len(t, repo.deleteCalls, 1, "compensation is a single best-effort attempt")
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	repo := newStubCredentialRepo()
	uc := newAuthUsecase(repo, &stubRegistrar{})

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Carol", Email: "carol@x.com", Password: "s3creta", Role: "admin",
	})
	require.NoError(t, err)

	tokens, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "carol@x.com", Password: "s3creta"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.Token)
	assert.Equal(t, int64((8 * time.Hour).Seconds()), tokens.ExpiresIn)
}

func TestAuthUsecase_Login_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	repo := newStubCredentialRepo()
	uc := newAuthUsecase(repo, &stubRegistrar{})

	_, err := uc.Register(context.Background(), &dto.RegisterRequest{
		Name: "Bob", Email: "bob@x.com", Password: "Senha123", Role: "paciente",
	})
	require.NoError(t, err)

	_, wrongPassword := uc.Login(context.Background(), &dto.LoginRequest{Email: "bob@x.com", Password: "nope"})
	_, unknownEmail := uc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@x.com", Password: "nope"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}
