package handler

import (
	"encoding/json"
	"net/http"

	"clinical-platform/internal/delivery/dto"
	"clinical-platform/internal/delivery/http/metrics"
	"clinical-platform/internal/usecase"
	"clinical-platform/pkg/response"
	"clinical-platform/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a credential and the matching profile in the profile service as a single logical unit
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRole:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			response.Error(w, http.StatusBadRequest, "Invalid role. Use: medico, paciente or admin", nil)
		case usecase.ErrEmailAlreadyExists:
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			response.Conflict(w, "Email already registered")
		case usecase.ErrProfileCreation:
			metrics.RegistrationsTotal.WithLabelValues("compensated").Inc()
			response.InternalServerError(w, "Failed to create user profile")
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	response.Success(w, http.StatusCreated, "User registered successfully", user)
}

// Login handles user login
// @Summary Login user
// @Description Verifies the password and issues an 8-hour capability token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}
