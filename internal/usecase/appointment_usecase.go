package usecase

import (
	"context"
	"errors"

	"clinical-platform/internal/converter"
	"clinical-platform/internal/delivery/dto"
	"clinical-platform/internal/delivery/http/middleware"
	"clinical-platform/internal/domain/entity"
	"clinical-platform/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAccessDenied        = errors.New("access denied")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrMissingPrincipal    = errors.New("principal not found in context")
)

type AppointmentUsecase interface {
	List(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(log *logrus.Logger, appointmentRepo repository.AppointmentRepository) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

func (u *appointmentUsecase) principal(ctx context.Context) (uint, entity.Role, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return 0, "", ErrMissingPrincipal
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return 0, "", ErrMissingPrincipal
	}
	return userID, role, nil
}

// List scopes the result set by the caller's role: patients see only
// their own appointments, doctors only theirs, and admins get exactly the
// filters they asked for.
func (u *appointmentUsecase) List(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, error) {
	userID, role, err := u.principal(ctx)
	if err != nil {
		return nil, err
	}

	var filter entity.AppointmentFilter
	switch role {
	case entity.RolePatient:
		filter.PatientID = userID
	case entity.RoleDoctor:
		filter.DoctorID = userID
	case entity.RoleAdmin:
		if query.Status != "" {
			status := entity.AppointmentStatus(query.Status)
			if !status.IsValid() {
				return nil, ErrInvalidStatus
			}
			filter.Status = status
		}
		filter.DoctorID = query.DoctorID
		filter.PatientID = query.PatientID
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// authorize applies the ownership rule for single-resource operations.
// Existence is checked by the caller first, so probing an absent id and
// probing someone else's id stay distinguishable as 404 vs 403.
func authorize(appointment *entity.Appointment, userID uint, role entity.Role) error {
	switch role {
	case entity.RolePatient:
		if appointment.PatientID != userID {
			return ErrAccessDenied
		}
	case entity.RoleDoctor:
		if appointment.DoctorID != userID {
			return ErrAccessDenied
		}
	}
	// Admin bypasses ownership.
	return nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	userID, role, err := u.principal(ctx)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := authorize(appointment, userID, role); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Create lets a patient book only for themselves and a doctor only for
// their own schedule; an admin may set either side freely.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, role, err := u.principal(ctx)
	if err != nil {
		return nil, err
	}

	switch role {
	case entity.RolePatient:
		if req.PatientID != userID {
			return nil, ErrAccessDenied
		}
	case entity.RoleDoctor:
		if req.DoctorID != userID {
			return nil, ErrAccessDenied
		}
	}

	appointment := &entity.Appointment{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
		Status:      entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, role, err := u.principal(ctx)
	if err != nil {
		return nil, err
	}

	// Status is validated before the record is even loaded, so a bad
	// value can never leave a half-applied update behind.
	var status entity.AppointmentStatus
	if req.Status != nil {
		status = entity.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := authorize(appointment, userID, role); err != nil {
		return nil, err
	}

	if req.ScheduledAt != nil {
		appointment.ScheduledAt = *req.ScheduledAt
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}
	if req.Diagnosis != nil {
		appointment.Diagnosis = req.Diagnosis
	}
	if req.Status != nil {
		// No transition table: any of the three values may overwrite any
		// other, including reopening a completed appointment.
		appointment.Status = status
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uint) error {
	userID, role, err := u.principal(ctx)
	if err != nil {
		return err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := authorize(appointment, userID, role); err != nil {
		return err
	}

	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}

	return nil
}
