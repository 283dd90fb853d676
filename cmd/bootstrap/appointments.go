package bootstrap

import (
	"fmt"

	"clinical-platform/config"
	deliveryHttp "clinical-platform/internal/delivery/http"
	"clinical-platform/internal/delivery/http/handler"
	"clinical-platform/internal/delivery/http/middleware"
	"clinical-platform/internal/infrastructure/database"
	"clinical-platform/internal/repository"
	"clinical-platform/internal/usecase"
	"clinical-platform/pkg/jwt"
	"clinical-platform/pkg/validator"

	"github.com/sirupsen/logrus"
)

// NewAppointmentsApp assembles the appointment service. It verifies the
// same tokens as the other services but owns only appointment data.
func NewAppointmentsApp() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.RunMigrations(db, "appointments"); err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	tokenService := jwt.NewTokenService(cfg.JWT)
	customValidator := validator.NewValidator()

	appointmentRepo := repository.NewAppointmentRepository(db)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	router := deliveryHttp.NewAppointmentsRouter(
		appointmentHandler,
		middleware.NewAuthMiddleware(tokenService),
		middleware.NewCORSMiddleware(),
		middleware.NewRequestIDMiddleware(log),
		middleware.NewMetricsMiddleware("appointments"),
	)

	app.Server = newServer(cfg, router.Setup())
	return app, nil
}
