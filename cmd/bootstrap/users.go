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

// NewUsersApp assembles the profile service: the machine-gated internal
// creation endpoint plus the admin identity management surface.
func NewUsersApp() (*App, error) {
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

	if err := database.RunMigrations(db, "users"); err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	tokenService := jwt.NewTokenService(cfg.JWT)
	customValidator := validator.NewValidator()

	profileRepo := repository.NewProfileRepository(db)
	profileUsecase := usecase.NewProfileUsecase(log, profileRepo)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)

	router := deliveryHttp.NewUsersRouter(
		profileHandler,
		middleware.NewAuthMiddleware(tokenService),
		middleware.NewInternalKeyMiddleware(cfg.Internal.ServiceKey),
		middleware.NewCORSMiddleware(),
		middleware.NewRequestIDMiddleware(log),
		middleware.NewMetricsMiddleware("users"),
	)

	app.Server = newServer(cfg, router.Setup())
	return app, nil
}
