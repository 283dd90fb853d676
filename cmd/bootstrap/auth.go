package bootstrap

import (
	"fmt"

	"clinical-platform/config"
	deliveryHttp "clinical-platform/internal/delivery/http"
	"clinical-platform/internal/delivery/http/handler"
	"clinical-platform/internal/delivery/http/middleware"
	"clinical-platform/internal/infrastructure/database"
	"clinical-platform/internal/repository"
	"clinical-platform/internal/service"
	"clinical-platform/internal/usecase"
	"clinical-platform/pkg/jwt"
	"clinical-platform/pkg/validator"

	"github.com/sirupsen/logrus"
)

// NewAuthApp assembles the authentication service: the registration saga
// (credential store + remote profile registrar) and token issuance.
func NewAuthApp() (*App, error) {
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

	if err := database.RunMigrations(db, "auth"); err != nil {
		return nil, err
	}

	log := logrus.StandardLogger()
	tokenService := jwt.NewTokenService(cfg.JWT)
	customValidator := validator.NewValidator()

	credentialRepo := repository.NewCredentialRepository(db)
	profileRegistrar := service.NewProfileRegistrar(cfg.ProfileService, cfg.Internal)

	authUsecase := usecase.NewAuthUsecase(log, credentialRepo, profileRegistrar, tokenService)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)

	router := deliveryHttp.NewAuthRouter(
		authHandler,
		middleware.NewCORSMiddleware(),
		middleware.NewRequestIDMiddleware(log),
		middleware.NewMetricsMiddleware("auth"),
	)

	app.Server = newServer(cfg, router.Setup())
	return app, nil
}
