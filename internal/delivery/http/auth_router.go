package http

import (
	"net/http"

	"clinical-platform/internal/delivery/http/handler"
	"clinical-platform/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// AuthRouter wires the authentication service: registration and login are
// public; everything identity-related beyond that lives in the profile
// service.
type AuthRouter struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
}

func NewAuthRouter(
	authHandler *handler.AuthHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *AuthRouter {
	return &AuthRouter{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
		metricsMiddleware:   metricsMiddleware,
	}
}

func (r *AuthRouter) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", metricsHandler()).Methods(http.MethodGet)

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}
