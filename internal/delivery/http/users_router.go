package http

import (
	"net/http"

	"clinical-platform/internal/delivery/http/handler"
	"clinical-platform/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// UsersRouter wires the profile service. The internal creation endpoint is
// gated by the machine credential only; the administrative surface needs a
// user token with the admin role.
type UsersRouter struct {
	router                *mux.Router
	profileHandler        *handler.ProfileHandler
	authMiddleware        *middleware.AuthMiddleware
	internalKeyMiddleware *middleware.InternalKeyMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	requestIDMiddleware   *middleware.RequestIDMiddleware
	metricsMiddleware     *middleware.MetricsMiddleware
}

func NewUsersRouter(
	profileHandler *handler.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
	internalKeyMiddleware *middleware.InternalKeyMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *UsersRouter {
	return &UsersRouter{
		router:                mux.NewRouter(),
		profileHandler:        profileHandler,
		authMiddleware:        authMiddleware,
		internalKeyMiddleware: internalKeyMiddleware,
		corsMiddleware:        corsMiddleware,
		requestIDMiddleware:   requestIDMiddleware,
		metricsMiddleware:     metricsMiddleware,
	}
}

func (r *UsersRouter) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", metricsHandler()).Methods(http.MethodGet)

	// Service-to-service profile creation (machine credential, no user token)
	internal := api.PathPrefix("/internal").Subrouter()
	internal.Use(r.internalKeyMiddleware.Verify)
	internal.HandleFunc("/profiles", r.profileHandler.CreateInternal).Methods(http.MethodPost)

	// Administrative identity management (token + admin role)
	profiles := api.PathPrefix("/profiles").Subrouter()
	profiles.Use(r.authMiddleware.Authenticate)
	profiles.Use(middleware.RequireAdmin)
	profiles.HandleFunc("", r.profileHandler.List).Methods(http.MethodGet)
	profiles.HandleFunc("/{id}", r.profileHandler.Get).Methods(http.MethodGet)
	profiles.HandleFunc("/{id}", r.profileHandler.Update).Methods(http.MethodPut)
	profiles.HandleFunc("/{id}", r.profileHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}
