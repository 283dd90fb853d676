package http

import (
	"net/http"

	"clinical-platform/internal/delivery/http/handler"
	"clinical-platform/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// AppointmentsRouter wires the appointment service. Every appointment
// route requires a verified token; ownership scoping happens in the
// usecase because it depends on the loaded resource.
type AppointmentsRouter struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
}

func NewAppointmentsRouter(
	appointmentHandler *handler.AppointmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *AppointmentsRouter {
	return &AppointmentsRouter{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
		metricsMiddleware:   metricsMiddleware,
	}
}

func (r *AppointmentsRouter) Setup() *mux.Router {
	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", healthCheck).Methods(http.MethodGet)
	api.Handle("/metrics", metricsHandler()).Methods(http.MethodGet)

	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}
