package routers

import (
	"fmt"
	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/admins"
	"intake-service/internal/app/services/intakes"
	"intake-service/internal/app/services/sessions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	intakeController *intakes.IntakeController,
	sessionController *sessions.SessionController,
	adminController *admins.AdminController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "x-api-key"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/forms", func(r chi.Router) {
				attachFormRoutes(r, middlewares, intakeController)
			})

			r.Route("/intakes", func(r chi.Router) {
				attachIntakeRoutes(r, middlewares, intakeController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, intakeController)
			})

			r.Route("/progress", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, sessionController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, adminController)
			})
		})
	})
}
