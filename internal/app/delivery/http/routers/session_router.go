package routers

import (
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/sessions"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, _ *middlewares.Middlewares, sessionController *sessions.SessionController) {
	router.Post("/", sessionController.SaveProgress)
	router.Get("/{patient_id}", sessionController.GetProgress)
	router.Delete("/{patient_id}", sessionController.ClearProgress)
}
