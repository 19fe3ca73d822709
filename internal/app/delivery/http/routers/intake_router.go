package routers

import (
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/intakes"

	"github.com/go-chi/chi/v5"
)

func attachFormRoutes(router chi.Router, _ *middlewares.Middlewares, intakeController *intakes.IntakeController) {
	router.Get("/", intakeController.GetForm)
	router.Get("/{form_id}", intakeController.GetForm)
	router.Post("/{form_id}/steps/{step}/layout", intakeController.GetStepLayout)
}

func attachIntakeRoutes(router chi.Router, _ *middlewares.Middlewares, intakeController *intakes.IntakeController) {
	router.Post("/validate-step", intakeController.ValidateStep)
	router.Post("/", intakeController.Submit)
}

func attachPatientRoutes(router chi.Router, _ *middlewares.Middlewares, intakeController *intakes.IntakeController) {
	router.Get("/", intakeController.SearchPatients)
	router.Get("/{patient_id}", intakeController.GetPatient)
}
