package routers

import (
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/admins"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *admins.AdminController) {
	router.With(middlewares.APIKeyAuth).Post("/auth/token", adminController.IssueToken)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.AdminAuth)

		r.Get("/intakes", adminController.ListIntakes)
		r.Get("/intakes/{submission_id}", adminController.GetIntake)
		r.Delete("/intakes/{submission_id}", adminController.DeleteIntake)

		r.Get("/patients/{patient_id}/forms", adminController.ListPatientForms)
		r.Get("/forms/{group_id}", adminController.GetFormDetails)
		r.Delete("/forms/{group_id}", adminController.DeleteRemoteForm)
	})
}
