package routers

import (
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/app/services/core/intake"
	"caseflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachIntakeRoutes(router chi.Router, mw *middlewares.Middlewares, intakeController *intake.IntakeController) {
	router.Get("/", intakeController.GetIntakeData)
	router.Get("/completeness", intakeController.GetIntakeCompleteness)
	router.With(mw.RequireRoles(constvars.RoleHospital, constvars.RoleVerifier)).Put("/", intakeController.SaveIntakeData)
}
