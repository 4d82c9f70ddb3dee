package routers

import (
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/app/services/core/settlements"
	"caseflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSettlementRoutes(router chi.Router, mw *middlewares.Middlewares, settlementController *settlements.SettlementController) {
	router.Get("/", settlementController.GetSettlement)
	router.With(mw.RequireRoles()).Put("/", settlementController.SaveSettlement)
	router.With(mw.RequireRoles(constvars.RoleLeadership)).Post("/director-review", settlementController.SubmitDirectorReview)
}
