package routers

import (
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachCaseRoutes(router chi.Router, mw *middlewares.Middlewares, controllers Controllers) {
	router.Use(mw.Authenticate)

	router.With(mw.RequireRoles(constvars.RoleHospital)).Post("/", controllers.Case.CreateCase)
	router.Get("/", controllers.Case.ListCases)
	router.Get("/{caseID}", controllers.Case.GetCaseByID)

	router.With(mw.RequireRoles(constvars.RoleHospital)).Post("/{caseID}/submit", controllers.Case.SubmitCase)
	router.With(mw.RequireRoles(constvars.RoleVerifier)).Post("/{caseID}/start-verification", controllers.Case.StartVerification)
	router.With(mw.RequireRoles(constvars.RoleVerifier)).Post("/{caseID}/send-to-committee", controllers.Case.SendToCommittee)
	router.With(mw.RequireRoles(constvars.RoleVerifier)).Post("/{caseID}/return", controllers.Case.ReturnToHospital)
	router.With(mw.RequireRoles(constvars.RoleCommittee)).Post("/{caseID}/committee-decision", controllers.Case.SubmitCommitteeDecision)

	router.Get("/{caseID}/audit", controllers.Audit.GetCaseAuditTrail)

	router.Route("/{caseID}/documents", func(r chi.Router) {
		attachChecklistRoutes(r, mw, controllers.Checklist)
	})
	router.Route("/{caseID}/intake", func(r chi.Router) {
		attachIntakeRoutes(r, mw, controllers.Intake)
	})
	router.Get("/{caseID}/submit-readiness", controllers.Intake.GetCaseSubmitReadiness)

	router.Route("/{caseID}/review", func(r chi.Router) {
		attachReviewRoutes(r, mw, controllers.Review)
	})
	router.Route("/{caseID}/settlement", func(r chi.Router) {
		attachSettlementRoutes(r, mw, controllers.Settlement)
	})
	router.With(mw.RequireRoles(constvars.RoleLeadership)).Post("/{caseID}/close", controllers.Settlement.CloseCase)
}
