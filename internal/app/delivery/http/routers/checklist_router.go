package routers

import (
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/app/services/core/checklist"
	"caseflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachChecklistRoutes(router chi.Router, mw *middlewares.Middlewares, checklistController *checklist.ChecklistController) {
	router.Get("/", checklistController.GetCaseDocuments)
	router.Get("/readiness", checklistController.GetChecklistReadiness)

	router.With(mw.RequireRoles(constvars.RoleHospital)).Post("/{docID}/upload", checklistController.UploadDocument)
	router.With(mw.RequireRoles(constvars.RoleVerifier)).Put("/{docID}/status", checklistController.UpdateDocumentStatus)
	// Admin only: RequireRoles with no extra roles.
	router.With(mw.RequireRoles()).Post("/{docID}/unverify", checklistController.UnverifyDocument)
}
