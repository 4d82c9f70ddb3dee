package routers

import (
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/app/services/core/reviews"
	"caseflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, mw *middlewares.Middlewares, reviewController *reviews.ReviewController) {
	router.Get("/", reviewController.GetDoctorReview)
	router.With(mw.RequireRoles(constvars.RoleVerifier)).Get("/reviewers", reviewController.ListAvailableReviewers)
	router.With(mw.RequireRoles(constvars.RoleVerifier)).Post("/assign", reviewController.AssignDoctorReviewer)
	router.With(mw.RequireRoles(constvars.RoleDoctor)).Post("/submit", reviewController.SubmitDoctorReview)
}
