package routers

import (
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.With(mw.Authenticate).Post("/logout", authController.Logout)
	// Admin only: RequireRoles with no extra roles.
	router.With(mw.Authenticate, mw.RequireRoles()).Post("/register", authController.RegisterUser)
}
