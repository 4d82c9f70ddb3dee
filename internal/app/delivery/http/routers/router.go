package routers

import (
	"fmt"
	"time"

	"caseflow-service/internal/app/config"
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/app/services/core/auth"
	"caseflow-service/internal/app/services/core/cases"
	"caseflow-service/internal/app/services/core/checklist"
	"caseflow-service/internal/app/services/core/intake"
	"caseflow-service/internal/app/services/core/reviews"
	"caseflow-service/internal/app/services/core/settlements"
	"caseflow-service/internal/app/services/shared/audit"
	"caseflow-service/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Auth       *auth.AuthController
	Case       *cases.CaseController
	Checklist  *checklist.ChecklistController
	Intake     *intake.IntakeController
	Review     *reviews.ReviewController
	Settlement *settlements.SettlementController
	Audit      *audit.AuditController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	requestLog *logrus.Logger,
	mw *middlewares.Middlewares,
	controllers Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestID)
	router.Use(mw.BodyLimit)
	router.Use(mw.Logging)
	router.Use(mw.RequestLogger(internalConfig.App, requestLog))
	router.Use(mw.CollectMetrics)
	router.Use(mw.ErrorHandler)

	router.Get("/metrics", metrics.MetricsHandler().ServeHTTP)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, mw, controllers.Auth)
			})

			r.Route("/cases", func(r chi.Router) {
				attachCaseRoutes(r, mw, controllers)
			})
		})
	})
}
