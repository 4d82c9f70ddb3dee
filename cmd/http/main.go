package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caseflow-service/internal/app/config"
	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/app/delivery/http/routers"
	"caseflow-service/internal/app/drivers/database"
	"caseflow-service/internal/app/drivers/logger"
	"caseflow-service/internal/app/drivers/messaging"
	driverstorage "caseflow-service/internal/app/drivers/storage"
	"caseflow-service/internal/app/services/core/auth"
	"caseflow-service/internal/app/services/core/cases"
	"caseflow-service/internal/app/services/core/checklist"
	"caseflow-service/internal/app/services/core/intake"
	"caseflow-service/internal/app/services/core/reviews"
	"caseflow-service/internal/app/services/core/settlements"
	"caseflow-service/internal/app/services/core/users"
	"caseflow-service/internal/app/services/shared/audit"
	sharedredis "caseflow-service/internal/app/services/shared/redis"
	sharedstorage "caseflow-service/internal/app/services/shared/storage"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.App.StorageProvider == constvars.StorageProviderMongo {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
		bootstrap.Redis = database.NewRedisClient(driverConfig)
		bootstrap.Minio = driverstorage.NewMinio(driverConfig)
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Address + internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server starting",
			zap.String("address", server.Addr),
			zap.String("storage_provider", internalConfig.App.StorageProvider),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	var (
		redisRepository contracts.RedisRepository
		fileStorage     contracts.FileStorage

		userRepository       contracts.UserRepository
		caseRepository       contracts.CaseRepository
		checklistRepository  contracts.ChecklistRepository
		intakeRepository     contracts.IntakeRepository
		reviewRepository     contracts.ReviewRepository
		settlementRepository contracts.SettlementRepository
		auditRepository      contracts.AuditRepository
	)

	switch internalConfig.App.StorageProvider {
	case constvars.StorageProviderMongo:
		redisRepository = sharedredis.NewRedisRepository(bootstrap.Redis)
		fileStorage = sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

		userRepository = users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
		caseRepository = cases.NewCaseMongoRepository(bootstrap.MongoDB, dbName)
		checklistRepository = checklist.NewChecklistMongoRepository(bootstrap.MongoDB, dbName)
		intakeRepository = intake.NewIntakeMongoRepository(bootstrap.MongoDB, dbName)
		reviewRepository = reviews.NewReviewMongoRepository(bootstrap.MongoDB, dbName)
		settlementRepository = settlements.NewSettlementMongoRepository(bootstrap.MongoDB, dbName)
		auditRepository = audit.NewAuditMongoRepository(bootstrap.MongoDB, dbName)
	default:
		redisRepository = sharedredis.NewMemoryRepository()
		fileStorage = sharedstorage.NewMemoryStorage()

		userRepository = users.NewUserLocalRepository()
		caseRepository = cases.NewCaseLocalRepository()
		checklistRepository = checklist.NewChecklistLocalRepository()
		intakeRepository = intake.NewIntakeLocalRepository()
		reviewRepository = reviews.NewReviewLocalRepository()
		settlementRepository = settlements.NewSettlementLocalRepository()
		auditRepository = audit.NewAuditLocalRepository()
	}

	auditService, err := audit.NewAuditService(auditRepository, bootstrap.RabbitMQ, internalConfig.App.AuditQueueName, log)
	if err != nil {
		log.Fatal("Failed to initialize audit service", zap.Error(err))
	}

	checklistUsecase := checklist.NewChecklistUsecase(checklistRepository, caseRepository, fileStorage, auditService)
	intakeUsecase := intake.NewIntakeUsecase(intakeRepository, caseRepository, checklistUsecase, auditService)
	reviewUsecase := reviews.NewReviewUsecase(reviewRepository, userRepository, caseRepository, intakeUsecase, auditService)
	caseUsecase := cases.NewCaseUsecase(caseRepository, intakeUsecase, reviewUsecase, checklistUsecase, auditService)
	settlementUsecase := settlements.NewSettlementUsecase(settlementRepository, caseRepository, auditService)
	auditUsecase := audit.NewAuditUsecase(auditRepository, caseRepository)
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, internalConfig)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSeed()
	if err := authUsecase.EnsureBootstrapAdmin(seedCtx); err != nil {
		log.Fatal("Failed to seed bootstrap admin", zap.Error(err))
	}

	controllers := routers.Controllers{
		Auth:       auth.NewAuthController(log, authUsecase),
		Case:       cases.NewCaseController(log, caseUsecase),
		Checklist:  checklist.NewChecklistController(log, checklistUsecase, internalConfig),
		Intake:     intake.NewIntakeController(log, intakeUsecase),
		Review:     reviews.NewReviewController(log, reviewUsecase),
		Settlement: settlements.NewSettlementController(log, settlementUsecase),
		Audit:      audit.NewAuditController(log, auditUsecase),
	}

	collector := metrics.NewCollector("caseflow")
	mw := middlewares.NewMiddlewares(log, redisRepository, internalConfig, collector)
	requestLog := logger.NewLogrusLogger(internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, requestLog, mw, controllers)
}
