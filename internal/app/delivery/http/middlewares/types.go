package middlewares

import (
	"caseflow-service/internal/app/config"
	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Metrics         *metrics.Collector
}

func NewMiddlewares(
	log *zap.Logger,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	collector *metrics.Collector,
) *Middlewares {
	return &Middlewares{
		Log:             log,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Metrics:         collector,
	}
}
