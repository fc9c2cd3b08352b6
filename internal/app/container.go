package app

import (
	"context"
	"log"
	"time"

	"team-align/internal/config"
	"team-align/internal/database"
	dbpostgres "team-align/internal/database/postgres"
	"team-align/internal/infrastructure/cache"
	"team-align/internal/infrastructure/metrics"
	"team-align/internal/repository"
	"team-align/internal/usecase"
)

// Container wires config, infrastructure and usecases for the server.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	DB      database.DB
	Cache   *cache.Redis
	Metrics *metrics.Metrics

	Recommendations usecase.RecommendationUsecase
	Balance         usecase.BalanceUsecase
	Forecast        usecase.ForecastUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)
	m := metrics.New()

	memberRepo := repository.NewPostgresMemberRepository(db)
	workItemRepo := repository.NewPostgresWorkItemRepository(db)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		DB:              db,
		Cache:           redisCache,
		Metrics:         m,
		Recommendations: usecase.NewRecommendationUsecase(workItemRepo, memberRepo, redisCache, m),
		Balance:         usecase.NewBalanceUsecase(memberRepo, workItemRepo, m),
		Forecast:        usecase.NewForecastUsecase(memberRepo, workItemRepo, m),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
