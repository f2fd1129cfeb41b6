package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/shaunfitzgarald/job-tracker/internal/cache"
	"github.com/shaunfitzgarald/job-tracker/internal/config"
	"github.com/shaunfitzgarald/job-tracker/internal/database"
	"github.com/shaunfitzgarald/job-tracker/internal/handler"
	"github.com/shaunfitzgarald/job-tracker/internal/logger"
	"github.com/shaunfitzgarald/job-tracker/internal/repository"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Application
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, redisClient); err != nil {
		// analytics snapshots are recomputed on miss, so a missing cache is
		// not fatal
		sugar.Warnw("redis unavailable, analytics caching disabled", "err", err)
		redisClient = nil
	}
	analyticsCache := cache.New(redisClient, cfg.Redis.AnalyticsTTL)

	repo := repository.NewRepository(pool)

	handlerApp := &handler.Application{
		Logger:     log,
		Repository: repo,
		Cache:      analyticsCache,
		JwtSecret:  cfg.JWT.Secret,
		JwtTTL:     cfg.JWT.AccessTokenTTL,
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
