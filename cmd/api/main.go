package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillshare/skillshare-api/internal/api"
	"github.com/skillshare/skillshare-api/internal/core/service"
	"github.com/skillshare/skillshare-api/internal/infrastructure/config"
	mongodb "github.com/skillshare/skillshare-api/internal/infrastructure/db/mongo"
	redisdb "github.com/skillshare/skillshare-api/internal/infrastructure/db/redis"
	"github.com/skillshare/skillshare-api/internal/infrastructure/queue"
	"github.com/skillshare/skillshare-api/pkg/logger"

	_ "github.com/skillshare/skillshare-api/docs" // swagger docs
)

// @title           SkillShare API
// @version         1.0
// @description     Marketplace API connecting users who post tasks with providers who list skills.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	logg.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting skillshare api")

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logg.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	ensureIndexes(ctx, db, logg)

	// Audit trail: mutations enqueue events, sharded workers persist them.
	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, logg)
	dispatcher := queue.NewActivityDispatcher(cfg.ActivityWorkers, activityService, logg)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Activity:  dispatcher,
		Logger:    logg,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logg.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("forced shutdown")
		os.Exit(1)
	}

	logg.Info().Msg("server exited")
}

// ensureIndexes creates collection indexes at startup. Failures are logged
// rather than fatal: the API can serve without them, just slower.
func ensureIndexes(ctx context.Context, db *mongo.Database, logg zerolog.Logger) {
	repos := map[string]interface {
		EnsureIndexes(context.Context) error
	}{
		"users":  mongodb.NewAuthRepository(db),
		"skills": mongodb.NewSkillRepository(db),
		"tasks":  mongodb.NewTaskRepository(db),
	}
	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			logg.Warn().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}
}
