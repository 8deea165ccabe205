package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/credora/creator-platform/docs"
	"github.com/credora/creator-platform/internal/api"
	"github.com/credora/creator-platform/internal/api/metrics"
	"github.com/credora/creator-platform/internal/core/ports"
	"github.com/credora/creator-platform/internal/core/service"
	"github.com/credora/creator-platform/internal/infrastructure/config"
	"github.com/credora/creator-platform/internal/infrastructure/db/memory"
	mongodb "github.com/credora/creator-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/credora/creator-platform/internal/infrastructure/db/redis"
	"github.com/credora/creator-platform/internal/infrastructure/queue"
	"github.com/credora/creator-platform/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

// @title           Creator Platform API
// @version         1.0
// @description     Role-gated marketplace connecting brands with content creators.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "creator-platform",
	})

	// MongoDB backs all content data regardless of mode.
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	// Sessions live in Redis normally and in process memory in demo mode.
	var (
		sessions    ports.SessionStore
		redisClient *goredis.Client
	)
	if cfg.DemoMode {
		sessions = memory.NewSessionStore(cfg.Session.Timeout)
		log.Info().Msg("demo mode: in-memory session store, fixed demo credentials")
	} else {
		redisClient, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = redisClient.Close()
		}()
		sessions = redisdb.NewSessionStore(redisClient, cfg.Session.Timeout, log)
	}

	// Repositories.
	users := mongodb.NewUserRepository(db)
	creators := mongodb.NewCreatorRepository(db)
	saved := mongodb.NewSavedListRepository(db)
	applications := mongodb.NewApplicationRepository(db)
	campaigns := mongodb.NewCampaignRepository(db)
	weights := mongodb.NewWeightsRepository(db)

	// Session expiry enforcement: exact deadline timer plus recurring poll.
	watcher := service.NewExpiryWatcher(sessions, cfg.Session.PollInterval, log)
	watcher.OnExpire = func(sessionID, cause string) {
		metrics.SessionsExpiredTotal.WithLabelValues(cause).Inc()
	}
	defer watcher.Stop()

	// Services.
	authService := service.NewAuthService(users, sessions, watcher, cfg.JWTSecret, cfg.Session.Timeout, cfg.DemoMode, log)
	creatorService := service.NewCreatorService(creators, log)
	savedService := service.NewSavedListService(saved, creators, log)
	applicationService := service.NewApplicationService(applications, log)
	campaignService := service.NewCampaignService(campaigns, log)
	ratingService := service.NewRatingService(creators, weights, log)

	// Rating assignments run asynchronously, sharded by creator ID so score
	// history stays ordered per creator.
	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	defer stopDispatcher()
	dispatcher := queue.NewDispatcher(cfg.Rating.Workers, ratingService, log)
	dispatcher.Start(dispatcherCtx)

	e := api.NewRouter(api.Dependencies{
		Config:       cfg,
		Logger:       log,
		Mongo:        db,
		Redis:        redisClient,
		Sessions:     sessions,
		Auth:         authService,
		Creators:     creatorService,
		Saved:        savedService,
		Campaigns:    campaignService,
		Applications: applicationService,
		Ratings:      ratingService,
		Dispatcher:   dispatcher,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
