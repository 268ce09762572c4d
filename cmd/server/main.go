package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ondohomes/marketplace/internal/api"
	"github.com/ondohomes/marketplace/internal/api/handler"
	"github.com/ondohomes/marketplace/internal/core/ports"
	"github.com/ondohomes/marketplace/internal/core/service"
	"github.com/ondohomes/marketplace/internal/infrastructure/assist"
	"github.com/ondohomes/marketplace/internal/infrastructure/config"
	mongodb "github.com/ondohomes/marketplace/internal/infrastructure/db/mongo"
	redisdb "github.com/ondohomes/marketplace/internal/infrastructure/db/redis"
	"github.com/ondohomes/marketplace/internal/infrastructure/media"
	"github.com/ondohomes/marketplace/internal/infrastructure/queue"
	"github.com/ondohomes/marketplace/pkg/logger"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Durable store ---
	var (
		store        ports.KVStore
		redisClient  *redis.Client
		healthChecks = map[string]handler.Pinger{}
	)
	switch cfg.StoreBackend {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		store = mongodb.NewStore(db)
		healthChecks["mongo"] = func(c echo.Context) error {
			return client.Ping(c.Request().Context(), nil)
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo store")

	default:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = client.Close()
		}()
		redisClient = client
		store = redisdb.NewStore(client)
		healthChecks["redis"] = func(c echo.Context) error {
			return client.Ping(c.Request().Context()).Err()
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis store")
	}

	// --- Media storage + upload pool ---
	var mediaStore ports.MediaStore
	if cfg.Media.Backend == "minio" {
		minioStore, err := media.NewMinioStore(ctx, media.MinioConfig{
			Endpoint:  cfg.Media.MinioEndpoint,
			AccessKey: cfg.Media.MinioAccessKey,
			SecretKey: cfg.Media.MinioSecretKey,
			Bucket:    cfg.Media.MinioBucket,
			UseSSL:    cfg.Media.MinioUseSSL,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("minio initialisation failed")
		}
		mediaStore = minioStore
	} else {
		mediaStore = media.NewSimulatedStore(cfg.Media.SimulatedDelay, log)
	}

	uploadPool := queue.NewUploadPool(cfg.UploadWorkers, mediaStore, log)
	uploadPool.Start(ctx)

	// --- Assist collaborator ---
	// The nearby cache rides on the redis client when redis is the store;
	// with the mongo backend assist simply runs uncached.
	var nearbyCache assist.NearbyCache
	if redisClient != nil {
		nearbyCache = redisdb.NewNearbyCache(redisClient)
	}
	assistService := assist.NewMockAssist(nearbyCache, log)

	// --- Core services ---
	sessionService := service.NewSessionService(store, cfg.SignInDelay, log)
	listingService := service.NewListingService(store, log)
	savedService := service.NewSavedService(store, log)
	submissionService := service.NewSubmissionService(
		listingService, sessionService, assistService, uploadPool, log,
	)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Logger:       log,
		Session:      sessionService,
		Listings:     listingService,
		Saved:        savedService,
		Submissions:  submissionService,
		Assist:       assistService,
		HealthChecks: healthChecks,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
