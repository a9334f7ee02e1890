package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/nextgencars/backend/docs"
	"github.com/nextgencars/backend/internal/api/handlers"
	"github.com/nextgencars/backend/internal/api/middleware"
	"github.com/nextgencars/backend/internal/api/routes"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/internal/cache"
	"github.com/nextgencars/backend/internal/config"
	"github.com/nextgencars/backend/internal/config/db"
	"github.com/nextgencars/backend/internal/cron"
	"github.com/nextgencars/backend/internal/events"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/nextgencars/backend/internal/storage"
	"github.com/nextgencars/backend/pkg/logger"
	"go.uber.org/zap"
)

// @title NextGen Cars API
// @version 1.0
// @description Work orders, clients and vehicles of the NextGen Cars workshop.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	envErr := config.LoadConfig()

	log, err := logger.New(config.LogLevel, config.LogFormat, "nextgencars-api")
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)
	if envErr != nil {
		log.Debug("no .env file loaded", zap.Error(envErr))
	}

	middleware.Init()

	if err := db.Init(); err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	if err := db.Migrate(db.DB); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := events.NewHub()
	defer hub.Close()
	publishers := events.Multi{hub}
	if config.MqttBroker != "" {
		mirror, client, err := events.DialMQTT(config.MqttBroker, config.MqttClientID, config.MqttTopicPrefix)
		if err != nil {
			log.Warn("mqtt unavailable, events stay in-process", zap.String("broker", config.MqttBroker), zap.Error(err))
		} else {
			defer client.Disconnect(250)
			publishers = append(publishers, mirror)
		}
	}

	deps := application.Deps{
		Events:     publishers,
		PresignTTL: config.PresignTTL,
	}
	if rdb := cache.NewRedisClient(config.RedisAddr, config.RedisPassword, config.RedisDB); rdb != nil {
		defer func() { _ = rdb.Close() }()
		deps.Stats = cache.NewStatsCache(rdb, config.DashboardCacheTTL)
	}
	if config.MinioEndpoint != "" {
		store, err := storage.NewMinioStore(ctx, storage.Options{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			Bucket:    config.MinioBucket,
			Region:    config.MinioRegion,
			UseSSL:    config.MinioUseSSL,
		})
		if err != nil {
			log.Warn("object storage unavailable, attachments disabled", zap.Error(err))
		} else {
			deps.Store = store
		}
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, deps)

	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays)

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(config.CORSOrigins))
	router.Use(middleware.LoggingMiddleware())
	routes.RegisterRoutes(router, handlers.New(services, hub))

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
