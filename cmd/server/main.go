package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Franco-15/classroom-backend/internal/auth"
	"github.com/Franco-15/classroom-backend/internal/cache"
	"github.com/Franco-15/classroom-backend/internal/config"
	"github.com/Franco-15/classroom-backend/internal/events"
	"github.com/Franco-15/classroom-backend/internal/logging"
	"github.com/Franco-15/classroom-backend/internal/repository"
	"github.com/Franco-15/classroom-backend/internal/server/httpapi"
	"github.com/Franco-15/classroom-backend/internal/service"
	"github.com/Franco-15/classroom-backend/pkg/db"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}
	if cfg.Env == "development" {
		if devLogger, err := zap.NewDevelopment(); err == nil {
			logger = logging.New(devLogger)
		}
	}

	postgres, err := db.NewPostgres(cfg.PostgresDSN, cfg.MigrationsDir)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer postgres.Close()

	var publisher service.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := events.NewProducer(events.ProducerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			logger.Fatal(ctx, "cannot create kafka producer", zap.Error(err))
		}
		defer producer.Close()
		publisher = producer
	} else {
		logger.Info(ctx, "kafka brokers not configured, events disabled")
	}

	var readCache httpapi.Cache
	if cfg.RedisURL != "" {
		redisConn := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
		defer redisConn.Close()
		readCache = cache.NewRedisCache(redisConn)
	}

	userRepo := repository.NewUserRepository(postgres.DB())
	classRepo := repository.NewClassRepository(postgres.DB())
	enrollmentRepo := repository.NewEnrollmentRepository(postgres.DB())
	taskRepo := repository.NewTaskRepository(postgres.DB())
	submissionRepo := repository.NewSubmissionRepository(postgres.DB())
	announcementRepo := repository.NewAnnouncementRepository(postgres.DB())
	materialRepo := repository.NewMaterialRepository(postgres.DB())

	tokens := auth.NewTokenManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	clock := service.SystemClock{}

	membership := service.NewMembershipService(classRepo, enrollmentRepo)
	authService := service.NewAuthService(userRepo, tokens)
	classService := service.NewClassService(classRepo, membership, publisher, clock)
	taskService := service.NewTaskService(taskRepo, classRepo, membership, publisher, clock)
	submissionService := service.NewSubmissionService(submissionRepo, taskRepo, classRepo, membership, publisher, clock)
	announcementService := service.NewAnnouncementService(announcementRepo, classRepo, membership)
	materialService := service.NewMaterialService(materialRepo, classRepo, membership)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		Logger:        logger,
		Auth:          authService,
		Classes:       classService,
		Tasks:         taskService,
		Submissions:   submissionService,
		Announcements: announcementService,
		Materials:     materialService,
		Cache:         readCache,
		CacheTTL:      cfg.CacheTTL,
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "server stopped")
}
