package main

import (
	"VCS_Registry_Health/internal/health-monitor/api/handler"
	"VCS_Registry_Health/internal/health-monitor/api/routes"
	"VCS_Registry_Health/internal/health-monitor/config"
	"VCS_Registry_Health/internal/health-monitor/notifier"
	"VCS_Registry_Health/internal/health-monitor/probe"
	"VCS_Registry_Health/internal/health-monitor/publisher"
	"VCS_Registry_Health/internal/health-monitor/repository"
	"VCS_Registry_Health/internal/health-monitor/scheduler"
	"VCS_Registry_Health/internal/health-monitor/service"
	"VCS_Registry_Health/internal/health-monitor/state"
	"VCS_Registry_Health/internal/health-monitor/sweep"
	"VCS_Registry_Health/pkg/infra"
	"VCS_Registry_Health/pkg/logger"
	"VCS_Registry_Health/pkg/mail"
	"VCS_Registry_Health/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatalf("load config error: %v", err)
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatalf("open log file error: %v", err)
	}
	zapLogger := logger.NewLogger("health-monitor", appConfig.Server.LogLevel, fileSyncer)
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:         appConfig.Postgres.Host,
		Port:         appConfig.Postgres.Port,
		User:         appConfig.Postgres.User,
		Password:     appConfig.Postgres.Password,
		DBName:       appConfig.Postgres.DBName,
		MaxOpenConns: appConfig.Postgres.MaxOpenConns,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	zapLogger.Info("connected to postgres successfully")
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up repositories, redis only caches snapshots for the admin api
	serviceRepo := repository.NewServiceRepository(db)
	if appConfig.Redis.Host != "" {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
			PoolSize: appConfig.Redis.PoolSize,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		defer redisClient.Close()
		zapLogger.Info("connected to redis successfully")
		serviceRepo = repository.NewCachedServiceRepository(redisClient, serviceRepo, appConfig.Redis.CacheTTL, zapLogger)
	}
	probeRecordRepo := repository.NewProbeRecordRepository(db)

	// set up probe record publisher
	resultPublisher := publisher.NewNopPublisher()
	if len(appConfig.Kafka.Brokers) > 0 {
		resultPublisher = publisher.NewKafkaPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.ProbeTopic))
		zapLogger.Info("publishing probe records to kafka", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.ProbeTopic))
	}
	defer func() {
		if e := resultPublisher.Close(); e != nil {
			zapLogger.Error("failed to close probe record publisher", zap.Error(e))
		}
	}()

	// set up status change alerts
	statusNotifier := notifier.NewNopNotifier()
	if appConfig.Mail.Enabled() {
		mailSender := mail.NewMailSender(appConfig.Mail.From, appConfig.Mail.Username, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
		statusNotifier = notifier.NewMailNotifier(mailSender, appConfig.Mail.Recipients)
	}

	// set up health sweeps
	thresholds := state.Thresholds{
		Failure: appConfig.HealthCheck.FailureThreshold,
		Success: appConfig.HealthCheck.SuccessThreshold,
	}
	sweeper := sweep.NewSweeper(serviceRepo, probeRecordRepo, probe.NewHTTPProber(appConfig.HealthCheck.Timeout()),
		resultPublisher, statusNotifier, thresholds, zapLogger,
		sweep.WithConcurrency(appConfig.HealthCheck.SweepConcurrency),
	)
	healthScheduler := scheduler.NewHealthScheduler(sweeper, appConfig.HealthCheck.Interval(), zapLogger)
	healthScheduler.Start()

	healthService := service.NewHealthService(serviceRepo, probeRecordRepo, healthScheduler)
	healthHandler := handler.NewHealthHandler(zapLogger, healthService)

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zapLogger))

	routes.SetUpHealthRoutes(r, healthHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	healthScheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
