package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/baskettime/config"
	_ "github.com/DhavalSuthar-24/baskettime/docs"
	"github.com/DhavalSuthar-24/baskettime/internal/models"
	"github.com/DhavalSuthar-24/baskettime/pkg/token"
	"github.com/DhavalSuthar-24/baskettime/routes"
)

const shutdownTimeout = 10 * time.Second

// @title BasketTime REST API
// @version 1.0
// @description Team rosters and match statistics for basketball coaches.
// @host localhost:10000
// @BasePath /api
func main() {
	// LOG_LEVEL may come from .env
	config.LoadDotEnv()
	logger, err := config.NewLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := config.Initialize(); err != nil {
		zap.L().Fatal("failed to initialize application", zap.Error(err))
	}
	cfg := config.GetConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := models.AutoMigrate(config.DB); err != nil {
		zap.L().Fatal("AutoMigrate failed", zap.Error(err))
	}
	zap.L().Info("AutoMigrate successful")

	var revoker token.Revoker
	if cfg.Redis.URL != "" {
		redisRevoker, err := token.ConnectRedis(context.Background(), cfg.Redis.URL)
		if err != nil {
			zap.L().Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisRevoker.Close()
		revoker = redisRevoker
		zap.L().Info("session revocation enabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           routes.SetupRoutes(config.DB, cfg, revoker),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zap.L().Info("starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("forced shutdown", zap.Error(err))
	}
	if sqlDB, err := config.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
