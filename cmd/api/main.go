package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-manager/internal/auth"
	"github.com/BruksfildServices01/barber-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-manager/internal/db"
	"github.com/BruksfildServices01/barber-manager/internal/observability"
	"github.com/BruksfildServices01/barber-manager/internal/ratelimit"
	"github.com/BruksfildServices01/barber-manager/internal/routes"
)

func main() {

	cfg := config.Load()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	tokens, err := auth.NewTokenService(cfg.BarbershopSecret, cfg.BarberSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("failed to build token service", zap.Error(err))
	}

	var limiter ratelimit.LoginLimiter = ratelimit.Noop{}
	if cfg.RedisAddr != "" {
		client := ratelimit.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
		defer func() { _ = client.Close() }()
		limiter = ratelimit.NewRedisLimiter(client, cfg.LoginMaxAttempts, cfg.LoginWindow)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Logger:  logger,
		Tokens:  tokens,
		Limiter: limiter,
	})

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
