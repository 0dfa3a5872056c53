package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"inventory-hub/config"
	_ "inventory-hub/docs" // Swagger docs
	"inventory-hub/internal/httpserver"
	"inventory-hub/pkg/googleoauth"
	"inventory-hub/pkg/log"
	"inventory-hub/pkg/mysql"
	"inventory-hub/pkg/redis"
	"inventory-hub/pkg/scope"
)

// @title       Inventory Hub API
// @description Multi-tenant inventory management with custom item IDs and optimistic locking.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	_ = godotenv.Load() // .env is optional; real env wins
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inventory Hub...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Backing stores
	db, err := mysql.Connect(ctx, cfg.MySQL)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MySQL: ", err)
		return
	}
	defer db.Close()

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()

	// 4. Auth infrastructure
	jwtManager := scope.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	oauth := googleoauth.New(cfg.GoogleOAuth)
	if oauth == nil {
		logger.Warn(ctx, "Google sign-in not configured, /auth/google routes will answer 501")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit:   cfg.HTTPServer.RateLimitPerMin,
		DB:          db,
		Redis:       redisClient,
		JWTManager:  jwtManager,
		OAuth:       oauth,
		Auth:        cfg.Auth,
		Stats:       cfg.Stats,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
