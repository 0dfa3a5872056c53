package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"inventory-hub/config"
	"inventory-hub/internal/user"
	"inventory-hub/pkg/log"
	"inventory-hub/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   int

	// Shared infrastructure
	db         *sql.DB
	redis      *redis.Client
	jwtManager scope.Manager
	oauth      user.OAuthProvider // nil when Google sign-in is not configured

	// Domain knobs
	auth  config.AuthConfig
	stats config.StatsConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   int

	DB         *sql.DB
	Redis      *redis.Client
	JWTManager scope.Manager
	OAuth      user.OAuthProvider

	Auth  config.AuthConfig
	Stats config.StatsConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		db:          cfg.DB,
		redis:       cfg.Redis,
		jwtManager:  cfg.JWTManager,
		oauth:       cfg.OAuth,
		auth:        cfg.Auth,
		stats:       cfg.Stats,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.redis == nil {
		return errors.New("redis is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}
