package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	MySQL MySQLConfig
	Redis RedisConfig

	Auth        AuthConfig
	GoogleOAuth GoogleOAuthConfig

	Stats StatsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig controls JWT session tokens.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// GoogleOAuthConfig controls the optional Google sign-in flow.
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// StatsConfig controls the in-process statistics cache.
type StatsConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// MySQL
	cfg.MySQL.DSN = viper.GetString("mysql.dsn")
	if dsn := viper.GetString("mysql_dsn"); dsn != "" {
		cfg.MySQL.DSN = dsn
	}
	cfg.MySQL.MaxOpenConns = viper.GetInt("mysql.max_open_conns")
	cfg.MySQL.MaxIdleConns = viper.GetInt("mysql.max_idle_conns")
	cfg.MySQL.ConnMaxLifetime = viper.GetDuration("mysql.conn_max_lifetime")

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	if addr := viper.GetString("redis_addr"); addr != "" {
		cfg.Redis.Addr = addr
	}
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")

	// Google OAuth (optional sign-in provider)
	cfg.GoogleOAuth.ClientID = viper.GetString("google_oauth.client_id")
	cfg.GoogleOAuth.ClientSecret = viper.GetString("google_oauth.client_secret")
	cfg.GoogleOAuth.RedirectURL = viper.GetString("google_oauth.redirect_url")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.GoogleOAuth.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.GoogleOAuth.ClientSecret = clientSecret
	}

	// Stats cache
	cfg.Stats.CacheSize = viper.GetInt("stats.cache_size")
	cfg.Stats.CacheTTL = viper.GetDuration("stats.cache_ttl")

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required - set it in config.yaml or the JWT_SECRET environment variable")
	}
	if cfg.MySQL.DSN == "" {
		return nil, fmt.Errorf("mysql.dsn is required - set it in config.yaml or the MYSQL_DSN environment variable")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("mysql.max_open_conns", 25)
	viper.SetDefault("mysql.max_idle_conns", 25)
	viper.SetDefault("mysql.conn_max_lifetime", 5*time.Minute)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	viper.SetDefault("stats.cache_size", 256)
	viper.SetDefault("stats.cache_ttl", 30*time.Second)
}
