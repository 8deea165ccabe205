package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// DemoMode switches login validation to the fixed demo-credential table
	// and session storage to the in-memory store.
	DemoMode bool `env:"DEMO_MODE, default=true"`

	Session SessionConfig
	Rating  RatingConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Timeout      time.Duration `env:"SESSION_TIMEOUT,       default=15m"`
	PollInterval time.Duration `env:"SESSION_POLL_INTERVAL, default=1m"`
	// LogoutOnHomeVisit reproduces the web client's "visiting home always
	// signs you out" behaviour. Off by default; it is a surprising policy
	// and must be opted into deliberately.
	LogoutOnHomeVisit bool `env:"LOGOUT_ON_HOME_VISIT, default=false"`
}

type RatingConfig struct {
	Workers int `env:"RATING_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=creator_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
