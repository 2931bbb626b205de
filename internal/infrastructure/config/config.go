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

	UserTokenTTL  time.Duration `env:"USER_TOKEN_TTL,  default=168h"`
	GuestTokenTTL time.Duration `env:"GUEST_TOKEN_TTL, default=24h"`

	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
	LLM   LLMConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=wellness"`
}

type RedisConfig struct {
	Addr      string        `env:"REDIS_ADDR,       default=localhost:6379"`
	DB        int           `env:"REDIS_DB,         default=0"`
	ReplayTTL time.Duration `env:"REPLAY_GUARD_TTL, default=60s"`
}

type LLMConfig struct {
	BaseURL string        `env:"LLM_BASE_URL, default=https://open.bigmodel.cn/api/paas/v4"`
	APIKey  string        `env:"LLM_API_KEY"`
	Model   string        `env:"LLM_MODEL,    default=glm-4"`
	Timeout time.Duration `env:"LLM_TIMEOUT,  default=20s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
