package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Security SecurityConfig
	Log      LogConfig
	Storage  StorageConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	Port            string        `env:"PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateBurst       int           `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

type DBConfig struct {
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" envDefault:"einv_pos"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxRetries int    `env:"DB_MAX_RETRIES" envDefault:"5"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type KafkaConfig struct {
	Broker        string        `env:"KAFKA_BROKER" envDefault:"localhost:9092"`
	ConsumerGroup string        `env:"KAFKA_CONSUMER_GROUP" envDefault:"einv-pos-sales-summary"`
	PollInterval  time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"3s"`
	BatchSize     int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`

	RetryBackoff    time.Duration `env:"CONSUMER_RETRY_BACKOFF" envDefault:"500ms"`
	MaxRetryBackoff time.Duration `env:"CONSUMER_MAX_RETRY_BACKOFF" envDefault:"30s"`
}

// SecurityConfig is handed to the credential and token services by value.
type SecurityConfig struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	PasswordPepper    string        `env:"PASSWORD_PEPPER"`
	KeyID             string        `env:"JWT_KEY_ID" envDefault:"v1"`
	TokenTTL          time.Duration `env:"JWT_TTL" envDefault:"24h"`
	BcryptCost        int           `env:"BCRYPT_COST" envDefault:"12"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH" envDefault:"8"`
}

type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`
}

type StorageConfig struct {
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	PublicBaseURL string `env:"UPLOAD_PUBLIC_BASE_URL" envDefault:"http://localhost:3000/uploads"`
	MaxUploadMB   int64  `env:"UPLOAD_MAX_MB" envDefault:"5"`
}

type CacheConfig struct {
	ProductTTL time.Duration `env:"CACHE_PRODUCT_TTL" envDefault:"5m"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Security.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Security.PasswordPepper == "" {
		return errors.New("PASSWORD_PEPPER is required")
	}
	if c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Security.TokenTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.Security.MinPasswordLength < 1 {
		return errors.New("MIN_PASSWORD_LENGTH must be positive")
	}
	return nil
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}
