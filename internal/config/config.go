package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StoreDriverBolt     = "bolt"
	StoreDriverPostgres = "postgres"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort     string        `env:"SERVER_PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`

	// Настройки поиска фото во Flickr
	Flickr struct {
		APIKey        string  `env:"FLICKR_API_KEY,required"`
		BaseURL       string  `env:"FLICKR_BASE_URL" envDefault:"https://api.flickr.com/services/rest"`
		Accuracy      int     `env:"FLICKR_ACCURACY" envDefault:"6"`
		PerPage       int     `env:"FLICKR_PER_PAGE" envDefault:"30"`
		MaxTotalItems int     `env:"FLICKR_MAX_TOTAL_ITEMS" envDefault:"4000"`
		RateLimit     float64 `env:"FLICKR_RATE_LIMIT" envDefault:"5"`
		RateBurst     int     `env:"FLICKR_RATE_BURST" envDefault:"5"`
	}

	HTTPClientTimeout   time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
	DownloadConcurrency int           `env:"DOWNLOAD_CONCURRENCY" envDefault:"5"`

	// Хранилище: bolt (локальный файл) или postgres (метаданные в PostgreSQL, изображения в MinIO)
	StoreDriver string `env:"STORE_DRIVER" envDefault:"bolt"`
	BoltPath    string `env:"BOLT_PATH" envDefault:"data/pinalbum.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`

	// Настройки для MinIO
	MinioEndpoint        string `env:"MINIO_ENDPOINT"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME"`
	MinioRegion          string `env:"MINIO_REGION" envDefault:"us-east-1"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"album_refresh_queue"`
	}

	// Redis нужен только если сервер и воркер должны исключать друг друга при синхронизации места
	// Блокировка не продлевается, поэтому LOCK_TTL должен покрывать SyncBudget
	RedisURL string        `env:"REDIS_URL"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"60s"`
}

// searchesPerSync это число запросов поиска за одну синхронизацию: первый и повтор со случайной страницей
const searchesPerSync = 2

// SyncBudget оценивает наибольшую длительность синхронизации места:
// ожидание лимитера и таймаут HTTP на каждый запрос поиска.
func (c *Config) SyncBudget() time.Duration {
	var wait time.Duration
	if c.Flickr.RateLimit > 0 {
		wait = time.Duration(float64(time.Second) / c.Flickr.RateLimit)
	}
	return searchesPerSync * (wait + c.HTTPClientTimeout)
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет зависимые друг от друга параметры
func (c *Config) Validate() error {
	if c.Flickr.PerPage <= 0 {
		return errors.New("FLICKR_PER_PAGE must be positive")
	}
	if c.Flickr.MaxTotalItems < c.Flickr.PerPage {
		return errors.New("FLICKR_MAX_TOTAL_ITEMS must be at least FLICKR_PER_PAGE")
	}
	if c.DownloadConcurrency <= 0 {
		return errors.New("DOWNLOAD_CONCURRENCY must be positive")
	}
	if c.RedisURL != "" && c.LockTTL < c.SyncBudget() {
		return fmt.Errorf("LOCK_TTL %s must cover a full sync (%s)", c.LockTTL, c.SyncBudget())
	}

	switch c.StoreDriver {
	case StoreDriverBolt:
		if c.BoltPath == "" {
			return errors.New("BOLT_PATH must be set for the bolt store")
		}
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be set for the postgres store")
		}
		if c.MinioEndpoint == "" || c.MinioAccessKeyID == "" || c.MinioSecretAccessKey == "" || c.MinioBucketName == "" {
			return errors.New("MINIO_ENDPOINT, MINIO_ACCESS_KEY_ID, MINIO_SECRET_ACCESS_KEY and MINIO_BUCKET_NAME must be set for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (use %q or %q)", c.StoreDriver, StoreDriverBolt, StoreDriverPostgres)
	}
	return nil
}
