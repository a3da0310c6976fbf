package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values are read from a YAML file and can be overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// RateLimitPerMinute is the number of requests a single account, or a single client IP
		// without a valid API key, may make per minute
		RateLimitPerMinute int `env:"HTTP_RATE_LIMIT_PER_MINUTE" env-default:"60" yaml:"rateLimitPerMinute"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		Host     string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName string `env:"DATABASE_NAME" env-default:"scanguard" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"20" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Auth configures API key and reviewer authentication.
	Auth struct {
		// ReviewerPublicKey is the PEM encoded RSA public key used to verify X-Admin-Key tokens
		ReviewerPublicKey string `env:"AUTH_REVIEWER_PUBLIC_KEY" yaml:"reviewerPublicKey"`
		// ReviewerPrivateKey is the PEM encoded RSA private key used by the jwt command
		ReviewerPrivateKey string `env:"AUTH_REVIEWER_PRIVATE_KEY" yaml:"reviewerPrivateKey"`
		// AccountCacheTTL is how long an authenticated API key is cached in-process
		AccountCacheTTL time.Duration `env:"AUTH_ACCOUNT_CACHE_TTL" env-default:"30s" yaml:"accountCacheTtl"`
		// AccountCacheSize is the maximum number of cached accounts
		AccountCacheSize int64 `env:"AUTH_ACCOUNT_CACHE_SIZE" env-default:"10000" yaml:"accountCacheSize"`
	} `yaml:"auth"`

	// Detector configures the scoring backend.
	Detector struct {
		// URL of the remote detection service. The built-in heuristic detector is used when empty.
		URL string `env:"DETECTOR_URL" yaml:"url"`
		// APIKey is sent to the remote detection service
		APIKey string `env:"DETECTOR_API_KEY" yaml:"apiKey"`
		// Timeout bounds a single detection call
		Timeout time.Duration `env:"DETECTOR_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"detector"`

	// Webhook configures lifecycle event delivery.
	Webhook struct {
		// MaxAttempts is the number of delivery attempts before an event is dead-lettered
		MaxAttempts int `env:"WEBHOOK_MAX_ATTEMPTS" env-default:"6" yaml:"maxAttempts"`
		// BaseDelay is the delay after the first failed attempt
		BaseDelay time.Duration `env:"WEBHOOK_BASE_DELAY" env-default:"1s" yaml:"baseDelay"`
		// Factor multiplies the delay after each failed attempt. It must be at least 2
		// so the spacing between attempts keeps growing with jitter applied.
		Factor float64 `env:"WEBHOOK_FACTOR" env-default:"2" yaml:"factor"`
		// AttemptTimeout bounds a single delivery attempt
		AttemptTimeout time.Duration `env:"WEBHOOK_ATTEMPT_TIMEOUT" env-default:"10s" yaml:"attemptTimeout"`
		// OrderingDelay is how long an event waits when an earlier event of the same scan is still pending
		OrderingDelay time.Duration `env:"WEBHOOK_ORDERING_DELAY" env-default:"1s" yaml:"orderingDelay"`
		// MaxWorkers is the number of concurrent deliveries
		MaxWorkers int `env:"WEBHOOK_MAX_WORKERS" env-default:"50" yaml:"maxWorkers"`
		// UserAgent is sent with every delivery
		UserAgent string `env:"WEBHOOK_USER_AGENT" env-default:"ScanGuard-Webhook/1.0" yaml:"userAgent"`
	} `yaml:"webhook"`

	// Review configures the manual review queue.
	Review struct {
		// PageSize is the number of pending scans fetched per storage round trip
		PageSize int `env:"REVIEW_PAGE_SIZE" env-default:"50" yaml:"pageSize"`
	} `yaml:"review"`

	// Seed lists curated URLs served for labelling.
	Seed struct {
		URLs []string `env:"SEED_URLS" env-separator:"," yaml:"urls"`
	} `yaml:"seed"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate reports settings the services cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Webhook.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("webhook.maxAttempts must be at least 1, got %d", c.Webhook.MaxAttempts))
	}
	if c.Webhook.BaseDelay <= 0 {
		errs = append(errs, fmt.Errorf("webhook.baseDelay must be positive, got %s", c.Webhook.BaseDelay))
	}
	if c.Webhook.Factor < 2 {
		errs = append(errs, fmt.Errorf("webhook.factor must be at least 2, got %g", c.Webhook.Factor))
	}
	if c.Webhook.AttemptTimeout <= 0 {
		errs = append(errs, fmt.Errorf("webhook.attemptTimeout must be positive, got %s", c.Webhook.AttemptTimeout))
	}
	if c.Webhook.OrderingDelay <= 0 {
		errs = append(errs, fmt.Errorf("webhook.orderingDelay must be positive, got %s", c.Webhook.OrderingDelay))
	}

	return errors.Join(errs...)
}
