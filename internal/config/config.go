package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// MaxRoundingPlaces is the scale of the stored payment request amounts.
const MaxRoundingPlaces = 2

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// commission resolution, the payment scheduler and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

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
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// RiverUIPath defines the URL prefix the job queue dashboard is mounted on. Empty disables it.
		RiverUIPath string `env:"HTTP_RIVER_UI_PATH" env-default:"/riverui" yaml:"riverUIPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"commissions" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Commission contains commission resolution settings
	Commission struct {
		// RoundingPlaces is the number of decimal places payouts are rounded to (half-up)
		RoundingPlaces int32 `env:"COMMISSION_ROUNDING_PLACES" env-default:"0" yaml:"roundingPlaces"`
	} `yaml:"commission"`

	// Scheduler contains settings of the background job that advances stalled placements
	Scheduler struct {
		// Enabled toggles registration of the periodic job
		Enabled bool `env:"SCHEDULER_ENABLED" env-default:"true" yaml:"enabled"`
		// Interval is the period between two runs; a run also happens at start-up
		Interval time.Duration `env:"SCHEDULER_INTERVAL" env-default:"24h" yaml:"interval"`
		// StalledAfterMonths is how long a placement may stay Placed before it is advanced
		StalledAfterMonths int `env:"SCHEDULER_STALLED_AFTER_MONTHS" env-default:"3" yaml:"stalledAfterMonths"`
		// BatchSize is the number of placements loaded per query
		BatchSize uint `env:"SCHEDULER_BATCH_SIZE" env-default:"200" yaml:"batchSize"`
		// MaxAttempts is the number of times a failed run is retried by the queue
		MaxAttempts int `env:"SCHEDULER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// RunTimeout bounds a single run
		RunTimeout time.Duration `env:"SCHEDULER_RUN_TIMEOUT" env-default:"30m" yaml:"runTimeout"`
	} `yaml:"scheduler"`

	// Worker contains background job processing settings
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently on the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

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
	if p := cfg.Commission.RoundingPlaces; p < 0 || p > MaxRoundingPlaces {
		return nil, fmt.Errorf("commission rounding places must be between 0 and %d, got %d", MaxRoundingPlaces, p)
	}

	return &cfg, nil
}
