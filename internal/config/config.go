// Package config provides centralized configuration management for the analyzer.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables; CLI flags
// override them where both exist.
type Config struct {
	Server  ServerConfig
	Logs    LogsConfig
	Upload  UploadConfig
	Cache   CacheConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings for the serve command.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`

	// APIKeys lists the keys accepted in the X-API-Key header, comma-separated.
	// Empty leaves the API open.
	APIKeys []string `env:"SERVER_API_KEYS"`
}

// LogsConfig locates the cookie logs served over HTTP.
type LogsConfig struct {
	// Dir is the directory holding cookie log files (default: current directory)
	// Supports both LOGS_DIR and COOKIE_LOGS_DIR env vars
	Dir string `env:"LOGS_DIR" envAlt:"COOKIE_LOGS_DIR" default:"."`
}

// UploadConfig holds limits for logs posted to the API.
type UploadConfig struct {
	// MaxFileSize is the maximum accepted request body in bytes (default: 100MB)
	MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" default:"104857600"`

	// MaxConcurrent is the maximum number of analyses running at once (default: 4)
	MaxConcurrent int `env:"UPLOAD_MAX_CONCURRENT" default:"4"`

	// MaxWaitTime is how long a request waits for a free slot (default: 30s)
	MaxWaitTime time.Duration `env:"UPLOAD_MAX_WAIT_TIME" default:"30s"`
}

// CacheConfig sizes the in-memory result cache.
type CacheConfig struct {
	// Enabled controls whether results are cached (default: true)
	Enabled bool `env:"CACHE_ENABLED" default:"true"`

	// NumCounters is the number of keys tracked for admission (default: 10000)
	NumCounters int64 `env:"CACHE_NUM_COUNTERS" default:"10000"`

	// MaxCost is the total cost budget, one unit per cached cookie (default: 1000000)
	MaxCost int64 `env:"CACHE_MAX_COST" default:"1000000"`

	// BufferItems is the size of the cache's Get buffers (default: 64)
	BufferItems int64 `env:"CACHE_BUFFER_ITEMS" default:"64"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
