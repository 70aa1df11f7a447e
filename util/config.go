package util

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingServerAddress = errors.New("HTTP_SERVER_ADDRESS is required")
	ErrInvalidLinesLimit    = errors.New("MAX_DOCUMENT_LINES must be positive")
	ErrInvalidWorkers       = errors.New("SCAN_WORKERS must be positive")
	ErrInvalidCacheTTL      = errors.New("CACHE_TTL must not be negative")
)

type Config struct {
	Environment       string `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string `mapstructure:"HTTP_SERVER_ADDRESS"`

	// RedisAddress is optional, tag caching is disabled when it's empty.
	RedisAddress string        `mapstructure:"REDIS_ADDRESS"`
	CacheTTL     time.Duration `mapstructure:"CACHE_TTL"`

	// MaxDocumentLines caps the number of lines accepted in a single document request.
	MaxDocumentLines int `mapstructure:"MAX_DOCUMENT_LINES"`

	// ScanWorkers is the number of goroutines scanning lines of a single document.
	ScanWorkers int `mapstructure:"SCAN_WORKERS"`
}

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("HTTP_SERVER_ADDRESS", "http://0.0.0.0:8080")
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("CACHE_TTL", time.Hour)
	v.SetDefault("MAX_DOCUMENT_LINES", 10000)
	v.SetDefault("SCAN_WORKERS", 4)

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	err = config.Validate()
	return
}

// Validate checks the values which can't be fixed by defaults.
func (config *Config) Validate() error {
	if config.HTTPServerAddress == "" {
		return ErrMissingServerAddress
	}

	if config.MaxDocumentLines <= 0 {
		return ErrInvalidLinesLimit
	}

	if config.ScanWorkers <= 0 {
		return ErrInvalidWorkers
	}

	if config.CacheTTL < 0 {
		return ErrInvalidCacheTTL
	}

	return nil
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The scheme is optional. If no port is specified in the address, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	raw := config.HTTPServerAddress
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host = u.Hostname()
	port = u.Port()

	if host == "" {
		err = fmt.Errorf("no host in http server address %q", config.HTTPServerAddress)
	}

	return
}

// ListenAddress returns the "host:port" pair the HTTP server should listen on.
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}

	if port == "" {
		port = "80"
	}

	return net.JoinHostPort(host, port), nil
}
