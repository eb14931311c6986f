// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Default configuration values.
const (
	DefaultHost                = "0.0.0.0"
	DefaultPort                = 8080
	DefaultLogLevel            = "INFO"
	DefaultListLimit           = 100
	DefaultRecommendationLimit = 20
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// DefaultDataDir returns the default data directory (~/.housing-api,
// falling back to .housing-api in the working directory).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".housing-api"
	}
	return filepath.Join(home, ".housing-api")
}

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	host      string
	port      int
	dataDir   string
	dbURL     string
	logLevel  string
	logFormat LogFormat
	modelPath string
	apiKeys   []string
}

// NewAppConfig creates an AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		host:      DefaultHost,
		port:      DefaultPort,
		dataDir:   DefaultDataDir(),
		logLevel:  DefaultLogLevel,
		logFormat: LogFormatPretty,
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port address for the HTTP server.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
// Defaults to sqlite:///{data_dir}/homes.db when unset.
func (c AppConfig) DBURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	return "sqlite:///" + filepath.Join(c.dataDir, "homes.db")
}

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// ModelPath returns the path to the pipeline artifact, or empty to use
// the embedded default artifact.
func (c AppConfig) ModelPath() string { return c.modelPath }

// APIKeys returns the configured API keys for write protection.
func (c AppConfig) APIKeys() []string {
	keys := make([]string, len(c.apiKeys))
	copy(keys, c.apiKeys)
	return keys
}

// WithHost returns a copy with the specified host.
func (c AppConfig) WithHost(host string) AppConfig {
	if host != "" {
		c.host = host
	}
	return c
}

// WithPort returns a copy with the specified port.
func (c AppConfig) WithPort(port int) AppConfig {
	if port > 0 {
		c.port = port
	}
	return c
}

// WithDataDir returns a copy with the specified data directory.
func (c AppConfig) WithDataDir(dir string) AppConfig {
	if dir != "" {
		c.dataDir = dir
	}
	return c
}

// WithDBURL returns a copy with the specified database URL.
func (c AppConfig) WithDBURL(url string) AppConfig {
	c.dbURL = url
	return c
}

// WithModelPath returns a copy with the specified pipeline artifact path.
func (c AppConfig) WithModelPath(path string) AppConfig {
	c.modelPath = path
	return c
}

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// LogAttrs returns the configuration as slog attributes for startup logging.
// The database URL is reduced to its scheme to avoid leaking credentials.
func (c AppConfig) LogAttrs() []slog.Attr {
	scheme := c.DBURL()
	if idx := strings.Index(scheme, "://"); idx > 0 {
		scheme = scheme[:idx]
	}
	return []slog.Attr{
		slog.String("addr", c.Addr()),
		slog.String("data_dir", c.dataDir),
		slog.String("db", scheme),
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
	}
}
