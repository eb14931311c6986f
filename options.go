package housing

import (
	"log/slog"
	"path/filepath"

	"github.com/ynstf/boston-housing-api/domain/regression"
	"github.com/ynstf/boston-housing-api/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL       string
	dbPath      string
	modelPath   string
	pipeline    regression.Pipeline
	pipelineSet bool
	logger      *slog.Logger
	apiKeys     []string
}

func newClientConfig() *clientConfig {
	return &clientConfig{}
}

// databaseURL resolves the database connection URL, defaulting to a
// SQLite file in the default data directory.
func (c *clientConfig) databaseURL() string {
	if c.dbURL != "" {
		return c.dbURL
	}
	path := c.dbPath
	if path == "" {
		path = filepath.Join(config.DefaultDataDir(), "homes.db")
	}
	return "sqlite:///" + path
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbPath = path
		c.dbURL = ""
	}
}

// WithDatabaseURL configures the database from a connection URL
// (sqlite:/// or postgres://).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithModelPath loads the fitted pipeline from the given artifact file
// instead of the embedded default.
func WithModelPath(path string) Option {
	return func(c *clientConfig) {
		c.modelPath = path
	}
}

// WithPipeline injects an already-constructed pipeline, bypassing
// artifact loading. Used by tests.
func WithPipeline(p regression.Pipeline) Option {
	return func(c *clientConfig) {
		c.pipeline = p
		c.pipelineSet = true
	}
}

// WithLogger sets the logger for the client and its services.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithAPIKeys configures API keys for write protection on the HTTP API.
func WithAPIKeys(keys ...string) Option {
	return func(c *clientConfig) {
		c.apiKeys = keys
	}
}
