package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.housing-api
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/homes.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// ModelPath is the path to the fitted pipeline artifact (.json or
	// .yaml). When empty the embedded default artifact is used.
	// Env: MODEL_PATH
	ModelPath string `envconfig:"MODEL_PATH"`

	// APIKeys is a comma-separated list of valid API keys. When set,
	// mutating endpoints require the X-API-KEY header.
	// Env: API_KEYS
	APIKeys string `envconfig:"API_KEYS"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Normalize applies defaults that envconfig cannot express.
func (e EnvConfig) Normalize() EnvConfig {
	if e.DataDir == "" {
		e.DataDir = DefaultDataDir()
	}
	switch strings.ToLower(e.LogFormat) {
	case string(LogFormatJSON):
		e.LogFormat = string(LogFormatJSON)
	default:
		e.LogFormat = string(LogFormatPretty)
	}
	return e
}

// ToAppConfig converts environment configuration into an AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig().
		WithHost(e.Host).
		WithPort(e.Port).
		WithDataDir(e.DataDir).
		WithDBURL(e.DBURL).
		WithModelPath(e.ModelPath)

	cfg.logLevel = strings.ToUpper(e.LogLevel)
	cfg.logFormat = LogFormat(e.LogFormat)

	if e.APIKeys != "" {
		for _, key := range strings.Split(e.APIKeys, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.apiKeys = append(cfg.apiKeys, key)
			}
		}
	}

	return cfg
}
