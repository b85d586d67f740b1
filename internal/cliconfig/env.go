package cliconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHost          = "SHERLOCK_HOST"
	EnvPort          = "SHERLOCK_PORT"
	EnvServerVersion = "SHERLOCK_SERVER_VERSION"
	EnvTimeout       = "SHERLOCK_TIMEOUT"
	EnvLogLevel      = "SHERLOCK_LOG_LEVEL"
	EnvLogFormat     = "SHERLOCK_LOG_FORMAT"
)

// LoadDotEnv loads a .env file from the current directory into the
// process environment, if one exists. Existing variables win.
func LoadDotEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}

// ApplyEnv overlays environment variables onto cfg. Only variables that
// are set and parse cleanly take effect.
func ApplyEnv(cfg *CLIConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
		cfg.Sources["host"] = SourceEnv
	}
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
			cfg.Sources["port"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvServerVersion); v != "" {
		if version, err := strconv.Atoi(v); err == nil {
			cfg.ServerVersion = version
			cfg.Sources["serverVersion"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = timeout
			cfg.Sources["timeoutSeconds"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}
