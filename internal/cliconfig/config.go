package cliconfig

import (
	"github.com/gosherlock/sherlock/pkg/launcher"
)

// Config value sources, in ascending precedence.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// CLIConfig holds the sherlock CLI configuration.
type CLIConfig struct {
	// Host of the Sherlock gRPC server.
	Host string `yaml:"host"`

	// Port of the Sherlock gRPC server.
	Port int `yaml:"port"`

	// ServerVersion is the Sherlock release on the other end, e.g. 251.
	// Zero means unknown; -1 disables version gating.
	ServerVersion int `yaml:"serverVersion"`

	// TimeoutSeconds bounds each remote call. Zero means no deadline.
	TimeoutSeconds int `yaml:"timeoutSeconds"`

	// LogLevel is "debug", "info", "warn", or "error".
	LogLevel string `yaml:"logLevel"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"logFormat"`

	// Sources tracks where each value came from (default, global, local,
	// env, flag). Not persisted.
	Sources map[string]string `yaml:"-"`
}

// NewDefault returns the default configuration.
func NewDefault() *CLIConfig {
	return &CLIConfig{
		Host:      launcher.DefaultHost,
		Port:      launcher.DefaultPort,
		LogLevel:  "info",
		LogFormat: "text",
		Sources: map[string]string{
			"host":      SourceDefault,
			"port":      SourceDefault,
			"logLevel":  SourceDefault,
			"logFormat": SourceDefault,
		},
	}
}

// Merge overlays non-zero values of other onto cfg, recording source.
func Merge(cfg, other *CLIConfig, source string) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}
	if other.Host != "" {
		cfg.Host = other.Host
		cfg.Sources["host"] = source
	}
	if other.Port != 0 {
		cfg.Port = other.Port
		cfg.Sources["port"] = source
	}
	if other.ServerVersion != 0 {
		cfg.ServerVersion = other.ServerVersion
		cfg.Sources["serverVersion"] = source
	}
	if other.TimeoutSeconds != 0 {
		cfg.TimeoutSeconds = other.TimeoutSeconds
		cfg.Sources["timeoutSeconds"] = source
	}
	if other.LogLevel != "" {
		cfg.LogLevel = other.LogLevel
		cfg.Sources["logLevel"] = source
	}
	if other.LogFormat != "" {
		cfg.LogFormat = other.LogFormat
		cfg.Sources["logFormat"] = source
	}
}
