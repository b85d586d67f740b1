package cliconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// LocalConfigFileName is the name of the per-directory config file.
	LocalConfigFileName = ".sherlockrc.yaml"
	// GlobalConfigDir is the directory under the user config dir.
	GlobalConfigDir = "sherlock"
	// GlobalConfigFileName is the name of the global config file.
	GlobalConfigFileName = "config.yaml"
)

// ConfigError reports a malformed configuration file.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// FindLocalConfig searches for .sherlockrc.yaml in the current
// directory. Returns empty string if not found.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	path := filepath.Join(cwd, LocalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// FindGlobalConfig returns the path to the global config file. Returns
// empty string if not found and an error if the user config directory
// cannot be determined.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(configDir, GlobalConfigDir, GlobalConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// LoadConfigFile loads a CLIConfig from a YAML file.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}
	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: env > local config > global config > defaults. Flags are
// applied by the CLI on top of the result.
func LoadAll() (*CLIConfig, error) {
	cfg := NewDefault()

	globalPath, err := FindGlobalConfig()
	if err != nil {
		return nil, err
	}
	if globalPath != "" {
		globalCfg, err := LoadConfigFile(globalPath)
		if err != nil {
			return nil, err
		}
		Merge(cfg, globalCfg, SourceGlobal)
	}

	localPath, err := FindLocalConfig()
	if err != nil {
		return nil, err
	}
	if localPath != "" {
		localCfg, err := LoadConfigFile(localPath)
		if err != nil {
			return nil, err
		}
		Merge(cfg, localCfg, SourceLocal)
	}

	LoadDotEnv()
	ApplyEnv(cfg)

	return cfg, nil
}
