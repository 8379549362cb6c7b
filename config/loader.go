package config

import (
	"os"

	"github.com/pkg/errors"
)

// LoadConfig loads configuration with priority: CLI flags > environment >
// config file > defaults.
//
// The config file is flags.ConfigPath, else $JTOOLS_CONFIG, else the first
// file found by FindConfigFile. An explicitly named file must exist.
func LoadConfig(flags Flags) (*Config, error) {
	return loadConfig(flags, ProgramDir())
}

func loadConfig(flags Flags, programDir string) (*Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. Config file
	configPath := flags.ConfigPath
	if configPath == "" {
		configPath = os.Getenv(EnvConfig)
	}
	if configPath == "" {
		configPath = FindConfigFile()
	}
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", configPath)
		}
		cfg = fileCfg
	}

	// 3. Environment, then flags
	cfg.ApplyEnv()
	cfg.ApplyFlags(flags)

	cfg.resolvePaths(programDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
