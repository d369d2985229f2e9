/*
Package config manages the TOML config for t9serve.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/t9serve/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
	MaxKeys  int `toml:"max_keys"`
	// ReloadEvery re-reads the config file after that many requests, 0 disables it.
	ReloadEvery int `toml:"reload_every"`
}

// DictConfig holds word-list loading options.
type DictConfig struct {
	Path     string `toml:"path"`
	FoldCase bool   `toml:"fold_case"`
	MaxWords int    `toml:"max_words"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:    64,
			MaxKeys:     32,
			ReloadEvery: 200,
		},
		Dict: DictConfig{
			Path:     "words.txt",
			FoldCase: true,
			MaxWords: 0,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/t9serve
// 2. current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		primaryPath := filepath.Join(homeDir, ".config", "t9serve")
		if result := utils.CheckDirStatus(primaryPath); result.Writable {
			return primaryPath, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: ~/.config/t9serve/config.toml
// 3. Builtin defaults
//
// It returns the path the config came from, "" for builtin defaults.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates it with defaults if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that does not decode into Config
// is parsed section by section, keeping whatever values are usable.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config.normalize(), nil
}

func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config.normalize(), nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_keys"); ok {
		server.MaxKeys = val
	}
	if val, ok := utils.ExtractInt64(data, "reload_every"); ok {
		server.ReloadEvery = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractBool(data, "fold_case"); ok {
		dict.FoldCase = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}

// normalize replaces values that cannot work with their defaults.
func (c *Config) normalize() *Config {
	def := DefaultConfig()
	if c.Server.MaxLimit < 1 {
		log.Warnf("server.max_limit %d is invalid, using %d", c.Server.MaxLimit, def.Server.MaxLimit)
		c.Server.MaxLimit = def.Server.MaxLimit
	}
	if c.Server.MaxKeys < 1 {
		log.Warnf("server.max_keys %d is invalid, using %d", c.Server.MaxKeys, def.Server.MaxKeys)
		c.Server.MaxKeys = def.Server.MaxKeys
	}
	if c.Server.ReloadEvery < 0 {
		c.Server.ReloadEvery = 0
	}
	if c.Dict.MaxWords < 0 {
		c.Dict.MaxWords = 0
	}
	if c.CLI.DefaultLimit < 1 {
		c.CLI.DefaultLimit = def.CLI.DefaultLimit
	}
	return c
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the server limits and saves the file.
func (c *Config) Update(configPath string, maxLimit, maxKeys *int) error {
	if maxLimit != nil {
		c.Server.MaxLimit = *maxLimit
	}
	if maxKeys != nil {
		c.Server.MaxKeys = *maxKeys
	}
	c.normalize()
	return SaveConfig(c, configPath)
}
