// Package config manages application configuration from various sources.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// BackendConfig points the TUI at the suggestion provider backend.
type BackendConfig struct {
	URL string `json:"url,omitempty"`
}

// ServerConfig configures the `setforge serve` backend.
type ServerConfig struct {
	Port int `json:"port,omitempty"`
}

// OpenAIConfig configures the language-model path of the provider. With an
// empty APIKey the provider uses the deterministic local fallback.
type OpenAIConfig struct {
	APIKey  string `json:"apiKey,omitempty"`
	Model   string `json:"model,omitempty"`
	BaseURL string `json:"baseUrl,omitempty"`
}

// Config is the main configuration structure for the application.
type Config struct {
	WorkingDir string        `json:"wd,omitempty"`
	Debug      bool          `json:"debug,omitempty"`
	Backend    BackendConfig `json:"backend"`
	Server     ServerConfig  `json:"server"`
	OpenAI     OpenAIConfig  `json:"openai"`
}

const (
	appName = "setforge"

	defaultServerPort  = 5000
	defaultOpenAIModel = "gpt-4o-mini"
)

// Global configuration instance
var cfg *Config

// Load initializes the configuration from environment variables and config
// files. It is idempotent; subsequent calls return the first result.
func Load(workingDir string, debug bool) (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		WorkingDir: workingDir,
	}

	configureViper()
	setDefaults(debug)

	// Read global config
	if err := readConfig(viper.ReadInConfig()); err != nil {
		return cfg, err
	}

	// Load and merge local config
	mergeLocalConfig(workingDir)

	if err := viper.Unmarshal(cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaultLevel := slog.LevelInfo
	if cfg.Debug {
		defaultLevel = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(defaultLevel)

	return cfg, nil
}

// configureViper sets up viper's configuration paths and environment variables.
func configureViper() {
	viper.SetConfigName(fmt.Sprintf(".%s", appName))
	viper.SetConfigType("json")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(fmt.Sprintf("$XDG_CONFIG_HOME/%s", appName))
	viper.AddConfigPath(fmt.Sprintf("$HOME/.config/%s", appName))
	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The original server reads these names directly; honor them alongside
	// the SETFORGE_* forms.
	viper.BindEnv("openai.apikey", "SETFORGE_OPENAI_APIKEY", "OPENAI_API_KEY")
	viper.BindEnv("openai.model", "SETFORGE_OPENAI_MODEL", "OPENAI_MODEL")
	viper.BindEnv("openai.baseurl", "SETFORGE_OPENAI_BASEURL", "OPENAI_API_URL")
	viper.BindEnv("server.port", "SETFORGE_SERVER_PORT", "PORT")
}

// setDefaults configures default values for configuration options.
func setDefaults(debug bool) {
	viper.SetDefault("backend.url", fmt.Sprintf("http://localhost:%d", defaultServerPort))
	viper.SetDefault("server.port", defaultServerPort)
	viper.SetDefault("openai.model", defaultOpenAIModel)

	if debug {
		viper.SetDefault("debug", true)
	} else {
		viper.SetDefault("debug", false)
	}
}

// readConfig handles the result of reading a configuration file.
func readConfig(err error) error {
	if err == nil {
		return nil
	}

	// It's okay if the config file doesn't exist
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}

	return fmt.Errorf("failed to read config: %w", err)
}

// mergeLocalConfig loads and merges configuration from the local directory.
func mergeLocalConfig(workingDir string) {
	local := viper.New()
	local.SetConfigName(fmt.Sprintf(".%s", appName))
	local.SetConfigType("json")
	local.AddConfigPath(workingDir)

	if err := local.ReadInConfig(); err == nil {
		viper.MergeConfigMap(local.AllSettings())
	}
}

// Get returns the current configuration.
// It's safe to call this function multiple times.
func Get() *Config {
	return cfg
}

// WorkingDirectory returns the current working directory from the configuration.
func WorkingDirectory() string {
	if cfg == nil {
		panic("config not loaded")
	}
	return cfg.WorkingDir
}
