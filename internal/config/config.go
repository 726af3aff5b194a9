// Package config loads the planflow.yaml server configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/planflow/planflow/internal/errors"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "planflow.yaml"

// Config is the complete planflow.yaml configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server,omitempty"`
	Provider ProviderConfig `yaml:"provider,omitempty"`
	Planner  PlannerConfig  `yaml:"planner,omitempty"`
	Chat     ChatConfig     `yaml:"chat,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address         string `yaml:"address,omitempty"`
	ReadTimeout     string `yaml:"read_timeout,omitempty"`
	WriteTimeout    string `yaml:"write_timeout,omitempty"`
	ShutdownTimeout string `yaml:"shutdown_timeout,omitempty"`
}

// ProviderConfig configures the model provider endpoint.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// ModelConfig names one model in the fallback chain with its temperature.
type ModelConfig struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// PlannerConfig configures the plan-generation chain. Chain order is the
// attempt order.
type PlannerConfig struct {
	Chain          []ModelConfig `yaml:"chain,omitempty"`
	AttemptTimeout string        `yaml:"attempt_timeout,omitempty"`
}

// ChatConfig configures the conversational turn handler.
type ChatConfig struct {
	Model       string  `yaml:"model,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         ":8000",
			ReadTimeout:     "15s",
			WriteTimeout:    "120s",
			ShutdownTimeout: "10s",
		},
		Planner: PlannerConfig{
			AttemptTimeout: "30s",
		},
		Chat: ChatConfig{
			Temperature: 0.7,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the configuration file at path, expands environment variable
// references, and applies environment overrides. A missing file at the
// default path is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), config); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("unmarshal %s", path), err)
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults plus environment are enough to run.
	default:
		return nil, errors.Wrap(errors.ErrCodeConfigNotFound,
			fmt.Sprintf("read config file %s", path), err)
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyEnvOverrides(config *Config) {
	if key := os.Getenv("PLANFLOW_API_KEY"); key != "" {
		config.Provider.APIKey = key
	}
	if addr := os.Getenv("PLANFLOW_ADDR"); addr != "" {
		config.Server.Address = addr
	}
}

// Validate checks the configuration for values that cannot be defaulted away.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "server address is required")
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"planner.attempt_timeout", c.Planner.AttemptTimeout},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.ParseDuration(field.value); err != nil {
			return errors.Wrap(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("%s is not a valid duration", field.name), err)
		}
	}
	for i, model := range c.Planner.Chain {
		if model.Model == "" {
			return errors.New(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("planner.chain[%d].model is required", i))
		}
		if model.Temperature < 0 || model.Temperature > 2 {
			return errors.New(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("planner.chain[%d].temperature must be in [0, 2]", i))
		}
	}
	if c.Chat.Temperature < 0 || c.Chat.Temperature > 2 {
		return errors.New(errors.ErrCodeConfigInvalid, "chat.temperature must be in [0, 2]")
	}
	return nil
}

// AttemptTimeout parses the planner attempt timeout. Validate has already
// checked the syntax; zero means use the built-in default.
func (c *Config) AttemptTimeout() time.Duration {
	return parseDuration(c.Planner.AttemptTimeout)
}

// ShutdownTimeout parses the server shutdown grace period.
func (c *Config) ShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout)
}

// ReadTimeout parses the HTTP read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout)
}

// WriteTimeout parses the HTTP write timeout.
func (c *Config) WriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout)
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
