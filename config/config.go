// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/kernelab/engine"
	"github.com/katalvlaran/kernelab/kernel"
	"gopkg.in/yaml.v3"
)

// Environment variable names consulted by Load.
const (
	EnvKernel  = "KERNELAB_KERNEL"
	EnvWorkers = "KERNELAB_WORKERS"
)

// Config holds all kernelab configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Kernel KernelConfig `yaml:"kernel"`
}

// EngineConfig configures the evaluation engine.
type EngineConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// KernelConfig selects the kernel activated at startup.
type KernelConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Kernel: KernelConfig{Name: kernel.MaternName},
	}
}

// Load reads path, applies environment overrides and validates the result.
// A missing file yields the defaults (still subject to overrides).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if name := strings.TrimSpace(os.Getenv(EnvKernel)); name != "" {
		c.Kernel.Name = name
	}
	if s := strings.TrimSpace(os.Getenv(EnvWorkers)); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvWorkers, s)
		}
		c.Engine.Workers = n
	}

	return nil
}

// Validate checks structural constraints. Kernel names and parameters are
// checked later, by the registry.
func (c *Config) Validate() error {
	if c.Engine.Workers < 0 {
		return fmt.Errorf("%w: engine.workers must be >= 0, got %d", ErrInvalidConfig, c.Engine.Workers)
	}
	if strings.TrimSpace(c.Kernel.Name) == "" {
		return fmt.Errorf("%w: kernel.name is empty", ErrInvalidConfig)
	}

	return nil
}

// EngineOptions converts the engine section into engine.Option values.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{engine.WithWorkers(c.Engine.Workers)}
}

// Activate creates the configured kernel on e and makes it active.
func (c *Config) Activate(e *engine.Engine) (kernel.Kernel, error) {
	return e.Activate(c.Kernel.Name, kernel.Config(c.Kernel.Params))
}
