// Package config loads the engine's runtime configuration via viper,
// grounded on junjiewwang-perf-analysis/pkg/config: a yaml/env-overridable
// file with defaults set before read, unmarshaled into a mapstructure-
// tagged struct and validated afterward.
package config

import (
	"bytes"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every tunable of a Borůvka run.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig controls the pool and scheduling strategy.
type EngineConfig struct {
	// Workers is the persistent pool size. 0 means "use GOMAXPROCS".
	Workers int `mapstructure:"workers"`
	// ChunkStrategy selects pool.ParallelFor ("static") or
	// pool.ParallelForDynamic ("dynamic") for every phase.
	ChunkStrategy string `mapstructure:"chunk_strategy"`
	// BatchSize is the claim size for the "dynamic" chunk strategy;
	// ignored under "static".
	BatchSize int `mapstructure:"batch_size"`
}

// LogConfig controls logx's output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" is the only format logx currently emits
}

// Load reads configuration from configPath (or the standard search
// locations when configPath is empty), falling back silently to
// defaults when configPath is empty and no search location holds a
// config file — that absence is not an error, matching the teacher's
// convention of a fully runnable zero-config tool. An explicit
// configPath that cannot be read is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("boruvka")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/boruvka")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading %q: %w", configPath, err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader builds a Config directly from in-memory content, for
// tests that would otherwise need a temp file on disk.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("config: reading content: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.workers", 0)
	v.SetDefault("engine.chunk_strategy", "static")
	v.SetDefault("engine.batch_size", 256)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate rejects configuration combinations the engine cannot act on.
func (c *Config) Validate() error {
	if c.Engine.Workers < 0 {
		return fmt.Errorf("engine.workers must be >= 0, got %d", c.Engine.Workers)
	}
	switch c.Engine.ChunkStrategy {
	case "static", "dynamic":
	default:
		return fmt.Errorf("engine.chunk_strategy must be \"static\" or \"dynamic\", got %q", c.Engine.ChunkStrategy)
	}
	if c.Engine.ChunkStrategy == "dynamic" && c.Engine.BatchSize < 1 {
		return fmt.Errorf("engine.batch_size must be >= 1 when chunk_strategy is dynamic, got %d", c.Engine.BatchSize)
	}
	return nil
}
