package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Output formats accepted by solve.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Config is the decoded config file. Absent keys keep their defaults.
type Config struct {
	LogLevel string      `toml:"log_level"`
	Solve    SolveConfig `toml:"solve"`
}

// SolveConfig holds the defaults of the solve command.
type SolveConfig struct {
	DeferStart bool   `toml:"defer_start"`
	Verify     bool   `toml:"verify"`
	Separator  string `toml:"separator"`
	Format     string `toml:"format"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Solve: SolveConfig{
			DeferStart: true,
			Separator:  " ",
			Format:     formatText,
		},
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/eulerpath/config.toml.
func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

// loadConfig reads path over DefaultConfig. With explicit false a missing
// file is not an error, so the default location is optional.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return validateFormat(c.Solve.Format)
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatText, formatJSON, formatYAML)
	}
}

func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext returns the Config stored in ctx, or DefaultConfig().
func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return DefaultConfig()
}
