package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	formatHex  = "hex"
	formatDec  = "dec"
	formatBoth = "both"

	defaultFormat   = formatHex
	defaultLogLevel = "warn"
)

// Config is the resolved configuration from flags, environment and file.
type Config struct {
	Format   string
	LogLevel string
}

func loadConfig(v *viper.Viper) (Config, error) {
	v.SetDefault("format", defaultFormat)
	v.SetDefault("log-level", defaultLogLevel)

	cfg := Config{
		Format:   v.GetString("format"),
		LogLevel: v.GetString("log-level"),
	}
	switch cfg.Format {
	case formatHex, formatDec, formatBoth:
	default:
		return Config{}, errors.Errorf("invalid format %q", cfg.Format)
	}
	return cfg, nil
}
