package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/pulse/pkg/domain/model/config"
	"github.com/urfave/cli/v3"
)

// Quality holds CLI flags for the quality classifier configuration
type Quality struct {
	configPath string
}

// Flags returns CLI flags for quality configuration
func (x *Quality) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "quality-config",
			Usage:       "Path to a TOML file overriding the quality keyword lists and thresholds",
			Category:    "Quality",
			Sources:     cli.EnvVars("PULSE_QUALITY_CONFIG"),
			Destination: &x.configPath,
		},
	}
}

// LogValue implements slog.LogValuer
func (x Quality) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config-path", x.configPath),
	)
}

// Configure loads the quality configuration. Without a config path the
// built-in defaults are used.
func (x *Quality) Configure() (*domainConfig.QualityConfig, error) {
	if x.configPath == "" {
		return domainConfig.Default(), nil
	}
	return LoadQualityConfiguration(x.configPath)
}

// LoadQualityConfiguration reads a TOML file over the built-in defaults, so a
// partial file only overrides the sections it names.
func LoadQualityConfiguration(path string) (*domainConfig.QualityConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read quality config", goerr.V("path", path))
	}

	cfg := domainConfig.Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse quality config", goerr.V("path", path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid quality config", goerr.V("path", path))
	}
	return cfg, nil
}
