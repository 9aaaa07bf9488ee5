// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wyrmgate Contributors

// Package config loads server configuration from defaults, an optional YAML
// file, and command-line flags, in increasing precedence.
package config

import (
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/wyrmgate/wyrmgate/internal/identity"
	"github.com/wyrmgate/wyrmgate/internal/world"
)

// CodeInvalid is the oops code for configuration errors.
const CodeInvalid = "CONFIG_INVALID"

// Config is the full server configuration.
type Config struct {
	// WorldFile is the path to the YAML partition definition file.
	WorldFile string `koanf:"world-file"`
	// TickPeriod is the heartbeat cadence.
	TickPeriod time.Duration `koanf:"tick-period"`
	// MetricsAddr is the metrics/health HTTP address; empty disables it.
	MetricsAddr string `koanf:"metrics-addr"`
	// LogFormat is "json" or "text".
	LogFormat string `koanf:"log-format"`
	// Identity sets the id counter bases.
	Identity identity.Config `koanf:"identity"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickPeriod:  world.DefaultTickPeriod,
		MetricsAddr: "127.0.0.1:9100",
		LogFormat:   "json",
		Identity:    identity.DefaultConfig(),
	}
}

// Load builds the configuration. path may be empty to skip the file layer;
// flags may be nil to skip the flag layer. Flags only override when
// explicitly set.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code(CodeInvalid).With("path", path).Wrap(err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code(CodeInvalid).Wrap(err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code(CodeInvalid).Wrap(err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.TickPeriod <= 0 {
		return oops.Code(CodeInvalid).
			With("tick_period", c.TickPeriod.String()).
			Errorf("tick-period must be positive")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code(CodeInvalid).
			With("log_format", c.LogFormat).
			Errorf("log-format must be 'json' or 'text'")
	}
	if c.Identity.HandleBase == c.Identity.SessionObjectBase ||
		c.Identity.HandleBase == c.Identity.SkillObjectBase ||
		c.Identity.SessionObjectBase == c.Identity.SkillObjectBase {
		return oops.Code(CodeInvalid).
			Errorf("identity counter bases must be pairwise distinct")
	}
	return nil
}
