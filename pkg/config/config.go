// Package config loads the ambient run options. Health thresholds are
// fixed in code and deliberately absent here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvConfigFile names an explicit config file, bypassing the search
// path. The --config flag takes precedence over it.
const EnvConfigFile = "SYSHEALTH_CONFIG"

// Config holds the resolved options.
type Config struct {
	LogDir  string `mapstructure:"log_dir"`
	NoColor bool   `mapstructure:"no_color"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load resolves options from defaults, config file, environment and
// flags, in rising precedence. A missing config file on the search
// path is fine; a malformed file, or an explicitly named file that
// cannot be read, is an error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("log_dir", ".")
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", false)

	path := os.Getenv(EnvConfigFile)
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("syshealth")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "syshealth"))
		}
		v.AddConfigPath("/etc/syshealth")
	}

	v.SetEnvPrefix("SYSHEALTH")
	v.AutomaticEnv()

	if flags != nil {
		bind := func(key, name string) {
			if f := flags.Lookup(name); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
		bind("log_dir", "log-dir")
		bind("no_color", "no-color")
		bind("verbose", "verbose")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
