// Package config resolves biomark CLI settings from defaults, a YAML file,
// BIOMARK_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BIOMARK_THEME.
const EnvPrefix = "BIOMARK"

// Config holds resolved CLI settings.
type Config struct {
	Theme        string `mapstructure:"theme"`
	Width        int    `mapstructure:"width"`
	Gutter       bool   `mapstructure:"gutter"`
	Boring       bool   `mapstructure:"boring"`
	StrictColors bool   `mapstructure:"strict-colors"`
	ExamplesFile string `mapstructure:"examples-file"`
	Limits       Limits `mapstructure:"limits"`
}

// Limits mirrors biomark.Limits for configuration files.
type Limits struct {
	MaxLines int `mapstructure:"max-lines"`
	MaxChars int `mapstructure:"max-chars"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	return Config{
		Theme:        "default",
		StrictColors: true,
		Limits:       Limits{MaxLines: 3, MaxChars: 250},
	}
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"max-lines": "limits.max-lines",
	"max-chars": "limits.max-chars",
}

// Load resolves settings. path selects a config file; when empty the default
// location is used if it exists. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("width", d.Width)
	v.SetDefault("gutter", d.Gutter)
	v.SetDefault("boring", d.Boring)
	v.SetDefault("strict-colors", d.StrictColors)
	v.SetDefault("examples-file", d.ExamplesFile)
	v.SetDefault("limits.max-lines", d.Limits.MaxLines)
	v.SetDefault("limits.max-chars", d.Limits.MaxChars)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := f.Name
			if mapped, ok := flagKeys[key]; ok {
				key = mapped
			}
			if !isKnownKey(key) {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return Config{}, fmt.Errorf("config: bind flags: %w", bindErr)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if dir, ok := defaultDir(); ok {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

var knownKeys = map[string]struct{}{
	"theme": {}, "width": {}, "gutter": {}, "boring": {}, "strict-colors": {},
	"examples-file": {}, "limits.max-lines": {}, "limits.max-chars": {},
}

func isKnownKey(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

func defaultDir() (string, bool) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "biomark"), true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "biomark"), true
}
