// Package config resolves the planfiles settings.
//
// Settings come from, in order of precedence: command-line flags,
// PLANFILES_* environment variables, an optional planfiles.yaml config
// file, and built-in defaults. The resolved Settings struct is handed
// to the core as plain values — nothing below this package touches
// viper or the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings carries everything the server consumes.
type Settings struct {
	// PlanningDir is the directory holding the planning documents.
	// Relative paths are resolved against the working directory.
	PlanningDir string `mapstructure:"planning_dir"`
	// MaxReadChars caps the content returned by the read tools.
	MaxReadChars int `mapstructure:"max_read_chars"`
	// StatusResource controls whether the plan://status MCP resource
	// is offered.
	StatusResource bool `mapstructure:"status_resource"`
	// LogLevel is the stderr log level (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Defaults applied when neither flags, env, nor config file set a value.
const (
	DefaultPlanningDir  = "."
	DefaultMaxReadChars = 4000
	DefaultLogLevel     = "warn"
)

// NewViper returns a viper instance with defaults, env binding, and
// the optional config file location registered. Flag binding is left
// to the command layer.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("planning_dir", DefaultPlanningDir)
	v.SetDefault("max_read_chars", DefaultMaxReadChars)
	v.SetDefault("status_resource", true)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix("PLANFILES")
	v.AutomaticEnv()

	v.SetConfigName("planfiles")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, "planfiles"))
	}
	return v
}

// Load reads the optional config file and unmarshals the resolved
// settings. A missing config file is fine; a malformed one is not.
func Load(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}

	s.PlanningDir = ResolveDir(s.PlanningDir)
	if s.MaxReadChars <= 0 {
		s.MaxReadChars = DefaultMaxReadChars
	}
	return s, nil
}

// ResolveDir resolves the planning directory against the working
// directory, defaulting to the working directory itself.
func ResolveDir(dir string) string {
	if dir == "" {
		dir = DefaultPlanningDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return dir
	}
	return filepath.Join(cwd, dir)
}
