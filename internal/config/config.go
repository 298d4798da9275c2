// Package config manages application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// RepoConfigName is the per-repository config file, without extension.
const RepoConfigName = ".push-hooks"

var configExtensions = []string{"toml", "yaml", "yml"}

// Config represents the application configuration.
type Config struct {
	Verbose        bool       `mapstructure:"verbose"`
	TimeoutSeconds int        `mapstructure:"timeout_seconds"`
	Rust           RustConfig `mapstructure:"rust"`
	Mypy           MypyConfig `mapstructure:"mypy"`

	// Sources lists the files that were read, in load order.
	Sources []string `mapstructure:"-"`
}

// RustConfig represents Rust check settings.
type RustConfig struct {
	Cwd          string   `mapstructure:"cwd"`
	FmtCheck     bool     `mapstructure:"fmt_check"`
	ClippyArgs   []string `mapstructure:"clippy_args"`
	BootstrapURL string   `mapstructure:"bootstrap_url"`
}

// MypyConfig represents type check settings.
type MypyConfig struct {
	Modules []string `mapstructure:"modules"`
}

// Load loads configuration for the repository in the current directory.
// Git runs hooks from the top of the working tree.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads configuration from files and environment variables.
// It reads the following, later files overriding earlier ones:
// 1. /etc/push-hooks/config.{toml,yaml,yml}
// 2. $XDG_CONFIG_HOME/push-hooks/config.{toml,yaml,yml} (or ~/.config/push-hooks/)
// 3. <repoDir>/.push-hooks.{toml,yaml,yml}
//
// Environment variables override file settings using the prefix PUSH_HOOKS_
// For example: PUSH_HOOKS_MYPY_MODULES=pkg_a,pkg_b
func LoadFrom(repoDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PUSH_HOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var sources []string
	for _, dir := range []string{"/etc/push-hooks", getXDGConfigPath()} {
		used, err := mergeFirst(v, dir, "config")
		if err != nil {
			return nil, err
		}
		if used != "" {
			sources = append(sources, used)
		}
	}

	used, err := mergeFirst(v, repoDir, RepoConfigName)
	if err != nil {
		return nil, err
	}
	if used != "" {
		sources = append(sources, used)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources
	return cfg, nil
}

// LoadWithViper loads configuration using a provided Viper instance.
// This is useful for testing or when you want to configure Viper differently.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("timeout_seconds", 0)
	v.SetDefault("rust.cwd", "")
	v.SetDefault("rust.fmt_check", false)
	v.SetDefault("rust.clippy_args", []string{})
	v.SetDefault("rust.bootstrap_url", "")
	v.SetDefault("mypy.modules", []string{})
}

// mergeFirst merges the first existing name.{toml,yaml,yml} in dir and
// returns its path, or "" when there is none.
func mergeFirst(v *viper.Viper, dir, name string) (string, error) {
	for _, ext := range configExtensions {
		path := filepath.Join(dir, name+"."+ext)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("stat config file %s: %w", path, err)
		}

		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return "", fmt.Errorf("read config file %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// getXDGConfigPath returns the XDG config directory for push-hooks.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "push-hooks")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home
		return "."
	}

	return filepath.Join(homeDir, ".config", "push-hooks")
}
