package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkgsmith/pkgsmith/internal/debug"
	"github.com/pkgsmith/pkgsmith/internal/language"
	"github.com/pkgsmith/pkgsmith/internal/license"
	"github.com/spf13/viper"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if the file
	// doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration values.
	Validate(cfg *Config) error
}

// ViperLoader implements Loader on top of viper, with PKGSMITH_* environment
// variables overriding file values.
type ViperLoader struct{}

// NewLoader creates a new ViperLoader.
func NewLoader() Loader {
	return &ViperLoader{}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pkgsmith", "config.yaml")
}

// Load loads configuration from the specified file path.
func (l *ViperLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	setViperDefaults(v)
	v.SetEnvPrefix("PKGSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration syntax", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration structure", err)
	}

	if err := l.Validate(&cfg); err != nil {
		return nil, err
	}

	debug.Debug("[config] Loaded configuration from %s", path)
	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if the file doesn't
// exist.
func (l *ViperLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	cfg, err := l.Load(path)
	if err != nil {
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			debug.Debug("[config] No configuration at %s, using defaults", path)
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration values.
func (l *ViperLoader) Validate(cfg *Config) error {
	if cfg == nil {
		return NewConfigError(ConfigValidationFailed, "", "configuration must not be nil")
	}

	if lic := cfg.Defaults.License; lic != "" && !license.Known(lic) {
		return NewConfigError(ConfigValidationFailed, "",
			"unknown default license "+lic+" (supported: "+strings.Join(license.IDs(), ", ")+")")
	}

	if lang := cfg.Defaults.Language; lang != "" {
		if _, err := language.Parse(lang); err != nil {
			return NewConfigErrorWithCause(ConfigValidationFailed, "", "invalid default language", err)
		}
	}

	if ver := cfg.Defaults.PkgVersion; ver != "" {
		if _, err := semver.NewVersion(ver); err != nil {
			return NewConfigErrorWithCause(ConfigValidationFailed, "", "invalid default package version", err)
		}
	}

	return nil
}
