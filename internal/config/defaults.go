package config

// DefaultConfig returns the built-in configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Architecture: "i686",
			PkgVersion:   "0.1.1-beta",
		},
	}
}

// setViperDefaults registers the built-in defaults on a viper instance so
// partially filled files merge cleanly.
func setViperDefaults(v viperSettable) {
	defaults := DefaultConfig()
	v.SetDefault("maintainer.name", defaults.Maintainer.Name)
	v.SetDefault("maintainer.email", defaults.Maintainer.Email)
	v.SetDefault("defaults.architecture", defaults.Defaults.Architecture)
	v.SetDefault("defaults.language", defaults.Defaults.Language)
	v.SetDefault("defaults.license", defaults.Defaults.License)
	v.SetDefault("defaults.pkg_version", defaults.Defaults.PkgVersion)
}

// viperSettable is the slice of the viper API the defaults need.
type viperSettable interface {
	SetDefault(key string, value interface{})
}
