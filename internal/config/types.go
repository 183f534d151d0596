package config

import "strings"

// Config represents the global pkgsmith configuration. Values act as
// defaults for the corresponding command-line flags.
type Config struct {
	// Maintainer identifies the package maintainer.
	Maintainer MaintainerConfig `mapstructure:"maintainer"`
	// Defaults holds default values for generation flags.
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// MaintainerConfig represents the package maintainer identity.
type MaintainerConfig struct {
	// Name is the maintainer's full name.
	Name string `mapstructure:"name"`
	// Email is the maintainer's email address.
	Email string `mapstructure:"email"`
}

// String formats the maintainer in the Debian control "Name <email>" form.
// Either part may be absent.
func (m MaintainerConfig) String() string {
	name := strings.TrimSpace(m.Name)
	email := strings.TrimSpace(m.Email)
	switch {
	case name != "" && email != "":
		return name + " <" + email + ">"
	case email != "":
		return "<" + email + ">"
	default:
		return name
	}
}

// DefaultsConfig represents default values for generation options.
type DefaultsConfig struct {
	// Architecture is the default package destination architecture.
	Architecture string `mapstructure:"architecture"`
	// Language is the default project language name.
	Language string `mapstructure:"language"`
	// License is the default license identifier; empty means none.
	License string `mapstructure:"license"`
	// PkgVersion is the default initial package version.
	PkgVersion string `mapstructure:"pkg_version"`
}
