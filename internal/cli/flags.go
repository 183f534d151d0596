package cli

import (
	"fmt"
	"regexp"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagPrefix     = "prefix"
	FlagLanguage   = "language"
	FlagLicense    = "license"
	FlagArch       = "arch"
	FlagPkgVersion = "pkg-version"
	FlagOutput     = "output"
	FlagForce      = "force"
	FlagDryRun     = "dry-run"
	FlagNoInput    = "no-input"
	FlagNoColor    = "no-color"
	FlagQuiet      = "quiet"
	FlagDebug      = "debug"
	FlagConfig     = "config"

	// Flag descriptions
	DescPrefix     = "Name prefix for the package root directory"
	DescLanguage   = "Project language (c, cpp, go, python, shell)"
	DescLicense    = "License identifier (\"none\" for no license block)"
	DescArch       = "Package destination architecture"
	DescPkgVersion = "Initial package version (semver; a prerelease marks a beta)"
	DescOutput     = "Parent directory for the package root"
	DescForce      = "Generate even inside an existing package root"
	DescDryRun     = "Show files without writing them"
	DescNoInput    = "Never prompt; fail when a required value is missing"
	DescNoColor    = "Disable colored output"
	DescQuiet      = "Suppress non-error output"
	DescDebug      = "Enable debug logging"
	DescConfig     = "Path to config file"
)

// projectNamePattern restricts project names to the characters the generated
// directory, binary and script names can carry.
var projectNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateProjectName validates a project name argument.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q (use lowercase letters, digits, hyphens and underscores, starting with a letter or digit)", name)
	}
	return nil
}
