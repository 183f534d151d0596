package config

import "fmt"

// ConfigErrorType categorizes configuration errors.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the configuration file could not be parsed.
	ConfigInvalid
	// ConfigValidationFailed indicates a configuration value is invalid.
	ConfigValidationFailed
)

// ConfigError represents a configuration error.
type ConfigError struct {
	// Type categorizes the error.
	Type ConfigErrorType
	// Path is the configuration file path (if applicable).
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (config: %s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (config: %s)", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a ConfigError without a cause.
func NewConfigError(typ ConfigErrorType, path, message string) *ConfigError {
	return &ConfigError{Type: typ, Path: path, Message: message}
}

// NewConfigErrorWithCause creates a ConfigError wrapping cause.
func NewConfigErrorWithCause(typ ConfigErrorType, path, message string, cause error) *ConfigError {
	return &ConfigError{Type: typ, Path: path, Message: message, Cause: cause}
}
