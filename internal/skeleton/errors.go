package skeleton

import "fmt"

// SkeletonErrorType categorizes skeleton generation errors.
type SkeletonErrorType int

const (
	// ValidationFailed indicates the builder configuration is invalid.
	ValidationFailed SkeletonErrorType = iota
	// WriteFailed indicates a file or directory write failed.
	WriteFailed
)

// SkeletonError represents a skeleton generation error.
type SkeletonError struct {
	// Type categorizes the error.
	Type SkeletonErrorType
	// Message is the error message.
	Message string
	// File is the file path related to the error (if applicable).
	File string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *SkeletonError) Error() string {
	if e.File != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (file: %s): %v", e.Message, e.File, e.Cause)
		}
		return fmt.Sprintf("%s (file: %s)", e.Message, e.File)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *SkeletonError) Unwrap() error {
	return e.Cause
}

// newValidationError creates a ValidationFailed error.
func newValidationError(message string, cause error) *SkeletonError {
	return &SkeletonError{Type: ValidationFailed, Message: message, Cause: cause}
}

// newWriteError creates a WriteFailed error for file.
func newWriteError(message, file string, cause error) *SkeletonError {
	return &SkeletonError{Type: WriteFailed, Message: message, File: file, Cause: cause}
}
