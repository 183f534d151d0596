package license

import "fmt"

// LicenseErrorType categorizes license errors.
type LicenseErrorType int

const (
	// UnknownLicense indicates the license identifier is not recognized.
	UnknownLicense LicenseErrorType = iota
)

// LicenseError represents a license resolution error.
type LicenseError struct {
	// Type categorizes the error.
	Type LicenseErrorType
	// ID is the offending license identifier.
	ID string
	// Message is the error message.
	Message string
}

// Error implements the error interface.
func (e *LicenseError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: %q", e.Message, e.ID)
	}
	return e.Message
}

// newUnknownLicenseError creates an UnknownLicense error for id.
func newUnknownLicenseError(id string) *LicenseError {
	return &LicenseError{
		Type:    UnknownLicense,
		ID:      id,
		Message: "unknown license identifier",
	}
}

// IsUnknownLicense reports whether err is an UnknownLicense error.
func IsUnknownLicense(err error) bool {
	licErr, ok := err.(*LicenseError)
	return ok && licErr.Type == UnknownLicense
}
