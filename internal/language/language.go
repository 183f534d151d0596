// Package language defines the project language tag set and the per-language
// script framing templates.
package language

import (
	"fmt"
	"strings"
)

// Language identifies a supported project language.
type Language int

const (
	// Unknown is the zero value; it never matches a native language.
	Unknown Language = iota
	// C is a native compiled language and selects the build-script body.
	C
	// Cpp is recognized but does not yet drive build-script generation.
	Cpp
	// Go projects carry their own toolchain; no build-script body.
	Go
	// Python projects are interpreted; no build-script body.
	Python
	// Shell projects are plain script collections; no build-script body.
	Shell
)

// names maps canonical spellings to languages. Parse also accepts the
// common aliases below.
var names = map[string]Language{
	"c":      C,
	"cpp":    Cpp,
	"c++":    Cpp,
	"go":     Go,
	"golang": Go,
	"python": Python,
	"shell":  Shell,
	"bash":   Shell,
}

// Names returns the canonical language names in display order.
func Names() []string {
	return []string{"c", "cpp", "go", "python", "shell"}
}

// Parse converts a user-supplied language name to a Language.
func Parse(s string) (Language, error) {
	lang, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Unknown, fmt.Errorf("unknown language %q (supported: %s)", s, strings.Join(Names(), ", "))
	}
	return lang, nil
}

// String returns the canonical name of the language.
func (l Language) String() string {
	switch l {
	case C:
		return "c"
	case Cpp:
		return "cpp"
	case Go:
		return "go"
	case Python:
		return "python"
	case Shell:
		return "shell"
	default:
		return "unknown"
	}
}

// Native reports whether the language is the native compiled marker that
// selects a build-script body in generated package skeletons.
func (l Language) Native() bool {
	return l == C
}
