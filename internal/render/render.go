// Package render implements shell-style template substitution with a
// safe/partial policy: tokens without a binding pass through untouched.
package render

import (
	"strings"
)

// Bindings maps placeholder names to their replacement text.
type Bindings map[string]string

// Merge returns a new Bindings with entries from other layered on top of b.
// Neither receiver nor argument is modified.
func (b Bindings) Merge(other Bindings) Bindings {
	merged := make(Bindings, len(b)+len(other))
	for k, v := range b {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Render substitutes $NAME and ${NAME} tokens in tmpl using the given
// bindings. A token whose name has no binding is emitted verbatim, byte for
// byte, including its dollar sign and braces. Shell syntax that does not form
// a valid placeholder name (${modules[@]}, $1, $@, $(cmd)) is never touched.
// Render cannot fail.
func Render(tmpl string, bindings Bindings) string {
	if !strings.ContainsRune(tmpl, '$') {
		return tmpl
	}

	var out strings.Builder
	out.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c != '$' {
			out.WriteByte(c)
			i++
			continue
		}

		// Token candidate starting at i.
		if i+1 >= len(tmpl) {
			out.WriteByte(c)
			i++
			continue
		}

		if tmpl[i+1] == '{' {
			// ${NAME} form: find the closing brace.
			end := strings.IndexByte(tmpl[i+2:], '}')
			if end < 0 {
				out.WriteString(tmpl[i:])
				return out.String()
			}
			name := tmpl[i+2 : i+2+end]
			if value, ok := lookup(bindings, name); ok {
				out.WriteString(value)
			} else {
				out.WriteString(tmpl[i : i+2+end+1])
			}
			i += 2 + end + 1
			continue
		}

		// $NAME form: consume the longest identifier run.
		j := i + 1
		for j < len(tmpl) && isNameByte(tmpl[j], j > i+1) {
			j++
		}
		if j == i+1 {
			// No identifier after the dollar sign ($1, $@, $(, lone $).
			out.WriteByte(c)
			i++
			continue
		}
		name := tmpl[i+1 : j]
		if value, ok := bindings[name]; ok {
			out.WriteString(value)
		} else {
			out.WriteString(tmpl[i:j])
		}
		i = j
	}

	return out.String()
}

// lookup resolves a braced token name. Names that are not valid identifiers
// (shell parameter expansions like modules[@] or 1:-default) never match.
func lookup(bindings Bindings, name string) (string, bool) {
	if !isValidName(name) {
		return "", false
	}
	value, ok := bindings[name]
	return value, ok
}

// isValidName reports whether s is a placeholder identifier:
// [A-Za-z_][A-Za-z0-9_]*.
func isValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i], i > 0) {
			return false
		}
	}
	return true
}

// isNameByte reports whether b may appear in a placeholder name.
// Digits are only allowed past the first byte.
func isNameByte(b byte, notFirst bool) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
		return true
	case b >= '0' && b <= '9':
		return notFirst
	default:
		return false
	}
}
