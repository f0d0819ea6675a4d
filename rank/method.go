package rank

import (
	"fmt"
	"strings"
)

// Method is a tie-break policy.
type Method string

// Supported methods.
const (
	Average Method = "average"
	Min     Method = "min"
	Max     Method = "max"
	Dense   Method = "dense"
	Ordinal Method = "ordinal"
)

// methods is the canonical listing order used in error messages.
var methods = [...]Method{Average, Min, Max, Dense, Ordinal}

// Methods returns every supported method.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods[:])

	return out
}

// Valid reports whether m is one of Methods().
func (m Method) Valid() bool {
	for _, known := range methods {
		if m == known {
			return true
		}
	}

	return false
}

// ParseMethod validates s. The error names s and the full valid set.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !m.Valid() {
		return "", UnknownMethodError(s)
	}

	return m, nil
}

// Choices renders the valid set in canonical order: "average, min, max, dense, ordinal".
func Choices() string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}

	return strings.Join(names, ", ")
}

// UnknownMethodError builds the ErrUnknownMethod error for value, listing the valid set:
//
//	rank: unknown rank method "bogus" (choices: {average, min, max, dense, ordinal})
func UnknownMethodError(value string) error {
	return fmt.Errorf("%w %q (choices: {%s})", ErrUnknownMethod, value, Choices())
}
