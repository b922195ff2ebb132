// SPDX-License-Identifier: MIT

package codomain

import (
	"fmt"
	"strings"
)

// Mode selects the codomain used for out-of-domain real arguments.
// The zero value is Complex.
type Mode int

const (
	// Complex promotes out-of-domain real arguments to complex.
	Complex Mode = iota
	// Real raises a domain error for out-of-domain real arguments.
	Real
)

// Default is the mode used when nothing else was configured.
const Default = Complex

// String returns the short name accepted by Parse: "C" or "R".
func (m Mode) String() string {
	switch m {
	case Complex:
		return "C"
	case Real:
		return "R"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == Complex || m == Real
}

// Parse converts a mode name into a Mode. Recognised names are "C", "c",
// "R", "r" and the words "complex" and "real" in any letter case.
// Surrounding white space is ignored.
func Parse(s string) (Mode, error) {
	switch name := strings.TrimSpace(s); {
	case name == "C" || name == "c" || strings.EqualFold(name, "complex"):
		return Complex, nil
	case name == "R" || name == "r" || strings.EqualFold(name, "real"):
		return Real, nil
	}

	return Default, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Decode implements envconfig.Decoder so a Mode can be an environment
// configured field.
func (m *Mode) Decode(value string) error {
	mode, err := Parse(value)
	if err != nil {
		return err
	}
	*m = mode

	return nil
}
