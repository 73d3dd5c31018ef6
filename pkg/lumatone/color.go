package lumatone

import "fmt"

// RGB is a 24-bit color as stored per key by the keyboard firmware and the
// LTN file format.
type RGB struct {
	R, G, B uint8
}

// White returns full-brightness white, the color of an unassigned key.
func White() RGB {
	return RGB{R: 255, G: 255, B: 255}
}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a bare six-digit hex color ("rrggbb", no leading '#').
func ParseHex(s string) (RGB, error) {
	var c RGB
	if len(s) != 6 {
		return c, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

// Lighten moves each channel halfway toward white. Fill fronts apply this to
// an already-assigned key each time they collide with it, so seams between
// fronts become progressively lighter.
func (c RGB) Lighten() RGB {
	return RGB{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
	}
}
