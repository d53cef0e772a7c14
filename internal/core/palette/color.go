package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Mode selects how colors are encoded into terminal escapes.
type Mode int

const (
	// TrueColor emits 24-bit RGB escapes.
	TrueColor Mode = iota
	// Ansi256 downsamples to the 256-color palette.
	Ansi256
)

// ParseMode parses a user-facing color mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb", "truecolor", "24bit":
		return TrueColor, nil
	case "256", "8bit", "ansi256":
		return Ansi256, nil
	}
	return TrueColor, fmt.Errorf("invalid color mode %q (want rgb or 256)", s)
}

// Role distinguishes foreground from background escapes.
type Role int

const (
	Foreground Role = iota
	Background
)

// Reset terminates any active color styling.
const Reset = "\x1b[0m"

// Color is a single concrete color in a gradient profile.
type Color struct {
	c colorful.Color
}

// FromHex parses a "#RRGGBB" hex string.
func FromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return Color{c: c}, nil
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return c.c.Hex()
}

// ToAnsi renders the color as a terminal escape prefix. No trailing reset
// is included.
func (c Color) ToAnsi(mode Mode, role Role) string {
	var tc termenv.Color
	switch mode {
	case Ansi256:
		tc = termenv.ANSI256.FromColor(c.c)
	default:
		tc = termenv.TrueColor.FromColor(c.c)
	}
	return "\x1b[" + tc.Sequence(role == Background) + "m"
}

// WithLight returns the color with its HSL lightness replaced, keeping hue
// and saturation. Used to keep presets readable on light or dark
// backgrounds.
func (c Color) WithLight(light float64) Color {
	h, s, _ := c.c.Hsl()
	return Color{c: colorful.Hsl(h, s, light)}
}
