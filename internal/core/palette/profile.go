package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// ErrProfileSpread is returned when a profile cannot be spread to a target
// length, either because the profile has no colors or the target length is
// not positive.
var ErrProfileSpread = errors.New("cannot spread color profile")

// Profile is an ordered sequence of colors that can be resized ("spread")
// onto an ascii canvas.
type Profile struct {
	colors []Color
}

// New builds a profile from concrete colors.
func New(colors []Color) *Profile {
	return &Profile{colors: colors}
}

// FromHexes builds a profile by parsing a list of hex color strings.
func FromHexes(hexes []string) (*Profile, error) {
	colors := make([]Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := FromHex(h)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return New(colors), nil
}

// Len returns the number of colors in the profile.
func (p *Profile) Len() int {
	return len(p.colors)
}

// At returns the color at index i.
func (p *Profile) At(i int) Color {
	return p.colors[i]
}

// Slice returns the sub-profile covering [lo, hi). Bounds are clamped so a
// caller holding a stale span cannot panic the render.
func (p *Profile) Slice(lo, hi int) *Profile {
	if lo < 0 {
		lo = 0
	}
	if hi > len(p.colors) {
		hi = len(p.colors)
	}
	if lo > hi {
		lo = hi
	}
	return New(p.colors[lo:hi])
}

// WithLength spreads the profile to exactly length colors, repeating each
// source color as evenly as possible and giving the leftover repeats to the
// middle of the sequence so stripe boundaries stay symmetric.
func (p *Profile) WithLength(length int) (*Profile, error) {
	if len(p.colors) == 0 {
		return nil, fmt.Errorf("%w: profile is empty", ErrProfileSpread)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: target length %d", ErrProfileSpread, length)
	}

	base := length / len(p.colors)
	extra := length % len(p.colors)
	firstExtra := (len(p.colors) - extra) / 2

	colors := make([]Color, 0, length)
	for i, c := range p.colors {
		repeat := base
		if i >= firstExtra && i < firstExtra+extra {
			repeat++
		}
		for range repeat {
			colors = append(colors, c)
		}
	}
	return New(colors), nil
}

// UniqueColors removes duplicate colors, keeping the first occurrence of
// each and preserving order.
func (p *Profile) UniqueColors() *Profile {
	seen := make(map[string]struct{}, len(p.colors))
	colors := make([]Color, 0, len(p.colors))
	for _, c := range p.colors {
		key := c.Hex()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		colors = append(colors, c)
	}
	return New(colors)
}

// WithLight replaces every color's lightness, keeping hue and saturation.
func (p *Profile) WithLight(light float64) *Profile {
	colors := make([]Color, len(p.colors))
	for i, c := range p.colors {
		colors[i] = c.WithLight(light)
	}
	return New(colors)
}

// ColorText colors a run of text as a left-to-right gradient, one color per
// grapheme cluster, spreading the profile across the text's display width.
// A trailing reset is always appended. When continueLast is set the leading
// escape is suppressed so the span continues whatever color is already
// active; the engine currently always restarts each span.
func (p *Profile) ColorText(text string, mode Mode, role Role, continueLast bool) (string, error) {
	if len(p.colors) == 0 {
		return "", fmt.Errorf("%w: profile is empty", ErrProfileSpread)
	}
	width := uniseg.GraphemeClusterCount(text)
	if width == 0 {
		return text, nil
	}

	spread, err := p.WithLength(width)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	last := ""
	first := true
	g := uniseg.NewGraphemes(text)
	for i := 0; g.Next(); i++ {
		esc := spread.At(i).ToAnsi(mode, role)
		if esc != last && !(first && continueLast) {
			b.WriteString(esc)
		}
		first = false
		last = esc
		b.WriteString(g.Str())
	}
	b.WriteString(Reset)
	return b.String(), nil
}
