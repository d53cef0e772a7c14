package recolor

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/tintfetch/tintfetch-cli/internal/core/palette"
)

// Theme is the terminal background the recolored art must stay legible on.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

// ParseTheme parses a user-facing theme name.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("invalid theme %q (want light or dark)", s)
}

// neutral is the escape substituted for "foreground" slots: black on light
// terminals, bright white on dark ones.
func (t Theme) neutral() string {
	if t == ThemeLight {
		return "\x1b[30m"
	}
	return "\x1b[97m"
}

// ForeBack is a pair of slots singled out for special treatment: the art's
// outline (Fore) stays theme-neutral while its fill (Back) receives the
// gradient.
type ForeBack struct {
	Fore Slot
	Back Slot
}

// Alignment is the policy for mapping a gradient profile onto ascii art.
// The three implementations are Horizontal, Vertical and Custom.
type Alignment interface {
	// Recolor rewrites the art's placeholders into color escapes. Either a
	// complete recolored string is returned, or an error and no output.
	Recolor(asc string, profile *palette.Profile, mode palette.Mode, theme Theme) (string, error)
}

// Horizontal assigns one gradient color per output row.
type Horizontal struct {
	ForeBack *ForeBack
}

// Vertical assigns one gradient color per output column.
type Vertical struct {
	ForeBack *ForeBack
}

// Custom substitutes a fixed palette entry for each mapped slot; no
// gradient spreading across rows or columns.
type Custom struct {
	// Colors maps slots to indices into the deduplicated profile.
	Colors map[Slot]int
}

func checkProfile(profile *palette.Profile) error {
	if profile.Len() == 0 {
		return fmt.Errorf("recolor: %w: profile is empty", palette.ErrProfileSpread)
	}
	return nil
}

func (a Horizontal) Recolor(asc string, profile *palette.Profile, mode palette.Mode, theme Theme) (string, error) {
	if err := checkProfile(profile); err != nil {
		return "", err
	}
	if a.ForeBack == nil {
		return horizontalPlain(asc, profile, mode)
	}
	fore, back := a.ForeBack.Fore, a.ForeBack.Back

	asc, err := FillStarting(asc)
	if err != nil {
		return "", err
	}

	// Outline slots become the theme neutral. This is a literal token
	// replacement and must run before the per-line fill substitution below,
	// which operates on the already-rewritten text.
	asc = strings.ReplaceAll(asc, fore.Token(), theme.neutral())

	_, height, err := AsciiSize(asc)
	if err != nil {
		return "", err
	}
	spread, err := profile.WithLength(height)
	if err != nil {
		return "", err
	}

	lines := strings.Split(asc, "\n")
	for i, line := range lines {
		row := spread.At(i).ToAnsi(mode, palette.Foreground)
		lines[i] = strings.ReplaceAll(line, back.Token(), row) + palette.Reset
	}

	// Slots other than fore/back vanish instead of leaking literal token
	// text into the output.
	return Strip(strings.Join(lines, "\n")), nil
}

func horizontalPlain(asc string, profile *palette.Profile, mode palette.Mode) (string, error) {
	asc = Strip(asc)

	_, height, err := AsciiSize(asc)
	if err != nil {
		return "", err
	}
	spread, err := profile.WithLength(height)
	if err != nil {
		return "", err
	}

	lines := strings.Split(asc, "\n")
	for i, line := range lines {
		lines[i] = spread.At(i).ToAnsi(mode, palette.Foreground) + line + palette.Reset
	}
	return strings.Join(lines, "\n"), nil
}

func (a Vertical) Recolor(asc string, profile *palette.Profile, mode palette.Mode, theme Theme) (string, error) {
	if err := checkProfile(profile); err != nil {
		return "", err
	}
	if a.ForeBack == nil {
		return verticalPlain(asc, profile, mode)
	}
	fore, back := a.ForeBack.Fore, a.ForeBack.Back

	asc, err := FillStarting(asc)
	if err != nil {
		return "", err
	}

	// Vertical stripes must align across rows, so the profile is spread to
	// the art's width once and shared by every line.
	width, _, err := AsciiSize(asc)
	if err != nil {
		return "", err
	}
	spread, err := profile.WithLength(width)
	if err != nil {
		return "", err
	}

	lines := strings.Split(asc, "\n")
	for i, line := range lines {
		colored, err := verticalLine(line, spread, fore, back, mode, theme)
		if err != nil {
			return "", fmt.Errorf("vertical recolor: line %d: %w", i+1, err)
		}
		lines[i] = colored
	}
	return strings.Join(lines, "\n"), nil
}

// verticalLine colors one line of placeholder-filled art. Each placeholder
// occurrence governs the span of text up to the next occurrence (or the end
// of the line): fore spans render theme-neutral, back spans render through
// the sub-slice of the width-spread gradient matching their column offsets,
// and spans of untargeted slots stay plain.
func verticalLine(line string, spread *palette.Profile, fore, back Slot, mode palette.Mode, theme Theme) (string, error) {
	matches := FindAll(line)
	if len(matches) == 0 {
		// FillStarting guarantees every line starts with a placeholder.
		return "", fmt.Errorf("internal: line has no color placeholder after fill")
	}

	var b strings.Builder
	consumed := 0
	for i, m := range matches {
		end := len(line)
		if i+1 < len(matches) {
			end = matches[i+1].Start
		}
		txt := line[m.End:end]

		consumed += m.Len()

		// A trailing placeholder owns an empty span; nothing to color.
		if txt == "" {
			continue
		}

		// Placeholder tokens occupy zero display columns, so the gradient
		// column of this span is its grapheme position with all tokens seen
		// so far subtracted. Tokens are ASCII: byte length equals glyph
		// count.
		col := uniseg.GraphemeClusterCount(line[:m.End]) - consumed
		spanW := uniseg.GraphemeClusterCount(txt)

		switch m.Slot {
		case fore:
			b.WriteString(theme.neutral())
			b.WriteString(txt)
			b.WriteString(palette.Reset)
		case back:
			colored, err := spread.Slice(col, col+spanW).ColorText(txt, mode, palette.Foreground, false)
			if err != nil {
				return "", err
			}
			b.WriteString(colored)
		default:
			b.WriteString(txt)
		}
	}
	return b.String(), nil
}

func verticalPlain(asc string, profile *palette.Profile, mode palette.Mode) (string, error) {
	asc = Strip(asc)

	lines := strings.Split(asc, "\n")
	for i, line := range lines {
		colored, err := profile.ColorText(line, mode, palette.Foreground, false)
		if err != nil {
			return "", err
		}
		lines[i] = colored
	}
	return strings.Join(lines, "\n"), nil
}

func (a Custom) Recolor(asc string, profile *palette.Profile, mode palette.Mode, theme Theme) (string, error) {
	if err := checkProfile(profile); err != nil {
		return "", err
	}

	asc, err := FillStarting(asc)
	if err != nil {
		return "", err
	}

	pal := profile.UniqueColors()

	// Per-slot literal replacements; unmapped slots strip to nothing.
	var repl [SlotCount + 1]string
	for slot, idx := range a.Colors {
		if !slot.Valid() {
			return "", fmt.Errorf("custom colors: slot %d: %w", slot, ErrInvalidPlaceholder)
		}
		if idx < 0 || idx >= pal.Len() {
			return "", fmt.Errorf("custom colors: slot %d references index %d of a %d-color palette: %w",
				slot, idx, pal.Len(), ErrInvalidColorIndex)
		}
		repl[slot] = pal.At(idx).ToAnsi(mode, palette.Foreground)
	}

	asc = ReplaceAll(asc, func(s Slot) string { return repl[s] })

	// Reset at the end of each line so a trailing color does not bleed into
	// whatever the terminal prints next.
	lines := strings.Split(asc, "\n")
	for i, line := range lines {
		lines[i] = line + palette.Reset
	}
	return strings.Join(lines, "\n"), nil
}
