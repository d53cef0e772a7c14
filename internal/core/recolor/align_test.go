package recolor

import (
	"errors"
	"strings"
	"testing"

	"github.com/tintfetch/tintfetch-cli/internal/core/palette"
)

const (
	red   = "\x1b[38;2;255;0;0m"
	green = "\x1b[38;2;0;255;0m"
	blue  = "\x1b[38;2;0;0;255m"
	white = "\x1b[97m"
	black = "\x1b[30m"
	reset = "\x1b[0m"
)

func mustProfile(t *testing.T, hexes ...string) *palette.Profile {
	t.Helper()
	p, err := palette.FromHexes(hexes)
	if err != nil {
		t.Fatalf("failed to build profile: %v", err)
	}
	return p
}

func TestHorizontalPlain(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00", "#0000FF")

	got, err := Horizontal{}.Recolor("${c1}aa\n${c2}bb\ncc", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := red + "aa" + reset + "\n" + green + "bb" + reset + "\n" + blue + "cc" + reset
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHorizontalPlainRowColorsMatchSpread(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00")

	got, err := Horizontal{}.Recolor("a\nb\nc\nd", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spread, err := p.WithLength(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, line := range strings.Split(got, "\n") {
		prefix := spread.At(i).ToAnsi(palette.TrueColor, palette.Foreground)
		if !strings.HasPrefix(line, prefix) {
			t.Errorf("row %d: expected prefix %q, got line %q", i, prefix, line)
		}
		if !strings.HasSuffix(line, reset) || strings.Count(line, reset) != 1 {
			t.Errorf("row %d: expected exactly one trailing reset: %q", i, line)
		}
	}
}

func TestHorizontalWithForeBack(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00")

	art := "${c2}XX${c1}YY\nZZ"
	got, err := Horizontal{ForeBack: &ForeBack{Fore: 2, Back: 1}}.
		Recolor(art, p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Row 0 gets red, row 1 green; ${c2} turns neutral white; the carried
	// ${c1} on line 2 becomes the row color.
	want := white + "XX" + red + "YY" + reset + "\n" + green + "ZZ" + reset
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHorizontalWithForeBackStripsOtherSlots(t *testing.T) {
	p := mustProfile(t, "#FF0000")

	got, err := Horizontal{ForeBack: &ForeBack{Fore: 2, Back: 1}}.
		Recolor("${c1}aa${c5}bb", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "${c") {
		t.Errorf("untargeted slot leaked into output: %q", got)
	}
}

func TestHorizontalLightThemeNeutral(t *testing.T) {
	p := mustProfile(t, "#FF0000")

	got, err := Horizontal{ForeBack: &ForeBack{Fore: 2, Back: 1}}.
		Recolor("${c2}XX", p, palette.TrueColor, ThemeLight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, black) {
		t.Errorf("expected black neutral on light theme, got %q", got)
	}
}

func TestVerticalPlain(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00")

	got, err := Vertical{}.Recolor("${c1}ab\ncd", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantLine1 := red + "a" + green + "b" + reset
	wantLine2 := red + "c" + green + "d" + reset
	if got != wantLine1+"\n"+wantLine2 {
		t.Errorf("expected vertical stripes to align across rows, got %q", got)
	}
}

func TestVerticalWithForeBack(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00")

	got, err := Vertical{ForeBack: &ForeBack{Fore: 1, Back: 2}}.
		Recolor("${c1}AA${c2}BB", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Width 4 spreads the profile to [R,R,G,G]; "BB" sits at columns 2-3,
	// so its gradient slice is [G,G]. The neutral span closes with a reset
	// without fragmenting the gradient span.
	want := white + "AA" + reset + green + "BB" + reset
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestVerticalWithForeBackTrailingToken(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00")

	// A line can legitimately end with a placeholder, e.g. after padding
	// brings a shorter line up to a width set by a token-terminated one.
	got, err := Vertical{ForeBack: &ForeBack{Fore: 1, Back: 2}}.
		Recolor("${c1}AB${c2}", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := white + "AB" + reset
	if got != want {
		t.Errorf("expected the empty trailing span to emit nothing, got %q", got)
	}
}

func TestVerticalWithForeBackUntargetedSlotStaysPlain(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00")

	got, err := Vertical{ForeBack: &ForeBack{Fore: 1, Back: 2}}.
		Recolor("${c1}AA${c3}BB", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := white + "AA" + reset + "BB"
	if got != want {
		t.Errorf("expected untargeted span to stay plain, got %q", got)
	}
}

func TestVerticalWithForeBackGradientColumns(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00", "#0000FF")

	// Two rows; the back span on row 2 starts at column 1, so its colors
	// must come from the same width-spread gradient as row 1's.
	art := "${c2}abc\n${c1}x${c2}yz"
	got, err := Vertical{ForeBack: &ForeBack{Fore: 1, Back: 2}}.
		Recolor(art, p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantLine1 := red + "a" + green + "b" + blue + "c" + reset
	wantLine2 := white + "x" + reset + green + "y" + blue + "z" + reset
	if got != wantLine1+"\n"+wantLine2 {
		t.Errorf("expected %q, got %q", wantLine1+"\n"+wantLine2, got)
	}
}

func TestCustom(t *testing.T) {
	// Duplicate red dedups away, leaving a 3-color palette.
	p := mustProfile(t, "#FF0000", "#FF0000", "#00FF00", "#0000FF")

	got, err := Custom{Colors: map[Slot]int{1: 0, 3: 2}}.
		Recolor("${c1}a${c2}b${c3}c${c4}d", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := red + "a" + "b" + blue + "cd" + reset
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if strings.Contains(got, "${c") {
		t.Errorf("token text leaked into output: %q", got)
	}
}

func TestCustomEmptyMapping(t *testing.T) {
	p := mustProfile(t, "#FF0000")

	got, err := Custom{}.Recolor("${c1}ab\ncd", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ab" + reset + "\n" + "cd" + reset
	if got != want {
		t.Errorf("expected all tokens stripped with per-line resets, got %q", got)
	}
}

func TestCustomSharedPaletteIndex(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#00FF00")

	got, err := Custom{Colors: map[Slot]int{1: 1, 2: 1}}.
		Recolor("${c1}a${c2}b", p, palette.TrueColor, ThemeDark)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := green + "a" + green + "b" + reset
	if got != want {
		t.Errorf("expected both slots to render palette entry 1, got %q", got)
	}
}

func TestCustomInvalidColorIndex(t *testing.T) {
	p := mustProfile(t, "#FF0000", "#FF0000", "#00FF00")

	// The deduplicated palette has 2 entries; index 2 is out of bounds.
	_, err := Custom{Colors: map[Slot]int{1: 2}}.
		Recolor("${c1}a", p, palette.TrueColor, ThemeDark)
	if !errors.Is(err, ErrInvalidColorIndex) {
		t.Errorf("expected ErrInvalidColorIndex, got %v", err)
	}
}

func TestEmptyProfileFailsEveryAlignment(t *testing.T) {
	empty := palette.New(nil)
	alignments := map[string]Alignment{
		"horizontal":      Horizontal{},
		"horizontal-pair": Horizontal{ForeBack: &ForeBack{Fore: 2, Back: 1}},
		"vertical":        Vertical{},
		"vertical-pair":   Vertical{ForeBack: &ForeBack{Fore: 2, Back: 1}},
		"custom":          Custom{Colors: map[Slot]int{1: 0}},
	}
	for name, a := range alignments {
		t.Run(name, func(t *testing.T) {
			_, err := a.Recolor("${c1}ab", empty, palette.TrueColor, ThemeDark)
			if !errors.Is(err, palette.ErrProfileSpread) {
				t.Errorf("expected ErrProfileSpread, got %v", err)
			}
		})
	}
}

func TestMissingColorStatePropagates(t *testing.T) {
	p := mustProfile(t, "#FF0000")

	_, err := Horizontal{ForeBack: &ForeBack{Fore: 2, Back: 1}}.
		Recolor("no tokens here", p, palette.TrueColor, ThemeDark)
	if !errors.Is(err, ErrMissingColorState) {
		t.Errorf("expected ErrMissingColorState, got %v", err)
	}
}
