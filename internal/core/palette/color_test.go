package palette

import (
	"strings"
	"testing"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#FF8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hex() != "#ff8000" {
		t.Errorf("expected #ff8000, got %s", c.Hex())
	}

	if _, err := FromHex("not-a-color"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestToAnsiTrueColor(t *testing.T) {
	c, _ := FromHex("#ff0000")

	if got := c.ToAnsi(TrueColor, Foreground); got != "\x1b[38;2;255;0;0m" {
		t.Errorf("unexpected foreground escape %q", got)
	}
	if got := c.ToAnsi(TrueColor, Background); got != "\x1b[48;2;255;0;0m" {
		t.Errorf("unexpected background escape %q", got)
	}
}

func TestToAnsi256(t *testing.T) {
	c, _ := FromHex("#ff0000")

	got := c.ToAnsi(Ansi256, Foreground)
	if !strings.HasPrefix(got, "\x1b[38;5;") || !strings.HasSuffix(got, "m") {
		t.Errorf("expected a 256-color escape, got %q", got)
	}
}

func TestWithLight(t *testing.T) {
	c, _ := FromHex("#ff0000")

	if got := c.WithLight(0.5).Hex(); got != "#ff0000" {
		t.Errorf("pure red at lightness 0.5 should stay #ff0000, got %s", got)
	}
	darker := c.WithLight(0.25).Hex()
	if darker == "#ff0000" {
		t.Errorf("lowering lightness should darken the color, got %s", darker)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"rgb", "RGB", "truecolor"} {
		if m, err := ParseMode(s); err != nil || m != TrueColor {
			t.Errorf("%q: expected TrueColor, got %v err=%v", s, m, err)
		}
	}
	for _, s := range []string{"256", "8bit"} {
		if m, err := ParseMode(s); err != nil || m != Ansi256 {
			t.Errorf("%q: expected Ansi256, got %v err=%v", s, m, err)
		}
	}
	if _, err := ParseMode("16"); err == nil {
		t.Error("expected error for unsupported mode")
	}
}
