package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// Swatch renders a preset's colors as a row of blocks.
func Swatch(hexes []string) string {
	var b strings.Builder
	for _, h := range hexes {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(h)).Render("██"))
	}
	return b.String()
}

// RenderPresetList formats all presets for `tintfetch presets`, one line of
// name + swatch each, with user-defined presets marked.
func RenderPresetList(builtin map[string][]string, user map[string][]string, width int) string {
	nameStyle := lipgloss.NewStyle().Foreground(Theme.Text).Bold(true)
	markStyle := lipgloss.NewStyle().Foreground(Theme.TextSubtle)

	names := make([]string, 0, len(builtin)+len(user))
	for name := range builtin {
		names = append(names, name)
	}
	for name := range user {
		if _, ok := builtin[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	pad := 0
	for _, name := range names {
		if len(name) > pad {
			pad = len(name)
		}
	}

	var b strings.Builder
	for _, name := range names {
		hexes, mark := builtin[name], ""
		if custom, ok := user[name]; ok {
			hexes, mark = custom, " (user)"
		}
		line := fmt.Sprintf("%s%s  %s%s",
			nameStyle.Render(name), strings.Repeat(" ", pad-len(name)),
			Swatch(hexes), markStyle.Render(mark))
		b.WriteString(line)
		b.WriteString("\n")
	}

	help := "Pick one with --preset, or define your own in ~/.tintfetch/presets.yaml."
	if width > 0 {
		help = wordwrap.String(help, width)
	}
	b.WriteString(markStyle.Render(help))
	b.WriteString("\n")
	return indent.String(b.String(), 2)
}

// RenderLogo colors the banner with the theme's gradient, line by line.
func RenderLogo() string {
	lines := strings.Split(Logo, "\n")
	for i, line := range lines {
		color := Theme.LogoGradient[i%len(Theme.LogoGradient)]
		lines[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(line)
	}
	return strings.Join(lines, "\n")
}
