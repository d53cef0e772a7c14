package palette

import (
	"fmt"
	"sort"
)

// Built-in gradient presets, keyed by name. Hex lists follow the flag
// stripe orders the presets are named after.
var builtins = map[string][]string{
	"rainbow":     {"#E50000", "#FF8D00", "#FFEE00", "#028121", "#004CFF", "#770088"},
	"transgender": {"#55CDFD", "#F6AAB7", "#FFFFFF", "#F6AAB7", "#55CDFD"},
	"nonbinary":   {"#FCF431", "#FCFCFC", "#9D59D2", "#282828"},
	"lesbian":     {"#D62800", "#FF9B56", "#FFFFFF", "#D462A6", "#A40062"},
	"bisexual":    {"#D60270", "#9B4F96", "#0038A8"},
	"pansexual":   {"#FF1C8D", "#FFD700", "#1AB3FF"},
	"agender":     {"#000000", "#BABABA", "#FFFFFF", "#BAF484", "#FFFFFF", "#BABABA", "#000000"},
	"asexual":     {"#000000", "#A4A4A4", "#FFFFFF", "#810081"},
	"genderfluid": {"#FE76A2", "#FFFFFF", "#BD18D6", "#000000", "#333EBD"},
	"aromantic":   {"#3BA740", "#A8D47A", "#FFFFFF", "#ABABAB", "#000000"},
	"mono-light":  {"#FFFFFF", "#C0C0C0", "#808080"},
	"mono-dark":   {"#808080", "#404040", "#000000"},
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetHexes returns the raw hex list of a built-in preset.
func PresetHexes(name string) ([]string, bool) {
	hexes, ok := builtins[name]
	return hexes, ok
}

// Preset resolves a built-in preset name to a profile.
func Preset(name string) (*Profile, error) {
	hexes, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return FromHexes(hexes)
}
