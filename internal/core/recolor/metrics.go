package recolor

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// maxDimension mirrors the ceiling of the ascii art format this engine is
// compatible with; art is addressed with 8-bit coordinates downstream.
const maxDimension = 255

// lineWidth returns the display width of a single line in grapheme
// clusters, ignoring color placeholders.
func lineWidth(line string) int {
	return uniseg.GraphemeClusterCount(Strip(line))
}

// AsciiSize measures the bounding box of ascii art in display columns and
// lines. Placeholder tokens contribute zero width. Multi-code-point glyphs
// count as a single column.
func AsciiSize(asc string) (width, height int, err error) {
	lines := strings.Split(asc, "\n")
	for _, line := range lines {
		if w := lineWidth(line); w > width {
			width = w
		}
	}
	height = len(lines)
	if width > maxDimension || height > maxDimension {
		return 0, 0, fmt.Errorf("ascii size %dx%d: %w", width, height, ErrDimensionOverflow)
	}
	return width, height, nil
}

// NormalizeAscii pads every line with trailing spaces so all lines share
// the overall display width.
func NormalizeAscii(asc string) string {
	lines := strings.Split(asc, "\n")
	width := 0
	for _, line := range lines {
		if w := lineWidth(line); w > width {
			width = w
		}
	}
	for i, line := range lines {
		lines[i] = line + strings.Repeat(" ", width-lineWidth(line))
	}
	return strings.Join(lines, "\n")
}
