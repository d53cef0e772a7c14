package recolor

import (
	"errors"

	"github.com/tintfetch/tintfetch-cli/internal/core/palette"
)

// ErrProfileSpread is the palette's spread failure, surfaced here so callers
// of the alignment strategies can match it without importing palette.
var ErrProfileSpread = palette.ErrProfileSpread

var (
	// ErrInvalidPlaceholder reports a color slot outside [1,6]. The scanner
	// only matches the six literal tokens, so this is unreachable for art
	// going through the scanner; it guards hand-built slot values.
	ErrInvalidPlaceholder = errors.New("color placeholder slot outside [1,6]")

	// ErrMissingColorState reports a line that needs a carried-forward color
	// placeholder when no previous line ever produced one.
	ErrMissingColorState = errors.New("no color placeholder found on any previous line")

	// ErrDimensionOverflow reports ascii art larger than the engine supports.
	ErrDimensionOverflow = errors.New("ascii art dimensions exceed supported bounds")

	// ErrInvalidColorIndex reports a custom color assignment that references
	// a palette index outside the deduplicated profile.
	ErrInvalidColorIndex = errors.New("color index outside palette bounds")
)
