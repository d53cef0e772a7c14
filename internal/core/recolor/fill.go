package recolor

import (
	"fmt"
	"strings"
)

// FillStarting makes sure every line of ascii art begins with an explicit
// color placeholder, carrying the last placeholder of a previous line
// forward onto lines that omit one:
//
//	"${c1}...\n..." -> "${c1}...\n${c1}..."
//
// A line counts as already started when its first placeholder is preceded
// only by spaces. Art whose first lines have no placeholder at all fails
// with ErrMissingColorState; there is no valid state to propagate.
func FillStarting(asc string) (string, error) {
	lines := strings.Split(asc, "\n")
	out := make([]string, len(lines))

	carry := ""
	for i, line := range lines {
		first, ok := FindFrom(line, 0)
		if ok && strings.TrimRight(line[:first.Start], " ") == "" {
			out[i] = line
		} else {
			if carry == "" {
				return "", fmt.Errorf("fill starting colors: line %d: %w", i+1, ErrMissingColorState)
			}
			out[i] = carry + line
		}

		// The last placeholder on this line is the active state for the next.
		if matches := FindAll(line); len(matches) > 0 {
			last := matches[len(matches)-1]
			carry = line[last.Start:last.End]
		}
	}
	return strings.Join(out, "\n"), nil
}
