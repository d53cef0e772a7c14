// Package recolor rewrites the ${c1}..${c6} color placeholders of
// neofetch-style ascii art into terminal color escapes, using a gradient
// color profile and one of three alignment strategies.
package recolor

import "strings"

// SlotCount is the number of color slots an ascii art can reference.
const SlotCount = 6

// Slot identifies one of the six ascii art color variables, 1-indexed.
type Slot uint8

// Valid reports whether the slot is within [1,6].
func (s Slot) Valid() bool {
	return s >= 1 && s <= SlotCount
}

// Token returns the literal placeholder text for the slot, e.g. "${c1}".
// The brace syntax must match the existing ascii art libraries exactly.
func (s Slot) Token() string {
	return string([]byte{'$', '{', 'c', '0' + byte(s), '}'})
}

// Match is one placeholder occurrence within a line. Start and End are byte
// offsets; End is exclusive.
type Match struct {
	Slot  Slot
	Start int
	End   int
}

// Len returns the byte length of the matched token. Tokens are plain ASCII,
// so this equals their display-irrelevant glyph count.
func (m Match) Len() int {
	return m.End - m.Start
}

// FindFrom returns the first placeholder occurrence starting at or after
// byte offset pos.
func FindFrom(s string, pos int) (Match, bool) {
	for i := pos; i < len(s); {
		j := strings.Index(s[i:], "${c")
		if j < 0 {
			break
		}
		j += i
		if j+5 <= len(s) && s[j+3] >= '1' && s[j+3] <= '6' && s[j+4] == '}' {
			return Match{Slot: Slot(s[j+3] - '0'), Start: j, End: j + 5}, true
		}
		i = j + 1
	}
	return Match{}, false
}

// FindAll returns every non-overlapping placeholder occurrence in order.
func FindAll(s string) []Match {
	var matches []Match
	for i := 0; ; {
		m, ok := FindFrom(s, i)
		if !ok {
			return matches
		}
		matches = append(matches, m)
		i = m.End
	}
}

// ReplaceAll rewrites every placeholder occurrence using a caller-supplied
// per-slot replacement. An empty replacement strips the token.
func ReplaceAll(s string, repl func(Slot) string) string {
	var b strings.Builder
	i := 0
	for {
		m, ok := FindFrom(s, i)
		if !ok {
			if i == 0 {
				return s
			}
			b.WriteString(s[i:])
			return b.String()
		}
		b.WriteString(s[i:m.Start])
		b.WriteString(repl(m.Slot))
		i = m.End
	}
}

// Strip removes every placeholder token.
func Strip(s string) string {
	return ReplaceAll(s, func(Slot) string { return "" })
}
