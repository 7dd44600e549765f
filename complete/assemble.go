package complete

import (
	"strings"
	"unicode/utf8"
)

// gapMarker separates discontiguous slices in the assembled prefix.
const gapMarker = "\n...\n"

// prefixTailBudget is the trailing slice of the raw prefix kept when an
// enclosing definition is spliced in, roughly five 80-column lines. The
// definition already covers the code above the cursor, so only the
// immediate local context is repeated.
const prefixTailBudget = 400

// Assembled is the merged context handed to the prompt formatter.
type Assembled struct {
	Prefix string
	Suffix string
}

// Assemble merges a Window into the final prefix and suffix. cursorLine is
// zero-based. The result stays bounded for arbitrarily large documents: the
// prefix holds at most imports + capped definition + bounded raw prefix.
func Assemble(w Window, cursorLine, importLineCount int) Assembled {
	// Cursor inside the imports region: the raw prefix already starts at
	// the top of the document, so splicing imports in would duplicate them.
	if cursorLine+1 <= importLineCount {
		return Assembled{Prefix: w.Prefix, Suffix: w.Suffix}
	}

	if w.HasDefinition && !strings.Contains(w.Prefix, w.Definition) {
		return Assembled{
			Prefix: w.Imports + gapMarker + w.Definition + gapMarker + tail(w.Prefix, prefixTailBudget),
			Suffix: w.Suffix,
		}
	}

	return Assembled{Prefix: w.Imports + gapMarker + w.Prefix, Suffix: w.Suffix}
}

// tail returns at most budget trailing bytes of s, cut forward to a rune
// boundary.
func tail(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	i := len(s) - budget
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return s[i:]
}
