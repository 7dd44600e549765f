package complete

import "strings"

// maxDefinitionChars caps the enclosing-definition text accepted from a
// locator. Oversized functions are treated as absent so the prompt stays
// bounded.
const maxDefinitionChars = 2000

// Window holds the raw slices extracted around the cursor.
type Window struct {
	// Imports is the leading lines of the document.
	Imports string
	// Prefix is the bounded text immediately before the cursor, ending at
	// the cursor column.
	Prefix string
	// Suffix is the bounded text from the cursor column onward.
	Suffix string
	// Definition is the enclosing-definition text, when a locator found one
	// under the size cap.
	Definition    string
	HasDefinition bool
}

// ExtractWindow reads bounded slices of buf around the cursor. loc may be
// nil; locator failures degrade to an absent definition. The buffer is only
// read, never modified.
func ExtractWindow(buf Buffer, loc Locator, importLines, prefixLines, suffixLines int) Window {
	var w Window

	n := buf.LineCount()
	if n == 0 {
		return w
	}

	line, col := buf.Cursor()
	if line < 0 {
		line = 0
	}
	if line >= n {
		line = n - 1
	}
	cur := buf.Line(line)
	if col < 0 {
		col = 0
	}
	if col > len(cur) {
		col = len(cur)
	}

	imp := importLines
	if imp > n {
		imp = n
	}
	w.Imports = joinLines(buf, 0, imp)

	start := line - prefixLines
	if start < 0 {
		start = 0
	}
	var pre strings.Builder
	for i := start; i < line; i++ {
		pre.WriteString(buf.Line(i))
		pre.WriteByte('\n')
	}
	pre.WriteString(cur[:col])
	w.Prefix = pre.String()

	end := line + 1 + suffixLines
	if end > n {
		end = n
	}
	var suf strings.Builder
	suf.WriteString(cur[col:])
	for i := line + 1; i < end; i++ {
		suf.WriteByte('\n')
		suf.WriteString(buf.Line(i))
	}
	w.Suffix = suf.String()

	if loc != nil {
		if def, ok := loc.EnclosingDefinition(buf, line, col); ok && def != "" && len(def) < maxDefinitionChars {
			w.Definition = def
			w.HasDefinition = true
		}
	}

	return w
}

// joinLines joins lines [start, end) of buf with newlines.
func joinLines(buf Buffer, start, end int) string {
	var sb strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			sb.WriteByte('\n')
		}
		sb.WriteString(buf.Line(i))
	}
	return sb.String()
}
