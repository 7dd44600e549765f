package complete

// Buffer is a read-only, line-addressed snapshot of the document being
// edited. It stays valid for the duration of one completion request; the
// editor host owns the live buffer.
type Buffer interface {
	// LineCount returns the number of lines in the document.
	LineCount() int
	// Line returns the text of the zero-based line i, without its trailing
	// newline. i must be in [0, LineCount()).
	Line(i int) string
	// Cursor returns the zero-based cursor position. The column is a byte
	// offset into the cursor line.
	Cursor() (line, col int)
}

// Locator finds the smallest function or definition block containing the
// cursor. Hosts without syntax tooling provide nil; lookup failure reports
// ok=false and is never an error.
type Locator interface {
	EnclosingDefinition(buf Buffer, line, col int) (text string, ok bool)
}

// Inserter writes completion text at the host's cursor.
type Inserter interface {
	Insert(text string) error
}

// SliceBuffer adapts an in-memory line slice to the Buffer interface.
type SliceBuffer struct {
	lines []string
	line  int
	col   int
}

// NewSliceBuffer wraps lines with a cursor at the given zero-based position.
func NewSliceBuffer(lines []string, line, col int) *SliceBuffer {
	return &SliceBuffer{lines: lines, line: line, col: col}
}

func (b *SliceBuffer) LineCount() int { return len(b.lines) }

func (b *SliceBuffer) Line(i int) string { return b.lines[i] }

func (b *SliceBuffer) Cursor() (line, col int) { return b.line, b.col }
