// Package locator provides built-in enclosing-definition lookup for editor
// hosts without syntax tooling of their own. Each locator finds the
// smallest function declaration containing the cursor and returns its text;
// any parse trouble degrades to "not found".
package locator

import (
	"strings"

	"github.com/blackopsrepl/emacs-copilot/complete"
)

// ForLanguage returns the built-in locator for the given language name, or
// nil when none exists. A nil locator runs the pipeline without an
// enclosing definition.
func ForLanguage(lang string) complete.Locator {
	switch strings.ToLower(lang) {
	case "go", "golang", "go-mode":
		return Go{}
	case "sh", "bash", "zsh", "shell", "shell-script", "sh-mode":
		return Shell{}
	}
	return nil
}

// Static returns a locator reporting a fixed definition text, used when the
// editor host located the span itself. Empty text reports "not found".
func Static(text string) complete.Locator {
	return static(text)
}

type static string

func (s static) EnclosingDefinition(complete.Buffer, int, int) (string, bool) {
	return string(s), s != ""
}

// bufferText flattens the buffer into a single newline-joined string.
func bufferText(buf complete.Buffer) string {
	var sb strings.Builder
	for i := 0; i < buf.LineCount(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(buf.Line(i))
	}
	return sb.String()
}

// cursorOffset converts a zero-based line/col cursor into a byte offset
// within bufferText(buf).
func cursorOffset(buf complete.Buffer, line, col int) int {
	off := 0
	for i := 0; i < line && i < buf.LineCount(); i++ {
		off += len(buf.Line(i)) + 1
	}
	return off + col
}
