package locator

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/blackopsrepl/emacs-copilot/complete"
)

// Shell locates the enclosing function declaration in shell buffers by
// walking the mvdan.cc/sh syntax tree.
type Shell struct{}

func (Shell) EnclosingDefinition(buf complete.Buffer, line, col int) (string, bool) {
	src := bufferText(buf)
	if src == "" {
		return "", false
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash), syntax.KeepComments(true))
	prog, err := parser.Parse(strings.NewReader(src), "")
	if err != nil {
		return "", false
	}

	off := uint(cursorOffset(buf, line, col))

	var start, end uint
	found := false
	syntax.Walk(prog, func(node syntax.Node) bool {
		fd, ok := node.(*syntax.FuncDecl)
		if !ok {
			return true
		}
		s, e := fd.Pos().Offset(), fd.End().Offset()
		if s <= off && off < e {
			// Keep the smallest declaration containing the cursor.
			if !found || e-s < end-start {
				start, end, found = s, e, true
			}
		}
		return true
	})
	if !found || end > uint(len(src)) {
		return "", false
	}

	return src[start:end], true
}
