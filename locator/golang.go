package locator

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/blackopsrepl/emacs-copilot/complete"
)

// Go locates the enclosing function or method declaration in Go buffers
// using the standard library parser. Buffers mid-edit often do not parse
// cleanly; the partial AST is still searched when the parser returns one.
type Go struct{}

func (Go) EnclosingDefinition(buf complete.Buffer, line, col int) (string, bool) {
	src := bufferText(buf)
	if src == "" {
		return "", false
	}

	fset := token.NewFileSet()
	file, _ := parser.ParseFile(fset, "buffer.go", src, parser.ParseComments)
	if file == nil {
		return "", false
	}

	off := cursorOffset(buf, line, col)

	var start, end int
	found := false
	ast.Inspect(file, func(n ast.Node) bool {
		fd, ok := n.(*ast.FuncDecl)
		if !ok {
			return true
		}
		s := fset.Position(fd.Pos()).Offset
		e := fset.Position(fd.End()).Offset
		if s <= off && off < e {
			if !found || e-s < end-start {
				start, end, found = s, e, true
			}
		}
		return true
	})
	if !found || end > len(src) {
		return "", false
	}

	return src[start:end], true
}
