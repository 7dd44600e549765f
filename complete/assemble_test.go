package complete

import (
	"strings"
	"testing"
)

func TestAssembleCursorInsideImportsRegion(t *testing.T) {
	// Cursor on line 9 (1-based 10) with a 15-line imports region: the raw
	// prefix already covers the document top, so it is used untouched.
	w := Window{
		Imports: "import os",
		Prefix:  "import os\nimport sys\nx = ",
		Suffix:  "\n",
	}
	a := Assemble(w, 9, 15)
	if a.Prefix != w.Prefix {
		t.Errorf("expected raw prefix, got %q", a.Prefix)
	}
	if a.Suffix != w.Suffix {
		t.Errorf("expected suffix passthrough, got %q", a.Suffix)
	}
}

func TestAssembleWithDefinition(t *testing.T) {
	w := Window{
		Imports:       "import os",
		Prefix:        "    x = compute()\n    ",
		Suffix:        "\n    return x",
		Definition:    "def helper():\n    return 1",
		HasDefinition: true,
	}
	a := Assemble(w, 100, 15)
	want := "import os\n...\ndef helper():\n    return 1\n...\n    x = compute()\n    "
	if a.Prefix != want {
		t.Errorf("expected %q, got %q", want, a.Prefix)
	}
}

func TestAssembleDefinitionAlreadyInPrefixNotDuplicated(t *testing.T) {
	def := "def f():\n    return 1"
	w := Window{
		Imports:       "import os",
		Prefix:        def + "\n\nf(",
		Suffix:        ")",
		Definition:    def,
		HasDefinition: true,
	}
	a := Assemble(w, 100, 15)
	if got := strings.Count(a.Prefix, def); got != 1 {
		t.Errorf("expected exactly one copy of the definition, got %d", got)
	}
	if a.Prefix != w.Imports+"\n...\n"+w.Prefix {
		t.Errorf("expected imports + raw prefix, got %q", a.Prefix)
	}
}

func TestAssembleNoDefinition(t *testing.T) {
	w := Window{
		Imports: "package main",
		Prefix:  "func main() {\n\t",
		Suffix:  "\n}",
	}
	a := Assemble(w, 100, 15)
	if a.Prefix != "package main\n...\nfunc main() {\n\t" {
		t.Errorf("unexpected prefix %q", a.Prefix)
	}
}

func TestAssemblePrefixTailBudget(t *testing.T) {
	longPrefix := strings.Repeat("a", 1500) + "TAIL"
	w := Window{
		Imports:       "import os",
		Prefix:        longPrefix,
		Definition:    "def g(): pass",
		HasDefinition: true,
	}
	a := Assemble(w, 100, 15)
	if !strings.HasSuffix(a.Prefix, "TAIL") {
		t.Error("expected trailing portion of the raw prefix to survive")
	}
	kept := a.Prefix[strings.LastIndex(a.Prefix, "\n...\n")+len("\n...\n"):]
	if len(kept) != prefixTailBudget {
		t.Errorf("expected %d trailing prefix bytes, got %d", prefixTailBudget, len(kept))
	}
}

func TestAssembleBoundedForLargeDocuments(t *testing.T) {
	w := Window{
		Imports:       strings.Repeat("i", 1000),
		Prefix:        strings.Repeat("p", 10000),
		Suffix:        "s",
		Definition:    strings.Repeat("d", 1999),
		HasDefinition: true,
	}
	a := Assemble(w, 5000, 15)
	limit := len(w.Imports) + maxDefinitionChars + prefixTailBudget + 2*len(gapMarker)
	if len(a.Prefix) > limit {
		t.Errorf("prefix length %d exceeds bound %d", len(a.Prefix), limit)
	}
}

func TestAssembleEmptyWindow(t *testing.T) {
	a := Assemble(Window{}, 0, 15)
	if a.Prefix != "" || a.Suffix != "" {
		t.Errorf("expected empty assembly, got %+v", a)
	}
}

func TestTailCutsAtRuneBoundary(t *testing.T) {
	s := strings.Repeat("é", 300) // 2 bytes each
	got := tail(s, 401)
	if len(got) != 400 {
		t.Errorf("expected 400 bytes after boundary adjustment, got %d", len(got))
	}
	if !strings.HasPrefix(got, "é") {
		t.Error("expected tail to start on a rune boundary")
	}
}
