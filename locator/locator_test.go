package locator

import (
	"strings"
	"testing"

	"github.com/blackopsrepl/emacs-copilot/complete"
)

func TestForLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"go", true},
		{"golang", true},
		{"Go", true},
		{"sh", true},
		{"bash", true},
		{"shell-script", true},
		{"python", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			got := ForLanguage(tt.lang)
			if (got != nil) != tt.want {
				t.Errorf("ForLanguage(%q) = %v, want locator=%v", tt.lang, got, tt.want)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	loc := Static("def f(): pass")
	text, ok := loc.EnclosingDefinition(nil, 0, 0)
	if !ok || text != "def f(): pass" {
		t.Errorf("expected fixed definition, got %q ok=%v", text, ok)
	}

	if _, ok := Static("").EnclosingDefinition(nil, 0, 0); ok {
		t.Error("expected empty static text to report not found")
	}
}

func TestCursorOffset(t *testing.T) {
	buf := complete.NewSliceBuffer([]string{"abc", "de", "fgh"}, 0, 0)
	tests := []struct {
		line, col, want int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{1, 0, 4},
		{2, 1, 8},
	}
	for _, tt := range tests {
		if got := cursorOffset(buf, tt.line, tt.col); got != tt.want {
			t.Errorf("cursorOffset(%d,%d) = %d, want %d", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestShellEnclosingDefinition(t *testing.T) {
	lines := []string{
		"#!/bin/bash",
		"",
		"greet() {",
		`  echo "hello $1"`,
		"}",
		"",
		"greet world",
	}
	buf := complete.NewSliceBuffer(lines, 3, 5)

	text, ok := Shell{}.EnclosingDefinition(buf, 3, 5)
	if !ok {
		t.Fatal("expected to find enclosing function")
	}
	if !strings.HasPrefix(text, "greet()") {
		t.Errorf("expected function text, got %q", text)
	}
	if !strings.Contains(text, `echo "hello $1"`) {
		t.Errorf("expected function body, got %q", text)
	}
}

func TestShellCursorOutsideFunction(t *testing.T) {
	lines := []string{
		"greet() {",
		"  echo hi",
		"}",
		"ls -la",
	}
	buf := complete.NewSliceBuffer(lines, 3, 2)
	if _, ok := (Shell{}).EnclosingDefinition(buf, 3, 2); ok {
		t.Error("expected no enclosing function outside declarations")
	}
}

func TestShellUnparsableBuffer(t *testing.T) {
	buf := complete.NewSliceBuffer([]string{"if then fi (("}, 0, 3)
	if _, ok := (Shell{}).EnclosingDefinition(buf, 0, 3); ok {
		t.Error("expected parse failure to degrade to not found")
	}
}

func TestGoEnclosingDefinition(t *testing.T) {
	lines := []string{
		"package main",
		"",
		"func add(a, b int) int {",
		"\treturn a + b",
		"}",
		"",
		"func main() {",
		"\tprintln(add(1, 2))",
		"}",
	}
	buf := complete.NewSliceBuffer(lines, 3, 1)

	text, ok := Go{}.EnclosingDefinition(buf, 3, 1)
	if !ok {
		t.Fatal("expected to find enclosing function")
	}
	if !strings.HasPrefix(text, "func add(") {
		t.Errorf("expected add declaration, got %q", text)
	}
	if strings.Contains(text, "func main") {
		t.Errorf("expected smallest enclosing declaration only, got %q", text)
	}
}

func TestGoCursorOutsideFunction(t *testing.T) {
	lines := []string{
		"package main",
		"",
		"var x = 1",
	}
	buf := complete.NewSliceBuffer(lines, 2, 4)
	if _, ok := (Go{}).EnclosingDefinition(buf, 2, 4); ok {
		t.Error("expected no enclosing function at package scope")
	}
}

func TestGoEmptyBuffer(t *testing.T) {
	buf := complete.NewSliceBuffer(nil, 0, 0)
	if _, ok := (Go{}).EnclosingDefinition(buf, 0, 0); ok {
		t.Error("expected empty buffer to report not found")
	}
}
