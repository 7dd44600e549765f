package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackopsrepl/emacs-copilot/complete"
	"github.com/blackopsrepl/emacs-copilot/locator"
)

var (
	cursorLine   int
	cursorCol    int
	bufferLang   string
	writeInPlace bool
)

var completeCmd = &cobra.Command{
	Use:   "complete <file>",
	Short: "Run the completion pipeline at a cursor position",
	Long: `Complete reads the file, assembles the context window around the cursor,
queries the inference endpoint, and prints the sanitized completion to
stdout. With --write the completion is inserted into the file at the
cursor instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().IntVar(&cursorLine, "line", 0, "zero-based cursor line")
	completeCmd.Flags().IntVar(&cursorCol, "col", 0, "zero-based cursor column, in bytes")
	completeCmd.Flags().StringVar(&bufferLang, "language", "", "language for the definition locator (default: from file extension)")
	completeCmd.Flags().BoolVar(&writeInPlace, "write", false, "insert the completion into the file")

	debugCmd.Flags().IntVar(&cursorLine, "line", 0, "zero-based cursor line")
	debugCmd.Flags().IntVar(&cursorCol, "col", 0, "zero-based cursor column, in bytes")
	debugCmd.Flags().StringVar(&bufferLang, "language", "", "language for the definition locator (default: from file extension)")
}

func runComplete(cmd *cobra.Command, args []string) error {
	path := args[0]
	lines, trailingNewline, err := readLines(path)
	if err != nil {
		return err
	}

	engine := complete.NewEngine()
	buf := complete.NewSliceBuffer(lines, cursorLine, cursorCol)
	loc := locator.ForLanguage(languageFor(path, bufferLang))

	status("generating completion...")

	if writeInPlace {
		ins := &fileInserter{
			path:            path,
			lines:           lines,
			line:            cursorLine,
			col:             cursorCol,
			trailingNewline: trailingNewline,
		}
		text, ok := engine.CompleteAndInsert(cmd.Context(), buf, loc, ins)
		if !ok {
			status("no completion")
			return nil
		}
		status("inserted %d chars at %d:%d", len(text), cursorLine, cursorCol)
		return nil
	}

	text, err := engine.Complete(cmd.Context(), buf, loc)
	if err != nil || text == "" {
		status("no completion")
		return nil
	}
	status("done")
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// status prints a user-facing progress line to stderr.
func status(format string, args ...any) {
	c := color.New(color.FgCyan)
	if noColor {
		c.DisableColor()
	}
	c.Fprintf(os.Stderr, format+"\n", args...)
}

// languageFor picks the locator language: an explicit flag wins, otherwise
// the file extension decides.
func languageFor(path, explicit string) string {
	if explicit != "" {
		return explicit
	}
	switch filepath.Ext(path) {
	case ".go":
		return "go"
	case ".sh", ".bash", ".zsh":
		return "sh"
	}
	return ""
}

// readLines loads a file as a line slice and reports whether it ended with
// a newline, so a later write can preserve it.
func readLines(path string) (lines []string, trailingNewline bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	s := string(data)
	trailingNewline = strings.HasSuffix(s, "\n")
	if trailingNewline {
		s = strings.TrimSuffix(s, "\n")
	}
	if s == "" && !trailingNewline {
		return nil, false, nil
	}
	return strings.Split(s, "\n"), trailingNewline, nil
}

// insertAt splices text into lines at the given zero-based position.
// Multi-line text splits the cursor line around the insertion.
func insertAt(lines []string, line, col int, text string) []string {
	if len(lines) == 0 {
		return strings.Split(text, "\n")
	}
	if line < 0 {
		line = 0
	}
	if line >= len(lines) {
		line = len(lines) - 1
	}
	cur := lines[line]
	if col < 0 {
		col = 0
	}
	if col > len(cur) {
		col = len(cur)
	}

	merged := strings.Split(cur[:col]+text+cur[col:], "\n")
	out := make([]string, 0, len(lines)+len(merged)-1)
	out = append(out, lines[:line]...)
	out = append(out, merged...)
	out = append(out, lines[line+1:]...)
	return out
}

// fileInserter writes the completion back into the file at the cursor.
type fileInserter struct {
	path            string
	lines           []string
	line, col       int
	trailingNewline bool
}

func (f *fileInserter) Insert(text string) error {
	out := strings.Join(insertAt(f.lines, f.line, f.col, text), "\n")
	if f.trailingNewline {
		out += "\n"
	}
	return os.WriteFile(f.path, []byte(out), 0644)
}
