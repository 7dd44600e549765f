package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackopsrepl/emacs-copilot/complete"
	"github.com/blackopsrepl/emacs-copilot/locator"
)

var debugCmd = &cobra.Command{
	Use:   "debug <file>",
	Short: "Show the would-be prompt context without calling the service",
	Long: `Debug runs context extraction and assembly only and prints the prefix and
suffix that a completion request at the cursor would carry. The inference
endpoint is never contacted.`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func runDebug(cmd *cobra.Command, args []string) error {
	lines, _, err := readLines(args[0])
	if err != nil {
		return err
	}

	engine := complete.NewEngine()
	buf := complete.NewSliceBuffer(lines, cursorLine, cursorCol)
	a := engine.Extract(buf, locator.ForLanguage(languageFor(args[0], bufferLang)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "----- prefix -----")
	fmt.Fprintln(out, a.Prefix)
	fmt.Fprintln(out, "----- suffix -----")
	fmt.Fprintln(out, a.Suffix)
	return nil
}
