// Package complete implements the completion pipeline: bounded context
// extraction around the cursor, FIM prompt assembly, inference, and
// response sanitization.
package complete

import (
	"context"
	"log/slog"
	"strings"
	"time"

	copilot "github.com/blackopsrepl/emacs-copilot"
)

// Engine runs the completion pipeline. All state is per-invocation; the
// engine itself only holds configuration and the inference client.
type Engine struct {
	cfg    *copilot.Config
	client *Client
}

// NewEngine creates an engine from the on-disk configuration, falling back
// to defaults when loading fails.
func NewEngine() *Engine {
	cfg, err := copilot.LoadConfig()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = copilot.DefaultConfig()
	}
	return NewEngineWithConfig(cfg)
}

// NewEngineWithConfig creates an engine from an explicit configuration.
func NewEngineWithConfig(cfg *copilot.Config) *Engine {
	timeout := time.Duration(copilot.ResolveTimeoutSeconds(cfg)) * time.Second
	return &Engine{
		cfg:    cfg,
		client: NewClient(copilot.ResolveEndpointURL(cfg), copilot.ResolveModel(cfg), timeout),
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() *copilot.Config { return e.cfg }

// Extract runs context extraction and assembly only, without contacting the
// inference endpoint. This is the debug surface: it shows the exact prompt
// halves a completion request would carry.
func (e *Engine) Extract(buf Buffer, loc Locator) Assembled {
	line, _ := buf.Cursor()
	w := ExtractWindow(buf, loc, e.cfg.ImportLineCount, e.cfg.PrefixLineCount, e.cfg.SuffixLineCount)
	return Assemble(w, line, e.cfg.ImportLineCount)
}

// Complete runs the full pipeline and returns the sanitized completion.
// An empty string with a nil error means the service produced no usable
// completion; the caller inserts nothing in both the empty and error cases.
func (e *Engine) Complete(ctx context.Context, buf Buffer, loc Locator) (string, error) {
	a := e.Extract(buf, loc)
	prompt := FormatPrompt(a)

	slog.Info("generating completion", "model", e.client.Model(), "prompt_chars", len(prompt))

	raw, err := e.client.Submit(ctx, prompt)
	if err != nil {
		slog.Error("generation error", "error", err)
		return "", err
	}

	text := Sanitize(raw)
	if strings.TrimSpace(text) == "" {
		slog.Info("no completion produced")
		return "", nil
	}

	slog.Info("completion ready", "chars", len(text))
	return text, nil
}

// CompleteAndInsert runs Complete and writes the result through ins. It
// reports whether an insertion happened. There is no partial insertion:
// either the full sanitized text goes in, or nothing does. Failures are
// logged and collapse into ok=false; nothing propagates to the host beyond
// that single outcome.
func (e *Engine) CompleteAndInsert(ctx context.Context, buf Buffer, loc Locator, ins Inserter) (text string, ok bool) {
	text, err := e.Complete(ctx, buf, loc)
	if err != nil || text == "" {
		return "", false
	}
	if err := ins.Insert(text); err != nil {
		slog.Error("insert failed", "error", err)
		return "", false
	}
	return text, true
}
