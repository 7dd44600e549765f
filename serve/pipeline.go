package main

import (
	"context"

	copilot "github.com/blackopsrepl/emacs-copilot"
	"github.com/blackopsrepl/emacs-copilot/complete"
	"github.com/blackopsrepl/emacs-copilot/locator"
)

// pipeline adapts the completion engine to the socket protocol.
type pipeline struct {
	engine *complete.Engine
}

func newPipeline() *pipeline {
	return &pipeline{engine: complete.NewEngine()}
}

// requestLocator picks the definition capability for one request: a span
// located by the editor wins; otherwise the built-in locator for the
// buffer's language, which may be nil.
func requestLocator(req *copilot.Request) complete.Locator {
	if req.Definition != nil {
		return locator.Static(*req.Definition)
	}
	return locator.ForLanguage(req.Language)
}

func (p *pipeline) Complete(ctx context.Context, req *copilot.Request) *copilot.Response {
	buf := complete.NewSliceBuffer(req.Lines, req.Line, req.Col)

	text, err := p.engine.Complete(ctx, buf, requestLocator(req))
	if err != nil {
		return &copilot.Response{
			Status: copilot.StatusNoCompletion,
			Error: &copilot.Error{
				Code:    "api_error",
				Message: err.Error(),
			},
		}
	}
	if text == "" {
		return &copilot.Response{Status: copilot.StatusNoCompletion}
	}
	return &copilot.Response{Text: text, Status: copilot.StatusDone}
}

func (p *pipeline) Debug(req *copilot.DebugRequest) *copilot.DebugResponse {
	buf := complete.NewSliceBuffer(req.Lines, req.Line, req.Col)
	a := p.engine.Extract(buf, locator.ForLanguage(req.Language))
	return &copilot.DebugResponse{Prefix: a.Prefix, Suffix: a.Suffix}
}

func (p *pipeline) Close() {}
