// Package copilot defines the request/response types for the copilot IPC
// protocol and the daemon configuration.
// Messages are JSON-encoded and sent over a Unix domain socket, one per line.
package copilot

// Status values reported in a Response.
const (
	// StatusDone means a completion was produced and Text holds it.
	StatusDone = "done"
	// StatusNoCompletion means no text is available for insertion, either
	// because the service produced nothing usable or because it failed.
	StatusNoCompletion = "no_completion"
)

// Request is sent from the editor client to the daemon to ask for a
// completion at the cursor.
type Request struct {
	// RequestID is a per-session incrementing identifier assigned by the
	// editor. The daemon echoes it back in the response for ordering.
	RequestID int `json:"request_id"`
	// SessionID identifies the editor session. A new request on the same
	// session cancels the previous in-flight one.
	SessionID string `json:"session_id,omitempty"`
	// Lines is the buffer snapshot, one element per line, without trailing
	// newline characters.
	Lines []string `json:"lines"`
	// Line and Col give the zero-based cursor position within Lines.
	// Col is a byte offset into the cursor line.
	Line int `json:"line"`
	Col  int `json:"col"`
	// Language names the buffer's language (e.g. "go", "sh") so the daemon
	// can run its built-in definition locators. Empty disables the lookup.
	Language string `json:"language,omitempty"`
	// Definition is the text of the enclosing function located by the
	// editor's own syntax tooling. nil means the editor has no such
	// capability and the daemon's built-in locators are consulted instead.
	Definition *string `json:"definition,omitempty"`
}

// Response is sent from the daemon back to the editor client.
type Response struct {
	// RequestID is echoed from the request for ordering on the client side.
	RequestID int `json:"request_id"`
	// Text is the sanitized completion to insert verbatim at the cursor.
	// Empty when Status is "no_completion".
	Text string `json:"text"`
	// Status is "done" or "no_completion".
	Status string `json:"status"`
	// Error is set when the daemon cannot fulfill the request.
	Error *Error `json:"error,omitempty"`
}

// Error describes a daemon-side error returned to the editor client.
type Error struct {
	// Code is a machine-readable error identifier (e.g. "api_error").
	Code string `json:"code"`
	// Message is a human-readable error description.
	Message string `json:"message"`
}

// DebugRequest is sent from the editor client to inspect context extraction.
// The daemon runs the extraction pipeline only and never contacts the
// inference endpoint.
type DebugRequest struct {
	// Type is always "debug".
	Type string `json:"type"`
	// Lines, Line, Col and Language mirror the completion Request fields.
	Lines    []string `json:"lines"`
	Line     int      `json:"line"`
	Col      int      `json:"col"`
	Language string   `json:"language,omitempty"`
}

// DebugResponse carries the would-be prompt halves back to the client.
type DebugResponse struct {
	// Prefix is the assembled final prefix that would precede the cursor.
	Prefix string `json:"prefix"`
	// Suffix is the text that would follow the cursor.
	Suffix string `json:"suffix"`
	// Error is set when the operation fails.
	Error *Error `json:"error,omitempty"`
}

// ConfigRequest is sent from the editor client for configuration operations.
type ConfigRequest struct {
	// Action is the config operation: "get", "reload", or "defaults".
	Action string `json:"action"`
}

// ConfigResponse is sent from the daemon in response to a ConfigRequest.
type ConfigResponse struct {
	// Config is the current configuration.
	Config *Config `json:"config,omitempty"`
	// Error is set when the operation fails.
	Error *Error `json:"error,omitempty"`
}
