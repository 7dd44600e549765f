package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	copilot "github.com/blackopsrepl/emacs-copilot"
)

// Completer processes completion and debug requests.
type Completer interface {
	Complete(ctx context.Context, req *copilot.Request) *copilot.Response
	Debug(req *copilot.DebugRequest) *copilot.DebugResponse
	Close()
}

// sessionTTL bounds how long an in-flight entry for a silent session is
// kept before its context is cancelled and the entry dropped.
const sessionTTL = 5 * time.Minute

// sessionEntry tracks a cancellable in-flight request for a session.
type sessionEntry struct {
	requestID int
	cancel    context.CancelFunc
}

// Server listens on a Unix domain socket for copilot requests.
type Server struct {
	listener net.Listener
	sockPath string

	mu       sync.Mutex
	engine   Completer
	sessions *ttlcache.Cache[string, sessionEntry]
}

// NewServer creates a new IPC server bound to the given socket path.
func NewServer(sockPath string) (*Server, error) {
	return NewServerWithCompleter(sockPath, newPipeline())
}

// NewServerWithCompleter creates a new IPC server with a custom Completer.
func NewServerWithCompleter(sockPath string, completer Completer) (*Server, error) {
	// Remove stale socket file if it exists
	if err := os.Remove(sockPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return nil, err
	}

	sessions := ttlcache.New[string, sessionEntry](
		ttlcache.WithTTL[string, sessionEntry](sessionTTL),
		ttlcache.WithDisableTouchOnHit[string, sessionEntry](),
	)
	// Expired entries belong to sessions that went away mid-request; cancel
	// their contexts so the inference call is not left hanging.
	sessions.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, sessionEntry]) {
		if reason == ttlcache.EvictionReasonExpired {
			item.Value().cancel()
		}
	})
	go sessions.Start()

	return &Server{
		listener: listener,
		sockPath: sockPath,
		engine:   completer,
		sessions: sessions,
	}, nil
}

// Serve accepts connections and handles requests.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

// Close shuts down the server, the engine, and removes the socket file.
func (s *Server) Close() {
	s.mu.Lock()
	s.engine.Close()
	s.mu.Unlock()
	s.sessions.Stop()
	s.listener.Close()
	os.Remove(s.sockPath)
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !scanner.Scan() {
		return
	}

	raw := scanner.Bytes()
	slog.Debug("request", "bytes", len(raw))

	// Check if this is a debug request (has "type":"debug" field)
	var dbgReq copilot.DebugRequest
	if err := json.Unmarshal(raw, &dbgReq); err == nil && dbgReq.Type == "debug" {
		s.handleDebugRequest(conn, &dbgReq)
		return
	}

	// Check if this is a config request (has "action" field)
	var cfgReq copilot.ConfigRequest
	if err := json.Unmarshal(raw, &cfgReq); err == nil && cfgReq.Action != "" {
		s.handleConfigRequest(conn, &cfgReq)
		return
	}

	var req copilot.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		slog.Warn("invalid request", "error", err)
		return
	}

	// Cancel any in-flight request for this session and register a new one.
	ctx, cancel := context.WithCancel(context.Background())
	sid := req.SessionID
	reqID := req.RequestID
	if sid != "" {
		s.mu.Lock()
		if prev := s.sessions.Get(sid); prev != nil {
			prev.Value().cancel()
		}
		s.sessions.Set(sid, sessionEntry{requestID: reqID, cancel: cancel}, ttlcache.DefaultTTL)
		s.mu.Unlock()
	}
	defer func() {
		cancel()
		if sid != "" {
			s.mu.Lock()
			if cur := s.sessions.Get(sid); cur != nil && cur.Value().requestID == reqID {
				s.sessions.Delete(sid)
			}
			s.mu.Unlock()
		}
	}()

	s.mu.Lock()
	engine := s.engine
	s.mu.Unlock()

	resp := engine.Complete(ctx, &req)

	// If cancelled, skip writing — the client has already moved on.
	if ctx.Err() != nil {
		return
	}

	resp.RequestID = req.RequestID

	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("failed to marshal response", "error", err)
		return
	}

	slog.Debug("response", "status", resp.Status)

	conn.Write(append(data, '\n'))
}

func (s *Server) handleDebugRequest(conn net.Conn, req *copilot.DebugRequest) {
	s.mu.Lock()
	engine := s.engine
	s.mu.Unlock()

	resp := engine.Debug(req)

	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("failed to marshal debug response", "error", err)
		return
	}

	slog.Debug("debug response", "prefix_chars", len(resp.Prefix), "suffix_chars", len(resp.Suffix))

	conn.Write(append(data, '\n'))
}

func (s *Server) handleConfigRequest(conn net.Conn, req *copilot.ConfigRequest) {
	var resp copilot.ConfigResponse

	switch req.Action {
	case "get":
		cfg, err := copilot.LoadConfig()
		if err != nil {
			resp.Error = &copilot.Error{
				Code:    "config_error",
				Message: err.Error(),
			}
		} else {
			resp.Config = cfg
		}

	case "reload":
		cfg, err := copilot.LoadConfig()
		if err != nil {
			resp.Error = &copilot.Error{
				Code:    "config_error",
				Message: err.Error(),
			}
			break
		}
		s.reloadEngine()
		resp.Config = cfg

	case "defaults":
		resp.Config = copilot.DefaultConfig()

	default:
		resp.Error = &copilot.Error{
			Code:    "unknown_action",
			Message: "unknown config action: " + req.Action,
		}
	}

	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("failed to marshal config response", "error", err)
		return
	}

	conn.Write(append(data, '\n'))
}

func (s *Server) reloadEngine() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine != nil {
		s.engine.Close()
	}
	s.engine = newPipeline()
	slog.Info("engine reloaded")
}
