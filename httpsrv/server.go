package httpsrv

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/counter/period"
	"golang.org/x/net/netutil"
)

//go:embed static/*
var staticFiles embed.FS

// MaxCount bounds the number of values returned by one next request
const MaxCount = 10000

// Default range when min or max is omitted
const (
	DefaultMin = 0
	DefaultMax = 100
)

// APIResponse is the envelope of every JSON reply
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DrawResult is the reply of a next request
type DrawResult struct {
	Values []int64 `json:"values"`
	State  int64   `json:"state"`
}

// StreamMessage is one websocket message
type StreamMessage struct {
	Index int   `json:"index"`
	Value int64 `json:"value"`
	State int64 `json:"state"`
}

// Stats is the reply of the stats request
type Stats struct {
	Sessions    int   `json:"sessions"`
	Draws       int64 `json:"draws"`
	DrawsPerSec int64 `json:"drawsPerSec"`
}

type createRequest struct {
	Seed *int64 `json:"seed"`
}

// Server serves generator sessions over HTTP and websocket
type Server struct {
	opts     ServerOptions
	sessions *SessionManager
	draws    counter.Counter
	srv      *http.Server
}

// NewServer create a new Server
func NewServer(opts ...ServerOption) *Server {
	opt := newServerOptions(opts...)
	s := &Server{
		opts:     *opt,
		sessions: NewSessionManager(),
		draws:    period.NewPeriodCounter(opt.counterPeriod),
	}
	s.srv = &http.Server{
		Addr:    opt.addr,
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", serveStaticFile)
	mux.HandleFunc("GET /api/sessions", s.handleListSessions)
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("GET /api/sessions/{id}/next", s.handleNext)
	mux.HandleFunc("GET /api/sessions/{id}/stream", s.handleStream)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	return mux
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return err
	}
	if s.opts.maxConns > 0 {
		l = netutil.LimitListener(l, s.opts.maxConns)
	}

	log.Printf("[INFO] trand server listening on %s", l.Addr())
	if s.opts.maxConns > 0 {
		log.Printf("[INFO] max connections: %d", s.opts.maxConns)
	}
	return s.srv.Serve(l)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func serveStaticFile(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	content, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(content)
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[ERROR] encode response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, APIResponse{Success: false, Error: err.Error()})
}

func statusOf(err error) int {
	if errors.Is(err, ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: s.sessions.List()})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	clientIP := r.RemoteAddr

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[ERROR] %s decode session request failed: %v", clientIP, err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	now := s.opts.clock()
	seed := now.UnixMilli()
	if req.Seed != nil {
		seed = *req.Seed
	}

	sess := s.sessions.Create(seed, now)
	log.Printf("[INFO] %s created session %s seed=%d", clientIP, sess.ID, seed)
	writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: sess.snapshot()})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.sessions.Delete(id); err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	log.Printf("[INFO] %s deleted session %s", r.RemoteAddr, id)
	writeJSON(w, http.StatusOK, APIResponse{Success: true})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	q, err := parseDrawQuery(r, 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if q.count < 1 || q.count > MaxCount {
		writeError(w, http.StatusBadRequest, fmt.Errorf("count must be in [1, %d]", MaxCount))
		return
	}

	values, state := sess.gen.Draw(q.min, q.max, q.count)
	s.draws.Add(int64(len(values)))
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: DrawResult{Values: values, State: state}})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: Stats{
		Sessions:    s.sessions.Len(),
		Draws:       s.draws.Value(),
		DrawsPerSec: s.draws.RatePerSec(),
	}})
}

type drawQuery struct {
	min, max int64
	count    int
	interval time.Duration
}

func parseDrawQuery(r *http.Request, defaultCount int) (*drawQuery, error) {
	values := r.URL.Query()
	q := &drawQuery{min: DefaultMin, max: DefaultMax, count: defaultCount}

	var err error
	if v := values.Get("min"); v != "" {
		if q.min, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid min: %w", err)
		}
	}
	if v := values.Get("max"); v != "" {
		if q.max, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid max: %w", err)
		}
	}
	if v := values.Get("count"); v != "" {
		if q.count, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid count: %w", err)
		}
	}
	if v := values.Get("interval"); v != "" {
		if q.interval, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid interval: %w", err)
		}
	}
	return q, nil
}
