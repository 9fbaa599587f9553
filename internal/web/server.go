// Package web provides the HTTP server and handlers for the comment board UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/evcraddock/comment-board/internal/board"
	"github.com/evcraddock/comment-board/internal/client"
	"github.com/evcraddock/comment-board/internal/endpoint"
	"github.com/evcraddock/comment-board/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Config controls how the server reaches the comment API.
type Config struct {
	// APIURL, when set, is used instead of resolving the endpoint from the request host.
	APIURL string
}

// Server is the web UI HTTP server.
type Server struct {
	cfg       Config
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a web server.
func NewServer(cfg Config) (*Server, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /api/endpoint", s.handleEndpoint)
	s.mux.HandleFunc("POST /comments", s.handleCommentPost)
	s.mux.HandleFunc("GET /{$}", s.handleBoard)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting comment board", "addr", "http://localhost"+addr, "api_url", s.cfg.APIURL)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// apiFor returns the comment client for the host the request was sent to.
func (s *Server) apiFor(r *http.Request) *client.Client {
	if s.cfg.APIURL != "" {
		return client.NewWithEndpoint(s.cfg.APIURL)
	}
	return client.New(endpoint.HostFromRequest(r))
}

// newBoard creates the board state for a single request.
func (s *Server) newBoard(r *http.Request) *board.Board {
	return board.New(s.apiFor(r))
}
