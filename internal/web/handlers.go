package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/evcraddock/comment-board/internal/board"
	"github.com/evcraddock/comment-board/internal/endpoint"
)

type pageData struct {
	Board  *board.Board
	Alerts []string
}

// handleBoard renders the board, loading comments on every page view.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	b := s.newBoard(r)
	b.Mount()
	s.render(w, http.StatusOK, "index.html", pageData{Board: b})
}

// handleCommentPost submits a comment from the board form.
// On success the board Submit already refreshed is rendered as is, so a
// submit costs one list request.
func (s *Server) handleCommentPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	b := s.newBoard(r)
	b.Name = r.FormValue("name")
	b.Text = r.FormValue("comment")

	if b.Submit() {
		s.render(w, http.StatusOK, "index.html", pageData{Board: b})
		return
	}

	alerts := b.Alerts()
	status := http.StatusBadGateway
	for _, a := range alerts {
		if a == board.AlertEmptyFields {
			status = http.StatusBadRequest
		}
	}

	// Show the current list alongside the preserved input.
	b.Mount()
	s.render(w, status, "index.html", pageData{Board: b, Alerts: alerts})
}

// handleHealth reports that the server is up.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleEndpoint reports which comment API this request's host resolves to.
func (s *Server) handleEndpoint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"host":     endpoint.HostFromRequest(r),
		"endpoint": s.apiFor(r).Endpoint(),
	})
}

// render executes a named template with the given status code.
func (s *Server) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding response", http.StatusInternalServerError)
	}
}
