// Package board holds the state of the comment board view and the actions that change it.
package board

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/evcraddock/comment-board/internal/comment"
)

// User-facing alert messages.
const (
	AlertEmptyFields = "Please fill in both fields."
	AlertSendFailed  = "Could not send the comment. Please try again."
)

// API is the subset of the comment client the board needs.
type API interface {
	Endpoint() string
	List() ([]comment.Comment, error)
	Append(comment.Comment) error
}

// Board is the state of a single board view.
//
// It is not safe for concurrent use; one view drives one Board.
type Board struct {
	Comments []comment.Comment
	Name     string
	Text     string
	Loading  bool
	Sending  bool
	Error    string

	api     API
	mounted bool
	alerts  []string
}

// New creates a board backed by api. Loading starts true until the first load finishes.
func New(api API) *Board {
	return &Board{api: api, Loading: true}
}

// Mount performs the initial load. Later calls do nothing.
func (b *Board) Mount() {
	if b.mounted {
		return
	}
	b.mounted = true
	b.Load()
}

// Load fetches the comment list and replaces Comments on success.
// On failure Comments is left untouched and Error names the attempted URL.
func (b *Board) Load() {
	b.Loading = true
	b.Error = ""
	defer func() { b.Loading = false }()

	url := b.api.Endpoint()
	comments, err := b.api.List()
	if err != nil {
		slog.Error("loading comments", "url", url, "error", err)
		b.Error = fmt.Sprintf("Could not load comments from %s: %v", url, err)
		return
	}
	b.Comments = comments
}

// Submit validates the form input and posts it.
// It returns true when the comment was accepted by the API.
func (b *Board) Submit() bool {
	c, err := comment.New(b.Name, b.Text)
	if errors.Is(err, comment.ErrEmptyFields) {
		b.alert(AlertEmptyFields)
		return false
	}
	if err != nil {
		b.alert(err.Error())
		return false
	}

	b.Sending = true
	defer func() { b.Sending = false }()

	if err := b.api.Append(c); err != nil {
		slog.Error("sending comment", "url", b.api.Endpoint(), "error", err)
		b.alert(AlertSendFailed)
		return false
	}

	b.Name = ""
	b.Text = ""
	b.Load()
	return true
}

// Empty reports whether the board finished loading and has nothing to show.
func (b *Board) Empty() bool {
	return !b.Loading && b.Error == "" && len(b.Comments) == 0
}

// Alerts returns the alerts raised since the previous call and clears them.
func (b *Board) Alerts() []string {
	alerts := b.alerts
	b.alerts = nil
	return alerts
}

func (b *Board) alert(msg string) {
	b.alerts = append(b.alerts, msg)
}
