package board

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/evcraddock/comment-board/internal/comment"
)

// fakeAPI records calls and returns canned results.
type fakeAPI struct {
	url       string
	lists     [][]comment.Comment
	listErr   error
	appendErr error

	listCalls int
	appended  []comment.Comment
}

func (f *fakeAPI) Endpoint() string { return f.url }

func (f *fakeAPI) List() ([]comment.Comment, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.lists) == 0 {
		return []comment.Comment{}, nil
	}
	next := f.lists[0]
	if len(f.lists) > 1 {
		f.lists = f.lists[1:]
	}
	return next, nil
}

func (f *fakeAPI) Append(c comment.Comment) error {
	f.appended = append(f.appended, c)
	return f.appendErr
}

func TestMountLoadsOnce(t *testing.T) {
	api := &fakeAPI{lists: [][]comment.Comment{{{Name: "Ana", Comment: "Hola"}}}}
	b := New(api)

	if !b.Loading {
		t.Error("expected loading before mount")
	}

	b.Mount()
	b.Mount()

	if api.listCalls != 1 {
		t.Errorf("list calls = %d, want 1", api.listCalls)
	}
	want := []comment.Comment{{Name: "Ana", Comment: "Hola"}}
	if !reflect.DeepEqual(b.Comments, want) {
		t.Errorf("comments = %+v, want %+v", b.Comments, want)
	}
	if b.Loading {
		t.Error("expected loading to be cleared")
	}
	if b.Error != "" {
		t.Errorf("error = %q", b.Error)
	}
}

func TestLoadFailureKeepsListEmptyAndNamesURL(t *testing.T) {
	api := &fakeAPI{url: "https://api.test/api/comments", listErr: errors.New("500 Internal Server Error")}
	b := New(api)
	b.Mount()

	if len(b.Comments) != 0 {
		t.Errorf("comments = %+v, want empty", b.Comments)
	}
	if !strings.Contains(b.Error, "https://api.test/api/comments") {
		t.Errorf("error %q does not contain the URL", b.Error)
	}
	if b.Loading {
		t.Error("expected loading to be cleared")
	}
	if b.Empty() {
		t.Error("board with an error should not report empty")
	}
}

func TestLoadClearsPreviousError(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("down")}
	b := New(api)
	b.Load()
	if b.Error == "" {
		t.Fatal("expected error")
	}

	api.listErr = nil
	b.Load()
	if b.Error != "" {
		t.Errorf("error = %q, want cleared", b.Error)
	}
	if !b.Empty() {
		t.Error("expected empty board")
	}
}

func TestSubmitRejectsBlankFields(t *testing.T) {
	tests := []struct {
		name string
		user string
		text string
	}{
		{"blank name", " ", "text"},
		{"blank comment", "name", "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			b := New(api)
			b.Name, b.Text = tt.user, tt.text

			if b.Submit() {
				t.Fatal("expected submit to be rejected")
			}
			if len(api.appended) != 0 || api.listCalls != 0 {
				t.Errorf("network used: appended=%d lists=%d", len(api.appended), api.listCalls)
			}
			if alerts := b.Alerts(); len(alerts) != 1 || alerts[0] != AlertEmptyFields {
				t.Errorf("alerts = %v", alerts)
			}
			if b.Name != tt.user || b.Text != tt.text {
				t.Error("expected input to be preserved")
			}
		})
	}
}

func TestSubmitSuccessRefreshesOnce(t *testing.T) {
	api := &fakeAPI{lists: [][]comment.Comment{
		{{Name: "Ana", Comment: "Hola"}},
		{{Name: "Ana", Comment: "Hola"}, {Name: "Luis", Comment: "Buenas"}},
	}}
	b := New(api)
	b.Mount()

	b.Name, b.Text = "  Luis ", " Buenas\n"
	if !b.Submit() {
		t.Fatalf("submit failed: %v", b.Alerts())
	}

	if len(api.appended) != 1 || api.appended[0] != (comment.Comment{Name: "Luis", Comment: "Buenas"}) {
		t.Errorf("appended = %+v", api.appended)
	}
	if api.listCalls != 2 {
		t.Errorf("list calls = %d, want 2 (mount + refresh)", api.listCalls)
	}
	if len(b.Comments) != 2 || b.Comments[1].Name != "Luis" {
		t.Errorf("comments = %+v", b.Comments)
	}
	if b.Name != "" || b.Text != "" {
		t.Errorf("inputs not cleared: %q %q", b.Name, b.Text)
	}
	if b.Sending {
		t.Error("expected sending to be cleared")
	}
	if alerts := b.Alerts(); len(alerts) != 0 {
		t.Errorf("alerts = %v", alerts)
	}
}

func TestSubmitRefreshReplacesList(t *testing.T) {
	api := &fakeAPI{lists: [][]comment.Comment{
		{{Name: "old", Comment: "one"}, {Name: "old", Comment: "two"}},
		{{Name: "new", Comment: "only"}},
	}}
	b := New(api)
	b.Mount()

	b.Name, b.Text = "new", "only"
	b.Submit()

	want := []comment.Comment{{Name: "new", Comment: "only"}}
	if !reflect.DeepEqual(b.Comments, want) {
		t.Errorf("comments = %+v, want %+v", b.Comments, want)
	}
}

func TestSubmitFailurePreservesInput(t *testing.T) {
	api := &fakeAPI{appendErr: errors.New("502 Bad Gateway")}
	b := New(api)

	b.Name, b.Text = "Ana", "Hola"
	if b.Submit() {
		t.Fatal("expected failure")
	}
	if b.Name != "Ana" || b.Text != "Hola" {
		t.Errorf("inputs = %q %q, want preserved", b.Name, b.Text)
	}
	if api.listCalls != 0 {
		t.Errorf("list calls = %d, want 0", api.listCalls)
	}
	if alerts := b.Alerts(); len(alerts) != 1 || alerts[0] != AlertSendFailed {
		t.Errorf("alerts = %v", alerts)
	}
	if b.Sending {
		t.Error("expected sending to be cleared")
	}
}

func TestAlertsAreTransient(t *testing.T) {
	b := New(&fakeAPI{})
	b.Submit()
	if len(b.Alerts()) != 1 {
		t.Fatal("expected one alert")
	}
	if len(b.Alerts()) != 0 {
		t.Error("expected alerts to be cleared after read")
	}
}
