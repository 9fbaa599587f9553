// Package client provides an HTTP client for the comment API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/evcraddock/comment-board/internal/comment"
	"github.com/evcraddock/comment-board/internal/endpoint"
)

// maxErrorBody caps how much of an error response is kept on a FetchError.
const maxErrorBody = 4096

// FetchError is returned when the comment API answers with a non-2xx status.
type FetchError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Client is an HTTP client for the comment API.
//
// Requests are attempted once, with no timeout and no retry.
type Client struct {
	host       string
	fixedURL   string
	httpClient *http.Client
}

// New creates a client whose endpoint is resolved from host on every request.
func New(host string) *Client {
	return &Client{
		host:       host,
		httpClient: &http.Client{},
	}
}

// NewWithEndpoint creates a client that always talks to url.
func NewWithEndpoint(url string) *Client {
	return &Client{
		fixedURL:   strings.TrimRight(url, "/"),
		httpClient: &http.Client{},
	}
}

// Endpoint returns the URL the next request will target.
func (c *Client) Endpoint() string {
	if c.fixedURL != "" {
		return c.fixedURL
	}
	return endpoint.Resolve(c.host)
}

// List returns every comment on the board, in server order.
func (c *Client) List() ([]comment.Comment, error) {
	var comments []comment.Comment
	if err := c.get(&comments); err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []comment.Comment{}
	}
	return comments, nil
}

// Append posts a new comment. It does not return the updated list.
func (c *Client) Append(comm comment.Comment) error {
	return c.post(comm)
}

// get performs a GET request and decodes the response.
func (c *Client) get(result interface{}) error {
	req, err := http.NewRequest("GET", c.Endpoint(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, result)
}

// post performs a POST request with a JSON body.
func (c *Client) post(body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.Endpoint(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

// do executes an HTTP request and turns non-2xx responses into a FetchError.
func (c *Client) do(req *http.Request, result interface{}) error {
	url := req.URL.String()
	slog.Debug("comment api request", "method", req.Method, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: request failed: %w", req.Method, url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "url", url, "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: reading response: %w", req.Method, url, err)
	}

	slog.Debug("comment api response", "method", req.Method, "url", url, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{
			Method:     req.Method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Body:       truncateBody(strings.TrimSpace(string(respBody))),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%s %s: decoding response: %w", req.Method, url, err)
		}
	}

	return nil
}

// statusText returns the reason phrase the server sent, or the standard one if it sent none.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}

// truncateBody cuts body to at most maxErrorBody bytes on a rune boundary.
func truncateBody(body string) string {
	if len(body) <= maxErrorBody {
		return body
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut]
}
