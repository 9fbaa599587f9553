// Package endpoint resolves the comment API URL from the host the board is served on.
package endpoint

import (
	"net"
	"net/http"
	"strings"
)

const (
	// LocalURL is the comment API used during local development.
	LocalURL = "http://localhost:3000/api/comments"

	// FallbackLabel replaces the first host label when no frontend marker is found.
	FallbackLabel = "oc-backend-api-ffisa-dev"

	apiPath = "/api/comments"
)

// Resolve maps a host name to the base URL of the comment API.
//
// The frontend and backend are deployed as sibling hosts that differ only in
// their first label, e.g. oc-frontend-ffisa-dev.apps.example.com and
// oc-backend-api-ffisa-dev.apps.example.com.
func Resolve(host string) string {
	if host == "localhost" || host == "127.0.0.1" {
		return LocalURL
	}

	labels := strings.Split(host, ".")
	first := labels[0]

	switch {
	case strings.Contains(first, "frontend"):
		labels[0] = strings.Replace(first, "frontend", "backend-api", 1)
	case strings.HasPrefix(first, "oc-frontend"):
		labels[0] = "oc-backend-api" + strings.TrimPrefix(first, "oc-frontend")
	default:
		// The original first label is dropped, not kept.
		labels = append([]string{FallbackLabel}, labels[1:]...)
	}

	return "https://" + strings.Join(labels, ".") + apiPath
}

// HostFromRequest returns the host name the client asked for, lowercased and
// without the port, the way a browser reports location.hostname.
func HostFromRequest(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.Trim(host, "[]"))
}
