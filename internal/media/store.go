// Package media integrates with the hosted media store and prepares image
// payloads for upload.
package media

import (
	"context"
	"net/url"
	"path"
	"strings"
)

// Store is the hosted image storage collaborator. Upload accepts a payload
// (data URI, raw base64, or a remote URL for the store to fetch) and returns
// the durable secure URL. Delete removes a previously uploaded asset by its
// public ID.
type Store interface {
	Upload(ctx context.Context, payload string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// PublicIDFromURL derives the store's asset identifier from a delivery URL:
// the last path segment with its extension stripped.
func PublicIDFromURL(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return ""
	}

	segment := trimmed
	if u, err := url.Parse(trimmed); err == nil && u.Path != "" {
		segment = u.Path
	}
	segment = path.Base(segment)
	if segment == "." || segment == "/" {
		return ""
	}

	if idx := strings.LastIndex(segment, "."); idx > 0 {
		segment = segment[:idx]
	}
	return segment
}
