package history

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"sync"
)

// Tracker remembers which articles the reader has opened
type Tracker interface {
	MarkRead(ctx context.Context, rawURL string) error
	IsRead(ctx context.Context, rawURL string) (bool, error)
}

// Hash normalizes an article URL and returns its SHA-256 hex digest.
// Normalization lowercases scheme and host, drops the fragment and common
// tracking parameters, and trims a trailing slash.
func Hash(rawURL string) string {
	h := sha256.Sum256([]byte(normalizeURL(rawURL)))
	return hex.EncodeToString(h[:])
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return strings.ToLower(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "fbclid" || lk == "gclid" || lk == "cmp" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	return strings.TrimRight(u.String(), "/")
}

// ReadSet returns the URLs in urls that tracker reports as read.
// Lookup errors stop the scan and are returned with what was found so far.
func ReadSet(ctx context.Context, tracker Tracker, urls []string) (map[string]bool, error) {
	read := make(map[string]bool)
	if tracker == nil {
		return read, nil
	}
	for _, u := range urls {
		ok, err := tracker.IsRead(ctx, u)
		if err != nil {
			return read, err
		}
		if ok {
			read[u] = true
		}
	}
	return read, nil
}

// MemoryTracker keeps read history for the lifetime of the process
type MemoryTracker struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewMemoryTracker creates an empty in-memory tracker
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{seen: make(map[string]struct{})}
}

// MarkRead records rawURL as read
func (t *MemoryTracker) MarkRead(_ context.Context, rawURL string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen[Hash(rawURL)] = struct{}{}
	return nil
}

// IsRead reports whether rawURL was marked read
func (t *MemoryTracker) IsRead(_ context.Context, rawURL string) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.seen[Hash(rawURL)]
	return ok, nil
}
