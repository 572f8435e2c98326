package httpbuilder

import (
	"net/http"
	"strings"
	"sync"
)

// DefaultHeaders holds request headers applied to every connection built by
// the builders sharing it. Changes are visible to those builders from their
// next Build on. A nil *DefaultHeaders behaves as an empty registry.
type DefaultHeaders struct {
	mu      sync.RWMutex
	headers map[string]string
}

// NewDefaultHeaders returns a registry seeded with initial.
func NewDefaultHeaders(initial map[string]string) *DefaultHeaders {
	d := &DefaultHeaders{headers: make(map[string]string, len(initial))}
	for k, v := range initial {
		d.Add(k, v)
	}
	return d
}

// Add sets a default header, replacing any previous value under the same
// canonical name. Blank keys are ignored.
func (d *DefaultHeaders) Add(key, value string) {
	if d == nil {
		return
	}
	if key = canonicalHeader(key); key == "" {
		return
	}

	d.mu.Lock()
	if d.headers == nil {
		d.headers = make(map[string]string)
	}
	d.headers[key] = value
	d.mu.Unlock()
}

// Remove deletes a default header. Unknown keys are a no-op.
func (d *DefaultHeaders) Remove(key string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	delete(d.headers, canonicalHeader(key))
	d.mu.Unlock()
}

// Clear removes all default headers.
func (d *DefaultHeaders) Clear() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.headers = make(map[string]string)
	d.mu.Unlock()
}

// Len returns the number of default headers.
func (d *DefaultHeaders) Len() int {
	if d == nil {
		return 0
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.headers)
}

// Snapshot returns a copy of the current headers.
func (d *DefaultHeaders) Snapshot() map[string]string {
	if d == nil {
		return map[string]string{}
	}
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]string, len(d.headers))
	for k, v := range d.headers {
		out[k] = v
	}
	return out
}

func canonicalHeader(key string) string {
	return http.CanonicalHeaderKey(strings.TrimSpace(key))
}

// applyTo layers the current headers over dst.
func (d *DefaultHeaders) applyTo(dst map[string]string) {
	for k, v := range d.Snapshot() {
		dst[k] = v
	}
}
