// Package httpbuilder assembles URL-encoded GET and POST requests parameter by parameter.
package httpbuilder

import (
	"net/http"
	"strings"
)

// GetBuilder appends percent-encoded parameters to a base URL.
type GetBuilder struct {
	*params
	opts settings
}

// NewGetBuilder starts a GET request on rawURL. One trailing "?" or "&" is
// removed. If the URL already carries a query, the first added parameter is
// joined with "&" instead of "?".
func NewGetBuilder(rawURL string, opts ...Option) *GetBuilder {
	s := newSettings(opts)
	base := stripTrailingSeparator(rawURL)

	p := newParams(querySeparator, s.charset, s.log)
	p.buf.WriteString(base)
	p.added = strings.Contains(base, "?")

	return &GetBuilder{params: p, opts: s}
}

func stripTrailingSeparator(rawURL string) string {
	if strings.HasSuffix(rawURL, "?") || strings.HasSuffix(rawURL, "&") {
		return rawURL[:len(rawURL)-1]
	}
	return rawURL
}

// URL returns the accumulated URL including all parameters added so far.
func (g *GetBuilder) URL() string { return g.buf.String() }

// Query returns the part of the accumulated URL after the first "?".
func (g *GetBuilder) Query() string {
	_, query, found := strings.Cut(g.URL(), "?")
	if !found {
		return ""
	}
	return query
}

// Build returns a GET connection for the accumulated URL with Accept-Charset
// and the default headers set. It fails with ErrMalformedURL if the URL is
// not an absolute http(s) URL.
func (g *GetBuilder) Build() (*Connection, error) {
	return newConnection(http.MethodGet, g.URL(), "", g.charset, nil, g.opts)
}

// ToPostBuilder returns a POST builder whose body is the query assembled so far.
// The URL keeps its query string, so the parameters are sent in both places.
func (g *GetBuilder) ToPostBuilder() *PostBuilder {
	query := g.Query()

	p := newParams(bodySeparator, g.charset, g.opts.log)
	p.buf.WriteString(query)
	p.added = query != ""
	p.count = g.count

	return &PostBuilder{params: p, url: g.URL(), opts: g.opts}
}
