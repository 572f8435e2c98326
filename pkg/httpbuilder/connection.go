package httpbuilder

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/samvad-hq/samvad-http-builder/pkg/httpclient"
)

const (
	headerAcceptCharset = "Accept-Charset"
	headerContentType   = "Content-Type"
	formContentType     = "application/x-www-form-urlencoded"
)

// Connection is a request assembled by a builder: URL, headers and, for POST,
// the body still to be written. Nothing goes over the wire until Do.
type Connection struct {
	Method string
	URL    string
	Header map[string]string
	Body   string

	client httpclient.Client
	log    Logger
}

// Do sends the request. Transport failures are wrapped with ErrConnection;
// the response is returned unread and unparsed whatever its status.
func (c *Connection) Do(ctx context.Context) (httpclient.Response, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: connection is nil", ErrConnection)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := c.client
	if client == nil {
		client = httpclient.NewRestyClient()
	}
	log := ensureLogger(c.log)

	resp, err := client.Execute(ctx, httpclient.Request{
		Method:  c.Method,
		URL:     c.URL,
		Headers: c.Header,
		Body:    c.Body,
	})
	if err != nil {
		log.ErrorObj("request failed", "connection_error", map[string]any{
			"method": c.Method,
			"url":    c.URL,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %s %s: %v", ErrConnection, c.Method, c.URL, err)
	}
	log.DebugObj("request completed", "connection_result", map[string]any{
		"method": c.Method,
		"url":    c.URL,
		"status": resp.StatusCode(),
	})
	return resp, nil
}

// newConnection validates rawURL and assembles the headers: Accept-Charset
// first, then extra, then the shared defaults on top.
func newConnection(method, rawURL, body, charset string, extra map[string]string, s settings) (*Connection, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	header := map[string]string{headerAcceptCharset: charset}
	for k, v := range extra {
		header[canonicalHeader(k)] = v
	}
	s.defaults.applyTo(header)

	s.log.DebugObj("connection built", "connection_meta", map[string]any{
		"method":       method,
		"url":          rawURL,
		"header_count": len(header),
		"body_bytes":   len(body),
	})

	return &Connection{
		Method: method,
		URL:    rawURL,
		Header: header,
		Body:   body,
		client: s.client,
		log:    s.log,
	}, nil
}

// validateURL accepts absolute http and https URLs with a host.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "":
		return fmt.Errorf("%w: no protocol: %s", ErrMalformedURL, rawURL)
	default:
		return fmt.Errorf("%w: unknown protocol: %s", ErrMalformedURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host: %s", ErrMalformedURL, rawURL)
	}
	return nil
}
