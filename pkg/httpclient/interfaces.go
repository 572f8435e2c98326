package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	Header(key string) string
}

// Request carries everything a built connection needs to go over the wire.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Execute(ctx context.Context, req Request) (Response, error)
}
