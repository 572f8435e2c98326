package httpbuilder

import "github.com/samvad-hq/samvad-http-builder/pkg/httpclient"

type settings struct {
	charset  string
	defaults *DefaultHeaders
	client   httpclient.Client
	log      Logger
}

// Option configures a builder at construction time.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{charset: DefaultCharset}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	s.log = ensureLogger(s.log)
	return s
}

// WithCharset sets the initial charset. An empty name keeps UTF-8.
func WithCharset(charset string) Option {
	return func(s *settings) {
		if charset != "" {
			s.charset = charset
		}
	}
}

// WithDefaultHeaders shares a default header registry with the builder.
func WithDefaultHeaders(d *DefaultHeaders) Option {
	return func(s *settings) {
		s.defaults = d
	}
}

// WithClient sets the client used by Connection.Do.
func WithClient(c httpclient.Client) Option {
	return func(s *settings) {
		s.client = c
	}
}

// WithLogger sets the logger used to report dropped parameters and builds.
func WithLogger(log Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}
