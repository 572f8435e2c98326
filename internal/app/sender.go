package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samvad-hq/samvad-http-builder/internal/config"
	"github.com/samvad-hq/samvad-http-builder/internal/logger"
	"github.com/samvad-hq/samvad-http-builder/pkg/httpbuilder"
	"github.com/samvad-hq/samvad-http-builder/pkg/httpclient"
)

// Param is a single request parameter. Flag parameters carry no value.
type Param struct {
	Name  string
	Value string
	Flag  bool
}

// ParseParam reads "name=value" or a bare "name". Only the first "=" splits.
func ParseParam(arg string) (Param, error) {
	name, value, found := strings.Cut(arg, "=")
	if strings.TrimSpace(name) == "" {
		return Param{}, fmt.Errorf("parameter %q has no name", arg)
	}
	if !found {
		return Param{Name: name, Flag: true}, nil
	}
	return Param{Name: name, Value: value}, nil
}

// Request describes what the sender should build.
type Request struct {
	Method  string
	URL     string
	Charset string
	Params  []Param
}

// Result summarizes a sent request.
type Result struct {
	Method     string
	URL        string
	StatusCode int
	BodyBytes  int
	Body       []byte
}

// Sender builds requests with the shared default headers and sends them.
type Sender struct {
	cfg      *config.Config
	defaults *httpbuilder.DefaultHeaders
	client   httpclient.Client
	log      logger.Logger
}

// NewSender wires config, the default header registry and the HTTP client.
func NewSender(cfg *config.Config, log logger.Logger, client httpclient.Client) (*Sender, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if client == nil {
		client = httpclient.NewRestyClient()
	}

	defaults := httpbuilder.NewDefaultHeaders(nil)
	if cfg.DefaultHeadersFile != "" {
		loaded, err := httpbuilder.LoadDefaultHeaders(cfg.DefaultHeadersFile)
		if err != nil {
			return nil, fmt.Errorf("load default headers: %w", err)
		}
		defaults = loaded
		log.InfoObj("default headers loaded", "headers_meta", map[string]any{
			"file":  cfg.DefaultHeadersFile,
			"count": defaults.Len(),
		})
	}

	return &Sender{
		cfg:      cfg,
		defaults: defaults,
		client:   client,
		log:      log,
	}, nil
}

// Headers exposes the default header registry shared by every request this sender builds.
func (s *Sender) Headers() *httpbuilder.DefaultHeaders { return s.defaults }

// Prepare builds the connection for req without sending it. POST parameters go
// to the body only; the URL is left as given.
func (s *Sender) Prepare(req Request) (*httpbuilder.Connection, error) {
	if s == nil {
		return nil, fmt.Errorf("sender is not initialized")
	}

	charset := req.Charset
	if charset == "" {
		charset = s.cfg.Charset
	}
	get := httpbuilder.NewGetBuilder(req.URL,
		httpbuilder.WithCharset(charset),
		httpbuilder.WithDefaultHeaders(s.defaults),
		httpbuilder.WithClient(s.client),
		httpbuilder.WithLogger(s.log),
	)

	switch strings.ToUpper(strings.TrimSpace(req.Method)) {
	case "", http.MethodGet:
		if err := addParams(get, req.Params); err != nil {
			return nil, err
		}
		return get.Build()
	case http.MethodPost:
		post := get.ToPostBuilder()
		if err := addParams(post, req.Params); err != nil {
			return nil, err
		}
		return post.Build()
	default:
		return nil, fmt.Errorf("unsupported method %q (expected GET or POST)", req.Method)
	}
}

type paramAdder interface {
	Add(name, value string) error
	AddFlag(name string) error
}

func addParams(b paramAdder, params []Param) error {
	for _, p := range params {
		var err error
		if p.Flag {
			err = b.AddFlag(p.Name)
		} else {
			err = b.Add(p.Name, p.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Send prepares and sends req.
func (s *Sender) Send(ctx context.Context, req Request) (Result, error) {
	conn, err := s.Prepare(req)
	if err != nil {
		return Result{}, fmt.Errorf("prepare request: %w", err)
	}

	start := time.Now()
	resp, err := conn.Do(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Method:     conn.Method,
		URL:        conn.URL,
		StatusCode: resp.StatusCode(),
		BodyBytes:  len(resp.Body()),
		Body:       resp.Body(),
	}
	s.log.InfoObj("request sent", "request_meta", map[string]any{
		"method":     res.Method,
		"url":        res.URL,
		"status":     res.StatusCode,
		"body_bytes": res.BodyBytes,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return res, nil
}
