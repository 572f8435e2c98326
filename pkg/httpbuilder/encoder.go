package httpbuilder

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharset is the charset parameters are encoded into unless changed.
const DefaultCharset = "UTF-8"

// separatorPolicy decides which punctuation precedes an appended parameter.
type separatorPolicy int

const (
	// bodySeparator: nothing before the first parameter, "&" afterwards.
	bodySeparator separatorPolicy = iota
	// querySeparator: "?" before the first parameter, "&" afterwards.
	querySeparator
)

func (s separatorPolicy) separator(added bool) string {
	if added {
		return "&"
	}
	if s == querySeparator {
		return "?"
	}
	return ""
}

// params accumulates percent-encoded parameters. Builders embed it to expose the Add* methods.
type params struct {
	buf     strings.Builder
	policy  separatorPolicy
	added   bool // buffer already holds at least one parameter, ours or from the base URL
	count   int  // parameters written through this builder
	charset string
	enc     encoding.Encoding
	log     Logger
}

func newParams(policy separatorPolicy, charset string, log Logger) *params {
	if strings.TrimSpace(charset) == "" {
		charset = DefaultCharset
	}
	return &params{
		policy:  policy,
		charset: strings.TrimSpace(charset),
		log:     ensureLogger(log),
	}
}

// Charset returns the charset label parameters are encoded into.
func (p *params) Charset() string { return p.charset }

// SetCharset changes the charset. It must be called before the first parameter
// is added; afterwards it returns ErrCharsetLocked and nothing changes.
// The label is resolved on the next Add call.
func (p *params) SetCharset(charset string) error {
	if p.count > 0 {
		return ErrCharsetLocked
	}
	charset = strings.TrimSpace(charset)
	if charset == "" {
		charset = DefaultCharset
	}
	p.charset = charset
	p.enc = nil
	return nil
}

// Count returns how many parameters were added through this builder.
func (p *params) Count() int { return p.count }

// encoding resolves the charset label through the IANA registry.
func (p *params) encoding() (encoding.Encoding, error) {
	if p.enc != nil {
		return p.enc, nil
	}
	e, err := lookupCharset(p.charset)
	if err != nil {
		return nil, err
	}
	p.enc = e
	return e, nil
}

func lookupCharset(name string) (encoding.Encoding, error) {
	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedCharset, name, err)
	}
	if e == nil {
		// some registered names come back without an implementation
		return nil, fmt.Errorf("%w: no encoder for %s", ErrUnsupportedCharset, name)
	}
	return e, nil
}

// escape transcodes s into the charset and percent-encodes the resulting bytes with form rules.
func (p *params) escape(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	e, err := p.encoding()
	if err != nil {
		return "", err
	}
	raw, err := e.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnencodable, p.charset, err)
	}
	return url.QueryEscape(raw), nil
}

// add appends one parameter. Without hasValue only the name is written.
// On error the buffer and the separator state are left untouched.
func (p *params) add(name, value string, hasValue bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	pair, err := p.escape(name)
	if err != nil {
		p.warnDropped(name, err)
		return fmt.Errorf("add parameter %q: %w", name, err)
	}
	if hasValue {
		encoded, err := p.escape(value)
		if err != nil {
			p.warnDropped(name, err)
			return fmt.Errorf("add parameter %q: %w", name, err)
		}
		pair += "=" + encoded
	}

	p.buf.WriteString(p.policy.separator(p.added))
	p.buf.WriteString(pair)
	p.added = true
	p.count++
	return nil
}

func (p *params) warnDropped(name string, err error) {
	p.log.WarnObj("parameter dropped", "parameter_error", map[string]any{
		"name":    name,
		"charset": p.charset,
		"error":   err.Error(),
	})
}
