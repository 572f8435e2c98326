package httpbuilder

import "net/http"

// PostBuilder accumulates a form-encoded request body. It is obtained from
// GetBuilder.ToPostBuilder.
type PostBuilder struct {
	*params
	url  string
	opts settings
}

// URL returns the target URL, unchanged from the GET builder it came from.
func (p *PostBuilder) URL() string { return p.url }

// Body returns the encoded body accumulated so far.
func (p *PostBuilder) Body() string { return p.buf.String() }

// Build returns a POST connection carrying Body as its pending request body.
func (p *PostBuilder) Build() (*Connection, error) {
	extra := map[string]string{
		headerContentType: formContentType + "; charset=" + p.charset,
	}
	return newConnection(http.MethodPost, p.url, p.Body(), p.charset, extra, p.opts)
}
