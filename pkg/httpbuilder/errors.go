package httpbuilder

import "errors"

var (
	// ErrMalformedURL is returned by Build when the accumulated URL cannot be used for an HTTP request.
	ErrMalformedURL = errors.New("malformed url")
	// ErrConnection wraps transport failures raised while sending a built request.
	ErrConnection = errors.New("connection failed")
	// ErrUnsupportedCharset is returned when the configured charset has no known encoder.
	ErrUnsupportedCharset = errors.New("unsupported charset")
	// ErrUnencodable is returned when a name or value cannot be represented in the charset.
	ErrUnencodable = errors.New("value not representable in charset")
	// ErrCharsetLocked is returned by SetCharset once a parameter has been written.
	ErrCharsetLocked = errors.New("charset cannot change after parameters were added")
	// ErrEmptyName is returned when a parameter name is blank.
	ErrEmptyName = errors.New("parameter name is empty")
)
