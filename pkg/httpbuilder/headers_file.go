package httpbuilder

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// headersFile represents the structure of a default headers file.
type headersFile struct {
	Headers map[string]string `json:"headers" yaml:"headers"`
}

// LoadDefaultHeaders reads a YAML or JSON file of the form
//
//	headers:
//	  User-Agent: samvad/1.0
//
// into a new registry. Keys and values are trimmed; blank entries are skipped.
func LoadDefaultHeaders(path string) (*DefaultHeaders, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("default headers file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read default headers file: %w", err)
	}

	file, err := parseHeadersFile(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return NewDefaultHeaders(sanitizeHeaders(file.Headers)), nil
}

// parseHeadersFile decodes the file content, picking the decoder by extension when known.
func parseHeadersFile(data []byte, ext string) (headersFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	var errs []error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var file headersFile
		if err := d.fn(data, &file); err != nil {
			errs = append(errs, fmt.Errorf("decode %s headers: %w", d.name, err))
			continue
		}
		return file, nil
	}
	if len(errs) == 0 {
		return headersFile{}, fmt.Errorf("default headers file extension %q not recognized (expected YAML or JSON)", ext)
	}
	return headersFile{}, errors.Join(errs...)
}

// sanitizeHeaders trims and removes empty headers.
func sanitizeHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		key := canonicalHeader(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	return out
}
