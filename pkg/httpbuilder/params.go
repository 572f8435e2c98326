package httpbuilder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// AddFlag adds a bare parameter: only the encoded name is written, without "=".
func (p *params) AddFlag(name string) error {
	return p.add(name, "", false)
}

// Add adds name=value. An empty value is written as "name=".
func (p *params) Add(name, value string) error {
	return p.add(name, value, true)
}

// AddInt adds a signed integer value.
func (p *params) AddInt(name string, value int64) error {
	return p.Add(name, strconv.FormatInt(value, 10))
}

// AddUint adds an unsigned integer value.
func (p *params) AddUint(name string, value uint64) error {
	return p.Add(name, strconv.FormatUint(value, 10))
}

// AddFloat adds a floating point value in its shortest decimal form.
func (p *params) AddFloat(name string, value float64) error {
	return p.Add(name, strconv.FormatFloat(value, 'f', -1, 64))
}

// AddRunes adds a character sequence. A nil slice is an absent value.
func (p *params) AddRunes(name string, value []rune) error {
	if value == nil {
		return p.AddFlag(name)
	}
	return p.Add(name, string(value))
}

// AddBytes adds a binary value. The bytes are read as UTF-8 with invalid
// sequences replaced by U+FFFD before encoding, so arbitrary binary data does
// not survive the round trip. A nil slice is an absent value.
func (p *params) AddBytes(name string, value []byte) error {
	if value == nil {
		return p.AddFlag(name)
	}
	return p.Add(name, strings.ToValidUTF8(string(value), "\uFFFD"))
}

// AddValue dispatches on the dynamic type of value. nil adds a bare flag.
func (p *params) AddValue(name string, value any) error {
	switch v := value.(type) {
	case nil:
		return p.AddFlag(name)
	case string:
		return p.Add(name, v)
	case *string:
		if v == nil {
			return p.AddFlag(name)
		}
		return p.Add(name, *v)
	case []byte:
		return p.AddBytes(name, v)
	case []rune:
		return p.AddRunes(name, v)
	case bool:
		return p.Add(name, strconv.FormatBool(v))
	case fmt.Stringer:
		return p.Add(name, v.String())
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.AddInt(name, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return p.AddUint(name, rv.Uint())
	case reflect.Float32:
		return p.Add(name, strconv.FormatFloat(rv.Float(), 'f', -1, 32))
	case reflect.Float64:
		return p.AddFloat(name, rv.Float())
	case reflect.Pointer:
		if rv.IsNil() {
			return p.AddFlag(name)
		}
		return p.AddValue(name, rv.Elem().Interface())
	default:
		return p.Add(name, fmt.Sprint(value))
	}
}
