// Package decode turns text in a known scheme back into bytes.
package decode

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/eknkc/basex"
	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multibase"
)

// StringDecoder decodes text into a byte sequence.
type StringDecoder interface {
	Decode(encoded string) ([]byte, error)
}

// DecoderFunc adapts a function to StringDecoder.
type DecoderFunc func(encoded string) ([]byte, error)

func (f DecoderFunc) Decode(encoded string) ([]byte, error) {
	return f(encoded)
}

var ErrUnknownScheme = errors.New("unknown decoding scheme")

// DecodeError is returned when the text is not valid for the scheme.
type DecodeError struct {
	Scheme string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Scheme, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Base62Alphabet is the digit-lower-upper alphabet used for base62.
const Base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var base62Encoding *basex.Encoding

func init() {
	base62Encoding, _ = basex.NewEncoding(Base62Alphabet)
}

type scheme struct {
	name string
	fn   func(string) ([]byte, error)
	// trim surrounding whitespace before decoding
	trim bool
}

func (s scheme) Decode(encoded string) ([]byte, error) {
	if s.trim {
		encoded = strings.TrimSpace(encoded)
	}
	decoded, err := s.fn(encoded)
	if err != nil {
		return nil, &DecodeError{Scheme: s.name, Err: err}
	}
	if decoded == nil {
		decoded = []byte{}
	}
	return decoded, nil
}

// lenientBase64 accepts padded or unpadded standard base64.
func lenientBase64(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}

func base62(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	return base62Encoding.Decode(s)
}

func base58Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	return base58.Decode(s)
}

func multibaseDecode(s string) ([]byte, error) {
	// a lone prefix carries an empty payload
	if len(s) == 1 {
		if _, ok := multibase.EncodingToStr[multibase.Encoding(s[0])]; ok {
			return []byte{}, nil
		}
	}
	_, data, err := multibase.Decode(s)
	return data, err
}

var schemes = map[string]scheme{
	"hex":          {fn: hex.DecodeString, trim: true},
	"hex-upper":    {fn: hex.DecodeString, trim: true},
	"base64":       {fn: lenientBase64, trim: true},
	"base64url":    {fn: base64.URLEncoding.DecodeString, trim: true},
	"base64raw":    {fn: base64.RawStdEncoding.DecodeString, trim: true},
	"base64rawurl": {fn: base64.RawURLEncoding.DecodeString, trim: true},
	"base32":       {fn: base32.StdEncoding.DecodeString, trim: true},
	"base32hex":    {fn: base32.HexEncoding.DecodeString, trim: true},
	"base58":       {fn: base58Decode, trim: true},
	"base62":       {fn: base62, trim: true},
	"multibase":    {fn: multibaseDecode, trim: true},
	"utf8":         {fn: func(s string) ([]byte, error) { return []byte(s), nil }},
}

// New returns the decoder registered under name.
func New(name string) (StringDecoder, error) {
	if name == "" || name == "plain" || name == "text" {
		name = "utf8"
	}
	s, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, name)
	}
	s.name = name
	return s, nil
}

// Names lists the registered schemes, sorted.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
