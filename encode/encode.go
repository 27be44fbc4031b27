// Package encode renders bytes as text.
package encode

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

	"toolapps/decode"
)

// ByteArrayEncoder encodes a byte sequence as text.
type ByteArrayEncoder interface {
	Encode(decoded []byte) string
}

// EncoderFunc adapts a function to ByteArrayEncoder.
type EncoderFunc func(decoded []byte) string

func (f EncoderFunc) Encode(decoded []byte) string {
	return f(decoded)
}

var ErrUnknownScheme = errors.New("unknown encoding scheme")

var base62Encoding *basex.Encoding

func init() {
	base62Encoding, _ = basex.NewEncoding(decode.Base62Alphabet)
}

func base62(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return base62Encoding.Encode(b)
}

func utf8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

var schemes = map[string]EncoderFunc{
	"hex":          hex.EncodeToString,
	"hex-upper":    func(b []byte) string { return strings.ToUpper(hex.EncodeToString(b)) },
	"base64":       base64.StdEncoding.EncodeToString,
	"base64url":    base64.URLEncoding.EncodeToString,
	"base64raw":    base64.RawStdEncoding.EncodeToString,
	"base64rawurl": base64.RawURLEncoding.EncodeToString,
	"base32":       base32.StdEncoding.EncodeToString,
	"base32hex":    base32.HexEncoding.EncodeToString,
	"base58":       base58.Encode,
	"base62":       base62,
	"utf8":         utf8,
	"cid":          CID,
}

// New returns the encoder registered under name. "multibase" uses
// base58btc; "multibase-<base>" picks any multibase encoding by name.
func New(name string) (ByteArrayEncoder, error) {
	if name == "" || name == "plain" || name == "text" {
		name = "utf8"
	}
	if e, ok := schemes[name]; ok {
		return e, nil
	}
	if base, ok := strings.CutPrefix(name, "multibase"); ok {
		base = strings.TrimPrefix(base, "-")
		if base == "" {
			base = "base58btc"
		}
		return NewMultibase(base)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, name)
}

// Multibase prefixes its output with the multibase code of its base.
type Multibase struct {
	encoder multibase.Encoder
}

// NewMultibase builds a Multibase for a base name such as "base32".
func NewMultibase(base string) (Multibase, error) {
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return Multibase{}, fmt.Errorf("%w: multibase %s", ErrUnknownScheme, base)
	}
	return Multibase{encoder: enc}, nil
}

func (m Multibase) Encode(decoded []byte) string {
	return m.encoder.Encode(decoded)
}

// Names lists the registered schemes, sorted.
func Names() []string {
	names := make([]string, 0, len(schemes)+1)
	for name := range schemes {
		names = append(names, name)
	}
	names = append(names, "multibase")
	sort.Strings(names)
	return names
}
