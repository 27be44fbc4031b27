package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		scheme string
		input  string
		expect string
	}{
		{"hex", "00ff4142", "\x00\xffAB"},
		{"hex", "00FF4142", "\x00\xffAB"},
		{"hex", "  00ff\n", "\x00\xff"},
		{"base64", "aGVsbG8/", "hello?"},
		{"base64", "aGk=", "hi"},
		{"base64", "aGk", "hi"},
		{"base64url", "aGVsbG8_", "hello?"},
		{"base64rawurl", "-_8", "\xfb\xff"},
		{"base32", "NBUQ====", "hi"},
		{"base32hex", "D1KG====", "hi"},
		{"base58", "StV1DL6CwTryKyV", "hello world"},
		{"base58", "112", "\x00\x00\x01"},
		{"multibase", "f6869", "hi"},
		{"multibase", "zStV1DL6CwTryKyV", "hello world"},
		{"base62", "47", "\xff"},
		{"multibase", "z", ""},
		{"multibase", "f", ""},
		{"utf8", " keep spaces ", " keep spaces "},
		{"", "text", "text"},
		{"hex", "", ""},
	}
	for i, tc := range tests {
		d, err := New(tc.scheme)
		require.NoError(t, err, "case %d", i)
		out, err := d.Decode(tc.input)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, tc.expect, string(out), "case %d (%s)", i, tc.scheme)
		assert.NotNil(t, out, "case %d", i)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		scheme string
		input  string
	}{
		{"hex", "abc"},
		{"hex", "zz"},
		{"base64", "!!!!"},
		{"base64url", "aGVsbG8/"},
		{"base32", "1"},
		{"base58", "0OIl"},
		{"base62", "not-base62"},
		{"multibase", "?what"},
		{"multibase", ""},
		{"multibase", "?"},
	}
	for i, tc := range tests {
		d, err := New(tc.scheme)
		require.NoError(t, err, "case %d", i)
		_, err = d.Decode(tc.input)
		require.Error(t, err, "case %d", i)

		var de *DecodeError
		require.True(t, errors.As(err, &de), "case %d: expected *DecodeError, got %T", i, err)
		assert.Equal(t, tc.scheme, de.Scheme, "case %d", i)
		assert.NotNil(t, errors.Unwrap(err), "case %d", i)
	}
}

func TestUnknownScheme(t *testing.T) {
	_, err := New("rot13")
	assert.True(t, errors.Is(err, ErrUnknownScheme))
}

func TestDecoderFunc(t *testing.T) {
	var d StringDecoder = DecoderFunc(func(s string) ([]byte, error) { return []byte(s + s), nil })
	out, err := d.Decode("ab")
	require.NoError(t, err)
	assert.Equal(t, "abab", string(out))
}
