package encode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolapps/decode"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		scheme string
		input  string
		expect string
	}{
		{"hex", "\x00\xffAB", "00ff4142"},
		{"hex-upper", "\x00\xffAB", "00FF4142"},
		{"base64", "hello?", "aGVsbG8/"},
		{"base64url", "hello?", "aGVsbG8_"},
		{"base64raw", "hi", "aGk"},
		{"base64rawurl", "\xfb\xff", "-_8"},
		{"base32", "hi", "NBUQ===="},
		{"base32hex", "hi", "D1KG===="},
		{"base58", "hello world", "StV1DL6CwTryKyV"},
		{"base58", "\x00\x00\x01", "112"},
		{"utf8", "héllo", "héllo"},
		{"utf8", "a\xffb", "a�b"},
		{"", "text", "text"},
		{"multibase", "hello world", "zStV1DL6CwTryKyV"},
		{"multibase-base16", "hi", "f6869"},
		{"multibase", "", "z"},
		{"hex", "", ""},
		{"base62", "", ""},
		{"base62", "\xff", "47"},
		{"base62", "\x01\x00", "48"},
	}
	for i, tc := range tests {
		e, err := New(tc.scheme)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, tc.expect, e.Encode([]byte(tc.input)), "case %d (%s)", i, tc.scheme)
	}
}

func TestCID(t *testing.T) {
	c := CID([]byte("hello world"))
	assert.Equal(t, "bafkreifzjut3te2nhyekklss27nh3k72ysco7y32koao5eei66wof36n5e", c)
	assert.Equal(t, c, CID([]byte("hello world")))
	assert.NotEqual(t, c, CID([]byte("hello world!")))
}

func TestUnknownScheme(t *testing.T) {
	for _, name := range []string{"rot13", "multibase-base7"} {
		_, err := New(name)
		assert.True(t, errors.Is(err, ErrUnknownScheme), name)
	}
}

// Every scheme with a decoder of the same name is its inverse.
func TestRoundTripWithDecoders(t *testing.T) {
	inputs := [][]byte{
		{},
		{0},
		{0, 0, 1, 2},
		[]byte("The quick brown fox jumps over the lazy dog"),
		{0xde, 0xad, 0xbe, 0xef, 0x00, 0xff},
	}
	for _, name := range Names() {
		dec, err := decode.New(name)
		if errors.Is(err, decode.ErrUnknownScheme) {
			continue
		}
		require.NoError(t, err)
		enc, err := New(name)
		require.NoError(t, err)

		for _, in := range inputs {
			if name == "utf8" && string(in) != enc.Encode(in) {
				// only inverse on valid UTF-8
				continue
			}
			out, err := dec.Decode(enc.Encode(in))
			require.NoError(t, err, "%s %x", name, in)
			assert.Equal(t, in, out, "%s %x", name, in)
		}
	}
}

func TestEncoderFunc(t *testing.T) {
	var e ByteArrayEncoder = EncoderFunc(func(b []byte) string { return string(rune(len(b)) + 'a') })
	assert.Equal(t, "c", e.Encode([]byte("xy")))
}
