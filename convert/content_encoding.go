package convert

import (
	"fmt"
	"strconv"
	"strings"
)

func contentCodec(encoding string) (Codec, error) {
	switch encoding {
	case "gzip":
		return Gzip{}, nil
	case "brotli", "br":
		return Brotli{}, nil
	case "deflate":
		return Deflate{}, nil
	case "zstd":
		return Zstd{}, nil
	case "plain", "identity", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown encoding: %s", encoding)
	}
}

// Compress applies an HTTP content coding to data.
func Compress(data []byte, encoding string) ([]byte, error) {
	codec, err := contentCodec(encoding)
	if err != nil || codec == nil {
		return data, err
	}
	return codec.Encode(data)
}

// Decompress removes an HTTP content coding from data.
func Decompress(data []byte, encoding string) ([]byte, error) {
	codec, err := contentCodec(encoding)
	if err != nil || codec == nil {
		return data, err
	}
	return codec.Decode(data)
}

// CompressWithSomething tries the codings listed in acceptEncoding in order
// and returns the first result smaller than data along with its coding.
// Unknown codings and codings with a zero q-value are skipped.
func CompressWithSomething(data []byte, acceptEncoding string) ([]byte, string, error) {
	for _, encoding := range strings.Split(acceptEncoding, ",") {
		encoding, params, _ := strings.Cut(encoding, ";")
		encoding = strings.ToLower(strings.TrimSpace(encoding))
		if encoding == "" || encoding == "identity" || !accepted(params) {
			continue
		}
		if encoding == "brotli" {
			encoding = "br"
		}
		if _, err := contentCodec(encoding); err != nil {
			continue
		}
		encoded, err := Compress(data, encoding)
		if err != nil {
			return nil, "", err
		}
		if len(encoded) < len(data) {
			return encoded, encoding, nil
		}
	}

	return data, "", nil
}

// accepted reports whether the q-value in params is above zero. A missing or
// malformed q-value counts as accepted.
func accepted(params string) bool {
	for _, param := range strings.Split(params, ";") {
		name, value, ok := strings.Cut(param, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return true
		}
		return q > 0
	}
	return true
}
