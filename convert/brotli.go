package convert

import (
	"bytes"

	"github.com/andybalholm/brotli"
)

// Brotli compresses with brotli. A zero Level means brotli.DefaultCompression.
// Decode fails past MaxSize bytes of output, DefaultMaxDecodedSize when zero.
type Brotli struct {
	Level   int
	MaxSize int64
}

// Encode compresses the input data using Brotli.
func (b Brotli) Encode(data []byte) ([]byte, error) {
	level := b.Level
	if level == 0 {
		level = brotli.DefaultCompression
	}
	var buf bytes.Buffer
	bw := brotli.NewWriterLevel(&buf, level)
	_, err := bw.Write(data)
	if err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses the input data using Brotli.
func (b Brotli) Decode(data []byte) ([]byte, error) {
	return readLimited(brotli.NewReader(bytes.NewReader(data)), decodedLimit(b.MaxSize))
}
