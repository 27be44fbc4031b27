package convert

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

// Gzip compresses with gzip. A zero Level means gzip.DefaultCompression.
// Decode fails past MaxSize bytes of output, DefaultMaxDecodedSize when zero.
type Gzip struct {
	Level   int
	MaxSize int64
}

// Encode compresses the input data using gzip.
func (g Gzip) Encode(data []byte) ([]byte, error) {
	level := g.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	var buf bytes.Buffer
	gw, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	_, err = gw.Write(data)
	if err != nil {
		return nil, err
	}
	// the footer is only written on Close
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses the input data using gzip.
func (g Gzip) Decode(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return readLimited(gr, decodedLimit(g.MaxSize))
}
