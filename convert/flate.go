package convert

import (
	"bytes"

	"github.com/klauspost/compress/flate"
)

// Deflate compresses with raw deflate. A zero Level means flate.DefaultCompression.
// Decode fails past MaxSize bytes of output, DefaultMaxDecodedSize when zero.
type Deflate struct {
	Level   int
	MaxSize int64
}

// Encode compresses the input data using deflate.
func (d Deflate) Encode(data []byte) ([]byte, error) {
	level := d.Level
	if level == 0 {
		level = flate.DefaultCompression
	}
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, err
	}
	_, err = fw.Write(data)
	if err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses the input data using deflate.
func (d Deflate) Decode(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	return readLimited(fr, decodedLimit(d.MaxSize))
}
