package convert

import (
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
)

// S2 is the block form of klauspost's snappy extension.
type S2 struct {
	MaxSize int64
}

func (S2) Encode(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (c S2) Decode(data []byte) ([]byte, error) {
	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if limit := decodedLimit(c.MaxSize); int64(n) > limit {
		return nil, tooLarge(limit)
	}
	return s2.Decode(nil, data)
}

// Snappy is the snappy block format.
type Snappy struct {
	MaxSize int64
}

func (Snappy) Encode(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (c Snappy) Decode(data []byte) ([]byte, error) {
	n, err := snappy.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if limit := decodedLimit(c.MaxSize); int64(n) > limit {
		return nil, tooLarge(limit)
	}
	return snappy.Decode(nil, data)
}
