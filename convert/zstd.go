package convert

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Zstd compresses with Zstandard. Level follows zstd.EncoderLevelFromZstd;
// zero keeps the encoder default. Decode fails past MaxSize bytes of output,
// DefaultMaxDecodedSize when zero.
type Zstd struct {
	Level   int
	MaxSize int64
}

// Encode compresses the input data using Zstandard.
func (z Zstd) Encode(data []byte) ([]byte, error) {
	var opts []zstd.EOption
	if z.Level != 0 {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(z.Level)))
	}
	encoder, err := zstd.NewWriter(nil, opts...)
	if err != nil {
		return nil, err
	}
	defer encoder.Close()

	encoded := encoder.EncodeAll(data, make([]byte, 0, len(data)))
	return encoded, nil
}

// Decode decompresses the input data using Zstandard.
func (z Zstd) Decode(data []byte) ([]byte, error) {
	limit := decodedLimit(z.MaxSize)
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(limit)))
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	decoded, err := decoder.DecodeAll(data, nil)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return nil, fmt.Errorf("%w: %w", ErrDecodedTooLarge, err)
	}
	if err != nil {
		return nil, err
	}
	return decoded, nil
}
