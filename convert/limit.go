package convert

import (
	"fmt"
	"io"
)

// DefaultMaxDecodedSize bounds the output of a decompressing codec whose
// MaxSize is zero.
const DefaultMaxDecodedSize int64 = 64 << 20

func decodedLimit(maxSize int64) int64 {
	if maxSize <= 0 {
		return DefaultMaxDecodedSize
	}
	return maxSize
}

func tooLarge(limit int64) error {
	return fmt.Errorf("%w: more than %d bytes", ErrDecodedTooLarge, limit)
}

// readLimited reads r to the end, failing once more than limit bytes come out.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	decoded, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(decoded)) > limit {
		return nil, tooLarge(limit)
	}
	return decoded, nil
}
