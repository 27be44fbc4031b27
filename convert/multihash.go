package convert

import (
	"fmt"

	"github.com/multiformats/go-multihash"
)

// Multihash produces a self-describing multihash of the input.
// Algorithm uses multihash names such as "sha2-256"; empty means sha2-256.
type Multihash struct {
	Algorithm string
}

func (m Multihash) Convert(value []byte) ([]byte, error) {
	alg := m.Algorithm
	if alg == "" {
		alg = "sha2-256"
	}
	code, ok := multihash.Names[alg]
	if !ok {
		return nil, conversionError("multihash", fmt.Errorf("unsupported multihash %q", alg))
	}
	sum, err := multihash.Sum(value, code, -1)
	if err != nil {
		return nil, conversionError("multihash", err)
	}
	return sum, nil
}
