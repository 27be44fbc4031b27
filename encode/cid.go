package encode

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CID returns the CIDv1 string of data using the "raw" multicodec and a
// sha2-256 multihash.
func CID(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// sha2-256 with default length does not fail
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}
