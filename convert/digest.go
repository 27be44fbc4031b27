package convert

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

var hashes = map[string]func() hash.Hash{
	"md5":         md5.New,
	"sha1":        sha1.New,
	"sha224":      sha256.New224,
	"sha256":      sha256.New,
	"sha384":      sha512.New384,
	"sha512":      sha512.New,
	"sha3-256":    sha3.New256,
	"sha3-512":    sha3.New512,
	"blake2b-256": newBlake2b256,
	"blake2b-512": newBlake2b512,
	"blake3":      newBlake3,
}

// blake2b only fails for keys longer than 64 bytes
func newBlake2b256() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

func newBlake2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

func newBlake3() hash.Hash {
	return blake3.New(32, nil)
}

// DigestAlgorithms returns the supported digest names, sorted.
func DigestAlgorithms() []string {
	names := make([]string, 0, len(hashes))
	for name := range hashes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Digest hashes its input with Algorithm.
type Digest struct {
	Algorithm string
}

func (d Digest) Convert(value []byte) ([]byte, error) {
	newHash, ok := hashes[d.Algorithm]
	if !ok {
		return nil, conversionError(d.Algorithm, fmt.Errorf("unsupported digest algorithm %q", d.Algorithm))
	}
	h := newHash()
	h.Write(value)
	return h.Sum(nil), nil
}

// HMAC is a keyed Digest.
type HMAC struct {
	Algorithm string
	Key       []byte
}

func (m HMAC) Convert(value []byte) ([]byte, error) {
	name := "hmac-" + m.Algorithm
	newHash, ok := hashes[m.Algorithm]
	if !ok {
		return nil, conversionError(name, fmt.Errorf("unsupported digest algorithm %q", m.Algorithm))
	}
	if len(m.Key) == 0 {
		return nil, conversionError(name, ErrInvalidKey)
	}
	mac := hmac.New(newHash, m.Key)
	mac.Write(value)
	return mac.Sum(nil), nil
}
