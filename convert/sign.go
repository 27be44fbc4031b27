package convert

import (
	"crypto/ed25519"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
)

// SeedSize is the seed length both signers expect.
const SeedSize = 32

// Ed25519Signer converts a message into its ed25519 signature.
type Ed25519Signer struct {
	Seed []byte
}

func (s Ed25519Signer) Convert(value []byte) ([]byte, error) {
	if len(s.Seed) != ed25519.SeedSize {
		return nil, conversionError("ed25519", ErrInvalidKey)
	}
	key := ed25519.NewKeyFromSeed(s.Seed)
	return ed25519.Sign(key, value), nil
}

// PublicKey returns the verification key for Seed.
func (s Ed25519Signer) PublicKey() (ed25519.PublicKey, error) {
	if len(s.Seed) != ed25519.SeedSize {
		return nil, ErrInvalidKey
	}
	return ed25519.NewKeyFromSeed(s.Seed).Public().(ed25519.PublicKey), nil
}

// Dilithium3Signer converts a message into its dilithium3 signature.
type Dilithium3Signer struct {
	Seed []byte
}

func (s Dilithium3Signer) keys() (*mode3.PublicKey, *mode3.PrivateKey, error) {
	if len(s.Seed) != SeedSize {
		return nil, nil, ErrInvalidKey
	}
	var seed [SeedSize]byte
	copy(seed[:], s.Seed)
	pk, sk := mode3.NewKeyFromSeed(&seed)
	return pk, sk, nil
}

func (s Dilithium3Signer) Convert(value []byte) ([]byte, error) {
	_, sk, err := s.keys()
	if err != nil {
		return nil, conversionError("dilithium3", err)
	}
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(sk, value, sig)
	return sig, nil
}

// Verify reports whether sig is a valid signature of msg under Seed's key.
func (s Dilithium3Signer) Verify(msg, sig []byte) bool {
	pk, _, err := s.keys()
	if err != nil {
		return false
	}
	return mode3.Verify(pk, msg, sig)
}
