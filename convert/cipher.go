package convert

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// AESGCM encrypts with AES in GCM mode. Key must be 16, 24 or 32 bytes.
// The random nonce is prepended to the ciphertext.
type AESGCM struct {
	Key []byte
}

func (e AESGCM) aead() (cipher.AEAD, error) {
	switch len(e.Key) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(e.Key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encode encrypts data with AESGCM.Key
func (e AESGCM) Encode(data []byte) ([]byte, error) {
	aead, err := e.aead()
	if err != nil {
		return nil, err
	}
	return seal(aead, data)
}

// Decode decrypts data produced by Encode
func (e AESGCM) Decode(data []byte) ([]byte, error) {
	aead, err := e.aead()
	if err != nil {
		return nil, err
	}
	return open(aead, data)
}

// ChaCha20Poly1305 encrypts with a 32 byte key, nonce prepended.
type ChaCha20Poly1305 struct {
	Key []byte
}

func (c ChaCha20Poly1305) aead() (cipher.AEAD, error) {
	if len(c.Key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKey
	}
	return chacha20poly1305.New(c.Key)
}

func (c ChaCha20Poly1305) Encode(data []byte) ([]byte, error) {
	aead, err := c.aead()
	if err != nil {
		return nil, err
	}
	return seal(aead, data)
}

func (c ChaCha20Poly1305) Decode(data []byte) ([]byte, error) {
	aead, err := c.aead()
	if err != nil {
		return nil, err
	}
	return open(aead, data)
}

func seal(aead cipher.AEAD, data []byte) ([]byte, error) {
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(data)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	// the nonce doubles as the destination prefix
	return aead.Seal(nonce, nonce, data, nil), nil
}

func open(aead cipher.AEAD, data []byte) ([]byte, error) {
	nonceSize := aead.NonceSize()
	if len(data) < nonceSize+aead.Overhead() {
		return nil, ErrShortCiphertext
	}
	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}
