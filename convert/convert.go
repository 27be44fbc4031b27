// Package convert holds byte sequence to byte sequence converters:
// compression, digests, ciphers, signatures and structured data reshaping.
package convert

import (
	"errors"
	"fmt"
)

// ByteArrayConverter converts a byte sequence into another byte sequence.
//
// Implementations never modify value and are safe for concurrent use.
type ByteArrayConverter interface {
	Convert(value []byte) ([]byte, error)
}

// ConverterFunc adapts a plain function to ByteArrayConverter.
type ConverterFunc func(value []byte) ([]byte, error)

func (f ConverterFunc) Convert(value []byte) ([]byte, error) {
	return f(value)
}

// Codec is a reversible pair of byte transformations.
type Codec interface {
	Encode([]byte) ([]byte, error)
	Decode([]byte) ([]byte, error)
}

var (
	ErrUnknownConverter = errors.New("unknown converter")
	ErrInvalidKey       = errors.New("invalid key")
	ErrShortCiphertext  = errors.New("ciphertext too short")
	ErrDecodedTooLarge  = errors.New("decoded output too large")
)

// ConversionError is returned when a converter cannot process its input.
type ConversionError struct {
	Converter string
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: %v", e.Converter, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func conversionError(name string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConversionError
	if errors.As(err, &ce) {
		return err
	}
	return &ConversionError{Converter: name, Err: err}
}

type named struct {
	name string
	fn   func([]byte) ([]byte, error)
}

func (n named) Convert(value []byte) ([]byte, error) {
	out, err := n.fn(value)
	if err != nil {
		return nil, conversionError(n.name, err)
	}
	return out, nil
}

func (n named) String() string {
	return n.name
}

// Forward runs the Encode direction of c.
func Forward(name string, c Codec) ByteArrayConverter {
	return named{name: name, fn: c.Encode}
}

// Reverse runs the Decode direction of c.
func Reverse(name string, c Codec) ByteArrayConverter {
	return named{name: name, fn: c.Decode}
}

// Identity returns a copy of its input.
type Identity struct{}

func (Identity) Convert(value []byte) ([]byte, error) {
	return append([]byte{}, value...), nil
}

type chain []ByteArrayConverter

func (c chain) Convert(value []byte) ([]byte, error) {
	var err error
	for _, converter := range c {
		value, err = converter.Convert(value)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// Chain applies converters from left to right. An empty chain is the identity.
func Chain(converters ...ByteArrayConverter) ByteArrayConverter {
	switch len(converters) {
	case 0:
		return Identity{}
	case 1:
		return converters[0]
	}
	return chain(append([]ByteArrayConverter(nil), converters...))
}
