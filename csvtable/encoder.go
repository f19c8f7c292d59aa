package csvtable

import (
	"strings"

	"github.com/domonda/go-types/charset"
)

// Encoder is an interface to encode byte strings.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

// EncoderFunc implements the Encoder interface for a function.
type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// PassthroughEncoder returns an Encoder that returns the passed data unchanged.
func PassthroughEncoder() Encoder {
	return EncoderFunc(func(data []byte) ([]byte, error) {
		return data, nil
	})
}

// CharsetEncoder returns an Encoder converting UTF-8
// to the character set with the passed name.
// For UTF-8 itself a PassthroughEncoder is returned.
func CharsetEncoder(name string) (Encoder, error) {
	if isUTF8(name) {
		return PassthroughEncoder(), nil
	}
	enc, err := charset.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	return EncoderFunc(enc.Encode), nil
}

func isUTF8(name string) bool {
	switch strings.ToUpper(strings.ReplaceAll(name, " ", "")) {
	case "UTF-8", "UTF8":
		return true
	}
	return false
}
