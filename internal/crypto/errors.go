package crypto

import "errors"

var (
	// ErrInvalidKey is returned when key material cannot be decoded or is
	// not an RSA key.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidKeySize is returned when a block-cipher key is not
	// AESKeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidEncoding is returned when a hex or base64 string is malformed.
	ErrInvalidEncoding = errors.New("invalid encoding")
)
