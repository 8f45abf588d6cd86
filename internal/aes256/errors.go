package aes256

import "errors"

var (
	// ErrKeyLength is returned when a key is not exactly KeySize bytes.
	ErrKeyLength = errors.New("invalid key length")

	// ErrCiphertextLength is returned when a ciphertext is empty or not a
	// whole number of blocks.
	ErrCiphertextLength = errors.New("invalid ciphertext length")
)
