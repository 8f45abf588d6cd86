package pkcs1

import "errors"

var (
	// ErrMessageTooLong is returned when a block's message exceeds k-42 bytes.
	ErrMessageTooLong = errors.New("message too long")

	// ErrRange is returned when an integer representative is not smaller
	// than the modulus.
	ErrRange = errors.New("representative out of range")

	// ErrCiphertextLength is returned when a ciphertext is not a positive
	// multiple of the modulus length, or a single block is not exactly that
	// long.
	ErrCiphertextLength = errors.New("invalid ciphertext length")

	// ErrIntegrity is returned when a decrypted block fails the OAEP checks.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrMaskTooLong is returned when MGF1 is asked for more than 2^32
	// hash outputs.
	ErrMaskTooLong = errors.New("mask too long")

	// ErrIntegerTooLarge is returned when an integer does not fit the
	// requested octet length.
	ErrIntegerTooLarge = errors.New("integer too large")
)
