package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// GenerateAESKey returns a fresh random block-cipher key.
func GenerateAESKey() ([]byte, error) {
	r := randReader
	if r == nil {
		r = rand.Reader
	}

	key := make([]byte, AESKeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// ParseHexKey decodes a hex-encoded block-cipher key.
func ParseHexKey(s string) ([]byte, error) {
	key, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}
	return key, nil
}
