package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives a key using HKDF-SHA-512.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// DeriveAESKey derives a block-cipher key from secret. The info string is
// HKDFContext followed by info, so keys derived for different purposes from
// the same secret are unrelated.
func DeriveAESKey(secret, salt, info []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidKey)
	}

	context := make([]byte, 0, len(HKDFContext)+len(info))
	context = append(context, HKDFContext...)
	context = append(context, info...)

	return DeriveKey(secret, salt, context, AESKeySize)
}
