package cipherkit

import (
	"github.com/vaultsandbox/cipherkit/internal/crypto"
)

// KeySize is the size of a block-cipher key in bytes.
const KeySize = crypto.AESKeySize

// PublicKey is an RSA public key as big-endian modulus and exponent bytes.
type PublicKey = crypto.RSAPublicKey

// PrivateKey is an RSA private key as big-endian bytes.
type PrivateKey = crypto.RSAPrivateKey

// ParsePublicKeyPEM reads an RSA public key from a "PUBLIC KEY" or
// "RSA PUBLIC KEY" PEM block.
func ParsePublicKeyPEM(data []byte) (*PublicKey, error) {
	key, err := crypto.ParsePublicKeyPEM(data)
	if err != nil {
		return nil, wrapError("parse public key", err)
	}
	return key, nil
}

// ParsePrivateKeyPEM reads an RSA private key from a "PRIVATE KEY" or
// "RSA PRIVATE KEY" PEM block.
func ParsePrivateKeyPEM(data []byte) (*PrivateKey, error) {
	key, err := crypto.ParsePrivateKeyPEM(data)
	if err != nil {
		return nil, wrapError("parse private key", err)
	}
	return key, nil
}

// ParsePublicKeyJWK reads an RSA public key from a JSON Web Key.
func ParsePublicKeyJWK(data []byte) (*PublicKey, error) {
	key, err := crypto.ParsePublicKeyJWK(data)
	if err != nil {
		return nil, wrapError("parse public key", err)
	}
	return key, nil
}

// ParsePrivateKeyJWK reads an RSA private key from a JSON Web Key.
func ParsePrivateKeyJWK(data []byte) (*PrivateKey, error) {
	key, err := crypto.ParsePrivateKeyJWK(data)
	if err != nil {
		return nil, wrapError("parse private key", err)
	}
	return key, nil
}

// MarshalPublicKeyJWK encodes pub as an RSA JSON Web Key.
func MarshalPublicKeyJWK(pub *PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, wrapError("marshal public key", ErrInvalidKey)
	}
	data, err := crypto.MarshalPublicKeyJWK(pub)
	if err != nil {
		return nil, wrapError("marshal public key", err)
	}
	return data, nil
}

// KeyFromPassword derives a block-cipher key as the SHA-256 digest of the
// password. It is unsalted and fast; prefer [GenerateKey] or [DeriveKey]
// where possible.
func KeyFromPassword(password string) []byte {
	return crypto.KeyFromPassword(password)
}

// DeriveKey derives a block-cipher key from a shared secret with
// HKDF-SHA-512. An empty salt is replaced by 64 zero bytes.
func DeriveKey(secret, salt, info []byte) ([]byte, error) {
	key, err := crypto.DeriveAESKey(secret, salt, info)
	if err != nil {
		return nil, wrapError("derive key", err)
	}
	return key, nil
}

// GenerateKey returns a random block-cipher key.
func GenerateKey() ([]byte, error) {
	key, err := crypto.GenerateAESKey()
	if err != nil {
		return nil, wrapError("generate key", err)
	}
	return key, nil
}

// ParseHexKey decodes a hex-encoded block-cipher key. An odd number of
// digits is read as if it had a leading zero.
func ParseHexKey(s string) ([]byte, error) {
	key, err := crypto.ParseHexKey(s)
	if err != nil {
		return nil, wrapError("parse key", err)
	}
	return key, nil
}
