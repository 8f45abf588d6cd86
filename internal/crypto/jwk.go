package crypto

import (
	"encoding/json"
	"fmt"
)

// jwk holds the RSA members of a JSON Web Key (RFC 7517, RFC 7518 §6.3).
type jwk struct {
	Kty string `json:"kty"`
	N   string `json:"n"`
	E   string `json:"e"`
	D   string `json:"d,omitempty"`
}

func parseJWK(data []byte) (*jwk, error) {
	var key jwk
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if key.Kty != jwkKeyTypeRSA {
		return nil, fmt.Errorf("%w: unsupported kty %q", ErrInvalidKey, key.Kty)
	}
	if key.N == "" || key.E == "" {
		return nil, fmt.Errorf("%w: missing n or e", ErrInvalidKey)
	}
	return &key, nil
}

func decodeMember(name, value string) ([]byte, error) {
	b, err := DecodeBase64(value)
	if err != nil {
		return nil, fmt.Errorf("%w: member %q: %v", ErrInvalidKey, name, err)
	}
	return b, nil
}

// ParsePublicKeyJWK extracts an RSA public key from a JSON Web Key. Private
// members, if present, are ignored.
func ParsePublicKeyJWK(data []byte) (*RSAPublicKey, error) {
	key, err := parseJWK(data)
	if err != nil {
		return nil, err
	}

	n, err := decodeMember("n", key.N)
	if err != nil {
		return nil, err
	}
	e, err := decodeMember("e", key.E)
	if err != nil {
		return nil, err
	}
	return &RSAPublicKey{Modulus: n, Exponent: e}, nil
}

// ParsePrivateKeyJWK extracts an RSA private key from a JSON Web Key.
func ParsePrivateKeyJWK(data []byte) (*RSAPrivateKey, error) {
	key, err := parseJWK(data)
	if err != nil {
		return nil, err
	}
	if key.D == "" {
		return nil, fmt.Errorf("%w: missing d", ErrInvalidKey)
	}

	n, err := decodeMember("n", key.N)
	if err != nil {
		return nil, err
	}
	e, err := decodeMember("e", key.E)
	if err != nil {
		return nil, err
	}
	d, err := decodeMember("d", key.D)
	if err != nil {
		return nil, err
	}
	return &RSAPrivateKey{Modulus: n, PublicExponent: e, PrivateExponent: d}, nil
}

// MarshalPublicKeyJWK encodes k as a JSON Web Key.
func MarshalPublicKeyJWK(k *RSAPublicKey) ([]byte, error) {
	return json.Marshal(jwk{
		Kty: jwkKeyTypeRSA,
		N:   ToBase64URL(k.Modulus),
		E:   ToBase64URL(k.Exponent),
	})
}
