package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"
)

// RSAPublicKey is an RSA public key as big-endian modulus and exponent bytes.
type RSAPublicKey struct {
	Modulus  []byte
	Exponent []byte
}

// RSAPrivateKey is an RSA private key as big-endian bytes. Only the values
// needed by the decryption primitive are kept.
type RSAPrivateKey struct {
	Modulus         []byte
	PublicExponent  []byte
	PrivateExponent []byte
}

// Public returns the public half of k.
func (k *RSAPrivateKey) Public() *RSAPublicKey {
	return &RSAPublicKey{Modulus: k.Modulus, Exponent: k.PublicExponent}
}

// ParsePublicKeyPEM extracts an RSA public key from the first PEM block in data.
func ParsePublicKeyPEM(data []byte) (*RSAPublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKey)
	}

	var pub *rsa.PublicKey
	switch block.Type {
	case pemPublicKey:
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA public key (%T)", ErrInvalidKey, key)
		}
		pub = rsaKey
	case pemRSAPublicKey:
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		pub = key
	default:
		return nil, fmt.Errorf("%w: unsupported PEM type %q", ErrInvalidKey, block.Type)
	}

	return fromRSAPublicKey(pub), nil
}

// ParsePrivateKeyPEM extracts an RSA private key from the first PEM block in data.
func ParsePrivateKeyPEM(data []byte) (*RSAPrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKey)
	}

	var priv *rsa.PrivateKey
	switch block.Type {
	case pemPrivateKey:
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA private key (%T)", ErrInvalidKey, key)
		}
		priv = rsaKey
	case pemRSAPrivateKey:
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		priv = key
	default:
		return nil, fmt.Errorf("%w: unsupported PEM type %q", ErrInvalidKey, block.Type)
	}

	return &RSAPrivateKey{
		Modulus:         priv.N.Bytes(),
		PublicExponent:  big.NewInt(int64(priv.E)).Bytes(),
		PrivateExponent: priv.D.Bytes(),
	}, nil
}

func fromRSAPublicKey(pub *rsa.PublicKey) *RSAPublicKey {
	return &RSAPublicKey{
		Modulus:  pub.N.Bytes(),
		Exponent: big.NewInt(int64(pub.E)).Bytes(),
	}
}
