package pkcs1

import (
	"bytes"
	"fmt"

	"github.com/vaultsandbox/cipherkit/internal/bigint"
)

// Key is an RSA modulus paired with one exponent. The same type serves
// encryption (public exponent) and decryption (private exponent). A Key is
// immutable and safe for concurrent use.
type Key struct {
	n bigint.Nat
	e bigint.Nat
	k int
}

// NewKey builds a Key from big-endian modulus and exponent bytes. The block
// size k is the length of the modulus slice as given.
func NewKey(modulus, exponent []byte) *Key {
	return &Key{
		n: bigint.FromBytes(modulus),
		e: bigint.FromBytes(exponent),
		k: len(modulus),
	}
}

// Size returns k, the length of one ciphertext block in bytes.
func (key *Key) Size() int {
	return key.k
}

// MaxMessage returns the largest message one block can carry. It is
// negative when the modulus is too short for OAEP.
func (key *Key) MaxMessage() int {
	return key.k - Overhead
}

// EncryptBlock OAEP-encodes msg with the given HashLen-byte seed and
// applies the RSA primitive. The result is exactly Size bytes.
func (key *Key) EncryptBlock(seed, msg []byte) ([]byte, error) {
	if len(seed) != HashLen {
		return nil, fmt.Errorf("pkcs1: seed is %d bytes, want %d", len(seed), HashLen)
	}
	if len(msg) > key.MaxMessage() {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrMessageTooLong, len(msg), key.MaxMessage())
	}

	// em = 0x00 || maskedSeed || maskedDB
	em := make([]byte, key.k)
	maskedSeed := em[1 : 1+HashLen]
	db := em[1+HashLen:]

	// db = lHash || PS || 0x01 || msg
	copy(db, labelHash[:])
	db[len(db)-len(msg)-1] = 0x01
	copy(db[len(db)-len(msg):], msg)
	copy(maskedSeed, seed)

	if err := xorMask(db, maskedSeed); err != nil {
		return nil, err
	}
	if err := xorMask(maskedSeed, db); err != nil {
		return nil, err
	}

	m := OS2IP(em)
	if m.Cmp(key.n) >= 0 {
		return nil, fmt.Errorf("%w: message representative", ErrRange)
	}
	c, err := bigint.ModExp(m, key.e, key.n)
	if err != nil {
		return nil, err
	}
	return I2OSP(c, key.k)
}

// DecryptBlock applies the RSA primitive to one Size-byte block and removes
// the OAEP encoding. The leading byte of the encoded message is not checked.
func (key *Key) DecryptBlock(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != key.k || key.k < Overhead {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrCiphertextLength, len(ciphertext), key.k)
	}

	c := OS2IP(ciphertext)
	if c.Cmp(key.n) >= 0 {
		return nil, fmt.Errorf("%w: ciphertext representative", ErrRange)
	}
	m, err := bigint.ModExp(c, key.e, key.n)
	if err != nil {
		return nil, err
	}
	em, err := I2OSP(m, key.k)
	if err != nil {
		return nil, err
	}

	seed := em[1 : 1+HashLen]
	db := em[1+HashLen:]
	if err := xorMask(seed, db); err != nil {
		return nil, err
	}
	if err := xorMask(db, seed); err != nil {
		return nil, err
	}

	if !bytes.Equal(db[:HashLen], labelHash[:]) {
		return nil, fmt.Errorf("%w: label hash mismatch", ErrIntegrity)
	}

	for i := HashLen; i < len(db); i++ {
		switch db[i] {
		case 0x00:
		case 0x01:
			return bytes.Clone(db[i+1:]), nil
		default:
			return nil, fmt.Errorf("%w: unexpected byte before delimiter", ErrIntegrity)
		}
	}
	return nil, fmt.Errorf("%w: missing delimiter", ErrIntegrity)
}
