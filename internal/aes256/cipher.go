package aes256

import (
	"fmt"

	"github.com/vaultsandbox/cipherkit/internal/chunk"
)

// Cipher holds the expanded key for one 256-bit key. It is safe for
// concurrent use.
type Cipher struct {
	schedule *Schedule
}

// NewCipher expands key into a Cipher.
func NewCipher(key []byte) (*Cipher, error) {
	w, err := Expand(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{schedule: w}, nil
}

// EncryptBlock encrypts the first block of src into dst.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	encryptBlock(c.schedule, dst, src)
}

// DecryptBlock decrypts the first block of src into dst.
func (c *Cipher) DecryptBlock(dst, src []byte) {
	decryptBlock(c.schedule, dst, src)
}

// Encrypt pads plaintext and encrypts every block independently. Up to
// workers blocks are transformed concurrently. The result is always a
// non-empty multiple of BlockSize and longer than plaintext.
func (c *Cipher) Encrypt(plaintext []byte, workers int) []byte {
	out := Pad(plaintext)
	chunk.Each(len(out)/BlockSize, workers, func(i int) {
		b := out[i*BlockSize : (i+1)*BlockSize]
		c.EncryptBlock(b, b)
	})
	return out
}

// Decrypt decrypts every block of ciphertext and strips the padding.
func (c *Cipher) Decrypt(ciphertext []byte, workers int) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes, want a positive multiple of %d",
			ErrCiphertextLength, len(ciphertext), BlockSize)
	}

	out := make([]byte, len(ciphertext))
	chunk.Each(len(out)/BlockSize, workers, func(i int) {
		c.DecryptBlock(out[i*BlockSize:(i+1)*BlockSize], ciphertext[i*BlockSize:(i+1)*BlockSize])
	})
	return Unpad(out), nil
}

// Encrypt encrypts plaintext under key. See [Cipher.Encrypt].
func Encrypt(plaintext, key []byte, workers int) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext, workers), nil
}

// Decrypt decrypts ciphertext under key. See [Cipher.Decrypt].
func Decrypt(ciphertext, key []byte, workers int) ([]byte, error) {
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(ciphertext, workers)
}
