package pkcs1

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vaultsandbox/cipherkit/internal/chunk"
)

// Encrypt splits plaintext into chunks of MaxMessage bytes and encrypts each
// into its own block. An empty plaintext still produces one block.
//
// Seeds for every block are read from random in block order before any
// block is encrypted, so the output for a given random stream does not
// depend on workers. A failing block is reported as a *chunk.IndexError.
func (key *Key) Encrypt(random io.Reader, plaintext []byte, workers int) ([]byte, error) {
	size := key.MaxMessage()
	if size <= 0 {
		return nil, fmt.Errorf("%w: modulus of %d bytes leaves no room for a message", ErrMessageTooLong, key.k)
	}

	n := chunk.Count(len(plaintext), size)
	if n == 0 {
		n = 1
	}

	seeds := make([]byte, n*HashLen)
	if _, err := io.ReadFull(random, seeds); err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}

	out := make([]byte, n*key.k)
	err := chunk.Run(n, workers, func(i int) error {
		start, end := chunk.Bounds(len(plaintext), size, i)
		block, err := key.EncryptBlock(seeds[i*HashLen:(i+1)*HashLen], plaintext[start:end])
		if err != nil {
			return err
		}
		copy(out[i*key.k:], block)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt splits ciphertext into Size-byte blocks, decrypts each and joins
// the recovered chunks in order.
func (key *Key) Decrypt(ciphertext []byte, workers int) ([]byte, error) {
	if key.k < Overhead || len(ciphertext) == 0 || len(ciphertext)%key.k != 0 {
		return nil, fmt.Errorf("%w: got %d bytes, want a positive multiple of %d",
			ErrCiphertextLength, len(ciphertext), key.k)
	}

	parts := make([][]byte, len(ciphertext)/key.k)
	err := chunk.Run(len(parts), workers, func(i int) error {
		part, err := key.DecryptBlock(ciphertext[i*key.k : (i+1)*key.k])
		if err != nil {
			return err
		}
		parts[i] = part
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bytes.Join(parts, nil), nil
}
