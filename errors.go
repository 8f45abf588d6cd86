package cipherkit

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/cipherkit/internal/aes256"
	"github.com/vaultsandbox/cipherkit/internal/chunk"
	"github.com/vaultsandbox/cipherkit/internal/crypto"
	"github.com/vaultsandbox/cipherkit/internal/pkcs1"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrKeyLength is returned when a block-cipher key is not 32 bytes.
	ErrKeyLength = aes256.ErrKeyLength

	// ErrMessageTooLong is returned when an RSA block would carry more than
	// k-42 message bytes, or the modulus is too short for OAEP.
	ErrMessageTooLong = pkcs1.ErrMessageTooLong

	// ErrRange is returned when an RSA representative is not smaller than
	// the modulus.
	ErrRange = pkcs1.ErrRange

	// ErrCiphertextLength is returned when a ciphertext does not have a
	// valid length for the scheme.
	ErrCiphertextLength = pkcs1.ErrCiphertextLength

	// ErrIntegrity is returned when a decrypted RSA block fails the OAEP
	// integrity checks.
	ErrIntegrity = pkcs1.ErrIntegrity

	// ErrMaskTooLong is returned when a mask longer than MGF1 supports is
	// requested.
	ErrMaskTooLong = pkcs1.ErrMaskTooLong

	// ErrIntegerTooLarge is returned when an integer does not fit its
	// fixed-width encoding.
	ErrIntegerTooLarge = pkcs1.ErrIntegerTooLarge

	// ErrInvalidKey is returned when key material cannot be parsed.
	ErrInvalidKey = crypto.ErrInvalidKey
)

// aliases maps internal sentinels onto the public sentinel they stand for.
var aliases = map[error]error{
	aes256.ErrCiphertextLength: ErrCiphertextLength,
	crypto.ErrInvalidKeySize:   ErrKeyLength,
	crypto.ErrInvalidEncoding:  ErrInvalidKey,
}

// matchesAlias reports whether err wraps an internal sentinel standing for target.
func matchesAlias(err, target error) bool {
	for internal, public := range aliases {
		if public == target && errors.Is(err, internal) {
			return true
		}
	}
	return false
}

// CipherError is implemented by all errors returned from this package.
type CipherError interface {
	error
	CipherError() // marker method
}

// OpError reports a failed operation.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *OpError) Is(target error) bool {
	return matchesAlias(e.Err, target)
}

// CipherError implements the CipherError interface.
func (e *OpError) CipherError() {}

// BlockError reports which block of a chained operation failed. Block is the
// zero-based index of the block within the input.
type BlockError struct {
	Op    string
	Block int
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("%s: block %d: %v", e.Op, e.Block, e.Err)
}

// Unwrap returns the underlying error.
func (e *BlockError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *BlockError) Is(target error) bool {
	return matchesAlias(e.Err, target)
}

// CipherError implements the CipherError interface.
func (e *BlockError) CipherError() {}

// wrapError converts internal errors to public errors.
// A failure inside one chunk becomes a *BlockError; anything else an *OpError.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var indexErr *chunk.IndexError
	if errors.As(err, &indexErr) {
		return &BlockError{Op: op, Block: indexErr.Index, Err: indexErr.Err}
	}

	return &OpError{Op: op, Err: err}
}
