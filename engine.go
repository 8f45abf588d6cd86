package cipherkit

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/vaultsandbox/cipherkit/internal/aes256"
	"github.com/vaultsandbox/cipherkit/internal/pkcs1"
)

// Operation names used in errors and log events.
const (
	OpAESEncrypt = "aes-encrypt"
	OpAESDecrypt = "aes-decrypt"
	OpRSAEncrypt = "rsa-encrypt"
	OpRSADecrypt = "rsa-decrypt"
)

// Engine runs the cipherkit operations with a fixed random source,
// concurrency limit and logger. An Engine holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	random  io.Reader
	workers int
	logger  zerolog.Logger
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Engine{
		random:  cfg.random,
		workers: cfg.workers,
		logger:  cfg.logger,
	}
}

// Workers returns the configured concurrency limit.
func (e *Engine) Workers() int {
	return e.workers
}

// AESEncrypt pads plaintext and encrypts it under a 32-byte key. The result
// is a multiple of 16 bytes and always longer than plaintext.
func (e *Engine) AESEncrypt(plaintext, key []byte) ([]byte, error) {
	start := time.Now()
	ciphertext, err := aes256.Encrypt(plaintext, key, e.workers)
	e.trace(OpAESEncrypt, len(plaintext), len(ciphertext)/aes256.BlockSize, start, err)
	if err != nil {
		return nil, wrapError(OpAESEncrypt, err)
	}
	return ciphertext, nil
}

// AESDecrypt decrypts ciphertext under a 32-byte key and strips the padding.
func (e *Engine) AESDecrypt(ciphertext, key []byte) ([]byte, error) {
	start := time.Now()
	plaintext, err := aes256.Decrypt(ciphertext, key, e.workers)
	e.trace(OpAESDecrypt, len(ciphertext), len(ciphertext)/aes256.BlockSize, start, err)
	if err != nil {
		return nil, wrapError(OpAESDecrypt, err)
	}
	return plaintext, nil
}

// RSAEncrypt encrypts plaintext with the public key (modulus, exponent),
// given as big-endian bytes. The result is a sequence of k-byte blocks where
// k is len(modulus); each block carries up to k-42 bytes of plaintext.
// An empty plaintext yields one block holding an empty message rather than
// an empty result, so it round-trips through RSADecrypt.
func (e *Engine) RSAEncrypt(plaintext, modulus, exponent []byte) ([]byte, error) {
	start := time.Now()
	key := pkcs1.NewKey(modulus, exponent)
	ciphertext, err := key.Encrypt(e.random, plaintext, e.workers)
	e.trace(OpRSAEncrypt, len(plaintext), blocks(len(ciphertext), key.Size()), start, err)
	if err != nil {
		return nil, wrapError(OpRSAEncrypt, err)
	}
	return ciphertext, nil
}

// RSADecrypt decrypts ciphertext with the private key (modulus, exponent).
// The ciphertext length must be a positive multiple of len(modulus).
func (e *Engine) RSADecrypt(ciphertext, modulus, exponent []byte) ([]byte, error) {
	start := time.Now()
	key := pkcs1.NewKey(modulus, exponent)
	plaintext, err := key.Decrypt(ciphertext, e.workers)
	e.trace(OpRSADecrypt, len(ciphertext), blocks(len(ciphertext), key.Size()), start, err)
	if err != nil {
		return nil, wrapError(OpRSADecrypt, err)
	}
	return plaintext, nil
}

// EncryptWithKey is RSAEncrypt with the values taken from pub.
func (e *Engine) EncryptWithKey(plaintext []byte, pub *PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, wrapError(OpRSAEncrypt, ErrInvalidKey)
	}
	return e.RSAEncrypt(plaintext, pub.Modulus, pub.Exponent)
}

// DecryptWithKey is RSADecrypt with the values taken from priv.
func (e *Engine) DecryptWithKey(ciphertext []byte, priv *PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, wrapError(OpRSADecrypt, ErrInvalidKey)
	}
	return e.RSADecrypt(ciphertext, priv.Modulus, priv.PrivateExponent)
}

func (e *Engine) trace(op string, size, blockCount int, start time.Time, err error) {
	evt := e.logger.Debug()
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Str("op", op).
		Int("input_bytes", size).
		Int("blocks", blockCount).
		Int("workers", e.workers).
		Dur("elapsed", time.Since(start)).
		Msg("cipher operation")
}

func blocks(length, size int) int {
	if size == 0 {
		return 0
	}
	return length / size
}
