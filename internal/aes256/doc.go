// Package aes256 implements the Rijndael block cipher with a 256-bit key and
// a 128-bit block, as specified in FIPS-197.
//
// # Structure
//
// The cipher is assembled from three layers:
//
//   - Field and table utilities: multiplication in GF(2^8) under the
//     reduction polynomial x^8 + x^4 + x^3 + x + 1, the substitution box and
//     its inverse, and the round constants used by the key schedule.
//
//   - Key schedule: [Expand] turns a 32-byte key into 60 four-byte words,
//     one 4-word round key for each of the 15 round-key additions.
//
//   - Round pipeline: the forward and inverse 14-round transforms on a
//     single 16-byte state, plus [Encrypt] and [Decrypt] which pad,
//     segment, and transform buffers of arbitrary length.
//
// # Mode of Operation
//
// Blocks are transformed independently under the same key with no IV or
// chaining between them. Identical plaintext blocks therefore produce
// identical ciphertext blocks. Padding is always appended on encryption:
// 1 to 16 bytes, each equal to the pad length.
//
// Decryption strips as many trailing bytes as the final byte says without
// checking that the padding is uniform. Callers that need tamper detection
// must authenticate ciphertexts separately.
package aes256
