// Package crypto handles the key material consumed by the cipherkit
// primitives: importing RSA keys from PEM and JWK encodings, and producing
// 256-bit block-cipher keys from passwords, shared secrets, hex strings or
// the system random source.
//
// # RSA Keys
//
// The RSA primitives work on raw big-endian modulus and exponent bytes. Use
// [ParsePublicKeyPEM] and [ParsePrivateKeyPEM] to extract them from the
// usual encodings:
//
//   - "PUBLIC KEY" (X.509 SubjectPublicKeyInfo) and "RSA PUBLIC KEY" (PKCS #1)
//   - "PRIVATE KEY" (PKCS #8) and "RSA PRIVATE KEY" (PKCS #1)
//
// [ParsePublicKeyJWK] and [ParsePrivateKeyJWK] accept RFC 7517 JSON Web Keys
// with kty "RSA".
//
// # Block-Cipher Keys
//
//   - [KeyFromPassword]: SHA-256 of the password. Fast and unsalted, so only
//     suitable where the password itself carries enough entropy.
//
//   - [DeriveAESKey]: HKDF-SHA-512 (RFC 5869) over a shared secret with
//     domain separation.
//
//   - [GenerateAESKey]: 32 bytes from crypto/rand.
//
// Keep private keys and derived keys out of logs and version control.
package crypto
