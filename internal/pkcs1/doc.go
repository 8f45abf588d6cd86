// Package pkcs1 implements RSA encryption with OAEP padding as described in
// PKCS #1 v2.2 (RFC 8017), fixed to SHA-1 and the empty label.
//
// The package is layered bottom-up: the octet-string conversions I2OSP and
// OS2IP, the MGF1 mask generator, single-block OAEP encryption and
// decryption on a [Key], and chaining that splits payloads longer than one
// block into independent OAEP blocks.
//
// A chained ciphertext is the concatenation of k-byte blocks, where k is the
// modulus length in bytes. Each block carries at most k-42 bytes of the
// original message.
package pkcs1
