package crypto

import "crypto/sha256"

// KeyFromPassword returns SHA-256 of the UTF-8 password as a block-cipher key.
func KeyFromPassword(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return sum[:]
}
