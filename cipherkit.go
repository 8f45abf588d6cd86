package cipherkit

// defaultEngine backs the package-level functions.
var defaultEngine = New()

// AESEncrypt encrypts plaintext under a 32-byte key using the default
// Engine. See [Engine.AESEncrypt].
func AESEncrypt(plaintext, key []byte) ([]byte, error) {
	return defaultEngine.AESEncrypt(plaintext, key)
}

// AESDecrypt decrypts ciphertext under a 32-byte key using the default
// Engine. See [Engine.AESDecrypt].
func AESDecrypt(ciphertext, key []byte) ([]byte, error) {
	return defaultEngine.AESDecrypt(ciphertext, key)
}

// RSAEncrypt encrypts plaintext with a public key using the default Engine.
// See [Engine.RSAEncrypt].
func RSAEncrypt(plaintext, modulus, exponent []byte) ([]byte, error) {
	return defaultEngine.RSAEncrypt(plaintext, modulus, exponent)
}

// RSADecrypt decrypts ciphertext with a private key using the default
// Engine. See [Engine.RSADecrypt].
func RSADecrypt(ciphertext, modulus, exponent []byte) ([]byte, error) {
	return defaultEngine.RSADecrypt(ciphertext, modulus, exponent)
}
