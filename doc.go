// Package cipherkit provides two self-contained encryption schemes over
// plain byte slices:
//
//   - A 256-bit Rijndael (AES-256) block cipher applied block by block with
//     no IV or chaining, and with padding always appended.
//
//   - RSA with OAEP padding (SHA-1, empty label), chaining as many
//     modulus-sized blocks as needed to carry payloads of any length.
//
// Both are implemented from first principles and interoperate with standard
// implementations: one AES block matches FIPS-197, and a single RSA block
// is a standard RSAES-OAEP ciphertext.
//
// Basic usage:
//
//	key := cipherkit.KeyFromPassword("correct horse battery staple")
//	ciphertext, err := cipherkit.AESEncrypt([]byte("hello"), key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pub, err := cipherkit.ParsePublicKeyPEM(pemBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sealed, err := cipherkit.RSAEncrypt([]byte("hello"), pub.Modulus, pub.Exponent)
//
// For control over the random source, concurrency or logging, build an
// [Engine] with [New]:
//
//	engine := cipherkit.New(
//	    cipherkit.WithWorkers(runtime.NumCPU()),
//	    cipherkit.WithLogger(logger),
//	)
//
// # Security Notes
//
// The block-cipher mode leaks equality of plaintext blocks and offers no
// integrity protection. Its padding is removed without validation. The RSA
// scheme detects corrupted blocks but is not hardened against timing or
// padding-oracle side channels. Neither operation runs in constant time.
package cipherkit
