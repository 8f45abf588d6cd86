package crypto

const (
	// HKDFContext is the info string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "cipherkit:aes-256:v1"

	// AESKeySize is the size of a block-cipher key in bytes.
	AESKeySize = 32

	// PEM block types accepted by the key parsers.
	pemPublicKey     = "PUBLIC KEY"
	pemRSAPublicKey  = "RSA PUBLIC KEY"
	pemPrivateKey    = "PRIVATE KEY"
	pemRSAPrivateKey = "RSA PRIVATE KEY"

	// jwkKeyTypeRSA is the JWK "kty" value for RSA keys.
	jwkKeyTypeRSA = "RSA"
)
