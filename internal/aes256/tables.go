package aes256

// sbox and invSbox are built once at package initialisation and never
// written afterwards, so concurrent readers need no synchronisation.
var sbox, invSbox = buildSboxes()

// buildSboxes derives the FIPS-197 substitution box from its definition:
// the field inverse followed by the affine transform.
func buildSboxes() (fwd, inv [256]byte) {
	for i := 0; i < 256; i++ {
		s := affine(inverse(byte(i)))
		fwd[i] = s
		inv[s] = byte(i)
	}
	return fwd, inv
}
