package aes256

import "math/bits"

// poly is the low byte of the reduction polynomial x^8 + x^4 + x^3 + x + 1.
const poly = 0x1b

// mul multiplies a and b in GF(2^8).
func mul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= poly
		}
		b >>= 1
	}
	return p
}

// xtime multiplies b by x in GF(2^8).
func xtime(b byte) byte {
	return mul(b, 0x02)
}

// inverse returns the multiplicative inverse of b in GF(2^8), computed as
// b^254. The inverse of zero is defined as zero.
func inverse(b byte) byte {
	if b == 0 {
		return 0
	}
	result, base := byte(1), b
	for e := 254; e > 0; e >>= 1 {
		if e&1 != 0 {
			result = mul(result, base)
		}
		base = mul(base, base)
	}
	return result
}

// affine applies the S-box affine transform over GF(2).
func affine(b byte) byte {
	return b ^
		bits.RotateLeft8(b, 1) ^
		bits.RotateLeft8(b, 2) ^
		bits.RotateLeft8(b, 3) ^
		bits.RotateLeft8(b, 4) ^
		0x63
}

// roundConstant returns the first byte of Rcon[i], that is x^(i-1) in
// GF(2^8). Valid for i >= 1.
func roundConstant(i int) byte {
	c := byte(0x01)
	for ; i > 1; i-- {
		c = xtime(c)
	}
	return c
}
