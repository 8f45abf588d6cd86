package pkcs1

import "crypto/sha1"

const (
	// HashLen is the output size of the hash used by OAEP and MGF1.
	HashLen = sha1.Size

	// Overhead is the number of bytes OAEP adds to every block, so one
	// block carries at most k - Overhead message bytes.
	Overhead = 2*HashLen + 2

	// counterLen is the width of the MGF1 counter.
	counterLen = 4
)

// labelHash is SHA-1 of the empty label.
var labelHash = [HashLen]byte{
	0xda, 0x39, 0xa3, 0xee, 0x5e, 0x6b, 0x4b, 0x0d, 0x32, 0x55,
	0xbf, 0xef, 0x95, 0x60, 0x18, 0x90, 0xaf, 0xd8, 0x07, 0x09,
}
