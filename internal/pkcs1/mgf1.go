package pkcs1

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// maxMaskLen is 2^32 * HashLen.
const maxMaskLen = uint64(1) << 32 * HashLen

// MGF1 expands seed into a maskLen-byte mask by hashing seed || counter for
// counter = 0, 1, 2, ... and truncating the concatenated digests.
func MGF1(seed []byte, maskLen int) ([]byte, error) {
	if maskLen < 0 || uint64(maskLen) > maxMaskLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrMaskTooLong, maskLen)
	}

	blocks := (maskLen + HashLen - 1) / HashLen
	out := make([]byte, 0, blocks*HashLen)

	h := sha1.New()
	var counter [counterLen]byte
	for i := 0; i < blocks; i++ {
		binary.BigEndian.PutUint32(counter[:], uint32(i))
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		out = h.Sum(out)
	}

	return out[:maskLen], nil
}

// xorMask XORs the mask generated from seed into dst.
func xorMask(dst, seed []byte) error {
	mask, err := MGF1(seed, len(dst))
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] ^= mask[i]
	}
	return nil
}
