package pkcs1

import (
	"fmt"

	"github.com/vaultsandbox/cipherkit/internal/bigint"
)

// I2OSP encodes x as a big-endian octet string of exactly length bytes.
func I2OSP(x bigint.Nat, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrIntegerTooLarge, length)
	}
	out := make([]byte, length)
	if !x.FillBytes(out) {
		return nil, fmt.Errorf("%w: needs %d bytes, have %d", ErrIntegerTooLarge, x.ByteLen(), length)
	}
	return out, nil
}

// OS2IP decodes a big-endian octet string.
func OS2IP(b []byte) bigint.Nat {
	return bigint.FromBytes(b)
}
