// Package bigint provides the arbitrary-precision unsigned integers used by
// the RSA primitives. Values are immutable: every operation returns a new Nat
// and leaves its operands untouched, so a Nat can be shared between
// goroutines freely.
package bigint

import (
	"errors"
	"math/big"
)

var (
	// ErrNegative is returned when a subtraction would produce a negative result.
	ErrNegative = errors.New("bigint: negative result")

	// ErrZeroModulus is returned when reducing by zero.
	ErrZeroModulus = errors.New("bigint: zero modulus")
)

// Nat is a non-negative integer of arbitrary size. The zero value is 0.
type Nat struct {
	v *big.Int
}

// FromBytes interprets b as a big-endian unsigned integer. An empty slice is 0.
func FromBytes(b []byte) Nat {
	return Nat{v: new(big.Int).SetBytes(b)}
}

// FromUint64 returns x as a Nat.
func FromUint64(x uint64) Nat {
	return Nat{v: new(big.Int).SetUint64(x)}
}

func (x Nat) int() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// Bytes returns the minimal big-endian encoding of x. Zero encodes as an
// empty slice.
func (x Nat) Bytes() []byte {
	return x.int().Bytes()
}

// FillBytes writes x big-endian into buf, zero-extended on the left. It
// reports false, leaving buf unspecified, if x does not fit.
func (x Nat) FillBytes(buf []byte) bool {
	if x.ByteLen() > len(buf) {
		return false
	}
	x.int().FillBytes(buf)
	return true
}

// BitLen returns the number of significant bits in x.
func (x Nat) BitLen() int {
	return x.int().BitLen()
}

// ByteLen returns the number of significant bytes in x.
func (x Nat) ByteLen() int {
	return (x.BitLen() + 7) / 8
}

// Bit returns bit i of x, counting from the least significant bit.
func (x Nat) Bit(i int) uint {
	return x.int().Bit(i)
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y.
func (x Nat) Cmp(y Nat) int {
	return x.int().Cmp(y.int())
}

// IsZero reports whether x is 0.
func (x Nat) IsZero() bool {
	return x.int().Sign() == 0
}

// String returns x in decimal.
func (x Nat) String() string {
	return x.int().String()
}

// Add returns x + y.
func (x Nat) Add(y Nat) Nat {
	return Nat{v: new(big.Int).Add(x.int(), y.int())}
}

// Sub returns x - y, or ErrNegative if y > x.
func (x Nat) Sub(y Nat) (Nat, error) {
	if x.Cmp(y) < 0 {
		return Nat{}, ErrNegative
	}
	return Nat{v: new(big.Int).Sub(x.int(), y.int())}, nil
}

// Mul returns x * y.
func (x Nat) Mul(y Nat) Nat {
	return Nat{v: new(big.Int).Mul(x.int(), y.int())}
}

// Mod returns x mod m.
func (x Nat) Mod(m Nat) (Nat, error) {
	if m.IsZero() {
		return Nat{}, ErrZeroModulus
	}
	return Nat{v: new(big.Int).Mod(x.int(), m.int())}, nil
}

// ModExp returns base^exp mod m using right-to-left binary exponentiation.
// Any value mod 1 is 0, including 0^0.
func ModExp(base, exp, m Nat) (Nat, error) {
	if m.IsZero() {
		return Nat{}, ErrZeroModulus
	}

	mod := m.int()
	result := big.NewInt(1)
	result.Mod(result, mod)
	b := new(big.Int).Mod(base.int(), mod)
	e := exp.int()

	for i, n := 0, e.BitLen(); i < n; i++ {
		if e.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, mod)
		}
		b.Mul(b, b)
		b.Mod(b, mod)
	}

	return Nat{v: result}, nil
}
