package pkcs1

import (
	"crypto/rand"
	"crypto/rsa"
	"math/big"
	"sync"
	"testing"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
	testKeyErr  error
)

// rsaTestKey returns a 1024-bit key shared by all tests in the package.
func rsaTestKey(t testing.TB) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		testKey, testKeyErr = rsa.GenerateKey(rand.Reader, 1024)
	})
	if testKeyErr != nil {
		t.Fatalf("rsa.GenerateKey() error = %v", testKeyErr)
	}
	return testKey
}

func testKeys(t testing.TB) (pub, priv *Key) {
	t.Helper()
	rk := rsaTestKey(t)
	modulus := rk.N.Bytes()
	pub = NewKey(modulus, big.NewInt(int64(rk.E)).Bytes())
	priv = NewKey(modulus, rk.D.Bytes())
	return pub, priv
}

// countingReader yields 0, 1, 2, ... wrapping at 256.
type countingReader struct {
	next byte
}

func (r *countingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}
