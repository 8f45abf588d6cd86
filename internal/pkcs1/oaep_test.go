package pkcs1

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"errors"
	"testing"
)

func TestEncryptBlock_DecryptsWithStandardLibrary(t *testing.T) {
	rk := rsaTestKey(t)
	pub, _ := testKeys(t)

	seed := make([]byte, HashLen)
	if _, err := rand.Read(seed); err != nil {
		t.Fatal(err)
	}

	msg := []byte("interoperable message")
	ciphertext, err := pub.EncryptBlock(seed, msg)
	if err != nil {
		t.Fatalf("EncryptBlock() error = %v", err)
	}
	if len(ciphertext) != pub.Size() {
		t.Errorf("ciphertext length = %d, want %d", len(ciphertext), pub.Size())
	}

	got, err := rsa.DecryptOAEP(sha1.New(), nil, rk, ciphertext, nil)
	if err != nil {
		t.Fatalf("rsa.DecryptOAEP() error = %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Errorf("rsa.DecryptOAEP() = %q, want %q", got, msg)
	}
}

func TestDecryptBlock_StandardLibraryCiphertext(t *testing.T) {
	rk := rsaTestKey(t)
	_, priv := testKeys(t)

	tests := []struct {
		name string
		msg  []byte
	}{
		{"empty", []byte{}},
		{"short", []byte("hi")},
		{"max", bytes.Repeat([]byte{0x5a}, priv.MaxMessage())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ciphertext, err := rsa.EncryptOAEP(sha1.New(), rand.Reader, &rk.PublicKey, tt.msg, nil)
			if err != nil {
				t.Fatalf("rsa.EncryptOAEP() error = %v", err)
			}

			got, err := priv.DecryptBlock(ciphertext)
			if err != nil {
				t.Fatalf("DecryptBlock() error = %v", err)
			}
			if !bytes.Equal(got, tt.msg) {
				t.Errorf("DecryptBlock() = %x, want %x", got, tt.msg)
			}
		})
	}
}

func TestEncryptBlock_Deterministic(t *testing.T) {
	pub, _ := testKeys(t)
	seed := bytes.Repeat([]byte{0x11}, HashLen)

	a, err := pub.EncryptBlock(seed, []byte("same"))
	if err != nil {
		t.Fatalf("EncryptBlock() error = %v", err)
	}
	b, err := pub.EncryptBlock(seed, []byte("same"))
	if err != nil {
		t.Fatalf("EncryptBlock() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different ciphertexts")
	}
}

func TestEncryptBlock_Errors(t *testing.T) {
	pub, _ := testKeys(t)
	seed := make([]byte, HashLen)

	if _, err := pub.EncryptBlock(seed, make([]byte, pub.MaxMessage()+1)); !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("EncryptBlock() error = %v, want %v", err, ErrMessageTooLong)
	}
	if _, err := pub.EncryptBlock(seed[:10], nil); err == nil {
		t.Error("EncryptBlock() with short seed succeeded")
	}

	small := NewKey(bytes.Repeat([]byte{0xff}, Overhead-1), []byte{0x01, 0x00, 0x01})
	if _, err := small.EncryptBlock(seed, nil); !errors.Is(err, ErrMessageTooLong) {
		t.Errorf("EncryptBlock() small modulus error = %v, want %v", err, ErrMessageTooLong)
	}
}

func TestEncryptBlock_RepresentativeOutOfRange(t *testing.T) {
	// A modulus whose top byte is zero is smaller than every encoded
	// message with a non-zero masked seed.
	modulus := make([]byte, 64)
	modulus[len(modulus)-1] = 0x03
	key := NewKey(modulus, []byte{0x03})

	_, err := key.EncryptBlock(bytes.Repeat([]byte{0x42}, HashLen), []byte("x"))
	if !errors.Is(err, ErrRange) {
		t.Errorf("EncryptBlock() error = %v, want %v", err, ErrRange)
	}
}

func TestDecryptBlock_Errors(t *testing.T) {
	_, priv := testKeys(t)

	tests := []struct {
		name       string
		key        *Key
		ciphertext []byte
		wantErr    error
	}{
		{"short", priv, make([]byte, priv.Size()-1), ErrCiphertextLength},
		{"long", priv, make([]byte, priv.Size()+1), ErrCiphertextLength},
		{"out of range", priv, bytes.Repeat([]byte{0xff}, priv.Size()), ErrRange},
		{"zero block", priv, make([]byte, priv.Size()), ErrIntegrity},
		{"small modulus", NewKey(make([]byte, 10), []byte{1}), make([]byte, 10), ErrCiphertextLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.key.DecryptBlock(tt.ciphertext)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecryptBlock() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// identityKey returns a k-byte all-ones modulus with exponent 1, so the RSA
// primitive leaves every representative unchanged.
func identityKey(k int) *Key {
	return NewKey(bytes.Repeat([]byte{0xff}, k), []byte{0x01})
}

// maskEncoded builds an encoded message from a raw data block the way
// EncryptBlock does, without checking the block's layout.
func maskEncoded(t *testing.T, seed, db []byte) []byte {
	t.Helper()

	em := make([]byte, 1+HashLen+len(db))
	maskedSeed := em[1 : 1+HashLen]
	maskedDB := em[1+HashLen:]
	copy(maskedSeed, seed)
	copy(maskedDB, db)

	if err := xorMask(maskedDB, maskedSeed); err != nil {
		t.Fatal(err)
	}
	if err := xorMask(maskedSeed, maskedDB); err != nil {
		t.Fatal(err)
	}
	return em
}

func TestDecryptBlock_DelimiterScan(t *testing.T) {
	const k = 64
	key := identityKey(k)
	dbLen := k - HashLen - 1
	seed := bytes.Repeat([]byte{0x3c}, HashLen)

	dataBlock := func(edit func(db []byte)) []byte {
		db := make([]byte, dbLen)
		copy(db, labelHash[:])
		edit(db)
		return db
	}

	noDelimiter := dataBlock(func([]byte) {})
	strayByte := dataBlock(func(db []byte) {
		db[HashLen+3] = 0x07
		db[HashLen+5] = 0x01
	})
	lastByte := dataBlock(func(db []byte) { db[dbLen-1] = 0x01 })
	firstByte := dataBlock(func(db []byte) {
		db[HashLen] = 0x01
		db[HashLen+1] = 0x07
	})

	tests := []struct {
		name    string
		db      []byte
		want    []byte
		wantErr error
	}{
		{"no delimiter", noDelimiter, nil, ErrIntegrity},
		{"nonzero byte before delimiter", strayByte, nil, ErrIntegrity},
		{"delimiter is the last byte", lastByte, []byte{}, nil},
		{"delimiter right after the label hash", firstByte, append([]byte{0x07}, make([]byte, dbLen-HashLen-2)...), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := key.DecryptBlock(maskEncoded(t, seed, tt.db))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("DecryptBlock() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecryptBlock() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("DecryptBlock() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestDecryptBlock_TamperedCiphertext(t *testing.T) {
	pub, priv := testKeys(t)

	seed := make([]byte, HashLen)
	if _, err := rand.Read(seed); err != nil {
		t.Fatal(err)
	}
	ciphertext, err := pub.EncryptBlock(seed, []byte("do not touch"))
	if err != nil {
		t.Fatalf("EncryptBlock() error = %v", err)
	}

	for _, pos := range []int{1, pub.Size() / 2, pub.Size() - 1} {
		tampered := bytes.Clone(ciphertext)
		tampered[pos] ^= 0x01

		_, err := priv.DecryptBlock(tampered)
		if !errors.Is(err, ErrIntegrity) && !errors.Is(err, ErrRange) {
			t.Errorf("byte %d flipped: DecryptBlock() error = %v, want %v", pos, err, ErrIntegrity)
		}
	}
}

func BenchmarkEncryptBlock(b *testing.B) {
	pub, _ := testKeys(b)
	seed := make([]byte, HashLen)
	msg := make([]byte, pub.MaxMessage())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pub.EncryptBlock(seed, msg)
	}
}

func BenchmarkDecryptBlock(b *testing.B) {
	pub, priv := testKeys(b)
	ciphertext, err := pub.EncryptBlock(make([]byte, HashLen), make([]byte, pub.MaxMessage()))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = priv.DecryptBlock(ciphertext)
	}
}
