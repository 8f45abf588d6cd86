package aes256

import (
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
)

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func randomKey(t testing.TB) []byte {
	t.Helper()
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	return key
}

// FIPS-197 Appendix A.3.
func TestExpand_KnownAnswer(t *testing.T) {
	key := mustHex(t, "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4")

	w, err := Expand(key)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	want := map[int]string{
		0:  "603deb10",
		7:  "0914dff4",
		8:  "9ba35411",
		9:  "8e6925af",
		10: "a51a8b5f",
		11: "2067fcde",
		12: "a8b09c1a",
		59: "706c631e",
	}
	for i, hexWord := range want {
		if got := hex.EncodeToString(w[i][:]); got != hexWord {
			t.Errorf("w[%d] = %s, want %s", i, got, hexWord)
		}
	}
}

func TestExpand_InvalidKeyLength(t *testing.T) {
	for _, size := range []int{0, 16, 24, 31, 33, 64} {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			_, err := Expand(make([]byte, size))
			if !errors.Is(err, ErrKeyLength) {
				t.Errorf("Expand() error = %v, want %v", err, ErrKeyLength)
			}
		})
	}
}

// FIPS-197 Appendix C.3.
func TestCipher_KnownAnswer(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")
	want := mustHex(t, "8ea2b7ca516745bfeafc49904b496089")

	c, err := NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher() error = %v", err)
	}

	got := make([]byte, BlockSize)
	c.EncryptBlock(got, plaintext)
	if !bytes.Equal(got, want) {
		t.Errorf("EncryptBlock() = %x, want %x", got, want)
	}

	back := make([]byte, BlockSize)
	c.DecryptBlock(back, got)
	if !bytes.Equal(back, plaintext) {
		t.Errorf("DecryptBlock() = %x, want %x", back, plaintext)
	}
}

func TestCipher_MatchesStandardLibrary(t *testing.T) {
	for i := 0; i < 32; i++ {
		key := randomKey(t)
		block := make([]byte, BlockSize)
		if _, err := rand.Read(block); err != nil {
			t.Fatal(err)
		}

		ref, err := aes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		want := make([]byte, BlockSize)
		ref.Encrypt(want, block)

		c, err := NewCipher(key)
		if err != nil {
			t.Fatalf("NewCipher() error = %v", err)
		}
		got := make([]byte, BlockSize)
		c.EncryptBlock(got, block)

		if !bytes.Equal(got, want) {
			t.Fatalf("EncryptBlock(%x) = %x, want %x", block, got, want)
		}
	}
}

func TestEncrypt_Decrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"one byte", []byte{0x42}},
		{"simple", []byte("hello world")},
		{"one block", bytes.Repeat([]byte{0xaa}, BlockSize)},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := randomKey(t)

			for _, workers := range []int{1, 4} {
				ciphertext, err := Encrypt(tt.plaintext, key, workers)
				if err != nil {
					t.Fatalf("Encrypt() error = %v", err)
				}

				if len(ciphertext)%BlockSize != 0 {
					t.Errorf("ciphertext length %d is not a multiple of %d", len(ciphertext), BlockSize)
				}
				if len(ciphertext) <= len(tt.plaintext) {
					t.Errorf("ciphertext length = %d, want > %d", len(ciphertext), len(tt.plaintext))
				}

				decrypted, err := Decrypt(ciphertext, key, workers)
				if err != nil {
					t.Fatalf("Decrypt() error = %v", err)
				}
				if !bytes.Equal(decrypted, tt.plaintext) {
					t.Errorf("decrypted = %x, want %x", decrypted, tt.plaintext)
				}
			}
		})
	}
}

func TestEncrypt_ParallelMatchesSequential(t *testing.T) {
	key := randomKey(t)
	plaintext := make([]byte, 4099)
	if _, err := rand.Read(plaintext); err != nil {
		t.Fatal(err)
	}

	seq, err := Encrypt(plaintext, key, 1)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	par, err := Encrypt(plaintext, key, 8)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if !bytes.Equal(seq, par) {
		t.Error("parallel ciphertext differs from sequential ciphertext")
	}
}

func TestEncrypt_IdenticalBlocks(t *testing.T) {
	key := randomKey(t)
	plaintext := bytes.Repeat([]byte("0123456789abcdef"), 2)

	ciphertext, err := Encrypt(plaintext, key, 1)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if len(ciphertext) != 3*BlockSize {
		t.Fatalf("ciphertext length = %d, want %d", len(ciphertext), 3*BlockSize)
	}
	if !bytes.Equal(ciphertext[:BlockSize], ciphertext[BlockSize:2*BlockSize]) {
		t.Error("equal plaintext blocks produced different ciphertext blocks")
	}
}

func TestEncrypt_InvalidKeyLength(t *testing.T) {
	_, err := Encrypt([]byte("test"), make([]byte, 16), 1)
	if !errors.Is(err, ErrKeyLength) {
		t.Errorf("Encrypt() error = %v, want %v", err, ErrKeyLength)
	}
	_, err = Decrypt(make([]byte, BlockSize), make([]byte, 16), 1)
	if !errors.Is(err, ErrKeyLength) {
		t.Errorf("Decrypt() error = %v, want %v", err, ErrKeyLength)
	}
}

func TestDecrypt_InvalidCiphertextLength(t *testing.T) {
	key := randomKey(t)
	for _, size := range []int{0, 1, 15, 17, 31} {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			_, err := Decrypt(make([]byte, size), key, 1)
			if !errors.Is(err, ErrCiphertextLength) {
				t.Errorf("Decrypt() error = %v, want %v", err, ErrCiphertextLength)
			}
		})
	}
}

func BenchmarkEncrypt(b *testing.B) {
	key := randomKey(b)
	plaintext := make([]byte, 64*1024)

	b.SetBytes(int64(len(plaintext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Encrypt(plaintext, key, 1)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	key := randomKey(b)
	ciphertext, _ := Encrypt(make([]byte, 64*1024), key, 1)

	b.SetBytes(int64(len(ciphertext)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decrypt(ciphertext, key, 1)
	}
}
