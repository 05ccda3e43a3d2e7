package cripta

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"
)

func TestAESCipherFIPS197(t *testing.T) {
	plaintext, _ := hex.DecodeString("00112233445566778899aabbccddeeff")

	tests := []struct {
		name    string
		keySize int
		rounds  int
		want    string
	}{
		{"AES-128", 16, 10, "69c4e0d86a7b0430d8cdb78070b4c55a"},
		{"AES-192", 24, 12, "dda97ca4864cdfe06eaf70a0ec0d7191"},
		{"AES-256", 32, 14, "8ea2b7ca516745bfeafc49904b496089"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewAESCipher(sequentialKey(tt.keySize))
			if err != nil {
				t.Fatal(err)
			}
			if c.Rounds() != tt.rounds || c.KeySize() != tt.keySize || c.BlockSize() != BlockSize {
				t.Fatalf("cipher shape = (%d, %d, %d)", c.Rounds(), c.KeySize(), c.BlockSize())
			}

			// нулевой раундовый ключ это первые 16 байт ключа
			schedule := c.Schedule()
			first := schedule.RoundKey(0)
			if schedule.Len() != 4*(tt.rounds+1) || !bytes.Equal(first.Bytes(), sequentialKey(tt.keySize)[:BlockSize]) {
				t.Fatalf("Schedule: %d words, round key 0 = %x", schedule.Len(), first.Bytes())
			}

			encrypted, err := c.EncryptBlock(plaintext)
			if err != nil {
				t.Fatal(err)
			}
			if got := hex.EncodeToString(encrypted); got != tt.want {
				t.Fatalf("EncryptBlock = %s, want %s", got, tt.want)
			}

			decrypted, err := c.DecryptBlock(encrypted)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(decrypted, plaintext) {
				t.Errorf("DecryptBlock = %x, want %x", decrypted, plaintext)
			}
		})
	}
}

func TestAESCipherFixedVectorBytes(t *testing.T) {
	c, err := NewAESCipher(sequentialKey(16))
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte{0, 17, 34, 51, 68, 85, 102, 119, 136, 153, 170, 187, 204, 221, 238, 255}
	want := []byte{105, 196, 224, 216, 106, 123, 4, 48, 216, 205, 183, 128, 112, 180, 197, 90}

	got, err := c.EncryptBlock(plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("EncryptBlock = %v, want %v", got, want)
	}
}

func TestAESCipherInvalidInput(t *testing.T) {
	var kse KeySizeError
	if _, err := NewAESCipher(make([]byte, 20)); !errors.As(err, &kse) || int(kse) != 20 {
		t.Errorf("NewAESCipher(20 bytes) error = %v, want KeySizeError(20)", err)
	}

	c, err := NewAESCipher(sequentialKey(16))
	if err != nil {
		t.Fatal(err)
	}

	for _, n := range []int{0, 15, 17, 32} {
		if _, err := c.EncryptBlock(make([]byte, n)); !errors.Is(err, ErrInvalidBlockSize) {
			t.Errorf("EncryptBlock(%d bytes) error = %v", n, err)
		}
		if _, err := c.DecryptBlock(make([]byte, n)); !errors.Is(err, ErrInvalidBlockSize) {
			t.Errorf("DecryptBlock(%d bytes) error = %v", n, err)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Encrypt with short dst did not panic")
		}
	}()
	c.Encrypt(make([]byte, 8), make([]byte, 16))
}

func TestAESCipherMatchesStandardLibrary(t *testing.T) {
	rng := rand.New(rand.NewSource(7<<32 | 11))

	for _, keySize := range []int{16, 24, 32} {
		for i := 0; i < 50; i++ {
			key := make([]byte, keySize)
			block := make([]byte, BlockSize)
			for j := range key {
				key[j] = byte(rng.Uint32())
			}
			for j := range block {
				block[j] = byte(rng.Uint32())
			}

			ours, err := NewAESCipher(key)
			if err != nil {
				t.Fatal(err)
			}
			std, err := aes.NewCipher(key)
			if err != nil {
				t.Fatal(err)
			}

			got := make([]byte, BlockSize)
			want := make([]byte, BlockSize)
			ours.Encrypt(got, block)
			std.Encrypt(want, block)
			if !bytes.Equal(got, want) {
				t.Fatalf("key %x block %x: got %x, want %x", key, block, got, want)
			}

			ours.Decrypt(got, want)
			if !bytes.Equal(got, block) {
				t.Fatalf("key %x: decrypt = %x, want %x", key, got, block)
			}
		}
	}
}

func BenchmarkAESEncryptBlock(b *testing.B) {
	c, err := NewAESCipher(sequentialKey(16))
	if err != nil {
		b.Fatal(err)
	}
	src := make([]byte, BlockSize)
	dst := make([]byte, BlockSize)

	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encrypt(dst, src)
	}
}

func BenchmarkAESDecryptBlock(b *testing.B) {
	c, err := NewAESCipher(sequentialKey(32))
	if err != nil {
		b.Fatal(err)
	}
	src := make([]byte, BlockSize)
	dst := make([]byte, BlockSize)

	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Decrypt(dst, src)
	}
}
