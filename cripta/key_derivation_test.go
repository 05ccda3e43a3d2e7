package cripta

import (
	"bytes"
	"errors"
	"testing"
)

var testSalt = []byte("0123456789abcdef")

func TestDeriveKey(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		a, err := DeriveKey([]byte("correct horse battery staple"), testSalt, size)
		if err != nil {
			t.Fatal(err)
		}
		if len(a) != size {
			t.Fatalf("len(key) = %d, want %d", len(a), size)
		}

		b, err := DeriveKey([]byte("correct horse battery staple"), testSalt, size)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Error("DeriveKey is not deterministic for a fixed salt")
		}

		c, err := DeriveKey([]byte("correct horse battery stapler"), testSalt, size)
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(a, c) {
			t.Error("different passphrases derived the same key")
		}
	}

	// более короткий ключ является префиксом более длинного (XOF)
	short, _ := DeriveKey([]byte("pw"), testSalt, 16)
	long, _ := DeriveKey([]byte("pw"), testSalt, 32)
	if !bytes.Equal(short, long[:16]) {
		t.Error("cSHAKE output is expected to be prefix-stable")
	}
}

func TestDeriveKeySaltSeparatesKeys(t *testing.T) {
	a, err := DeriveKey([]byte("pw"), []byte("salt-one"), 32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DeriveKey([]byte("pw"), []byte("salt-two"), 32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("different salts derived the same key")
	}

	// соль "ab" + фраза "c" не совпадает с солью "a" + фразой "bc"
	x, _ := DeriveKey([]byte("c"), []byte("ab"), 16)
	y, _ := DeriveKey([]byte("bc"), []byte("a"), 16)
	if bytes.Equal(x, y) {
		t.Error("salt/passphrase boundary is ambiguous")
	}

	s1, err := GenerateSalt()
	if err != nil {
		t.Fatal(err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatal(err)
	}
	if len(s1) != SaltSize || bytes.Equal(s1, s2) {
		t.Errorf("GenerateSalt = %x, %x", s1, s2)
	}
}

func TestDeriveKeyRejects(t *testing.T) {
	var kse KeySizeError
	if _, err := DeriveKey([]byte("pw"), testSalt, 20); !errors.As(err, &kse) {
		t.Errorf("DeriveKey(size 20) error = %v, want KeySizeError", err)
	}
	if _, err := DeriveKey(nil, testSalt, 16); !errors.Is(err, ErrEmptyPassphrase) {
		t.Errorf("DeriveKey(empty) error = %v, want ErrEmptyPassphrase", err)
	}
	if _, err := DeriveKey([]byte("pw"), nil, 16); !errors.Is(err, ErrEmptySalt) {
		t.Errorf("DeriveKey(no salt) error = %v, want ErrEmptySalt", err)
	}
}

func TestDerivedKeyDrivesCipher(t *testing.T) {
	key, err := DeriveKey([]byte("passphrase"), testSalt, 32)
	if err != nil {
		t.Fatal(err)
	}
	ctx := newTestContext(t, key, CipherModeCBC, PaddingModePKCS7, nil)

	sealed, err := ctx.Seal([]byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	opened, err := ctx.Open(sealed)
	if err != nil {
		t.Fatal(err)
	}
	if string(opened) != "payload" {
		t.Errorf("Open = %q", opened)
	}
}
