package cripta

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// SaltSize длина соли, которую генерирует GenerateSalt
const SaltSize = 16

var keyDerivationTag = []byte("cripta key derivation v1")

// GenerateSalt возвращает новую случайную соль длиной SaltSize
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := GenerateRandomBytes(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey растягивает парольную фразу в ключ длиной size байт (16, 24 или 32)
// через cSHAKE256. На вход идет len(salt) || salt || passphrase, так что
// границу между солью и фразой нельзя сдвинуть.
func DeriveKey(passphrase, salt []byte, size int) ([]byte, error) {
	if _, err := roundsForKey(size); err != nil {
		return nil, err
	}
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) == 0 {
		return nil, ErrEmptySalt
	}

	h := sha3.NewCShake256(nil, keyDerivationTag)
	h.Write(binary.BigEndian.AppendUint32(nil, uint32(len(salt))))
	h.Write(salt)
	h.Write(passphrase)

	key := make([]byte, size)
	if _, err := h.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}
