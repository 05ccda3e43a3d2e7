package cripta

import (
	"crypto/cipher"
	"fmt"

	"github.com/aead/serpent"
)

// SerpentCipher адаптирует Serpent к ISymmetricCipher, чтобы режимы
// и набивка работали с ним так же, как с AES.
type SerpentCipher struct {
	block   cipher.Block
	keySize int
}

var _ ISymmetricCipher = (*SerpentCipher)(nil)

// NewSerpentCipher создает шифр Serpent; длина ключа 16, 24 или 32 байта
func NewSerpentCipher(key []byte) (*SerpentCipher, error) {
	if k := len(key); k != 16 && k != 24 && k != 32 {
		return nil, KeySizeError(k)
	}

	block, err := serpent.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create serpent cipher: %w", err)
	}

	return &SerpentCipher{block: block, keySize: len(key)}, nil
}

func (sc *SerpentCipher) EncryptBlock(plainBlock []byte) ([]byte, error) {
	if len(plainBlock) != serpent.BlockSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidBlockSize, serpent.BlockSize, len(plainBlock))
	}
	out := make([]byte, serpent.BlockSize)
	sc.block.Encrypt(out, plainBlock)
	return out, nil
}

func (sc *SerpentCipher) DecryptBlock(cipherBlock []byte) ([]byte, error) {
	if len(cipherBlock) != serpent.BlockSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidBlockSize, serpent.BlockSize, len(cipherBlock))
	}
	out := make([]byte, serpent.BlockSize)
	sc.block.Decrypt(out, cipherBlock)
	return out, nil
}

func (sc *SerpentCipher) BlockSize() int {
	return serpent.BlockSize
}

func (sc *SerpentCipher) KeySize() int {
	return sc.keySize
}
