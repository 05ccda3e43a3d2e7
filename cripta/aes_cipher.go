package cripta

import (
	"crypto/cipher"
	"fmt"
)

// AESCipher реализует блочный шифр AES-128/192/256.
// Расписание ключей строится один раз в NewAESCipher.
type AESCipher struct {
	schedule *KeySchedule
	keySize  int
}

var (
	_ ISymmetricCipher = (*AESCipher)(nil)
	_ cipher.Block     = (*AESCipher)(nil)
)

// NewAESCipher создает шифр AES; длина ключа 16, 24 или 32 байта
func NewAESCipher(key []byte) (*AESCipher, error) {
	schedule, err := NewKeySchedule(key)
	if err != nil {
		return nil, fmt.Errorf("failed to expand key: %w", err)
	}

	return &AESCipher{
		schedule: schedule,
		keySize:  len(key),
	}, nil
}

// EncryptBlock шифрует блок данных
func (ac *AESCipher) EncryptBlock(plainBlock []byte) ([]byte, error) {
	if len(plainBlock) != BlockSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidBlockSize, BlockSize, len(plainBlock))
	}

	out := make([]byte, BlockSize)
	ac.Encrypt(out, plainBlock)
	return out, nil
}

// DecryptBlock расшифровывает блок данных
func (ac *AESCipher) DecryptBlock(cipherBlock []byte) ([]byte, error) {
	if len(cipherBlock) != BlockSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidBlockSize, BlockSize, len(cipherBlock))
	}

	out := make([]byte, BlockSize)
	ac.Decrypt(out, cipherBlock)
	return out, nil
}

// Encrypt шифрует первый блок src в dst (интерфейс cipher.Block).
// Паникует, если буферы короче блока.
func (ac *AESCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("cripta: input not full block")
	}
	if len(dst) < BlockSize {
		panic("cripta: output not full block")
	}

	var state State
	state.load(src)
	encryptState(&state, ac.schedule)
	state.store(dst)
}

// Decrypt расшифровывает первый блок src в dst (интерфейс cipher.Block)
func (ac *AESCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("cripta: input not full block")
	}
	if len(dst) < BlockSize {
		panic("cripta: output not full block")
	}

	var state State
	state.load(src)
	decryptState(&state, ac.schedule)
	state.store(dst)
}

// BlockSize возвращает размер блока
func (ac *AESCipher) BlockSize() int {
	return BlockSize
}

// KeySize возвращает размер ключа
func (ac *AESCipher) KeySize() int {
	return ac.keySize
}

// Rounds возвращает количество раундов
func (ac *AESCipher) Rounds() int {
	return ac.schedule.Rounds()
}

// Schedule возвращает расписание ключей
func (ac *AESCipher) Schedule() *KeySchedule {
	return ac.schedule
}
