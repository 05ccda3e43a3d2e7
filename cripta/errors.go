package cripta

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidCipherText   = errors.New("cripta: ciphertext length is not a multiple of the block size")
	ErrInvalidBlockSize    = errors.New("cripta: invalid block size")
	ErrInvalidIV           = errors.New("cripta: IV length must equal the block size")
	ErrKeyExpansionFailure = errors.New("cripta: key expansion failure")
	ErrUnsupportedMode     = errors.New("cripta: unsupported cipher mode")
	ErrUnsupportedPadding  = errors.New("cripta: unsupported padding mode")

	// Ошибки снятия набивки
	ErrInvalidSize         = errors.New("cripta: padded data length is not a multiple of the block size")
	ErrEmptyBuffer         = errors.New("cripta: empty buffer")
	ErrInvalidPaddingSize  = errors.New("cripta: invalid padding size")
	ErrInvalidPaddingBytes = errors.New("cripta: invalid padding bytes")

	ErrNoInverse       = errors.New("cripta: inverse does not exist")
	ErrEmptyPassphrase = errors.New("cripta: empty passphrase")
	ErrEmptySalt       = errors.New("cripta: empty salt")
)

// KeySizeError недопустимая длина ключа в байтах
type KeySizeError int

func (k KeySizeError) Error() string {
	return "cripta: invalid key size " + strconv.Itoa(int(k))
}
