package cripta

import (
	"crypto/rand"
	"fmt"
)

type PaddingMode int

const (
	PaddingModePKCS7 PaddingMode = iota
	PaddingModeANSIX923
	PaddingModeISO10126
	PaddingModeZeros
)

func (p PaddingMode) String() string {
	switch p {
	case PaddingModePKCS7:
		return "PKCS7"
	case PaddingModeANSIX923:
		return "ANSI X.923"
	case PaddingModeISO10126:
		return "ISO 10126"
	case PaddingModeZeros:
		return "Zeros"
	default:
		return fmt.Sprintf("PaddingMode(%d)", int(p))
	}
}

// NewPadding возвращает схему набивки для режима
func NewPadding(mode PaddingMode, blockSize int) (IPadding, error) {
	if blockSize <= 0 || blockSize > 255 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	switch mode {
	case PaddingModePKCS7:
		return PKCS7Padding{blockSize: blockSize}, nil
	case PaddingModeANSIX923:
		return ANSIX923Padding{blockSize: blockSize}, nil
	case PaddingModeISO10126:
		return ISO10126Padding{blockSize: blockSize}, nil
	case PaddingModeZeros:
		return ZeroPadding{blockSize: blockSize}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPadding, mode)
	}
}

// sizeOrDefault: нулевое значение типа набивки работает с блоком AES
func sizeOrDefault(blockSize int) int {
	if blockSize <= 0 {
		return BlockSize
	}
	return blockSize
}

// paddingLength всегда от 1 до blockSize, никогда не 0
func paddingLength(dataLength, blockSize int) int {
	return blockSize - dataLength%blockSize
}

// trailerLength проверяет длину буфера и последний байт набивки
func trailerLength(data []byte, blockSize int) (int, error) {
	if len(data)%blockSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidSize, len(data))
	}
	if len(data) == 0 {
		return 0, ErrEmptyBuffer
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPaddingSize, padLen)
	}
	return padLen, nil
}

// PKCS7Padding дописывает padLen байт со значением padLen
type PKCS7Padding struct {
	blockSize int
}

func NewPKCS7Padding() PKCS7Padding {
	return PKCS7Padding{blockSize: BlockSize}
}

func (p PKCS7Padding) Pad(data []byte) ([]byte, error) {
	padLen := paddingLength(len(data), sizeOrDefault(p.blockSize))

	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded, nil
}

func (p PKCS7Padding) Strip(data []byte) ([]byte, error) {
	padLen, err := trailerLength(data, sizeOrDefault(p.blockSize))
	if err != nil {
		return nil, err
	}

	for _, b := range data[len(data)-padLen:] {
		if b != byte(padLen) {
			return nil, ErrInvalidPaddingBytes
		}
	}
	return data[:len(data)-padLen], nil
}

// ANSIX923Padding нули и байт длины в конце
type ANSIX923Padding struct {
	blockSize int
}

func (p ANSIX923Padding) Pad(data []byte) ([]byte, error) {
	padLen := paddingLength(len(data), sizeOrDefault(p.blockSize))

	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	padded[len(padded)-1] = byte(padLen)
	return padded, nil
}

func (p ANSIX923Padding) Strip(data []byte) ([]byte, error) {
	padLen, err := trailerLength(data, sizeOrDefault(p.blockSize))
	if err != nil {
		return nil, err
	}

	for _, b := range data[len(data)-padLen : len(data)-1] {
		if b != 0 {
			return nil, ErrInvalidPaddingBytes
		}
	}
	return data[:len(data)-padLen], nil
}

// ISO10126Padding случайные байты и байт длины в конце.
// Содержимое набивки не проверяется, только ее длина.
type ISO10126Padding struct {
	blockSize int
}

func (p ISO10126Padding) Pad(data []byte) ([]byte, error) {
	padLen := paddingLength(len(data), sizeOrDefault(p.blockSize))

	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	if padLen > 1 {
		if _, err := rand.Read(padded[len(data) : len(padded)-1]); err != nil {
			return nil, fmt.Errorf("failed to generate random bytes: %w", err)
		}
	}
	padded[len(padded)-1] = byte(padLen)
	return padded, nil
}

func (p ISO10126Padding) Strip(data []byte) ([]byte, error) {
	padLen, err := trailerLength(data, sizeOrDefault(p.blockSize))
	if err != nil {
		return nil, err
	}
	return data[:len(data)-padLen], nil
}

// ZeroPadding дописывает от 1 до blockSize нулевых байт.
// Strip снимает все хвостовые нули последнего блока, поэтому данные,
// которые сами оканчиваются нулем, обратно не восстанавливаются.
type ZeroPadding struct {
	blockSize int
}

func (p ZeroPadding) Pad(data []byte) ([]byte, error) {
	padLen := paddingLength(len(data), sizeOrDefault(p.blockSize))

	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	return padded, nil
}

func (p ZeroPadding) Strip(data []byte) ([]byte, error) {
	blockSize := sizeOrDefault(p.blockSize)
	if len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, len(data))
	}
	if len(data) == 0 {
		return nil, ErrEmptyBuffer
	}

	end := len(data)
	for end > len(data)-blockSize && data[end-1] == 0 {
		end--
	}
	if end == len(data) {
		return nil, fmt.Errorf("%w: last byte is not zero", ErrInvalidPaddingSize)
	}
	return data[:end], nil
}
