package cripta

import (
	"crypto/rand"
	"fmt"
)

// GenerateRandomBytes заполняет data криптостойкими случайными байтами
func GenerateRandomBytes(data []byte) (int, error) {
	return rand.Read(data)
}

// GenerateIV возвращает новый случайный вектор инициализации
func GenerateIV(size int) ([]byte, error) {
	iv := make([]byte, size)
	if _, err := GenerateRandomBytes(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

// xorBlocks пишет a XOR b в dst; все три одной длины
func xorBlocks(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
