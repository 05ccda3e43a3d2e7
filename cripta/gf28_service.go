package cripta

import "fmt"

// aesModulus младшие биты неприводимого полинома x^8+x^4+x^3+x+1 (0x11B)
const aesModulus byte = 0x1B

// GF28Service предоставляет функционал для работы с полем GF(2⁸)
type GF28Service struct{}

// NewGF28Service создает новый сервис для работы с GF(2⁸)
func NewGF28Service() *GF28Service {
	return &GF28Service{}
}

// Add складывает два элемента из GF(2⁸) (побитовое XOR)
func (s *GF28Service) Add(a, b byte) byte {
	return a ^ b
}

// Multiply умножает два элемента по модулю AES
func (s *GF28Service) Multiply(a, b byte) byte {
	return s.MultiplyMod(a, b, aesModulus)
}

// MultiplyMod умножает два элемента из GF(2⁸) по заданному модулю.
// modulus содержит младшие 8 бит полинома, старший x^8 подразумевается.
func (s *GF28Service) MultiplyMod(a, b byte, modulus byte) byte {
	var result byte

	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			result ^= a
		}

		carry := a&0x80 != 0
		a <<= 1
		if carry {
			a ^= modulus
		}

		b >>= 1
	}

	return result
}

// Pow возводит элемент в степень n
func (s *GF28Service) Pow(a byte, n int) byte {
	result := byte(1)
	for n > 0 {
		if n&1 == 1 {
			result = s.Multiply(result, a)
		}
		a = s.Multiply(a, a)
		n >>= 1
	}
	return result
}

// Inverse находит обратный элемент по модулю AES: a^254, так как a^255 = 1
func (s *GF28Service) Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: zero element of GF(2^8)", ErrNoInverse)
	}
	return s.Pow(a, 254), nil
}
