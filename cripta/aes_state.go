package cripta

import "fmt"

// BlockSize размер блока AES в байтах
const BlockSize = 16

// State матрица состояния 4×4 по столбцам: state[column][row].
// Байт i входного блока лежит в столбце i/4, строке i%4.
type State [4][4]byte

// NewState раскладывает 16-байтовый блок в матрицу состояния
func NewState(block []byte) (State, error) {
	var s State
	if len(block) != BlockSize {
		return s, fmt.Errorf("%w: state needs %d bytes, got %d", ErrInvalidBlockSize, BlockSize, len(block))
	}
	s.load(block)
	return s, nil
}

func (s *State) load(block []byte) {
	for i := 0; i < BlockSize; i++ {
		s[i/4][i%4] = block[i]
	}
}

func (s *State) store(dst []byte) {
	for i := 0; i < BlockSize; i++ {
		dst[i] = s[i/4][i%4]
	}
}

// Bytes возвращает состояние в виде 16-байтового блока
func (s *State) Bytes() []byte {
	out := make([]byte, BlockSize)
	s.store(out)
	return out
}
