package cripta

import "fmt"

// word 4-байтовое слово расписания ключей
type word [4]byte

// KeySchedule расписание ключей AES. Неизменяемо после построения.
type KeySchedule struct {
	words  []word
	nk     int
	rounds int
}

// roundsForKey возвращает число раундов для длины ключа в байтах
func roundsForKey(keySize int) (int, error) {
	switch keySize {
	case 16:
		return 10, nil
	case 24:
		return 12, nil
	case 32:
		return 14, nil
	default:
		return 0, KeySizeError(keySize)
	}
}

// NewKeySchedule разворачивает ключ длиной 16, 24 или 32 байта
// в 4·(rounds+1) слов по общей рекуррентности FIPS-197.
func NewKeySchedule(key []byte) (*KeySchedule, error) {
	rounds, err := roundsForKey(len(key))
	if err != nil {
		return nil, err
	}

	nk := len(key) / 4
	total := 4 * (rounds + 1)
	words := make([]word, total)

	// Первые nk слов совпадают с ключом
	for i := 0; i < nk; i++ {
		copy(words[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < total; i++ {
		temp := words[i-1]

		if i%nk == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk]
		} else if nk == 8 && i%nk == 4 {
			// только для 256-битного ключа
			temp = subWord(temp)
		}

		for j := 0; j < 4; j++ {
			words[i][j] = words[i-nk][j] ^ temp[j]
		}
	}

	ks := &KeySchedule{words: words, nk: nk, rounds: rounds}
	if err := ks.check(key); err != nil {
		return nil, err
	}
	return ks, nil
}

// check проверяет инварианты построенного расписания
func (ks *KeySchedule) check(key []byte) error {
	if len(ks.words) != 4*(ks.rounds+1) {
		return fmt.Errorf("%w: got %d words for %d rounds", ErrKeyExpansionFailure, len(ks.words), ks.rounds)
	}
	for i := 0; i < ks.nk; i++ {
		for j := 0; j < 4; j++ {
			if ks.words[i][j] != key[4*i+j] {
				return fmt.Errorf("%w: word %d differs from key material", ErrKeyExpansionFailure, i)
			}
		}
	}
	return nil
}

// Rounds возвращает число раундов (10, 12 или 14)
func (ks *KeySchedule) Rounds() int {
	return ks.rounds
}

// Len возвращает число слов расписания
func (ks *KeySchedule) Len() int {
	return len(ks.words)
}

// RoundKey возвращает слова [4r, 4r+4) как матрицу 4×4.
// Слово 4r+c становится столбцом c.
func (ks *KeySchedule) RoundKey(round int) State {
	if round < 0 || round > ks.rounds {
		panic(fmt.Sprintf("cripta: round key index %d out of range [0, %d]", round, ks.rounds))
	}
	var k State
	for c := 0; c < 4; c++ {
		k[c] = ks.words[4*round+c]
	}
	return k
}

// GenerateRoundKeys возвращает все раундовые ключи в виде 16-байтовых блоков
func (ks *KeySchedule) GenerateRoundKeys() [][]byte {
	out := make([][]byte, ks.rounds+1)
	for r := range out {
		k := ks.RoundKey(r)
		out[r] = k.Bytes()
	}
	return out
}

// rotWord циклический сдвиг слова влево на один байт
func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

// subWord применяет S-бокс к каждому байту слова
func subWord(w word) word {
	for i := range w {
		w[i] = sBox[w[i]]
	}
	return w
}
