package cripta

var gf = NewGF28Service()

// encryptState прогоняет состояние через все раунды шифрования
func encryptState(state *State, ks *KeySchedule) {
	addRoundKey(state, ks.RoundKey(0))

	for round := 1; round < ks.rounds; round++ {
		subBytes(state, &sBox)
		shiftRows(state)
		mixColumns(state, &mixMatrix)
		addRoundKey(state, ks.RoundKey(round))
	}

	// Финальный раунд без MixColumns
	subBytes(state, &sBox)
	shiftRows(state)
	addRoundKey(state, ks.RoundKey(ks.rounds))
}

// decryptState обратный порядок: ключи от rounds до 0
func decryptState(state *State, ks *KeySchedule) {
	addRoundKey(state, ks.RoundKey(ks.rounds))

	for round := ks.rounds - 1; round > 0; round-- {
		invShiftRows(state)
		subBytes(state, &invSBox)
		addRoundKey(state, ks.RoundKey(round))
		mixColumns(state, &invMixMatrix)
	}

	invShiftRows(state)
	subBytes(state, &invSBox)
	addRoundKey(state, ks.RoundKey(0))
}

// subBytes заменяет каждый байт по таблице box (sBox или invSBox)
func subBytes(state *State, box *[256]byte) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			state[c][r] = box[state[c][r]]
		}
	}
}

// shiftRows сдвигает строку r влево на r позиций
func shiftRows(state *State) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = state[(c+r)%4][r]
		}
		for c := 0; c < 4; c++ {
			state[c][r] = row[c]
		}
	}
}

// invShiftRows сдвигает строку r вправо на r позиций
func invShiftRows(state *State) {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[(c+r)%4] = state[c][r]
		}
		for c := 0; c < 4; c++ {
			state[c][r] = row[c]
		}
	}
}

// mixColumns умножает каждый столбец на матрицу m в GF(2⁸)
func mixColumns(state *State, m *[4][4]byte) {
	for c := 0; c < 4; c++ {
		state[c] = mixColumn(state[c], m)
	}
}

func mixColumn(col [4]byte, m *[4][4]byte) [4]byte {
	var out [4]byte
	for i := 0; i < 4; i++ {
		out[i] = gf.Multiply(m[i][0], col[0]) ^
			gf.Multiply(m[i][1], col[1]) ^
			gf.Multiply(m[i][2], col[2]) ^
			gf.Multiply(m[i][3], col[3])
	}
	return out
}

// addRoundKey побайтовый XOR состояния с раундовым ключом
func addRoundKey(state *State, key State) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			state[c][r] ^= key[c][r]
		}
	}
}
