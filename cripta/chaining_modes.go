package cripta

import "fmt"

// chainingMode обрабатывает данные, уже кратные размеру блока шифра.
// Состояние сцепления живет только внутри одного вызова.
type chainingMode interface {
	encryptBlocks(c ISymmetricCipher, iv, padded []uint8) ([]uint8, error)
	decryptBlocks(c ISymmetricCipher, iv, ciphertext []uint8) ([]uint8, error)
}

func newChainingMode(mode CipherMode) (chainingMode, error) {
	switch mode {
	case CipherModeECB:
		return ecbMode{}, nil
	case CipherModeCBC:
		return cbcMode{}, nil
	case CipherModePCBC:
		return pcbcMode{}, nil
	case CipherModeCFB:
		return cfbMode{}, nil
	case CipherModeOFB:
		return ofbMode{}, nil
	case CipherModeCTR:
		return ctrMode{}, nil
	case CipherModeRandomDelta:
		return randomDeltaMode{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
	}
}

func checkIV(iv []uint8, blockSize int) error {
	if len(iv) != blockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIV, len(iv), blockSize)
	}
	return nil
}

func incrementCounter(counter []uint8) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			break
		}
	}
}

type ecbMode struct{}

func (ecbMode) encryptBlocks(c ISymmetricCipher, _, padded []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	ciphertext := make([]uint8, 0, len(padded))

	for i := 0; i < len(padded); i += bs {
		encryptedBlock, err := c.EncryptBlock(padded[i : i+bs])
		if err != nil {
			return nil, fmt.Errorf("ECB encryption failed for block %d: %w", i/bs, err)
		}
		ciphertext = append(ciphertext, encryptedBlock...)
	}

	return ciphertext, nil
}

func (ecbMode) decryptBlocks(c ISymmetricCipher, _, ciphertext []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	plaintext := make([]uint8, 0, len(ciphertext))

	for i := 0; i < len(ciphertext); i += bs {
		decryptedBlock, err := c.DecryptBlock(ciphertext[i : i+bs])
		if err != nil {
			return nil, fmt.Errorf("ECB decryption failed for block %d: %w", i/bs, err)
		}
		plaintext = append(plaintext, decryptedBlock...)
	}

	return plaintext, nil
}

// cbcMode: C[i] = E(P[i] XOR chain), chain = C[i]
type cbcMode struct{}

func (cbcMode) encryptBlocks(c ISymmetricCipher, iv, padded []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}
	ciphertext := make([]uint8, 0, len(padded))

	chain := make([]uint8, bs)
	copy(chain, iv)
	xored := make([]uint8, bs)

	for i := 0; i < len(padded); i += bs {
		xorBlocks(xored, padded[i:i+bs], chain)

		encryptedBlock, err := c.EncryptBlock(xored)
		if err != nil {
			return nil, fmt.Errorf("CBC encryption failed for block %d: %w", i/bs, err)
		}

		copy(chain, encryptedBlock)
		ciphertext = append(ciphertext, encryptedBlock...)
	}

	return ciphertext, nil
}

// P[i] = D(C[i]) XOR chain, chain = C[i] (исходный блок шифртекста)
func (cbcMode) decryptBlocks(c ISymmetricCipher, iv, ciphertext []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}
	plaintext := make([]uint8, len(ciphertext))

	chain := make([]uint8, bs)
	copy(chain, iv)

	for i := 0; i < len(ciphertext); i += bs {
		block := ciphertext[i : i+bs]

		decryptedBlock, err := c.DecryptBlock(block)
		if err != nil {
			return nil, fmt.Errorf("CBC decryption failed for block %d: %w", i/bs, err)
		}

		xorBlocks(plaintext[i:i+bs], decryptedBlock, chain)
		copy(chain, block)
	}

	return plaintext, nil
}

// pcbcMode: C[i] = E(P[i] XOR chain), chain = P[i] XOR C[i]
type pcbcMode struct{}

func (pcbcMode) encryptBlocks(c ISymmetricCipher, iv, padded []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}
	ciphertext := make([]uint8, 0, len(padded))

	chain := make([]uint8, bs)
	copy(chain, iv)
	xored := make([]uint8, bs)

	for i := 0; i < len(padded); i += bs {
		block := padded[i : i+bs]
		xorBlocks(xored, block, chain)

		encryptedBlock, err := c.EncryptBlock(xored)
		if err != nil {
			return nil, fmt.Errorf("PCBC encryption failed for block %d: %w", i/bs, err)
		}

		xorBlocks(chain, block, encryptedBlock)
		ciphertext = append(ciphertext, encryptedBlock...)
	}

	return ciphertext, nil
}

func (pcbcMode) decryptBlocks(c ISymmetricCipher, iv, ciphertext []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}
	plaintext := make([]uint8, len(ciphertext))

	chain := make([]uint8, bs)
	copy(chain, iv)

	for i := 0; i < len(ciphertext); i += bs {
		block := ciphertext[i : i+bs]

		decryptedBlock, err := c.DecryptBlock(block)
		if err != nil {
			return nil, fmt.Errorf("PCBC decryption failed for block %d: %w", i/bs, err)
		}

		xorBlocks(plaintext[i:i+bs], decryptedBlock, chain)
		xorBlocks(chain, plaintext[i:i+bs], block)
	}

	return plaintext, nil
}

// cfbMode с сегментом в целый блок: C[i] = E(chain) XOR P[i], chain = C[i]
type cfbMode struct{}

func (cfbMode) encryptBlocks(c ISymmetricCipher, iv, padded []uint8) ([]uint8, error) {
	return cfbCrypt(c, iv, padded, false)
}

func (cfbMode) decryptBlocks(c ISymmetricCipher, iv, ciphertext []uint8) ([]uint8, error) {
	return cfbCrypt(c, iv, ciphertext, true)
}

func cfbCrypt(c ISymmetricCipher, iv, src []uint8, decrypt bool) ([]uint8, error) {
	bs := c.BlockSize()
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}
	dst := make([]uint8, len(src))

	chain := make([]uint8, bs)
	copy(chain, iv)

	for i := 0; i < len(src); i += bs {
		keystream, err := c.EncryptBlock(chain)
		if err != nil {
			return nil, fmt.Errorf("CFB failed for block %d: %w", i/bs, err)
		}

		xorBlocks(dst[i:i+bs], src[i:i+bs], keystream)
		if decrypt {
			copy(chain, src[i:i+bs])
		} else {
			copy(chain, dst[i:i+bs])
		}
	}

	return dst, nil
}

// ofbMode: chain = E(chain), out = in XOR chain; шифрование и расшифрование совпадают
type ofbMode struct{}

func (ofbMode) encryptBlocks(c ISymmetricCipher, iv, padded []uint8) ([]uint8, error) {
	return ofbMode{}.crypt(c, iv, padded)
}

func (ofbMode) decryptBlocks(c ISymmetricCipher, iv, ciphertext []uint8) ([]uint8, error) {
	return ofbMode{}.crypt(c, iv, ciphertext)
}

func (ofbMode) crypt(c ISymmetricCipher, iv, src []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}
	dst := make([]uint8, len(src))

	chain := make([]uint8, bs)
	copy(chain, iv)

	for i := 0; i < len(src); i += bs {
		keystream, err := c.EncryptBlock(chain)
		if err != nil {
			return nil, fmt.Errorf("OFB failed for block %d: %w", i/bs, err)
		}
		copy(chain, keystream)
		xorBlocks(dst[i:i+bs], src[i:i+bs], chain)
	}

	return dst, nil
}

// ctrMode: out = in XOR E(counter); счетчик это весь блок IV, big-endian
type ctrMode struct{}

func (ctrMode) encryptBlocks(c ISymmetricCipher, iv, padded []uint8) ([]uint8, error) {
	return ctrMode{}.crypt(c, iv, padded)
}

func (ctrMode) decryptBlocks(c ISymmetricCipher, iv, ciphertext []uint8) ([]uint8, error) {
	return ctrMode{}.crypt(c, iv, ciphertext)
}

func (ctrMode) crypt(c ISymmetricCipher, iv, src []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	if err := checkIV(iv, bs); err != nil {
		return nil, err
	}
	dst := make([]uint8, len(src))

	counter := make([]uint8, bs)
	copy(counter, iv)

	for i := 0; i < len(src); i += bs {
		keystream, err := c.EncryptBlock(counter)
		if err != nil {
			return nil, fmt.Errorf("CTR failed for block %d: %w", i/bs, err)
		}
		xorBlocks(dst[i:i+bs], src[i:i+bs], keystream)
		incrementCounter(counter)
	}

	return dst, nil
}

// randomDeltaMode пишет перед каждым блоком свою случайную дельту:
// out = delta || E(P[i] XOR delta). IV не используется, шифртекст вдвое длиннее.
type randomDeltaMode struct{}

func (randomDeltaMode) encryptBlocks(c ISymmetricCipher, _, padded []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	ciphertext := make([]uint8, 0, 2*len(padded))

	delta := make([]uint8, bs)
	xored := make([]uint8, bs)

	for i := 0; i < len(padded); i += bs {
		if _, err := GenerateRandomBytes(delta); err != nil {
			return nil, fmt.Errorf("failed to generate random delta: %w", err)
		}
		xorBlocks(xored, padded[i:i+bs], delta)

		encryptedBlock, err := c.EncryptBlock(xored)
		if err != nil {
			return nil, fmt.Errorf("random delta encryption failed for block %d: %w", i/bs, err)
		}

		ciphertext = append(ciphertext, delta...)
		ciphertext = append(ciphertext, encryptedBlock...)
	}

	return ciphertext, nil
}

func (randomDeltaMode) decryptBlocks(c ISymmetricCipher, _, ciphertext []uint8) ([]uint8, error) {
	bs := c.BlockSize()
	if len(ciphertext)%(2*bs) != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of delta/block pairs", ErrInvalidCipherText, len(ciphertext))
	}
	plaintext := make([]uint8, len(ciphertext)/2)

	for i := 0; i < len(ciphertext); i += 2 * bs {
		delta := ciphertext[i : i+bs]

		decryptedBlock, err := c.DecryptBlock(ciphertext[i+bs : i+2*bs])
		if err != nil {
			return nil, fmt.Errorf("random delta decryption failed for block %d: %w", i/(2*bs), err)
		}

		out := plaintext[i/2 : i/2+bs]
		xorBlocks(out, decryptedBlock, delta)
	}

	return plaintext, nil
}
