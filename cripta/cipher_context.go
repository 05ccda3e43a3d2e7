package cripta

import (
	"fmt"
	"os"
)

type CipherMode int

const (
	CipherModeECB CipherMode = iota
	CipherModeCBC
	CipherModePCBC
	CipherModeCFB
	CipherModeOFB
	CipherModeCTR
	CipherModeRandomDelta
)

func (m CipherMode) String() string {
	switch m {
	case CipherModeECB:
		return "ECB"
	case CipherModeCBC:
		return "CBC"
	case CipherModePCBC:
		return "PCBC"
	case CipherModeCFB:
		return "CFB"
	case CipherModeOFB:
		return "OFB"
	case CipherModeCTR:
		return "CTR"
	case CipherModeRandomDelta:
		return "RandomDelta"
	default:
		return fmt.Sprintf("CipherMode(%d)", int(m))
	}
}

// needsIV: ECB и RandomDelta работают без вектора инициализации
func (m CipherMode) needsIV() bool {
	return m != CipherModeECB && m != CipherModeRandomDelta
}

// CipherContext связывает блочный шифр, режим и набивку.
// Значение сцепления живет только внутри одного вызова Encrypt/Decrypt;
// SetIV нельзя вызывать конкурентно с ними.
type CipherContext struct {
	cipher      ISymmetricCipher
	mode        CipherMode
	chain       chainingMode
	paddingMode PaddingMode
	padding     IPadding
	iv          []uint8
	blockSize   int
}

// NewCipherContext создает контекст. Если iv пуст, а режим его требует,
// IV генерируется из crypto/rand.
func NewCipherContext(
	cipher ISymmetricCipher,
	mode CipherMode,
	paddingMode PaddingMode,
	iv []uint8,
) (*CipherContext, error) {

	if cipher == nil {
		return nil, fmt.Errorf("cipher implementation cannot be nil")
	}
	chain, err := newChainingMode(mode)
	if err != nil {
		return nil, err
	}

	blockSize := cipher.BlockSize()
	padding, err := NewPadding(paddingMode, blockSize)
	if err != nil {
		return nil, err
	}

	ctx := &CipherContext{
		cipher:      cipher,
		mode:        mode,
		chain:       chain,
		paddingMode: paddingMode,
		padding:     padding,
		blockSize:   blockSize,
	}

	if !mode.needsIV() {
		return ctx, nil
	}

	if len(iv) == 0 {
		ctx.iv, err = GenerateIV(blockSize)
		if err != nil {
			return nil, err
		}
		return ctx, nil
	}

	if err := ctx.SetIV(iv); err != nil {
		return nil, err
	}
	return ctx, nil
}

// Encrypt набивает plaintext и шифрует его. IV в результат не входит.
func (ctx *CipherContext) Encrypt(plaintext []uint8) ([]uint8, error) {
	padded, err := ctx.padding.Pad(plaintext)
	if err != nil {
		return nil, fmt.Errorf("padding failed: %w", err)
	}

	return ctx.chain.encryptBlocks(ctx.cipher, ctx.iv, padded)
}

// Decrypt расшифровывает ciphertext тем же IV, что был у Encrypt,
// и снимает набивку. При любой ошибке данные не возвращаются.
func (ctx *CipherContext) Decrypt(ciphertext []uint8) ([]uint8, error) {
	return ctx.decrypt(ciphertext, ctx.iv)
}

// Seal шифрует plaintext и возвращает IV || ciphertext.
// В режимах без IV результат совпадает с Encrypt.
func (ctx *CipherContext) Seal(plaintext []uint8) ([]uint8, error) {
	ciphertext, err := ctx.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}
	if !ctx.mode.needsIV() {
		return ciphertext, nil
	}

	sealed := make([]uint8, 0, len(ctx.iv)+len(ciphertext))
	sealed = append(sealed, ctx.iv...)
	return append(sealed, ciphertext...), nil
}

// Open обращает Seal: первый блок sealed считается IV.
// IV контекста при этом не меняется.
func (ctx *CipherContext) Open(sealed []uint8) ([]uint8, error) {
	if !ctx.mode.needsIV() {
		return ctx.decrypt(sealed, nil)
	}
	if len(sealed) < ctx.blockSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the IV", ErrInvalidCipherText, len(sealed))
	}
	return ctx.decrypt(sealed[ctx.blockSize:], sealed[:ctx.blockSize])
}

func (ctx *CipherContext) decrypt(ciphertext []uint8, iv []uint8) ([]uint8, error) {
	if len(ciphertext)%ctx.blockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidCipherText, len(ciphertext))
	}

	plaintext, err := ctx.chain.decryptBlocks(ctx.cipher, iv, ciphertext)
	if err != nil {
		return nil, err
	}

	return ctx.padding.Strip(plaintext)
}

// EncryptFile шифрует файл; результат пишется в формате Seal
func (ctx *CipherContext) EncryptFile(inputPath string, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	encrypted, err := ctx.Seal(data)
	if err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}

	err = os.WriteFile(outputPath, encrypted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// DecryptFile расшифровывает файл, записанный EncryptFile
func (ctx *CipherContext) DecryptFile(inputPath string, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	decrypted, err := ctx.Open(data)
	if err != nil {
		return fmt.Errorf("decryption failed: %w", err)
	}

	err = os.WriteFile(outputPath, decrypted, 0644)
	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// SetIV заменяет вектор инициализации; длина должна равняться блоку
func (ctx *CipherContext) SetIV(newIV []uint8) error {
	if len(newIV) != ctx.blockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIV, len(newIV), ctx.blockSize)
	}
	ctx.iv = make([]uint8, len(newIV))
	copy(ctx.iv, newIV)
	return nil
}

// IV возвращает копию текущего вектора инициализации
func (ctx *CipherContext) IV() []uint8 {
	if ctx.iv == nil {
		return nil
	}
	iv := make([]uint8, len(ctx.iv))
	copy(iv, ctx.iv)
	return iv
}

func (ctx *CipherContext) GetMode() CipherMode {
	return ctx.mode
}

func (ctx *CipherContext) GetPaddingMode() PaddingMode {
	return ctx.paddingMode
}

func (ctx *CipherContext) GetBlockSize() int {
	return ctx.blockSize
}
