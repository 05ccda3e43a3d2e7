package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/nPaBwaYT/aescbc/cripta"
)

/*
Шифрование файла AES-128 в режиме CBC (ключ и IV генерируются)
go run main.go -e -a=aes128 -m=cbc input.txt output.enc

Дешифрование файла с указанием ключа
go run main.go -d -a=aes128 -k="000102030405060708090a0b0c0d0e0f" output.enc input.txt

Ключ из парольной фразы
go run main.go -e -a=aes256 -pass="correct horse" input.txt output.enc

Шифрование с указанием ключа и IV
go run main.go -e -a=aes128 -k="000102030405060708090a0b0c0d0e0f" -iv="66477853576435394159646951585a53" input.txt output.enc

Формат файла в режимах с IV: IV (16 байт) || шифртекст.
С -pass перед ним пишется соль: соль (16 байт) || IV || шифртекст.

Алгоритмы: AES-128, AES-192, AES-256, Serpent
Режимы шифрования: ECB, CBC, PCBC, CFB, OFB, CTR, RandomDelta
Режимы набивки: PKCS7, ANSI X.923, ISO 10126, Zeros
*/

func main() {
	encryptFlag := flag.Bool("e", false, "Режим шифрования")
	decryptFlag := flag.Bool("d", false, "Режим дешифрования")
	algorithmFlag := flag.String("a", "aes128", "Алгоритм шифрования: aes128, aes192, aes256, serpent")
	modeFlag := flag.String("m", "cbc", "Режим шифрования: ecb, cbc, pcbc, cfb, ofb, ctr, delta")
	paddingFlag := flag.String("p", "pkcs7", "Режим набивки: pkcs7, ansi, iso, zeros")
	keyFlag := flag.String("k", "", "Ключ шифрования в hex (если не указан, будет сгенерирован)")
	passFlag := flag.String("pass", "", "Парольная фраза, из которой выводится ключ")
	ivFlag := flag.String("iv", "", "Вектор инициализации в hex (только для шифрования)")

	flag.Parse()

	if (*encryptFlag && *decryptFlag) || (!*encryptFlag && !*decryptFlag) {
		fmt.Println("Использование:")
		fmt.Println("  Шифрование: go run main.go -e -a=aes128 -m=cbc input.txt output.enc")
		fmt.Println("  Дешифрование: go run main.go -d -a=aes128 -m=cbc -k=<hex> input.enc output.txt")
		fmt.Println("\nФлаги:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Println("Ошибка: необходимо указать входной и выходной файлы")
		os.Exit(1)
	}

	inputFile := args[0]
	outputFile := args[1]

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		log.Fatalf("Ошибка: входной файл '%s' не существует", inputFile)
	}

	keyLength, err := keyLengthFor(*algorithmFlag)
	if err != nil {
		log.Fatalf("Ошибка выбора алгоритма: %v", err)
	}

	if *decryptFlag && *keyFlag == "" && *passFlag == "" {
		log.Fatalf("Ошибка: для дешифрования нужен ключ (-k) или парольная фраза (-pass)")
	}

	var salt []byte
	if *passFlag != "" {
		if *encryptFlag {
			salt, err = cripta.GenerateSalt()
		} else {
			salt, err = readSalt(inputFile)
		}
		if err != nil {
			log.Fatalf("Ошибка работы с солью: %v", err)
		}
	}

	key, err := getOrGenerateKey(*keyFlag, *passFlag, salt, keyLength)
	if err != nil {
		log.Fatalf("Ошибка работы с ключом: %v", err)
	}

	cipherMode, err := parseCipherMode(*modeFlag)
	if err != nil {
		log.Fatalf("Ошибка: %v", err)
	}
	paddingMode, err := parsePaddingMode(*paddingFlag)
	if err != nil {
		log.Fatalf("Ошибка: %v", err)
	}

	iv, err := parseIV(*ivFlag, *decryptFlag, cipherMode)
	if err != nil {
		log.Fatalf("Ошибка: %v", err)
	}

	cipher, err := createCipher(*algorithmFlag, key)
	if err != nil {
		log.Fatalf("Ошибка создания шифра: %v", err)
	}

	ctx, err := cripta.NewCipherContext(cipher, cipherMode, paddingMode, iv)
	if err != nil {
		log.Fatalf("Ошибка создания контекста шифрования: %v", err)
	}

	startTime := time.Now()

	if *encryptFlag {
		if err := encryptFile(ctx, inputFile, outputFile, salt); err != nil {
			log.Fatalf("Ошибка шифрования: %v", err)
		}
		fmt.Printf("Файл успешно зашифрован: %s -> %s\n", inputFile, outputFile)
	} else {
		if err := decryptFile(ctx, inputFile, outputFile, salt); err != nil {
			log.Fatalf("Ошибка дешифрования: %v", err)
		}
		fmt.Printf("Файл успешно дешифрован: %s -> %s\n", inputFile, outputFile)
	}

	duration := time.Since(startTime)
	fileInfo, err := os.Stat(inputFile)
	if err != nil {
		log.Fatalf("Ошибка чтения входного файла: %v", err)
	}

	fmt.Printf("\nИнформация:\n")
	fmt.Printf("  Алгоритм: %s\n", *algorithmFlag)
	fmt.Printf("  Режим: %s\n", cipherMode)
	fmt.Printf("  Набивка: %s\n", paddingMode)
	fmt.Printf("  Размер файла: %d байт\n", fileInfo.Size())
	fmt.Printf("  Время выполнения: %v\n", duration)
	if *encryptFlag && *keyFlag == "" && *passFlag == "" {
		// ключ сгенерирован, без него файл не расшифровать
		fmt.Printf("  Ключ: %x\n", key)
	}
	if *encryptFlag && len(ctx.IV()) > 0 {
		fmt.Printf("  IV: %x\n", ctx.IV())
	}
}

// keyLengthFor возвращает длину ключа алгоритма в байтах
func keyLengthFor(algorithm string) (int, error) {
	switch algorithm {
	case "aes128":
		return 16, nil
	case "aes192":
		return 24, nil
	case "aes256", "serpent":
		return 32, nil
	default:
		return 0, fmt.Errorf("неизвестный алгоритм: %s", algorithm)
	}
}

// createCipher создает экземпляр шифра в зависимости от алгоритма
func createCipher(algorithm string, key []byte) (cripta.ISymmetricCipher, error) {
	switch algorithm {
	case "aes128", "aes192", "aes256":
		c, err := cripta.NewAESCipher(key)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "serpent":
		c, err := cripta.NewSerpentCipher(key)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("неизвестный алгоритм: %s", algorithm)
	}
}

// getOrGenerateKey возвращает ключ из hex, из парольной фразы с солью или случайный
func getOrGenerateKey(keyFlag, passFlag string, salt []byte, keyLength int) ([]byte, error) {
	if keyFlag != "" && passFlag != "" {
		return nil, fmt.Errorf("флаги -k и -pass взаимоисключающие")
	}
	if keyFlag != "" {
		return parseHexString(keyFlag, keyLength)
	}
	if passFlag != "" {
		return cripta.DeriveKey([]byte(passFlag), salt, keyLength)
	}

	key := make([]byte, keyLength)
	if _, err := cripta.GenerateRandomBytes(key); err != nil {
		return nil, fmt.Errorf("ошибка генерации ключа: %w", err)
	}
	return key, nil
}

// parseIV разбирает -iv. При дешифровании IV берется из файла,
// а ECB и RandomDelta его не используют.
func parseIV(ivFlag string, decrypt bool, mode cripta.CipherMode) ([]byte, error) {
	if ivFlag == "" {
		return nil, nil
	}
	if decrypt {
		return nil, fmt.Errorf("при дешифровании IV читается из файла, флаг -iv не нужен")
	}
	if mode == cripta.CipherModeECB || mode == cripta.CipherModeRandomDelta {
		return nil, fmt.Errorf("режим %s не использует IV, флаг -iv не нужен", mode)
	}

	iv, err := parseHexString(ivFlag, cripta.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("ошибка работы с IV: %w", err)
	}
	return iv, nil
}

// readSalt читает соль из начала зашифрованного файла
func readSalt(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	salt := make([]byte, cripta.SaltSize)
	if _, err := io.ReadFull(f, salt); err != nil {
		return nil, fmt.Errorf("файл короче соли: %w", err)
	}
	return salt, nil
}

// encryptFile пишет salt || Seal(данные); без соли формат совпадает с EncryptFile
func encryptFile(ctx *cripta.CipherContext, inputPath, outputPath string, salt []byte) error {
	if len(salt) == 0 {
		return ctx.EncryptFile(inputPath, outputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	sealed, err := ctx.Seal(data)
	if err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}

	out := make([]byte, 0, len(salt)+len(sealed))
	out = append(out, salt...)
	out = append(out, sealed...)
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// decryptFile обращает encryptFile; соль уже прочитана readSalt
func decryptFile(ctx *cripta.CipherContext, inputPath, outputPath string, salt []byte) error {
	if len(salt) == 0 {
		return ctx.DecryptFile(inputPath, outputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if len(data) < len(salt) {
		return fmt.Errorf("decryption failed: file is shorter than the salt")
	}
	plaintext, err := ctx.Open(data[len(salt):])
	if err != nil {
		return fmt.Errorf("decryption failed: %w", err)
	}

	if err := os.WriteFile(outputPath, plaintext, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// parseHexString парсит hex строку в байты
func parseHexString(hexStr string, expectedLength int) ([]byte, error) {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("неверный hex формат: %w", err)
	}

	if len(data) != expectedLength {
		return nil, fmt.Errorf("неверная длина: ожидается %d байт, получено %d", expectedLength, len(data))
	}

	return data, nil
}

// parseCipherMode преобразует строку в CipherMode
func parseCipherMode(mode string) (cripta.CipherMode, error) {
	switch mode {
	case "ecb":
		return cripta.CipherModeECB, nil
	case "cbc":
		return cripta.CipherModeCBC, nil
	case "pcbc":
		return cripta.CipherModePCBC, nil
	case "cfb":
		return cripta.CipherModeCFB, nil
	case "ofb":
		return cripta.CipherModeOFB, nil
	case "ctr":
		return cripta.CipherModeCTR, nil
	case "delta":
		return cripta.CipherModeRandomDelta, nil
	default:
		return 0, fmt.Errorf("неизвестный режим шифрования: %s", mode)
	}
}

// parsePaddingMode преобразует строку в PaddingMode
func parsePaddingMode(padding string) (cripta.PaddingMode, error) {
	switch padding {
	case "pkcs7":
		return cripta.PaddingModePKCS7, nil
	case "ansi":
		return cripta.PaddingModeANSIX923, nil
	case "iso":
		return cripta.PaddingModeISO10126, nil
	case "zeros":
		return cripta.PaddingModeZeros, nil
	default:
		return 0, fmt.Errorf("неизвестный режим набивки: %s", padding)
	}
}
