package cripta

// ISymmetricCipher блочный шифр с фиксированным ключом
type ISymmetricCipher interface {
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
	DecryptBlock(cipherBlock []uint8) ([]uint8, error)
	BlockSize() int
}

// IPadding схема набивки до кратности размеру блока
type IPadding interface {
	Pad(data []uint8) ([]uint8, error)
	Strip(data []uint8) ([]uint8, error)
}
