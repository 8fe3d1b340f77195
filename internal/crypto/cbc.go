package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptCBC encrypts plaintext with AES-CBC after PKCS#7 padding. The key
// must be a valid AES key length and the IV exactly one block. The returned
// ciphertext is always a whole number of blocks and carries no header.
func EncryptCBC(plaintext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	padded := Pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// DecryptCBC inverts EncryptCBC. It fails when the ciphertext is not a whole
// number of blocks or the padding does not verify after decryption. CBC is
// not authenticated: a wrong key or IV is not guaranteed to fail here and
// may instead yield garbage plaintext.
func DecryptCBC(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size", len(ciphertext))
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return Unpad(plaintext)
}
