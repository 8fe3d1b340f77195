// Package crypto implements the AES primitives behind the public encryption
// API: CBC with PKCS#7 padding and authenticated GCM.
package crypto

import (
	"crypto/aes"
	"fmt"
)

// Pad appends PKCS#7 padding so the result is a whole number of AES blocks.
// Between 1 and 16 bytes are always added, each holding the pad length, so
// padding is unambiguous even when the input already fills a block.
func Pad(data []byte) []byte {
	padLen := aes.BlockSize - len(data)%aes.BlockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// Unpad strips the padding added by Pad. It fails when the data does not end
// in a well-formed pad, which is how a wrong key or IV most often surfaces
// in CBC mode.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("data length %d is not a multiple of the block size", len(data))
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > aes.BlockSize {
		return nil, fmt.Errorf("invalid padding length %d", padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("malformed padding")
		}
	}
	return data[:len(data)-padLen], nil
}
