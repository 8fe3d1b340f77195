package envault

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateKey returns a random AES key: 16 bytes, or 32 when fullStrength is
// set. Unlike DeriveKey the result is not reproducible, so it must be stored
// somewhere, for example hex-encoded in ENVAULT_KEY.
func GenerateKey(fullStrength bool) ([]byte, error) {
	size := KeySizeStandard
	if fullStrength {
		size = KeySizeFull
	}
	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateKeyHex returns a random AES key as a hex string, the encoding
// ENVAULT_KEY and the options file expect.
func GenerateKeyHex(fullStrength bool) (string, error) {
	key, err := GenerateKey(fullStrength)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// GenerateIV returns a random 16-byte initialization vector for ModeCBC.
func GenerateIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}
	return iv, nil
}
