package envault

import (
	"crypto/sha256"
	"strconv"
)

// DeriveKey turns a passphrase into an AES key. The SHA-256 digest of the
// passphrase's UTF-8 bytes is computed; fullStrength keeps all 32 bytes
// (AES-256), otherwise only the first 16 bytes (AES-128).
//
// The derivation is deterministic and unsalted: the same passphrase always
// yields the same key, so the key is exactly as strong as the passphrase.
// Use DeriveKeyArgon2 for passwords chosen by humans.
func DeriveKey(passphrase string, fullStrength bool) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	if fullStrength {
		return sum[:]
	}
	return sum[:KeySizeStandard]
}

// DeriveKeyInt derives a key from an integer seed. The seed is rendered in
// decimal and handed to DeriveKey, so DeriveKeyInt(423, f) equals
// DeriveKey("423", f).
func DeriveKeyInt(seed int64, fullStrength bool) []byte {
	return DeriveKey(strconv.FormatInt(seed, 10), fullStrength)
}

// DeriveIV turns a passphrase into a 16-byte initialization vector. The IV
// always uses the truncated form, regardless of the key's strength.
func DeriveIV(passphrase string) []byte {
	return DeriveKey(passphrase, false)
}
