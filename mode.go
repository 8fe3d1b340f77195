package envault

import (
	"fmt"
	"strings"
)

const (
	// ModeCBC selects AES-CBC with PKCS#7 padding. This is the default.
	// Ciphertext is not authenticated: a tampered file or a wrong key is
	// not reliably detected and may decrypt to garbage bytes.
	ModeCBC Mode = "cbc"

	// ModeGCM selects AES-GCM. Ciphertext is authenticated, so decryption
	// fails on any tampered file or wrong key. A random nonce is generated
	// per encryption and prepended to the ciphertext; the configured IV is
	// not used in this mode.
	ModeGCM Mode = "gcm"
)

// Mode identifies the AES mode of operation used for encryption.
type Mode string

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts a string into a Mode. Matching is case-insensitive and
// the empty string selects ModeCBC.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", string(ModeCBC):
		return ModeCBC, nil
	case string(ModeGCM):
		return ModeGCM, nil
	}
	return "", fmt.Errorf("%w: unknown cipher mode %q", ErrInvalidConfiguration, s)
}
