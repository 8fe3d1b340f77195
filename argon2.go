package envault

import (
	"crypto/rand"
	"fmt"

	"github.com/hengadev/errsx"
	"golang.org/x/crypto/argon2"
)

// Argon2Params defines the parameters for Argon2id key derivation
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params returns recommended parameters for Argon2id
func DefaultArgon2Params() *Argon2Params {
	return &Argon2Params{
		Memory:      64 * 1024, // 64MB
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   KeySizeFull,
	}
}

// Validate checks if the Argon2 parameters are within acceptable ranges
func (a *Argon2Params) Validate() error {
	errs := errsx.Map{}

	// Memory should be at least 8KB (8192 KiB)
	if a.Memory < 8192 {
		errs.Set("memory", fmt.Errorf("memory must be at least 8192 KiB, got %d", a.Memory))
	}

	// Iterations should be at least 2
	if a.Iterations < 2 {
		errs.Set("iterations", fmt.Errorf("iterations must be at least 2, got %d", a.Iterations))
	}

	// Parallelism should be at least 1
	if a.Parallelism < 1 {
		errs.Set("parallelism", fmt.Errorf("parallelism must be at least 1, got %d", a.Parallelism))
	}

	// Salt length should be at least 16 bytes
	if a.SaltLength < 16 {
		errs.Set("saltLength", fmt.Errorf("salt length must be at least 16 bytes, got %d", a.SaltLength))
	}

	// Key length must select a valid AES key size
	if a.KeyLength != KeySizeStandard && a.KeyLength != KeySizeFull {
		errs.Set("keyLength", fmt.Errorf("key length must be %d or %d bytes, got %d",
			KeySizeStandard, KeySizeFull, a.KeyLength))
	}

	return errs.AsError()
}

// DeriveKeyArgon2 derives an AES key from a passphrase using Argon2id.
// Unlike DeriveKey it is salted and memory-hard, which makes it the right
// choice when the passphrase is chosen by a human. The same passphrase,
// salt, and parameters always yield the same key; storing the salt is the
// caller's responsibility.
//
// Passing nil params uses DefaultArgon2Params.
func DeriveKeyArgon2(passphrase string, salt []byte, params *Argon2Params) ([]byte, error) {
	if params == nil {
		params = DefaultArgon2Params()
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: argon2 parameters: %v", ErrInvalidConfiguration, err)
	}
	if uint32(len(salt)) < params.SaltLength {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes, got %d",
			ErrInvalidConfiguration, params.SaltLength, len(salt))
	}

	key := argon2.IDKey(
		[]byte(passphrase),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)
	return key, nil
}

// GenerateSalt returns length cryptographically secure random bytes for use
// as an Argon2 salt.
func GenerateSalt(length uint32) ([]byte, error) {
	salt := make([]byte, length)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}
