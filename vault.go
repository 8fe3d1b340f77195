package envault

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hengadev/envault/internal/crypto"
)

// Vault serializes Go values to JSON, optionally encrypts the bytes with
// AES, and persists them to files. One Vault owns one immutable
// configuration, one codec, and one journal; build a second instance when a
// different configuration is needed.
//
// A Vault is stateful through its journal and therefore not safe for
// concurrent use. Every operation blocks until the filesystem call behind
// it returns; there is no cancellation.
type Vault struct {
	id      uuid.UUID
	key     []byte
	iv      []byte
	mode    Mode
	codec   Codec
	journal *Journal
	logger  zerolog.Logger
}

// New creates a Vault instance.
//
// Example usage:
//
//	vault, err := envault.New(
//	    envault.WithPassphrase("secret", "vector", true),
//	    envault.WithPrettyPrint(),
//	)
func New(options ...Option) (*Vault, error) {
	config := &Config{Logger: zerolog.Nop()}

	// Apply all options
	for i, opt := range options {
		if err := opt(config); err != nil {
			return nil, fmt.Errorf("invalid option %d: %w", i+1, err)
		}
	}

	setDefaults(config)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	id := uuid.New()
	return &Vault{
		id:      id,
		key:     config.Key,
		iv:      config.IV,
		mode:    config.Mode,
		codec:   config.Codec,
		journal: &Journal{},
		logger:  config.Logger.With().Str("vault", id.String()).Logger(),
	}, nil
}

// ID returns the identifier of this Vault instance. It tags every log event
// the Vault emits.
func (v *Vault) ID() uuid.UUID {
	return v.id
}

// Encrypted reports whether the Vault encrypts file contents.
func (v *Vault) Encrypted() bool {
	return len(v.key) > 0
}

// Mode returns the configured AES mode of operation.
func (v *Vault) Mode() Mode {
	return v.mode
}

// Journal returns the Vault's operation journal.
func (v *Vault) Journal() *Journal {
	return v.journal
}

// EncryptBytes runs the encryption stage of the pipeline on its own:
// plaintext in, ciphertext out under the configured key, IV, and mode. Key
// and IV sizes are checked here, per the configuration contract.
func (v *Vault) EncryptBytes(plaintext []byte) ([]byte, error) {
	if err := v.checkKeyMaterial(); err != nil {
		return nil, err
	}
	if v.mode == ModeGCM {
		ciphertext, err := crypto.EncryptGCM(plaintext, v.key)
		if err != nil {
			return nil, NewEncryptionError(err)
		}
		return ciphertext, nil
	}
	ciphertext, err := crypto.EncryptCBC(plaintext, v.key, v.iv)
	if err != nil {
		return nil, NewEncryptionError(err)
	}
	return ciphertext, nil
}

// DecryptBytes inverts EncryptBytes. In ModeCBC a wrong key or IV is not
// guaranteed to fail and may return garbage bytes without error; see the
// package documentation for the consequences.
func (v *Vault) DecryptBytes(ciphertext []byte) ([]byte, error) {
	if err := v.checkKeyMaterial(); err != nil {
		return nil, err
	}
	if v.mode == ModeGCM {
		plaintext, err := crypto.DecryptGCM(ciphertext, v.key)
		if err != nil {
			return nil, NewDecryptionError(err)
		}
		return plaintext, nil
	}
	plaintext, err := crypto.DecryptCBC(ciphertext, v.key, v.iv)
	if err != nil {
		return nil, NewDecryptionError(err)
	}
	return plaintext, nil
}

// checkKeyMaterial enforces the key and IV size invariant. It runs at
// operation time, never at construction.
func (v *Vault) checkKeyMaterial() error {
	if !v.Encrypted() {
		return fmt.Errorf("%w: encryption is not configured", ErrInvalidConfiguration)
	}
	if len(v.key) != KeySizeStandard && len(v.key) != KeySizeFull {
		return NewKeySizeError(len(v.key))
	}
	if v.mode == ModeCBC && len(v.iv) != IVSize {
		return NewIVSizeError(len(v.iv))
	}
	return nil
}

func (v *Vault) ok(message string, bytes int) {
	v.journal.record(message, nil)
	v.logger.Debug().Int("bytes", bytes).Msg(message)
}

func (v *Vault) fail(message string, err error) error {
	v.journal.record(message, err)
	v.logger.Error().Err(err).Msg(message)
	return err
}
