package envault

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Option represents a configuration option for creating a Vault instance.
type Option func(*Config) error

// WithEncryptionKey enables encryption with a raw key and IV. The bytes are
// copied. Lengths are deliberately not checked here: they surface as
// ErrInvalidConfiguration on the first encrypt or decrypt instead.
func WithEncryptionKey(key, iv []byte) Option {
	return func(c *Config) error {
		if len(key) == 0 {
			return fmt.Errorf("%w: encryption key cannot be empty", ErrInvalidConfiguration)
		}
		c.Key = append([]byte(nil), key...)
		c.IV = append([]byte(nil), iv...)
		return nil
	}
}

// WithPassphrase enables encryption with a key derived from passphrase and
// an IV derived from ivPassphrase (see DeriveKey and DeriveIV). An empty
// ivPassphrase derives the IV from the key passphrase itself. fullStrength
// selects AES-256.
func WithPassphrase(passphrase, ivPassphrase string, fullStrength bool) Option {
	return func(c *Config) error {
		if passphrase == "" {
			return fmt.Errorf("%w: passphrase cannot be empty", ErrInvalidConfiguration)
		}
		if ivPassphrase == "" {
			ivPassphrase = passphrase
		}
		c.Key = DeriveKey(passphrase, fullStrength)
		c.IV = DeriveIV(ivPassphrase)
		return nil
	}
}

// WithMode selects the AES mode of operation.
func WithMode(mode Mode) Option {
	return func(c *Config) error {
		parsed, err := ParseMode(string(mode))
		if err != nil {
			return err
		}
		c.Mode = parsed
		return nil
	}
}

// WithPrettyPrint renders JSON files with two-space indentation instead of
// the compact default.
func WithPrettyPrint() Option {
	return func(c *Config) error {
		c.Pretty = true
		return nil
	}
}

// WithOnlyTaggedFields limits JSON to struct fields carrying a json tag.
// Untagged exported fields are ignored in both directions.
func WithOnlyTaggedFields() Option {
	return func(c *Config) error {
		c.OnlyTagged = true
		return nil
	}
}

// WithCaseSensitiveFields requires JSON keys to match field names exactly
// when decoding, instead of the default case-insensitive matching.
func WithCaseSensitiveFields() Option {
	return func(c *Config) error {
		c.CaseSensitive = true
		return nil
	}
}

// WithOmitReadOnlyFields drops fields tagged `envault:"readonly"` when
// encoding. Such fields are still populated when decoding.
func WithOmitReadOnlyFields() Option {
	return func(c *Config) error {
		c.OmitReadOnly = true
		return nil
	}
}

// WithCodec replaces the default JSON codec, changing the on-disk format
// accordingly. The JSON formatting options have no effect on a custom codec.
func WithCodec(codec Codec) Option {
	return func(c *Config) error {
		if codec == nil {
			return fmt.Errorf("%w: codec cannot be nil", ErrInvalidConfiguration)
		}
		c.Codec = codec
		return nil
	}
}

// WithLogger attaches a zerolog logger. Operation events mirror the journal
// with structured fields; without a logger the journal is the only trace.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}
