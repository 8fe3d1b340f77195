package envault

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hengadev/envault/internal/codec"
)

// Config holds the configuration for creating a Vault instance.
//
// This struct contains only data, no behavior. Configuration can be loaded
// from any source (environment variables, files, code) and handed to New
// through options; see OptionsFromEnv and LoadOptionsFile.
//
// All fields are optional. The zero value describes a Vault writing compact,
// unencrypted JSON.
type Config struct {
	// Key is the AES key. An empty key disables encryption entirely. The
	// length selects the cipher strength: 16 bytes for AES-128, 32 bytes
	// for AES-256. Lengths are checked when encrypting or decrypting, not
	// at construction, so a misconfigured Vault builds fine and fails on
	// first use.
	Key []byte

	// IV is the initialization vector for ModeCBC. Must be 16 bytes when
	// encryption is enabled, checked at operation time like Key. Unused in
	// ModeGCM.
	IV []byte

	// Mode selects the AES mode of operation. Defaults to ModeCBC.
	Mode Mode

	// Pretty renders JSON with two-space indentation.
	Pretty bool

	// OnlyTagged limits JSON to struct fields carrying a json tag.
	OnlyTagged bool

	// CaseSensitive requires exact-case JSON key matches when decoding.
	CaseSensitive bool

	// OmitReadOnly drops fields tagged `envault:"readonly"` when encoding.
	OmitReadOnly bool

	// Codec overrides the JSON codec built from the four formatting fields
	// above. When set, those fields are ignored.
	Codec Codec

	// Logger receives structured operation events. Defaults to a no-op
	// logger; the journal records operations regardless.
	Logger zerolog.Logger
}

// setDefaults applies default values for unspecified configuration options.
func setDefaults(config *Config) {
	if config.Mode == "" {
		config.Mode = ModeCBC
	}
	if config.Codec == nil {
		config.Codec = codec.NewJSON(codec.JSONOptions{
			Pretty:        config.Pretty,
			OnlyTagged:    config.OnlyTagged,
			CaseSensitive: config.CaseSensitive,
			OmitReadOnly:  config.OmitReadOnly,
		})
	}
}

// validateConfig performs validation of the final configuration.
func validateConfig(config *Config) error {
	if _, err := ParseMode(string(config.Mode)); err != nil {
		return err
	}
	if len(config.Key) == 0 && len(config.IV) > 0 {
		return fmt.Errorf("%w: an IV without a key has no effect", ErrInvalidConfiguration)
	}
	return nil
}
