package envault

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/hengadev/errsx"
	"gopkg.in/yaml.v3"
)

// OptionsFile is the YAML representation of a Vault configuration, for
// projects that keep serialization settings in a committed file rather than
// the environment.
//
// Example:
//
//	version: "1"
//	encryption:
//	  passphrase: secret
//	  iv_passphrase: vector
//	  full_strength: true
//	  mode: cbc
//	format:
//	  pretty: true
type OptionsFile struct {
	Version    string           `yaml:"version"`
	Encryption EncryptionConfig `yaml:"encryption"`
	Format     FormatConfig     `yaml:"format"`
}

// EncryptionConfig holds the encryption section of an options file.
type EncryptionConfig struct {
	// Key and IV are hex-encoded raw key material. When set they take
	// precedence over the passphrase fields.
	Key string `yaml:"key,omitempty"`
	IV  string `yaml:"iv,omitempty"`

	// Passphrase derives the key (see DeriveKey). IVPassphrase derives the
	// IV and falls back to Passphrase when empty.
	Passphrase   string `yaml:"passphrase,omitempty"`
	IVPassphrase string `yaml:"iv_passphrase,omitempty"`
	FullStrength bool   `yaml:"full_strength,omitempty"`

	Mode string `yaml:"mode,omitempty"`
}

// FormatConfig holds the JSON formatting section of an options file.
type FormatConfig struct {
	Pretty        bool `yaml:"pretty"`
	OnlyTagged    bool `yaml:"only_tagged"`
	CaseSensitive bool `yaml:"case_sensitive"`
	OmitReadOnly  bool `yaml:"omit_read_only"`
}

// LoadOptionsFile loads and validates a Vault configuration from a YAML file.
func LoadOptionsFile(path string) (*OptionsFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewIOError("locating options file", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewIOError("reading options file", path, err)
	}

	file := &OptionsFile{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("%w: parsing options file '%s': %v", ErrInvalidConfiguration, path, err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}
	return file, nil
}

// SaveOptionsFile writes the configuration to a YAML file.
func SaveOptionsFile(file *OptionsFile, path string) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal options file: %w", err)
	}

	if err := os.WriteFile(path, data, DefaultPlaintextFileMode); err != nil {
		return NewIOError("writing options file", path, err)
	}
	return nil
}

// DefaultOptionsFile returns the configuration of a Vault built without
// options: no encryption, compact JSON.
func DefaultOptionsFile() *OptionsFile {
	return &OptionsFile{
		Version: "1",
		Encryption: EncryptionConfig{
			Mode: string(ModeCBC),
		},
	}
}

// Validate checks the file for contradictions and unparsable values, and
// defaults the version when unset.
func (f *OptionsFile) Validate() error {
	if f.Version == "" {
		f.Version = "1"
	}

	errs := errsx.Map{}

	if f.Encryption.Key != "" && f.Encryption.Passphrase != "" {
		errs.Set("encryption", fmt.Errorf("key and passphrase cannot both be set"))
	}
	if f.Encryption.Key != "" {
		if _, err := hex.DecodeString(f.Encryption.Key); err != nil {
			errs.Set("encryption.key", fmt.Errorf("not valid hex: %v", err))
		}
	}
	if f.Encryption.IV != "" {
		if _, err := hex.DecodeString(f.Encryption.IV); err != nil {
			errs.Set("encryption.iv", fmt.Errorf("not valid hex: %v", err))
		}
	}
	if _, err := ParseMode(f.Encryption.Mode); err != nil {
		errs.Set("encryption.mode", err)
	}

	if err := errs.AsError(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// Options converts the file into constructor options for New.
func (f *OptionsFile) Options() ([]Option, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var opts []Option
	switch {
	case f.Encryption.Key != "":
		key, err := hex.DecodeString(f.Encryption.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: encryption.key not valid hex: %v", ErrInvalidConfiguration, err)
		}
		iv, err := hex.DecodeString(f.Encryption.IV)
		if err != nil {
			return nil, fmt.Errorf("%w: encryption.iv not valid hex: %v", ErrInvalidConfiguration, err)
		}
		opts = append(opts, WithEncryptionKey(key, iv))
	case f.Encryption.Passphrase != "":
		opts = append(opts, WithPassphrase(f.Encryption.Passphrase, f.Encryption.IVPassphrase, f.Encryption.FullStrength))
	}

	if f.Encryption.Mode != "" {
		mode, err := ParseMode(f.Encryption.Mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMode(mode))
	}

	if f.Format.Pretty {
		opts = append(opts, WithPrettyPrint())
	}
	if f.Format.OnlyTagged {
		opts = append(opts, WithOnlyTaggedFields())
	}
	if f.Format.CaseSensitive {
		opts = append(opts, WithCaseSensitiveFields())
	}
	if f.Format.OmitReadOnly {
		opts = append(opts, WithOmitReadOnlyFields())
	}
	return opts, nil
}
