package envault

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsFile(t *testing.T) {
	file := DefaultOptionsFile()
	require.NoError(t, file.Validate())
	assert.Equal(t, "1", file.Version)
	assert.Equal(t, "cbc", file.Encryption.Mode)

	opts, err := file.Options()
	require.NoError(t, err)

	vault, err := New(opts...)
	require.NoError(t, err)
	assert.False(t, vault.Encrypted())
	assert.Equal(t, ModeCBC, vault.Mode())
}

func TestOptionsFileSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envault.yaml")
	file := &OptionsFile{
		Version: "1",
		Encryption: EncryptionConfig{
			Passphrase:   "secret",
			IVPassphrase: "vector",
			FullStrength: true,
			Mode:         "gcm",
		},
		Format: FormatConfig{
			Pretty:       true,
			OmitReadOnly: true,
		},
	}

	require.NoError(t, SaveOptionsFile(file, path))

	loaded, err := LoadOptionsFile(path)
	require.NoError(t, err)
	assert.Equal(t, file, loaded)
}

func TestLoadOptionsFileMissing(t *testing.T) {
	_, err := LoadOptionsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, IsIOError(err))
}

func TestLoadOptionsFileMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envault.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0o644))

	_, err := LoadOptionsFile(path)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestOptionsFileValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    OptionsFile
		wantErr bool
		errMsg  string
	}{
		{
			name: "passphrase only",
			file: OptionsFile{
				Encryption: EncryptionConfig{Passphrase: "secret"},
			},
		},
		{
			name: "hex key only",
			file: OptionsFile{
				Encryption: EncryptionConfig{
					Key: hex.EncodeToString(DeriveKey("secret", false)),
					IV:  hex.EncodeToString(DeriveIV("vector")),
				},
			},
		},
		{
			name: "key and passphrase conflict",
			file: OptionsFile{
				Encryption: EncryptionConfig{
					Key:        "00112233445566778899aabbccddeeff",
					Passphrase: "secret",
				},
			},
			wantErr: true,
			errMsg:  "key and passphrase",
		},
		{
			name: "key not hex",
			file: OptionsFile{
				Encryption: EncryptionConfig{Key: "zz"},
			},
			wantErr: true,
			errMsg:  "not valid hex",
		},
		{
			name: "iv not hex",
			file: OptionsFile{
				Encryption: EncryptionConfig{IV: "zz"},
			},
			wantErr: true,
			errMsg:  "not valid hex",
		},
		{
			name: "unknown mode",
			file: OptionsFile{
				Encryption: EncryptionConfig{Mode: "ctr"},
			},
			wantErr: true,
			errMsg:  "unknown cipher mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err))
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "1", tt.file.Version)
		})
	}
}

func TestOptionsFileOptions(t *testing.T) {
	t.Run("passphrase section", func(t *testing.T) {
		file := &OptionsFile{
			Encryption: EncryptionConfig{
				Passphrase:   "secret",
				IVPassphrase: "vector",
				FullStrength: true,
			},
			Format: FormatConfig{Pretty: true},
		}

		opts, err := file.Options()
		require.NoError(t, err)

		cfg := applyOptions(t, opts)
		assert.Equal(t, DeriveKey("secret", true), cfg.Key)
		assert.Equal(t, DeriveIV("vector"), cfg.IV)
		assert.True(t, cfg.Pretty)
	})

	t.Run("raw key section", func(t *testing.T) {
		key := DeriveKey("secret", false)
		iv := DeriveIV("vector")
		file := &OptionsFile{
			Encryption: EncryptionConfig{
				Key:  hex.EncodeToString(key),
				IV:   hex.EncodeToString(iv),
				Mode: "gcm",
			},
		}

		opts, err := file.Options()
		require.NoError(t, err)

		cfg := applyOptions(t, opts)
		assert.Equal(t, key, cfg.Key)
		assert.Equal(t, iv, cfg.IV)
		assert.Equal(t, ModeGCM, cfg.Mode)
	})

	t.Run("file and env produce the same vault behavior", func(t *testing.T) {
		file := &OptionsFile{
			Encryption: EncryptionConfig{Passphrase: "secret", IVPassphrase: "vector"},
		}
		opts, err := file.Options()
		require.NoError(t, err)

		fromFile, err := New(opts...)
		require.NoError(t, err)
		direct, err := New(WithPassphrase("secret", "vector", false))
		require.NoError(t, err)

		plaintext := []byte("same bytes in, same bytes out")
		a, err := fromFile.EncryptBytes(plaintext)
		require.NoError(t, err)
		b, err := direct.EncryptBytes(plaintext)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
