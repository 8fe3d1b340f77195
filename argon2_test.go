package envault

import (
	"testing"

	"github.com/hengadev/errsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Params_Validate(t *testing.T) {
	tests := []struct {
		name     string
		params   Argon2Params
		wantErr  bool
		errCount int
		errKeys  []string // expected error fields
	}{
		{
			name: "valid parameters",
			params: Argon2Params{
				Memory:      19456,
				Iterations:  2,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
			wantErr: false,
		},
		{
			name: "aes-128 key length is valid",
			params: Argon2Params{
				Memory:      19456,
				Iterations:  2,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   16,
			},
			wantErr: false,
		},
		{
			name: "all parameters too low",
			params: Argon2Params{
				Memory:      1000,
				Iterations:  1,
				Parallelism: 0,
				SaltLength:  8,
				KeyLength:   24,
			},
			wantErr:  true,
			errCount: 5,
			errKeys:  []string{"memory", "iterations", "parallelism", "saltLength", "keyLength"},
		},
		{
			name: "memory too low",
			params: Argon2Params{
				Memory:      1000,
				Iterations:  2,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
			wantErr:  true,
			errCount: 1,
			errKeys:  []string{"memory"},
		},
		{
			name: "iterations too low",
			params: Argon2Params{
				Memory:      19456,
				Iterations:  1,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
			wantErr:  true,
			errCount: 1,
			errKeys:  []string{"iterations"},
		},
		{
			name: "key length not an aes key size",
			params: Argon2Params{
				Memory:      19456,
				Iterations:  2,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   24,
			},
			wantErr:  true,
			errCount: 1,
			errKeys:  []string{"keyLength"},
		},
		{
			name: "multiple errors",
			params: Argon2Params{
				Memory:      1000,
				Iterations:  1,
				Parallelism: 1,
				SaltLength:  8,
				KeyLength:   32,
			},
			wantErr:  true,
			errCount: 3,
			errKeys:  []string{"memory", "iterations", "saltLength"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()

			if tt.wantErr {
				assert.Error(t, err)

				errs, ok := err.(errsx.Map)
				if !ok {
					t.Fatal("expected error to be of type errsx.Map")
				}
				assert.Equal(t, tt.errCount, len(errs))

				for _, key := range tt.errKeys {
					if _, ok := errs[key]; !ok {
						t.Errorf("expected key '%s' in errsx.Map", key)
					}
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeriveKeyArgon2(t *testing.T) {
	salt := make([]byte, 16)
	for i := range salt {
		salt[i] = byte(i)
	}

	t.Run("nil params use defaults", func(t *testing.T) {
		key, err := DeriveKeyArgon2("correct horse", salt, nil)
		require.NoError(t, err)
		assert.Len(t, key, KeySizeFull)
	})

	t.Run("deterministic for same inputs", func(t *testing.T) {
		first, err := DeriveKeyArgon2("correct horse", salt, nil)
		require.NoError(t, err)
		second, err := DeriveKeyArgon2("correct horse", salt, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("different salt changes the key", func(t *testing.T) {
		first, err := DeriveKeyArgon2("correct horse", salt, nil)
		require.NoError(t, err)

		otherSalt := make([]byte, 16)
		copy(otherSalt, salt)
		otherSalt[0] ^= 0xFF
		second, err := DeriveKeyArgon2("correct horse", otherSalt, nil)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("key length follows params", func(t *testing.T) {
		params := DefaultArgon2Params()
		params.KeyLength = KeySizeStandard
		key, err := DeriveKeyArgon2("correct horse", salt, params)
		require.NoError(t, err)
		assert.Len(t, key, KeySizeStandard)
	})

	t.Run("short salt is rejected", func(t *testing.T) {
		_, err := DeriveKeyArgon2("correct horse", salt[:8], nil)
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("invalid params are rejected", func(t *testing.T) {
		params := DefaultArgon2Params()
		params.Memory = 1
		_, err := DeriveKeyArgon2("correct horse", salt, params)
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})
}

func TestGenerateSalt(t *testing.T) {
	first, err := GenerateSalt(16)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := GenerateSalt(16)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
