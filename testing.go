package envault

// This file provides test utilities for use in examples and external test
// suites.

import (
	"testing"
)

// Deterministic passphrases used by NewTestVault. The derived key and IV are
// stable across runs so encrypted fixtures can be committed and compared.
// Never use these outside of tests.
const (
	TestPassphrase   = "envault-test-passphrase"
	TestIVPassphrase = "envault-test-iv"
)

// TestVaultOptions provides configuration for creating test vault instances.
type TestVaultOptions struct {
	Plaintext    bool     // If true, the vault reads and writes unencrypted files
	FullStrength bool     // If true, derives a 32-byte key (AES-256) instead of 16
	Mode         Mode     // Encryption mode; empty means ModeCBC
	Extra        []Option // Applied after the defaults, so they win where they overlap
}

// NewTestVault creates a Vault configured for testing. The default instance
// encrypts with key material derived from TestPassphrase and TestIVPassphrase
// and uses compact JSON, matching what New produces for the same options.
func NewTestVault(tb testing.TB, options ...*TestVaultOptions) *Vault {
	tb.Helper()

	var opts *TestVaultOptions
	if len(options) > 0 && options[0] != nil {
		opts = options[0]
	} else {
		opts = &TestVaultOptions{}
	}

	var cfg []Option
	if !opts.Plaintext {
		cfg = append(cfg, WithPassphrase(TestPassphrase, TestIVPassphrase, opts.FullStrength))
	}
	if opts.Mode != "" {
		cfg = append(cfg, WithMode(opts.Mode))
	}
	cfg = append(cfg, opts.Extra...)

	vault, err := New(cfg...)
	if err != nil {
		tb.Fatalf("Failed to create test vault: %v", err)
	}

	return vault
}

// TestKeyMaterial returns the key and IV NewTestVault derives, so tests can
// decrypt fixtures out of band or build a second vault over the same files.
func TestKeyMaterial(fullStrength bool) (key, iv []byte) {
	return DeriveKey(TestPassphrase, fullStrength), DeriveIV(TestIVPassphrase)
}
