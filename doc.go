// Package envault serializes Go values to files as JSON, optionally encrypted
// with AES, and keeps an in-memory journal of every save and load.
//
// A Vault bundles one serialization and encryption configuration. Values are
// encoded with a configurable codec (compact JSON by default), encrypted when
// key material is configured, and written to disk in one call:
//
//	vault, err := envault.New(
//	    envault.WithPassphrase("correct horse battery staple", "nonce seed", false),
//	    envault.WithPrettyPrint(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := vault.Save("settings.json", settings); err != nil {
//	    log.Fatal(err)
//	}
//
//	var loaded Settings
//	if err := vault.Load("settings.json", &loaded); err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - JSON serialization with pretty printing, tag filtering, and
//     case-sensitive field matching
//   - Optional AES encryption (CBC by default, GCM opt-in) with keys taken
//     directly or derived from passphrases via SHA-256 or Argon2id
//   - Pluggable codecs: JSON, CBOR, and gob
//   - Writable-path resolution for config files across platforms
//   - Configuration via options, environment variables, or a YAML file
//   - An append-only journal of every operation for debugging
//
// # Struct Tags
//
// JSON keys follow the json struct tag as usual. The envault tag adds
// directives on top:
//
//	type Settings struct {
//	    Volume  int    `json:"volume"`
//	    Theme   string `json:"theme" envault:"readonly"`
//	    Session string `json:"session" envault:"-"`
//	}
//
// The readonly directive marks fields that load from files but, with
// WithOmitReadOnlyFields, are skipped when saving. "-" excludes a field from
// both directions.
//
// # Security Model
//
// The default CBC mode carries no authentication tag. Decrypting with the
// wrong key or tampered ciphertext does not reliably fail: it can yield
// garbage bytes that only surface as a decode error, or in rare cases decode
// cleanly into wrong values. CBC files are obfuscated, not tamper-proof. Use
// ModeGCM where integrity matters and CBC compatibility does not.
//
// Key sizes are validated when an operation first needs the key, not when
// the vault is constructed, so a vault with a bad key fails on first use.
//
// # Environment Configuration
//
// OptionsFromEnv and OptionsFromEnvFile build options from ENVAULT_*
// variables, letting deployments configure encryption without code changes:
//
//	opts, err := envault.OptionsFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vault, err := envault.New(opts...)
//
// # Error Handling
//
// Failures wrap sentinel errors for classification with errors.Is, and the
// Is* predicates group them by concern:
//
//	if err := vault.Load(path, &out); err != nil {
//	    switch {
//	    case envault.IsIOError(err):
//	        // missing or unreadable file
//	    case envault.IsCryptoError(err):
//	        // wrong key material or corrupt ciphertext
//	    case envault.IsCodecError(err):
//	        // file contents do not decode into out
//	    }
//	}
//
// Every save and load is also recorded in the vault's journal, including the
// failure stage, via vault.Journal().
//
// # Testing
//
// NewTestVault builds a vault with deterministic key material for use in
// tests and examples:
//
//	func TestRoundTrip(t *testing.T) {
//	    vault := envault.NewTestVault(t)
//	    path := filepath.Join(t.TempDir(), "state.json")
//
//	    require.NoError(t, vault.Save(path, fixture))
//
//	    var got Fixture
//	    require.NoError(t, vault.Load(path, &got))
//	    assert.Equal(t, fixture, got)
//	}
package envault
