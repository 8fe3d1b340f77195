package envault

// Key size constants
const (
	// KeySizeStandard is the key length in bytes produced by truncated
	// derivation. Selects AES-128.
	KeySizeStandard = 16

	// KeySizeFull is the key length in bytes produced by full-strength
	// derivation. Selects AES-256.
	KeySizeFull = 32

	// IVSize is the required initialization vector length in bytes.
	// Equal to the AES block size.
	IVSize = 16
)

// Environment variable names
const (
	// EnvKey is the environment variable name for the hex-encoded AES key.
	// Must decode to 16 or 32 bytes. Takes precedence over EnvPassphrase.
	EnvKey = "ENVAULT_KEY"

	// EnvIV is the environment variable name for the hex-encoded
	// initialization vector. Must decode to 16 bytes.
	EnvIV = "ENVAULT_IV"

	// EnvPassphrase is the environment variable name for the key passphrase.
	// The key is derived from it with DeriveKey.
	EnvPassphrase = "ENVAULT_PASSPHRASE"

	// EnvIVPassphrase is the environment variable name for the IV passphrase.
	// When unset, the IV is derived from EnvPassphrase instead.
	EnvIVPassphrase = "ENVAULT_IV_PASSPHRASE"

	// EnvFullStrength is the environment variable name for the full-strength
	// derivation toggle. Accepts the values strconv.ParseBool accepts.
	EnvFullStrength = "ENVAULT_FULL_STRENGTH"

	// EnvMode is the environment variable name for the cipher mode.
	// Accepts "cbc" or "gcm". Default: cbc.
	EnvMode = "ENVAULT_MODE"

	// EnvPretty is the environment variable name for the pretty-print toggle.
	EnvPretty = "ENVAULT_PRETTY"

	// EnvOnlyTagged is the environment variable name for the tagged-fields-only toggle.
	EnvOnlyTagged = "ENVAULT_ONLY_TAGGED"

	// EnvCaseSensitive is the environment variable name for the
	// case-sensitive field matching toggle.
	EnvCaseSensitive = "ENVAULT_CASE_SENSITIVE"

	// EnvOmitReadOnly is the environment variable name for the toggle that
	// skips fields tagged `envault:"readonly"` during serialization.
	EnvOmitReadOnly = "ENVAULT_OMIT_READONLY"
)

// Default values
const (
	// DefaultEncryptedFileMode is the permission mode for files holding ciphertext.
	DefaultEncryptedFileMode = 0o600

	// DefaultPlaintextFileMode is the permission mode for files holding plain JSON.
	DefaultPlaintextFileMode = 0o644

	// DefaultDirMode is the permission mode used when creating parent directories.
	DefaultDirMode = 0o755
)
