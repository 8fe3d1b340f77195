package envault

import (
	"errors"
	"fmt"
)

var (
	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// Crypto errors
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrDecryptionFailed = errors.New("decryption failed")

	// Codec errors
	ErrEncodingFailed = errors.New("encoding failed")
	ErrDecodingFailed = errors.New("decoding failed")

	// Filesystem errors
	ErrIOFailed = errors.New("file operation failed")
)

func NewKeySizeError(size int) error {
	return fmt.Errorf("%w: encryption key must be %d or %d bytes, got %d",
		ErrInvalidConfiguration, KeySizeStandard, KeySizeFull, size)
}

func NewIVSizeError(size int) error {
	return fmt.Errorf("%w: initialization vector must be %d bytes, got %d",
		ErrInvalidConfiguration, IVSize, size)
}

func NewEncryptionError(cause error) error {
	return fmt.Errorf("%w: %v", ErrEncryptionFailed, cause)
}

func NewDecryptionError(cause error) error {
	return fmt.Errorf("%w: %v", ErrDecryptionFailed, cause)
}

func NewEncodingError(codec string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrEncodingFailed, codec, cause)
}

func NewDecodingError(codec string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrDecodingFailed, codec, cause)
}

func NewIOError(op string, path string, cause error) error {
	return fmt.Errorf("%w: %s '%s': %v", ErrIOFailed, op, path, cause)
}

// IsConfigurationError returns true if the error represents a configuration problem,
// such as an encryption key or IV of the wrong size.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}

// IsCryptoError returns true if the error represents a failure during
// encryption or decryption.
func IsCryptoError(err error) bool {
	return errors.Is(err, ErrEncryptionFailed) ||
		errors.Is(err, ErrDecryptionFailed)
}

// IsCodecError returns true if the error represents a serialization or
// deserialization problem.
func IsCodecError(err error) bool {
	return errors.Is(err, ErrEncodingFailed) ||
		errors.Is(err, ErrDecodingFailed)
}

// IsIOError returns true if the error represents a filesystem problem.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIOFailed)
}
