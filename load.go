package envault

import (
	"fmt"
	"os"
)

// Load reads the file at path and decodes it into out, which must be a
// non-nil pointer. Decryption runs first when a key is configured. The
// returned error says which stage failed: reading (ErrIOFailed), decrypting
// (ErrDecryptionFailed), or decoding (ErrDecodingFailed).
//
// On failure the contents of out are unspecified; use LoadValue for the
// zero-value-on-failure guarantee.
func (v *Vault) Load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return v.fail(fmt.Sprintf("load %s: read", path), NewIOError("reading", path, err))
	}

	if v.Encrypted() {
		data, err = v.DecryptBytes(data)
		if err != nil {
			return v.fail(fmt.Sprintf("load %s: decrypt", path), err)
		}
	}

	if err := v.codec.Unmarshal(data, out); err != nil {
		return v.fail(fmt.Sprintf("load %s: decode", path), NewDecodingError(v.codec.Name(), err))
	}

	v.ok("load "+path, len(data))
	return nil
}

// LoadValue reads the file at path and returns the decoded value. On any
// failure it returns T's zero value alongside the error, which makes the
// load-or-default pattern a one-liner:
//
//	settings, err := envault.LoadValue[Settings](vault, path)
//	if err != nil {
//	    // settings is the zero Settings, safe to use as the default
//	}
func LoadValue[T any](v *Vault, path string) (T, error) {
	var out T
	if err := v.Load(path, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
