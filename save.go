package envault

import (
	"fmt"
	"os"
)

// Save writes value to the file at path: encode with the configured codec,
// encrypt when a key is configured, write. Missing parent directories are
// created first; if that fails the write is still attempted, since the
// directory may exist despite the error. Encrypted files are written with
// mode 0600, plaintext with 0644.
//
// Writes are not atomic. A crash mid-write can leave a truncated file;
// callers needing stronger guarantees should write to a temporary path and
// rename themselves.
//
// Every outcome, including the final success, lands in the journal.
func (v *Vault) Save(path string, value any) error {
	if err := EnsureParentDir(path); err != nil {
		v.journal.record(fmt.Sprintf("save %s: ensure parent dir", path), err)
		v.logger.Warn().Err(err).Str("path", path).Msg("could not create parent directory")
	}

	data, err := v.codec.Marshal(value)
	if err != nil {
		return v.fail(fmt.Sprintf("save %s: encode", path), NewEncodingError(v.codec.Name(), err))
	}

	if v.Encrypted() {
		data, err = v.EncryptBytes(data)
		if err != nil {
			return v.fail(fmt.Sprintf("save %s: encrypt", path), err)
		}
	}

	if err := os.WriteFile(path, data, v.fileMode()); err != nil {
		return v.fail(fmt.Sprintf("save %s: write", path), NewIOError("writing", path, err))
	}

	v.ok("save "+path, len(data))
	return nil
}

func (v *Vault) fileMode() os.FileMode {
	if v.Encrypted() {
		return DefaultEncryptedFileMode
	}
	return DefaultPlaintextFileMode
}
