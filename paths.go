package envault

import (
	"os"
	"path/filepath"
)

// WritablePath resolves rel against a directory the process can write data
// files to. With preferCurrentDir set on a desktop platform the base is the
// directory holding the running executable, which keeps data next to the
// binary for portable installs. Otherwise the base is the user's
// configuration directory as reported by os.UserConfigDir.
//
// Only the path is computed; no directory is created. Pair with
// EnsureParentDir or let Save handle it.
func WritablePath(rel string, preferCurrentDir bool) (string, error) {
	if preferCurrentDir && IsDesktopOS() {
		exe, err := os.Executable()
		if err != nil {
			return "", NewIOError("resolving executable path for", rel, err)
		}
		return filepath.Join(filepath.Dir(exe), rel), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", NewIOError("resolving user config dir for", rel, err)
	}
	return filepath.Join(base, rel), nil
}

// EnsureParentDir creates every missing directory on the way to path's
// parent. Existing directories are left untouched.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return NewIOError("creating directory", dir, err)
	}
	return nil
}

// FileExists reports whether path names an existing file or directory.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
