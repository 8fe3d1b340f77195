package envault

import (
	"runtime"
)

// OS identifies the operating system family the process runs on, as far as
// writable-path resolution is concerned.
type OS int

const (
	// OSOther covers platforms without a conventional per-user configuration
	// directory layout (mobile, wasm, plan9, ...).
	OSOther OS = iota
	OSLinux
	OSWindows
	OSMac
	OSFreeBSD
)

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSWindows:
		return "windows"
	case OSMac:
		return "darwin"
	case OSFreeBSD:
		return "freebsd"
	}
	return "other"
}

// Desktop reports whether the platform is a desktop or server system where
// both an executable directory and a per-user configuration directory exist.
func (o OS) Desktop() bool {
	return o != OSOther
}

// HostOS classifies the platform the binary was built for.
func HostOS() OS {
	return classifyOS(runtime.GOOS)
}

func classifyOS(goos string) OS {
	switch goos {
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	case "darwin":
		return OSMac
	case "freebsd":
		return OSFreeBSD
	}
	return OSOther
}

// IsDesktopOS reports whether the current platform counts as a desktop or
// server system. See OS.Desktop.
func IsDesktopOS() bool {
	return HostOS().Desktop()
}
