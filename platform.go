package shlint

import (
	"fmt"
	"runtime"
)

// OS name constants matching runtime.GOOS values.
const (
	Darwin  = "darwin"
	Linux   = "linux"
	Windows = "windows"
)

// Architecture constants in various naming conventions.
const (
	// Go-style architecture names (matching runtime.GOARCH).
	AMD64 = "amd64"
	ARM64 = "arm64"

	// Alternative naming conventions used by various tools.
	X8664   = "x86_64"
	AARCH64 = "aarch64"
)

// HostOS returns the current operating system (runtime.GOOS).
func HostOS() string {
	return runtime.GOOS
}

// HostArch returns the current architecture (runtime.GOARCH).
func HostArch() string {
	return runtime.GOARCH
}

// ArchToX8664 converts Go-style architecture names to x86_64/aarch64 naming.
//
//	amd64 -> x86_64
//	arm64 -> aarch64
//
// Other values are returned unchanged.
func ArchToX8664(arch string) string {
	switch arch {
	case AMD64:
		return X8664
	case ARM64:
		return AARCH64
	default:
		return arch
	}
}

// CheckPlatform verifies the host can run the supported validators.
// Only x86_64 hosts are supported; the gate runs before any argument
// parsing so a bad flag never masks the platform error.
func CheckPlatform() error {
	return checkArch(HostArch())
}

func checkArch(arch string) error {
	if arch != AMD64 {
		return fmt.Errorf("unsupported architecture %s: only %s is supported", ArchToX8664(arch), X8664)
	}
	return nil
}
