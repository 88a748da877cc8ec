package shlint

import (
	"runtime/debug"
)

// version returns the current version of shlint.
// It reads version info embedded by Go 1.18+ during `go build`.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	// Check if shlint is a dependency (another module importing us).
	for _, dep := range info.Deps {
		if dep.Path == "github.com/fredrikaverpil/shlint" {
			if dep.Version != "" && dep.Version != "v0.0.0" {
				return dep.Version
			}
			break
		}
	}

	// Try to get VCS info (works when building in the shlint repo).
	var revision, dirty string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				revision = s.Value[:7]
			} else {
				revision = s.Value
			}
		case "vcs.modified":
			if s.Value == "true" {
				dirty = "-dirty"
			}
		}
	}
	if revision != "" {
		return "dev-" + revision + dirty
	}

	return "dev"
}
