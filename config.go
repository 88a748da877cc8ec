package shlint

import (
	"fmt"

	"github.com/fredrikaverpil/shlint/tools"
)

// Config captures everything a run needs. It is built once by ParseArgs
// and treated as immutable afterwards.
type Config struct {
	// Path is the directory whose tracked files are scanned.
	Path string
	// Tool is the resolved validator.
	Tool tools.Tool
	// Flags are the user-supplied validator flags, already split into
	// argv fields.
	Flags []string
	// Debug streams validator output and enables trace-level reporting.
	Debug bool

	// toolSet and flagsSet distinguish "option never given" from zero
	// values, since the zero Tool and an empty flag list are both valid.
	toolSet  bool
	flagsSet bool
}

// validate checks that every mandatory option was provided.
func (c *Config) validate() error {
	switch {
	case c.Path == "":
		return &UsageError{msg: "missing required option -p/--path"}
	case !c.toolSet:
		return &UsageError{msg: "missing required option -v/--validator"}
	case !c.flagsSet:
		return &UsageError{msg: "missing required option -f/--flags"}
	}
	return nil
}

// UsageError is a malformed or missing command-line argument.
// The CLI prints usage text when it sees one.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

// usageErrorf builds a UsageError from a format string.
func usageErrorf(format string, args ...any) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}
