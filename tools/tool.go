// Package tools defines the closed set of external shell-script validators
// that shlint can dispatch to, and how each one is invoked.
package tools

import (
	"fmt"
	"strings"
)

// Tool identifies one of the supported validators.
type Tool int

const (
	// Shellcheck runs koalaman/shellcheck, a shell static analyzer.
	Shellcheck Tool = iota
	// Shfmt runs mvdan/sh's shfmt in diff mode.
	Shfmt
	// Bashate runs OpenStack's bashate style checker.
	Bashate
)

// Spec describes how to invoke a validator.
// A Spec is resolved once at argument-parse time and never mutated.
type Spec struct {
	// Name is the binary name, looked up on PATH.
	Name string
	// SelfCheckArgs are passed to the binary to confirm it is runnable
	// before any file is scanned.
	SelfCheckArgs []string
	// BaseArgs are always passed before user flags and the file path.
	BaseArgs []string
}

// specs maps each Tool to its invocation. Adding a validator means adding
// a Tool constant and an entry here.
var specs = map[Tool]Spec{
	Shellcheck: {
		Name:          "shellcheck",
		SelfCheckArgs: []string{"--version"},
	},
	Shfmt: {
		Name:          "shfmt",
		SelfCheckArgs: []string{"--version"},
		BaseArgs:      []string{"-d"},
	},
	Bashate: {
		Name:          "bashate",
		SelfCheckArgs: []string{"--version"},
	},
}

// Parse maps a validator name to its Tool.
// Unknown names produce the "Invalid validator option" error.
func Parse(name string) (Tool, error) {
	switch name {
	case "shellcheck":
		return Shellcheck, nil
	case "shfmt":
		return Shfmt, nil
	case "bashate":
		return Bashate, nil
	default:
		return 0, fmt.Errorf("Invalid validator option: %q (supported: %s)",
			name, strings.Join(Names(), ", "))
	}
}

// String returns the validator's binary name.
func (t Tool) String() string {
	return specs[t].Name
}

// Spec returns the invocation spec for the validator.
func (t Tool) Spec() Spec {
	return specs[t]
}

// CheckArgv returns the argument vector for the pre-flight self-check.
func (s Spec) CheckArgv() []string {
	return append([]string{s.Name}, s.SelfCheckArgs...)
}

// LintArgv returns the argument vector for linting a single file.
// The file path is always the final argument.
func (s Spec) LintArgv(flags []string, file string) []string {
	argv := []string{s.Name}
	argv = append(argv, s.BaseArgs...)
	argv = append(argv, flags...)
	return append(argv, file)
}

// Names returns the supported validator names in definition order.
func Names() []string {
	return []string{Shellcheck.String(), Shfmt.String(), Bashate.String()}
}
