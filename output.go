package shlint

import (
	"io"
	"os"
)

// Output holds the stdout and stderr writers used for command output.
// Tests swap in buffers; the CLI uses StdOutput.
type Output struct {
	Stdout io.Writer
	Stderr io.Writer
}

// StdOutput returns an Output that writes to os.Stdout and os.Stderr.
func StdOutput() *Output {
	return &Output{Stdout: os.Stdout, Stderr: os.Stderr}
}
