//go:build !unix

package shlint

import (
	"os"
	"os/exec"

	"golang.org/x/term"
)

// setGracefulShutdown configures the command for graceful shutdown.
// On non-Unix platforms, this is a no-op as SIGINT is not available.
// The command will be terminated using the default mechanism.
func setGracefulShutdown(cmd *exec.Cmd) {
	_ = cmd // cmd.Cancel defaults to os.Process.Kill
}

// isTerminal returns true if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
