package shlint

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// WaitDelay is the time to wait after sending SIGINT before sending SIGKILL.
const WaitDelay = 5 * time.Second

var (
	colorEnvOnce sync.Once
	colorEnvVars []string
)

// colorForceEnvVars are the environment variables set to force color output.
var colorForceEnvVars = []string{
	"FORCE_COLOR=1",       // Node.js, chalk, many modern tools
	"CLICOLOR_FORCE=1",    // BSD/macOS convention
	"COLORTERM=truecolor", // Indicates color support
}

// initColorEnv detects if stdout is a TTY and prepares env vars to force colors.
func initColorEnv() {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return
	}
	if isTerminal(os.Stdout) {
		colorEnvVars = colorForceEnvVars
	}
}

// Exec executes an external command in dir and blocks until it exits.
//
// In debug mode, command output is streamed to out as it is produced.
// Otherwise output is captured and only surfaced in the error.
//
// Commands are terminated gracefully: SIGINT first, then SIGKILL after
// WaitDelay.
func Exec(ctx context.Context, dir string, debug bool, out *Output, name string, args ...string) error {
	colorEnvOnce.Do(initColorEnv)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), colorEnvVars...)
	cmd.WaitDelay = WaitDelay
	setGracefulShutdown(cmd)

	if debug {
		cmd.Stdout = out.Stdout
		cmd.Stderr = out.Stderr
		return cmd.Run()
	}

	// Capture output and only show on error.
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		if buf.Len() == 0 {
			return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
		}
		return fmt.Errorf("%s %s: %w\n%s", name, strings.Join(args, " "), err, buf.String())
	}
	return nil
}
