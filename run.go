package shlint

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fredrikaverpil/shlint/internal/enumerate"
	"github.com/fredrikaverpil/shlint/internal/report"
)

// execCommand and listCandidates are indirections for tests.
var (
	execCommand    = Exec
	listCandidates = enumerate.Candidates
)

// Run executes the full pipeline for cfg: pre-flight self-check, file
// enumeration, then the sequential dispatch loop. The first failure aborts
// the run; there is no retry and no continue-on-error mode.
func Run(ctx context.Context, cfg *Config, rep *report.Reporter, out *Output) error {
	spec := cfg.Tool.Spec()

	// Confirm the validator is runnable before enumerating anything.
	check := spec.CheckArgv()
	if err := execCommand(ctx, cfg.Path, cfg.Debug, out, check[0], check[1:]...); err != nil {
		return fmt.Errorf("failed to check %s version: %w", cfg.Tool, err)
	}

	files, err := listCandidates(ctx, cfg.Path, rep.Warnf)
	if err != nil {
		return err
	}

	for _, file := range files {
		argv := spec.LintArgv(cfg.Flags, absPath(cfg.Path, file))
		if err := execCommand(ctx, cfg.Path, cfg.Debug, out, argv[0], argv[1:]...); err != nil {
			return fmt.Errorf("linting %s: %w", file, err)
		}
		rep.Infof("Linting %s", file)
	}

	rep.Infof("Successfully linted shell scripts with %s", cfg.Tool)
	return nil
}

// absPath resolves a repo-relative candidate to a fully qualified path,
// which is what the validator receives as its final argument.
func absPath(dir, file string) string {
	joined := filepath.Join(dir, file)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return joined
	}
	return abs
}
