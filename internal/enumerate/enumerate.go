// Package enumerate finds the tracked shell scripts under a directory.
// Tracked files come from git; candidacy is decided by file mode or name
// suffix and confirmed by the shebang line.
package enumerate

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// shebangPattern recognizes an interpreter token on the first line.
// Case-sensitive word-boundary match, so "#!/usr/bin/env bash" and
// "#!/bin/sh -e" match while "#!/usr/bin/env python3" does not.
var shebangPattern = regexp.MustCompile(`^#!.*\b(sh|bash|dash|ksh)\b`)

// scriptSuffixes are the file name endings treated as shell scripts even
// without an executable bit.
var scriptSuffixes = []string{".sh", ".bash", ".dash", ".ksh"}

// WarnFunc receives one message per skipped lookalike file.
type WarnFunc func(format string, args ...any)

// Candidates returns the repo-relative paths of tracked shell scripts
// under dir, in the order git reports them. Files that pass the name/mode
// filter but whose first line is not a shell shebang are reported via
// warnf and skipped.
func Candidates(ctx context.Context, dir string, warnf WarnFunc) ([]string, error) {
	tracked, err := listTracked(ctx, dir)
	if err != nil {
		return nil, err
	}
	return filter(dir, tracked, warnf), nil
}

// listTracked lists all version-controlled files under dir at the current
// checked-in revision.
func listTracked(ctx context.Context, dir string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "ls-files")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("listing tracked files in %s: %w: %s", dir, err, msg)
		}
		return nil, fmt.Errorf("listing tracked files in %s: %w", dir, err)
	}
	return splitLines(out)
}

func splitLines(out []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	var paths []string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, scanner.Err()
}

// filter keeps the tracked paths that look like shell scripts and pass the
// shebang test. Symlinks, directories and submodule markers are dropped;
// only regular files are considered.
func filter(dir string, tracked []string, warnf WarnFunc) []string {
	var candidates []string
	for _, rel := range tracked {
		abs := filepath.Join(dir, rel)

		info, err := os.Lstat(abs)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if !looksLikeScript(rel, info.Mode()) {
			continue
		}

		line, err := firstLine(abs)
		if err != nil {
			warnf("Skipping %s: %v", rel, err)
			continue
		}
		if !shebangPattern.MatchString(line) {
			warnf("Skipping %s: first line is not a shell shebang", rel)
			continue
		}
		candidates = append(candidates, rel)
	}
	return candidates
}

// looksLikeScript reports whether a tracked file is worth a shebang check:
// any executable bit set, or a shell-script name suffix. Suffixes match
// exactly, so "foo.shrink" is not a script.
func looksLikeScript(name string, mode fs.FileMode) bool {
	if mode.Perm()&0o111 != 0 {
		return true
	}
	for _, suffix := range scriptSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// firstLine reads the first line of the file at path.
func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
