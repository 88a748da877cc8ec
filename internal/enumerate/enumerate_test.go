package enumerate

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	return path
}

func TestShebangPattern(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"#!/bin/bash", true},
		{"#!/bin/sh", true},
		{"#!/bin/sh -e", true},
		{"#!/usr/bin/env bash", true},
		{"#!/usr/bin/dash", true},
		{"#!/bin/ksh", true},
		{"#!/usr/bin/env python3", false},
		{"#!/usr/bin/fish", false},
		{"# not a shebang at all", false},
		{"echo hello", false},
		{"", false},
		// Case-sensitive: BASH is not an interpreter token.
		{"#!/bin/BASH", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, shebangPattern.MatchString(tc.line), "line: %q", tc.line)
	}
}

func TestLooksLikeScript(t *testing.T) {
	tests := []struct {
		name string
		mode os.FileMode
		want bool
	}{
		{"deploy.sh", 0o644, true},
		{"profile.bash", 0o644, true},
		{"init.dash", 0o644, true},
		{"env.ksh", 0o644, true},
		{"run", 0o755, true},
		{"notes.txt", 0o644, false},
		// Suffix matching is exact: .shrink is not a script.
		{"foo.shrink", 0o644, false},
		{"foo.shrink", 0o755, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, looksLikeScript(tc.name, tc.mode),
			"name=%q mode=%v", tc.name, tc.mode)
	}
}

func TestFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.sh", "#!/bin/bash\necho ok\n", 0o644)
	writeFile(t, dir, "tool.py", "#!/usr/bin/env python3\nprint()\n", 0o755)
	writeFile(t, dir, "notes.txt", "just text\n", 0o644)
	writeFile(t, dir, "exec-script", "#!/bin/sh\n", 0o755)
	writeFile(t, dir, "fake.sh", "echo no shebang\n", 0o644)

	tracked := []string{"good.sh", "tool.py", "notes.txt", "exec-script", "fake.sh", "gone.sh"}

	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	got := filter(dir, tracked, warnf)

	// Candidates keep the enumerator's order.
	assert.Equal(t, []string{"good.sh", "exec-script"}, got)

	// tool.py and fake.sh pass the name/mode filter but fail the shebang
	// test; notes.txt and the missing file are dropped silently.
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "tool.py")
	assert.Contains(t, warnings[1], "fake.sh")
}

func TestFilterSkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "real.sh", "#!/bin/bash\n", 0o755)
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link.sh")))

	got := filter(dir, []string{"real.sh", "link.sh"}, func(string, ...any) {})
	assert.Equal(t, []string{"real.sh"}, got)
}

func TestFirstLine(t *testing.T) {
	dir := t.TempDir()

	t.Run("newline terminated", func(t *testing.T) {
		path := writeFile(t, dir, "a.sh", "#!/bin/sh\necho hi\n", 0o644)
		line, err := firstLine(path)
		require.NoError(t, err)
		assert.Equal(t, "#!/bin/sh", line)
	})

	t.Run("single line without newline", func(t *testing.T) {
		path := writeFile(t, dir, "b.sh", "#!/bin/bash", 0o644)
		line, err := firstLine(path)
		require.NoError(t, err)
		assert.Equal(t, "#!/bin/bash", line)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "c.sh", "", 0o644)
		line, err := firstLine(path)
		require.NoError(t, err)
		assert.Equal(t, "", line)
	})

	t.Run("crlf", func(t *testing.T) {
		path := writeFile(t, dir, "d.sh", "#!/bin/bash\r\necho hi\r\n", 0o644)
		line, err := firstLine(path)
		require.NoError(t, err)
		assert.Equal(t, "#!/bin/bash", line)
	})
}

func TestSplitLines(t *testing.T) {
	paths, err := splitLines([]byte("a.sh\nsub/b.sh\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.sh", "sub/b.sh"}, paths)

	paths, err = splitLines(nil)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

// TestCandidatesGit exercises the git-backed listing end to end.
func TestCandidatesGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	ctx := context.Background()

	git := func(args ...string) {
		t.Helper()
		cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	git("init", "-q")

	writeFile(t, dir, "deploy.sh", "#!/bin/bash\necho deploy\n", 0o755)
	writeFile(t, dir, "script.py", "#!/usr/bin/env python3\n", 0o755)
	writeFile(t, dir, "untracked.sh", "#!/bin/sh\n", 0o755)
	git("add", "deploy.sh", "script.py")

	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	got, err := Candidates(ctx, dir, warnf)
	require.NoError(t, err)

	// Only tracked shell scripts are candidates; the untracked one is
	// invisible and the python script is warned about.
	assert.Equal(t, []string{"deploy.sh"}, got)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "script.py")
}

func TestListTrackedOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	// os.TempDir is typically outside any repository.
	dir := t.TempDir()
	_, err := listTracked(context.Background(), dir)
	assert.Error(t, err)
}
