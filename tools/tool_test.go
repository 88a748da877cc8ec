package tools

import (
	"slices"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want Tool
	}{
		{"shellcheck", Shellcheck},
		{"shfmt", Shfmt},
		{"bashate", Bashate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.name, got, tc.want)
			}
			if got.String() != tc.name {
				t.Errorf("String() = %q, want %q", got.String(), tc.name)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"", "pylint", "SHELLCHECK", "shell check"} {
		_, err := Parse(name)
		if err == nil {
			t.Errorf("Parse(%q) = nil error, want failure", name)
			continue
		}
		if !strings.Contains(err.Error(), "Invalid validator option") {
			t.Errorf("Parse(%q) error = %q, want it to contain %q", name, err, "Invalid validator option")
		}
	}
}

func TestCheckArgv(t *testing.T) {
	t.Parallel()
	for _, tool := range []Tool{Shellcheck, Shfmt, Bashate} {
		argv := tool.Spec().CheckArgv()
		if argv[0] != tool.String() {
			t.Errorf("CheckArgv()[0] = %q, want binary name %q", argv[0], tool.String())
		}
		if len(argv) < 2 {
			t.Errorf("%s self-check has no arguments: %v", tool, argv)
		}
	}
}

func TestLintArgv(t *testing.T) {
	t.Parallel()

	t.Run("file path is the final argument", func(t *testing.T) {
		t.Parallel()
		argv := Shellcheck.Spec().LintArgv([]string{"-x", "-e", "SC1091"}, "/repo/deploy.sh")
		want := []string{"shellcheck", "-x", "-e", "SC1091", "/repo/deploy.sh"}
		if !slices.Equal(argv, want) {
			t.Errorf("LintArgv = %v, want %v", argv, want)
		}
	})

	t.Run("base args precede user flags", func(t *testing.T) {
		t.Parallel()
		argv := Shfmt.Spec().LintArgv([]string{"-i", "2"}, "x.sh")
		want := []string{"shfmt", "-d", "-i", "2", "x.sh"}
		if !slices.Equal(argv, want) {
			t.Errorf("LintArgv = %v, want %v", argv, want)
		}
	})

	t.Run("no flags", func(t *testing.T) {
		t.Parallel()
		argv := Bashate.Spec().LintArgv(nil, "x.sh")
		want := []string{"bashate", "x.sh"}
		if !slices.Equal(argv, want) {
			t.Errorf("LintArgv = %v, want %v", argv, want)
		}
	})
}
