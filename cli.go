package shlint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fredrikaverpil/shlint/internal/report"
	"github.com/fredrikaverpil/shlint/tools"
)

const usage = `shlint - lint tracked shell scripts with an external validator

Usage:
  shlint --path <dir> --validator <name> --flags " <flags>" [--debug]

Options:
  -p, --path <dir>        directory whose tracked files are scanned
  -v, --validator <name>  validator to run: shellcheck, shfmt or bashate
                          (requires --path to be set first)
  -f, --flags <string>    flags passed to the validator; must start with a space
  -x, --debug             stream validator output as it is produced
  -h, --help              show this help
      --version           show version
`

// Main is the CLI entry point. It returns the process exit code.
func Main(args []string) int {
	out := StdOutput()
	rep := report.Open(out.Stderr)
	defer rep.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runCLI(ctx, rep, out, args); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprint(out.Stderr, usage)
		}
		stop()
		rep.Fatalf("%v", err)
		return 1
	}

	printFinalStatus(out)
	return 0
}

// runCLI gates on the platform, parses arguments and runs the pipeline.
// The platform check runs first so a bad flag never masks it.
func runCLI(ctx context.Context, rep *report.Reporter, out *Output, args []string) error {
	if err := CheckPlatform(); err != nil {
		return err
	}

	cfg, act, err := ParseArgs(args)
	if err != nil {
		return err
	}

	switch act {
	case actionHelp:
		fmt.Fprint(out.Stdout, usage)
		return nil
	case actionVersion:
		fmt.Fprintf(out.Stdout, "shlint %s\n", version())
		return nil
	}

	return Run(ctx, cfg, rep, out)
}

// action is what the parsed command line asks for.
type action int

const (
	actionRun action = iota
	actionHelp
	actionVersion
)

// longToShort maps recognized long-form options to their short forms.
// Unrecognized tokens pass through untouched.
var longToShort = map[string]string{
	"--flags":     "-f",
	"--path":      "-p",
	"--validator": "-v",
	"--debug":     "-x",
	"--help":      "-h",
}

// normalizeArgs translates long-form options to short form.
func normalizeArgs(args []string) []string {
	norm := make([]string, 0, len(args))
	for _, arg := range args {
		if short, ok := longToShort[arg]; ok {
			norm = append(norm, short)
			continue
		}
		norm = append(norm, arg)
	}
	return norm
}

// ParseArgs parses the argument vector into a Config.
//
// Options are positional: -v is only accepted once -p has been seen, since
// validator resolution historically depended on the path. The -f value
// must keep its leading space, a compatibility contract from when the
// flags string was interpolated directly after the validator binary name.
// Repeated options overwrite earlier occurrences.
func ParseArgs(args []string) (*Config, action, error) {
	cfg := &Config{}
	norm := normalizeArgs(args)

	for i := 0; i < len(norm); i++ {
		switch norm[i] {
		case "-h":
			return nil, actionHelp, nil
		case "--version":
			return nil, actionVersion, nil
		case "-x":
			cfg.Debug = true
		case "-p":
			v, ok := optionValue(norm, &i)
			if !ok {
				return nil, actionRun, usageErrorf("option -p requires a directory argument")
			}
			info, err := os.Stat(v)
			if err != nil || !info.IsDir() {
				return nil, actionRun, usageErrorf("path %q is not a directory", v)
			}
			cfg.Path = v
		case "-v":
			v, ok := optionValue(norm, &i)
			if !ok {
				return nil, actionRun, usageErrorf("option -v requires a validator name")
			}
			if cfg.Path == "" {
				return nil, actionRun, usageErrorf("Path must be defined first.")
			}
			tool, err := tools.Parse(v)
			if err != nil {
				return nil, actionRun, &UsageError{msg: err.Error()}
			}
			cfg.Tool = tool
			cfg.toolSet = true
		case "-f":
			v, ok := optionValue(norm, &i)
			if !ok {
				return nil, actionRun, usageErrorf("option -f requires a flags string")
			}
			if !strings.HasPrefix(v, " ") {
				return nil, actionRun, usageErrorf("Flags must start with a space")
			}
			cfg.Flags = strings.Fields(v)
			cfg.flagsSet = true
		default:
			return nil, actionRun, usageErrorf("unknown option %q", norm[i])
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, actionRun, err
	}
	return cfg, actionRun, nil
}

// optionValue consumes the next token as the current option's value.
func optionValue(args []string, i *int) (string, bool) {
	if *i+1 >= len(args) {
		return "", false
	}
	*i++
	return args[*i], true
}

// printFinalStatus prints a TTY-aware success message to stderr, keeping
// stdout clean for validator output.
func printFinalStatus(out *Output) {
	msg := "shlint is done!"
	if isTerminal(os.Stdout) {
		msg = "🚀 " + msg
	}
	fmt.Fprintln(out.Stderr, msg)
}
