// Package tasks exposes the shlint gate as goyek tasks, so projects that
// drive their builds with goyek can add shell linting to the flow:
//
//	import (
//		"github.com/fredrikaverpil/shlint/tasks"
//		"github.com/goyek/x/boot"
//	)
//
//	func main() {
//		boot.Main()
//	}
package tasks

import (
	"io"
	"os"

	"github.com/goyek/goyek/v3"
	"github.com/goyek/x/cmd"

	"github.com/fredrikaverpil/shlint"
	"github.com/fredrikaverpil/shlint/internal/report"
	"github.com/fredrikaverpil/shlint/tools"
)

// Lint runs shellcheck over all tracked shell scripts in the repository.
var Lint = goyek.Define(goyek.Task{
	Name:  "sh-lint",
	Usage: "lint tracked shell scripts with shellcheck",
	Action: func(a *goyek.A) {
		cfg := &shlint.Config{
			Path:  ".",
			Tool:  tools.Shellcheck,
			Flags: []string{"--external-sources"},
		}
		// The build flow decides when to stop, so fatal must not exit.
		rep := report.New(os.Stderr, io.Discard, report.WithExit(func(int) {}))
		if err := shlint.Run(a.Context(), cfg, rep, shlint.StdOutput()); err != nil {
			a.Fatal(err)
		}
	},
})

// Fix rewrites tracked shell scripts in place with shfmt.
var Fix = goyek.Define(goyek.Task{
	Name:  "sh-fix",
	Usage: "rewrite shell scripts with shfmt -w",
	Action: func(a *goyek.A) {
		cmd.Exec(a, "shfmt -w .")
	},
})

// All formats first, then lints, mirroring the usual format-then-lint
// pairing in build pipelines.
var All = goyek.Define(goyek.Task{
	Name:  "sh",
	Usage: "format and lint shell scripts",
	Deps:  goyek.Deps{Fix, Lint},
})
