// Command shlint lints all tracked shell scripts under a directory with an
// external validator, aborting on the first failure.
//
// Usage:
//
//	shlint --path . --validator shellcheck --flags " -x"
package main

import (
	"os"

	"github.com/fredrikaverpil/shlint"
)

func main() {
	os.Exit(shlint.Main(os.Args[1:]))
}
