package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/zyc/compiler"
)

func (c *Cmd) Check(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CheckFiles(ctx, stdio, args...)
}

// CheckFiles runs the full pipeline (scan, parse, resolve, complete) over
// each file independently (multi-file linking is out of scope) and prints
// one "ok" or diagnostic line per file. The first file that fails aborts
// the run and sets a non-zero exit code, per the fail-fast propagation
// policy.
func CheckFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	for _, name := range files {
		if _, err := compiler.Compile(ctx, name); err != nil {
			return printError(stdio, err)
		}
		fmt.Fprintf(stdio.Stdout, "%s: ok\n", name)
	}
	return nil
}
