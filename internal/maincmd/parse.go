package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/parser"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFiles(ctx, stdio, args...)
}

// ParseFiles runs the scanner and parser phases over each file and prints a
// structural summary of the resulting IR graph. There is no pretty-printer
// in scope (see Non-goals), so this is the parse command's full output.
func ParseFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	for _, name := range files {
		g := ir.NewGraph()
		if _, err := parser.ParseFiles(ctx, g, name); err != nil {
			return printError(stdio, err)
		}
		fmt.Fprintf(stdio.Stdout, "%s: %d symbols, %d types, %d exprs, %d stmts\n",
			name, g.Symbols.Len(), g.Types.Len(), g.Exprs.Len(), g.Stmts.Len())
	}
	return nil
}
