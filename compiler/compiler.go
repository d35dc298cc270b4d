// Package compiler wires the front-end phases (parse, resolve, complete)
// into the single entry point used by cmd/zyc and anyone embedding this
// module as a library, replacing the teacher's package-level globals with
// a value explicitly threaded through each phase.
package compiler

import (
	"context"

	"github.com/mna/zyc/lang/complete"
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/parser"
	"github.com/mna/zyc/lang/resolver"
	"github.com/mna/zyc/lang/token"
)

// Result is the IR graph and the source position context produced by
// compiling a single file, returned even on failure so a caller can inspect
// whatever was built before the error.
type Result struct {
	Graph *ir.Graph
	File  *token.File
}

// Compile runs every front-end phase over path in order — parse, resolve,
// complete — stopping at the first one that reports an error. This is the
// fail-fast composition spec.md §7 requires even though each phase,
// individually, is a non-aborting, library-usable pass that returns its
// errors rather than panicking across a package boundary.
//
// Multi-file linking is out of scope (see Non-goals), so each call
// compiles exactly one file into its own Graph.
func Compile(ctx context.Context, path string) (Result, error) {
	g := ir.NewGraph()

	fs, err := parser.ParseFiles(ctx, g, path)
	res := Result{Graph: g}
	if len(fs.Files()) > 0 {
		res.File = fs.Files()[0]
	}
	if err != nil {
		return res, err
	}

	if err := resolver.ResolveGraph(g, res.File); err != nil {
		return res, err
	}
	if err := complete.CompleteTypes(g, res.File); err != nil {
		return res, err
	}
	return res, nil
}
