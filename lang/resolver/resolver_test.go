package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/zyc/lang/arena"
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/parser"
	"github.com/mna/zyc/lang/resolver"
	"github.com/stretchr/testify/require"
)

func resolveSource(t *testing.T, src string) (*ir.Graph, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.zy")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	g := ir.NewGraph()
	fs, err := parser.ParseFiles(context.Background(), g, path)
	require.NoError(t, err)

	files := fs.Files()
	require.Len(t, files, 1)

	return g, resolver.ResolveGraph(g, files[0])
}

// TestResolveForwardReferenceAcrossProcs exercises scenario S4: a proc may
// call another proc declared later in the same file, since every scope's
// symbol range is fully populated by the parser before resolution starts.
func TestResolveForwardReferenceAcrossProcs(t *testing.T) {
	g, err := resolveSource(t, `
		proc a() int { return b(); }
		proc b() int { return 0; }
	`)
	require.NoError(t, err)

	var callExpr *ir.Expr
	g.Exprs.All(func(_ arena.ID, e ir.Expr) {
		if e.Kind == ir.ExprSymref {
			cp := e
			ref := g.Symrefs.Get(arena.ID(cp.Data.(ir.SymrefExpr).Ref))
			if g.Strings.String(ref.Name) == "b" {
				callExpr = &cp
			}
		}
	})
	require.NotNil(t, callExpr)

	ref := g.Symrefs.Get(arena.ID(callExpr.Data.(ir.SymrefExpr).Ref))
	require.True(t, ref.Resolved())

	sym := g.Symbols.Get(arena.ID(ref.Sym))
	require.Equal(t, ir.SymbolProc, sym.Kind)
	require.Equal(t, "b", g.Strings.String(sym.Name))
}

// TestResolveParamShadowsOuterScope exercises nearest-ancestor-first lookup:
// a parameter named the same as a global data symbol resolves to the
// parameter, not the global.
func TestResolveParamShadowsOuterScope(t *testing.T) {
	g, err := resolveSource(t, `
		data x int;
		proc f(int x) int { return x; }
	`)
	require.NoError(t, err)

	var fSym *ir.Symbol
	g.Symbols.All(func(_ arena.ID, s ir.Symbol) {
		if g.Strings.String(s.Name) == "f" {
			cp := s
			fSym = &cp
		}
	})
	require.NotNil(t, fSym)
	proc := g.Procs.Get(arena.ID(fSym.Payload))

	body := g.Stmts.Get(arena.ID(proc.Body)).Data.(ir.CompoundStmt)
	child := g.ChildStmts.Get(arena.ID(body.FirstChild))
	ret := g.Stmts.Get(arena.ID(child.Child)).Data.(ir.ReturnStmt)
	expr := g.Exprs.Get(arena.ID(ret.Expr))
	require.Equal(t, ir.ExprSymref, expr.Kind)

	ref := g.Symrefs.Get(arena.ID(expr.Data.(ir.SymrefExpr).Ref))
	require.True(t, ref.Resolved())

	sym := g.Symbols.Get(arena.ID(ref.Sym))
	require.Equal(t, ir.SymbolParam, sym.Kind)
}

// TestResolveUndefinedSymbolIsFatal exercises scenario S5: a reference to an
// undeclared name produces an error naming the symbol.
func TestResolveUndefinedSymbolIsFatal(t *testing.T) {
	_, err := resolveSource(t, `
		proc f() int { return undeclared; }
	`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "undeclared")
}
