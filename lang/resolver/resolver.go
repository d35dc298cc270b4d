// Package resolver binds every Symref in an ir.Graph to the Symbol it
// refers to, by walking the scope chain from the Symref's originating
// scope up through Scope.Parent to the global scope.
//
// Unlike a closure-capturing language resolver, this language has exactly
// two kinds of scope (global and proc) and no nested block scopes, so
// there is no free-variable/cell machinery here: resolution is a flat
// nearest-ancestor-first name lookup against each scope's contiguous
// symbol range.
package resolver

import (
	"fmt"

	"github.com/mna/zyc/lang/arena"
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/scanner"
	"github.com/mna/zyc/lang/token"
)

// ResolveGraph binds every Symref recorded in g against the Symbol it
// names, walking from the Symref's RefScope outward to the global scope.
// file is used only to expand a Symref's originating token.Pos into a
// human-readable token.Position for diagnostics; multi-file linking is out
// of scope (see Non-goals), so a single compilation resolves against a
// single source file.
//
// Because the parser has already fully populated every scope's symbol
// range before resolution begins, forward references — within a proc, or
// across proc boundaries — resolve uniformly regardless of declaration
// order.
//
// The returned error, if non-nil, is guaranteed to be a scanner.ErrorList.
func ResolveGraph(g *ir.Graph, file *token.File) error {
	var errs scanner.ErrorList

	g.Symrefs.All(func(id arena.ID, ref ir.Symref) {
		sym, ok := lookup(g, ref.RefScope, ref.Name)
		if !ok {
			pos := g.Tokens.Get(arena.ID(ref.Tok)).Pos
			errs.Add(file.Position(pos), fmt.Sprintf("undefined: %s", g.Strings.String(ref.Name)))
			return
		}
		ref.Sym = sym
		g.Symrefs.Set(id, ref)
	})

	errs.Sort()
	return errs.Err()
}

// lookup walks scope and its ancestors, nearest first, linearly scanning
// each scope's contiguous symbol range for a Symbol named name. The walk
// ends at the first scope with no parent, rather than checking for
// equality against g.Global specifically: a root is a root regardless of
// which scope id holds it, and tying termination to a single well-known id
// is exactly what let the parser mint an unreachable second "global" scope
// before without anything noticing.
func lookup(g *ir.Graph, scope ir.ScopeID, name arena.String) (ir.SymbolID, bool) {
	for {
		sc := g.Scopes.Get(arena.ID(scope))
		for i := 0; i < sc.NumSymbols; i++ {
			id := ir.SymbolID(int(sc.FirstSymbol) + i)
			sym := g.Symbols.Get(arena.ID(id))
			if sym.Name == name {
				return id, true
			}
		}
		if !sc.Parent.Valid() {
			return 0, false
		}
		scope = sc.Parent
	}
}
