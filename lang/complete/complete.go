// Package complete implements the type completer: the fixpoint sweep that
// marks every ir.Type Complete once its structural dependencies are all
// complete, after the resolver has bound every Symref.
package complete

import (
	"fmt"

	"github.com/mna/zyc/lang/arena"
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/scanner"
	"github.com/mna/zyc/lang/token"
)

// CompleteTypes repeatedly sweeps every Type in g, marking complete those
// whose direct dependencies are already complete, until a full sweep makes
// no further progress. Since completeness is monotonic (a Type, once
// marked complete, is never unmarked) and the number of types is finite,
// this always terminates in at most len(types) sweeps.
//
// Once the sweep reaches fixpoint, any Type still incomplete indicates an
// unresolvable cycle (for a plain named-type reference or an entity built
// directly from one) or an unresolved inner Symref; both are reported as
// errors. file is used only to expand a reference's originating token.Pos
// into a human-readable token.Position, mirroring resolver.ResolveGraph.
//
// The returned error, if non-nil, is guaranteed to be a scanner.ErrorList.
func CompleteTypes(g *ir.Graph, file *token.File) error {
	for {
		progressed := false
		g.Types.All(func(id arena.ID, t ir.Type) {
			if t.Complete {
				return
			}
			if next, ok := completeStep(g, t); ok {
				g.Types.Set(id, next)
				progressed = true
			}
		})
		if !progressed {
			break
		}
	}

	var errs scanner.ErrorList
	g.Types.All(func(id arena.ID, t ir.Type) {
		if t.Complete {
			return
		}
		errs.Add(incompletePosition(g, file, t), incompleteMessage(g, t))
	})
	errs.Sort()
	return errs.Err()
}

// completeStep checks whether t's direct dependencies are now complete. It
// returns the (possibly updated, e.g. with a cached ResolvedType) Type and
// true if t newly became complete; otherwise it returns t unchanged and
// false.
func completeStep(g *ir.Graph, t ir.Type) (ir.Type, bool) {
	switch t.Kind {
	case ir.TypeBase:
		// Base types are marked complete at registration time; reaching here
		// would mean one slipped through, so treat it as trivially complete.
		t.Complete = true
		return t, true

	case ir.TypeEntity:
		data := t.Data.(ir.EntityType)
		for _, m := range data.Members {
			if !g.Types.Get(arena.ID(m)).Complete {
				return t, false
			}
		}
		t.Complete = true
		return t, true

	case ir.TypeArray:
		data := t.Data.(ir.ArrayType)
		if !g.Types.Get(arena.ID(data.Index)).Complete || !g.Types.Get(arena.ID(data.Value)).Complete {
			return t, false
		}
		t.Complete = true
		return t, true

	case ir.TypeProc:
		data := t.Data.(ir.ProcType)
		if !g.Types.Get(arena.ID(data.Return)).Complete {
			return t, false
		}
		for i := 0; i < data.NumParams; i++ {
			pt := g.ParamTypes.Get(arena.ID(data.FirstParamType) + arena.ID(i))
			if !g.Types.Get(arena.ID(pt.Arg)).Complete {
				return t, false
			}
		}
		t.Complete = true
		return t, true

	case ir.TypeReference:
		return completeReferenceStep(g, t)

	default:
		return t, false
	}
}

// completeReferenceStep handles the one kind-specific asymmetry in the
// completion rule: a bare named-type reference is complete only once its
// target type is complete (it denotes that type under another name), while
// a pointer reference is complete as soon as its symref resolves — it has
// fixed size and identity regardless of whether the pointee has finished
// completing, which is what lets two entities point at each other and
// still reach fixpoint.
func completeReferenceStep(g *ir.Graph, t ir.Type) (ir.Type, bool) {
	data := t.Data.(ir.ReferenceType)
	ref := g.Symrefs.Get(arena.ID(data.Ref))
	if !ref.Resolved() {
		return t, false
	}

	sym := g.Symbols.Get(arena.ID(ref.Sym))
	if sym.Kind != ir.SymbolType {
		// A reference must resolve to a SYMBOL_TYPE (spec); anything else
		// (e.g. `data y x;` where x is itself a data symbol) would reinterpret
		// a DataID/ProcID/ParamID as a TypeID below. Leave it incomplete
		// forever rather than chase a bogus id — incompleteMessage reports it
		// as a semantic error, not a false cycle, once the sweep reaches
		// fixpoint.
		return t, false
	}
	target := ir.TypeID(sym.Payload)

	if data.Pointer {
		data.ResolvedType = target
		t.Data = data
		t.Complete = true
		return t, true
	}

	if !g.Types.Get(arena.ID(target)).Complete {
		return t, false
	}
	data.ResolvedType = target
	t.Data = data
	t.Complete = true
	return t, true
}

// incompletePosition locates a reasonable diagnostic position for an
// incomplete type: the originating symref's token for a reference, or a
// Position carrying only the file name (line and column unknown) when no
// single token is responsible (an entity/array/proc made incomplete by one
// of its members, which will have its own diagnostic).
func incompletePosition(g *ir.Graph, file *token.File, t ir.Type) token.Position {
	if t.Kind != ir.TypeReference {
		return file.Position(token.Pos(0))
	}
	ref := g.Symrefs.Get(arena.ID(t.Data.(ir.ReferenceType).Ref))
	tokVal := g.Tokens.Get(arena.ID(ref.Tok))
	return file.Position(tokVal.Pos)
}

func incompleteMessage(g *ir.Graph, t ir.Type) string {
	if t.Kind != ir.TypeReference {
		return fmt.Sprintf("incomplete %s type (cyclic or unresolvable member)", t.Kind)
	}
	ref := g.Symrefs.Get(arena.ID(t.Data.(ir.ReferenceType).Ref))
	name := g.Strings.String(ref.Name)
	if ref.Resolved() {
		if sym := g.Symbols.Get(arena.ID(ref.Sym)); sym.Kind != ir.SymbolType {
			return fmt.Sprintf("not a type: %q is a %s", name, sym.Kind)
		}
	}
	return fmt.Sprintf("incomplete type: cyclic or unresolved reference to %q", name)
}
