package ir

import (
	"testing"

	"github.com/mna/zyc/lang/arena"
	"github.com/stretchr/testify/require"
)

func TestNewGraphRegistersIntType(t *testing.T) {
	g := NewGraph()

	require.True(t, g.IntType.Valid())
	typ := g.Types.Get(arena.ID(g.IntType))
	require.Equal(t, TypeBase, typ.Kind)
	require.True(t, typ.Complete)
	base, ok := typ.Data.(BaseType)
	require.True(t, ok)
	require.Equal(t, "int", g.Strings.String(base.Name))
	require.Equal(t, 8, base.Size)

	require.Len(t, g.PendingGlobalSymbols, 1)
	require.Equal(t, SymbolType, g.PendingGlobalSymbols[0].Kind)
	require.Equal(t, arena.ID(g.IntType), g.PendingGlobalSymbols[0].Payload)
}

func TestNewGraphInternsKeywords(t *testing.T) {
	g := NewGraph()

	want := []string{"if", "while", "for", "return", "proc", "data", "entity", "array"}
	for i, w := range want {
		require.Equal(t, w, g.Strings.String(g.Keyword[i]))
	}
	// Re-interning the same spelling must yield the same id (set semantics).
	require.Equal(t, g.Keyword[KeywordIf], g.Strings.InternString("if"))
}

func TestFlushScopeSymbolsGlobalOnly(t *testing.T) {
	g := NewGraph()
	ids := g.FlushScopeSymbols(g.Global, g.PendingGlobalSymbols)
	require.Len(t, ids, 1)

	sym := g.Symbols.Get(arena.ID(ids[0]))
	require.Equal(t, SymbolType, sym.Kind)
	require.Equal(t, g.Global, sym.Scope)
	require.Equal(t, arena.ID(g.IntType), sym.Payload)

	scope := g.Scopes.Get(arena.ID(g.Global))
	require.Equal(t, ids[0], scope.FirstSymbol)
	require.Equal(t, 1, scope.NumSymbols)
}

// TestFlushScopeSymbolsContiguityAcrossInterleavedScopes exercises testable
// property #2 in the exact scenario that motivates batched flushing: a
// child scope (e.g. a proc's) opens, appends its own symbols, and closes
// while the parent (global) scope is still accumulating pending
// declarations. The parent's eventual flush must still be one contiguous,
// exclusively-its-own range.
func TestFlushScopeSymbolsContiguityAcrossInterleavedScopes(t *testing.T) {
	g := NewGraph()

	fName := g.Strings.InternString("f")
	xName := g.Strings.InternString("x")
	aName := g.Strings.InternString("a")

	// Global declares `f` (pending, not yet flushed)...
	pending := append([]PendingSymbol{}, g.PendingGlobalSymbols...)
	pending = append(pending, PendingSymbol{Name: fName, Kind: SymbolProc, Payload: 1})

	// ...then a proc scope opens, declares its own param `a`, and closes —
	// flushing immediately, interleaved in time with global's still-open
	// accumulation.
	procScope := ScopeID(g.Scopes.Append(Scope{Parent: g.Global, Kind: ScopeProc}))
	procIDs := g.FlushScopeSymbols(procScope, []PendingSymbol{
		{Name: aName, Kind: SymbolParam, Payload: 1},
	})
	require.Len(t, procIDs, 1)

	// Back in global, declare `x`, then finally flush.
	pending = append(pending, PendingSymbol{Name: xName, Kind: SymbolData, Payload: 1})
	globalIDs := g.FlushScopeSymbols(g.Global, pending)
	require.Len(t, globalIDs, 3) // int, f, x

	globalScope := g.Scopes.Get(arena.ID(g.Global))
	procScopeRec := g.Scopes.Get(arena.ID(procScope))

	g.Symbols.All(func(id arena.ID, sym Symbol) {
		inGlobalRange := int(id) >= int(globalScope.FirstSymbol) && int(id) < int(globalScope.FirstSymbol)+globalScope.NumSymbols
		inProcRange := int(id) >= int(procScopeRec.FirstSymbol) && int(id) < int(procScopeRec.FirstSymbol)+procScopeRec.NumSymbols

		switch sym.Scope {
		case g.Global:
			require.True(t, inGlobalRange, "global symbol %d outside global's contiguous range", id)
			require.False(t, inProcRange, "global symbol %d leaked into proc's range", id)
		case procScope:
			require.True(t, inProcRange, "proc symbol %d outside proc's contiguous range", id)
			require.False(t, inGlobalRange, "proc symbol %d leaked into global's range", id)
		}
	})
}
