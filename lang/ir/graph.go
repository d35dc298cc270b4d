package ir

import (
	"github.com/mna/zyc/lang/arena"
	"github.com/mna/zyc/lang/token"
)

// Graph bundles every arena that makes up the compilation unit's IR, plus
// the shared Interner, so a single value can be threaded through the
// scanner, parser, resolver and completer instead of the original
// implementation's package-level DATA globals. A Graph is not safe for
// concurrent use; callers needing concurrency should build one Graph per
// file and merge results explicitly.
type Graph struct {
	Strings *arena.Interner

	Files      *arena.Arena[File]
	Tokens     *arena.Arena[token.Value]
	Types      *arena.Arena[Type]
	ParamTypes *arena.Arena[ParamType]
	Symbols    *arena.Arena[Symbol]
	Symrefs    *arena.Arena[Symref]
	Scopes     *arena.Arena[Scope]
	Datas      *arena.Arena[Data]
	Arrays     *arena.Arena[Array]
	Procs      *arena.Arena[Proc]
	Params     *arena.Arena[Param]
	Exprs      *arena.Arena[Expr]
	CallArgs   *arena.Arena[CallArg]
	Stmts      *arena.Arena[Stmt]
	ChildStmts *arena.Arena[ChildStmt]

	// IntType is the TypeID of the built-in `int` type, registered by
	// NewGraph. Its Symbol isn't minted until FlushScopeSymbols(Global, ...)
	// runs (see PendingGlobalSymbols), since the global scope's symbols must
	// be appended as a single contiguous batch.
	IntType TypeID

	// Global is the single root scope every file's top-level declarations
	// are bound into.
	Global ScopeID

	// PendingGlobalSymbols holds the Symbol records NewGraph already knows
	// about (currently just the base types) but hasn't appended yet. The
	// parser must prepend these to whatever it declares at the top level and
	// pass the combined slice to the single FlushScopeSymbols(Global, ...)
	// call that closes the file, so that every global symbol — base types
	// included — ends up in one contiguous range (testable property #2).
	PendingGlobalSymbols []PendingSymbol

	// Keyword holds the interned arena.String for each keyword spelling, in
	// the same order as keywordConstStrings, so passes can compare a word
	// token's interned value against e.g. Keyword[KeywordIf] instead of
	// re-interning or byte-comparing at every occurrence.
	Keyword [len(keywordConstStrings)]arena.String
}

// Keyword name indices into Graph.Keyword, matching keywordConstStrings'
// order.
const (
	KeywordIf = iota
	KeywordWhile
	KeywordFor
	KeywordReturn
	KeywordProc
	KeywordData
	KeywordEntity
	KeywordArray
)

// NewGraph creates an empty Graph, interns the keyword constant strings,
// and registers the built-in base types (currently just `int`) as Types,
// queuing their Symbols as PendingGlobalSymbols — matching the original
// implementation's startup sequence of interning stringsToBeInterned and
// initializing basetypesToBeInitialized, adapted to this port's batched
// scope-flush discipline.
func NewGraph() *Graph {
	g := &Graph{
		Strings:    arena.NewInterner(),
		Files:      arena.New[File](0),
		Tokens:     arena.New[token.Value](0),
		Types:      arena.New[Type](0),
		ParamTypes: arena.New[ParamType](0),
		Symbols:    arena.New[Symbol](0),
		Symrefs:    arena.New[Symref](0),
		Scopes:     arena.New[Scope](0),
		Datas:      arena.New[Data](0),
		Arrays:     arena.New[Array](0),
		Procs:      arena.New[Proc](0),
		Params:     arena.New[Param](0),
		Exprs:      arena.New[Expr](0),
		CallArgs:   arena.New[CallArg](0),
		Stmts:      arena.New[Stmt](0),
		ChildStmts: arena.New[ChildStmt](0),
	}

	for i, s := range keywordConstStrings {
		g.Keyword[i] = g.Strings.InternString(s)
	}

	g.Global = ScopeID(g.Scopes.Append(Scope{Kind: ScopeGlobal}))

	for _, bt := range baseTypesToInit {
		name := g.Strings.InternString(bt.name)
		typeID := TypeID(g.Types.Append(NewBaseType(BaseType{Name: name, Size: bt.size})))
		// Base types are complete by construction: they have no further
		// structure for the completer to resolve.
		t := g.Types.Get(arena.ID(typeID))
		t.Complete = true
		g.Types.Set(arena.ID(typeID), t)

		g.PendingGlobalSymbols = append(g.PendingGlobalSymbols, PendingSymbol{
			Name:    name,
			Kind:    SymbolType,
			Payload: arena.ID(typeID),
		})

		if bt.name == "int" {
			g.IntType = typeID
		}
	}

	return g
}

// PendingSymbol is a Symbol record staged for a scope that hasn't closed
// yet. Scopes flush their pending symbols as a single batch via
// FlushScopeSymbols so that the resulting ids are always contiguous, even
// though other scopes (e.g. a proc's, opened and closed while the
// enclosing global scope is still accumulating declarations) may append to
// the shared Symbol arena in between.
type PendingSymbol struct {
	Name    arena.String
	Kind    SymbolKind
	Payload arena.ID
}

// FlushScopeSymbols appends syms as one contiguous batch owned by scope and
// records the resulting [firstSymbol, firstSymbol+len(syms)) range on the
// Scope entity. It must be called exactly once per scope, when the scope
// closes (for Global, that means end of file). Returns the assigned ids in
// the same order as syms.
func (g *Graph) FlushScopeSymbols(scope ScopeID, syms []PendingSymbol) []SymbolID {
	ids := make([]SymbolID, len(syms))
	var first SymbolID
	for i, s := range syms {
		id := SymbolID(g.Symbols.Append(Symbol{
			Name:    s.Name,
			Scope:   scope,
			Kind:    s.Kind,
			Payload: s.Payload,
		}))
		if i == 0 {
			first = id
		}
		ids[i] = id
	}

	sc := g.Scopes.Get(arena.ID(scope))
	sc.FirstSymbol = first
	sc.NumSymbols = len(syms)
	g.Scopes.Set(arena.ID(scope), sc)

	return ids
}
