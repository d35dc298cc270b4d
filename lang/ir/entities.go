package ir

import "github.com/mna/zyc/lang/arena"

// File is the arena-resident record for a source file known to the
// compiler: its interned path, byte size, and owned buffer. Distinct from
// token.File, which is scanner bookkeeping for line/column conversion only.
type File struct {
	Path arena.String
	Size int
	Buf  []byte
}

// ScopeKind identifies the two kinds of scope the language has.
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeProc
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeProc:
		return "proc"
	default:
		return "unknown scope kind"
	}
}

// Scope is a container for symbol declarations. Symbols declared in the same
// scope occupy a contiguous range [FirstSymbol, FirstSymbol+NumSymbols) in
// the Symbol arena; the parser is responsible for never interleaving
// declarations from two different scopes.
type Scope struct {
	Parent      ScopeID
	Kind        ScopeKind
	FirstSymbol SymbolID
	NumSymbols  int
	Proc        ProcID // valid only when Kind == ScopeProc
}

// SymbolKind identifies what a Symbol names.
type SymbolKind int

const (
	SymbolType SymbolKind = iota
	SymbolData
	SymbolArray
	SymbolProc
	SymbolParam
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolType:
		return "type"
	case SymbolData:
		return "data"
	case SymbolArray:
		return "array"
	case SymbolProc:
		return "proc"
	case SymbolParam:
		return "param"
	default:
		return "unknown symbol kind"
	}
}

// Symbol is a named, scoped declaration. Payload is an arena.ID into the
// arena selected by Kind (TypeID for SymbolType, DataID for SymbolData, and
// so on); there is no type-safe way to express a kind-dependent id without a
// union, so callers must switch on Kind before interpreting Payload — this
// mirrors the original implementation's tagged union of indices.
type Symbol struct {
	Name    arena.String
	Scope   ScopeID
	Kind    SymbolKind
	Payload arena.ID
}

// Symref is a use-site reference to a symbol, resolved after parsing.
type Symref struct {
	Name     arena.String
	RefScope ScopeID
	Tok      TokenID // originating token, for diagnostics
	Sym      SymbolID
}

// Resolved reports whether the resolver has bound this Symref yet.
func (s Symref) Resolved() bool { return s.Sym.Valid() }

// Data is a `data NAME TYPE;` declaration. There is deliberately no
// back-link to its owning Symbol: navigation always goes Symbol -> Data via
// Symbol.Payload, never the reverse, which keeps Data constructible before
// its Symbol is assigned an id (see the scope-flush discipline in the
// parser).
type Data struct {
	Scope ScopeID
	Type  TypeID
}

// Array is an `array NAME [IDXTYPE] VALTYPE;` declaration.
type Array struct {
	Scope ScopeID
	Type  TypeID
}

// Proc is a `proc NAME (params) RETTYPE { body }` declaration.
type Proc struct {
	Type       TypeID  // the proc's TypeProc type
	Scope      ScopeID // the proc's own scope, holding its parameters
	NumParams  int
	FirstParam ParamID // params are contiguous, ordered by rank
	Body       StmtID  // the compound statement making up the body
}

// Param is a single procedure parameter.
type Param struct {
	Proc ProcID
	Type TypeID
	Rank int
}

// CallArg is one argument of a call expression; CallArgs of one call are
// contiguous in the arena and ordered by Rank.
type CallArg struct {
	Call ExprID
	Arg  ExprID
	Rank int
}

// ChildStmt links one statement into its parent compound statement's list of
// children; ChildStmts of one compound are contiguous and ordered by Rank,
// matching parse order.
type ChildStmt struct {
	Parent StmtID
	Child  StmtID
	Rank   int
}
