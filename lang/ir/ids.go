// Package ir implements the cross-referenced arena graph that holds every
// entity produced by parsing a zy source file: tokens, symbols, types,
// expressions, statements and scopes. Every entity lives in its own
// arena.Arena and is referenced by the small, purpose-specific id types
// defined below — never by a plain int and never by a pointer — so that the
// graph can be serialized trivially, survives arena growth, and breaks
// reference cycles the same way the original implementation's struct-of-
// arrays-of-int design did.
package ir

import "github.com/mna/zyc/lang/arena"

// The id types below are all backed by arena.ID; each is a distinct Go type
// so the compiler catches accidental mixups (e.g. passing a SymbolID where a
// TypeID is expected), mirroring the original C implementation's use of
// typedefs purely to communicate intent.
type (
	FileID      arena.ID
	TokenID     arena.ID
	TypeID      arena.ID
	ParamTypeID arena.ID
	SymbolID    arena.ID
	SymrefID    arena.ID
	ScopeID     arena.ID
	DataID      arena.ID
	ArrayID     arena.ID
	ProcID      arena.ID
	ParamID     arena.ID
	ExprID      arena.ID
	CallArgID   arena.ID
	StmtID      arena.ID
	ChildStmtID arena.ID
)

func (id FileID) Valid() bool      { return id != 0 }
func (id TokenID) Valid() bool     { return id != 0 }
func (id TypeID) Valid() bool      { return id != 0 }
func (id ParamTypeID) Valid() bool { return id != 0 }
func (id SymbolID) Valid() bool    { return id != 0 }
func (id SymrefID) Valid() bool    { return id != 0 }
func (id ScopeID) Valid() bool     { return id != 0 }
func (id DataID) Valid() bool      { return id != 0 }
func (id ArrayID) Valid() bool     { return id != 0 }
func (id ProcID) Valid() bool      { return id != 0 }
func (id ParamID) Valid() bool     { return id != 0 }
func (id ExprID) Valid() bool      { return id != 0 }
func (id CallArgID) Valid() bool   { return id != 0 }
func (id StmtID) Valid() bool      { return id != 0 }
func (id ChildStmtID) Valid() bool { return id != 0 }

// UnresolvedSymbol is the SymbolID a Symref holds until the resolver binds
// it.
const UnresolvedSymbol SymbolID = 0
