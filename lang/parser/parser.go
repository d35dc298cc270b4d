// Package parser implements the recursive-descent, precedence-climbing
// parser that turns zy source into the arena-backed IR graph defined by
// package ir.
package parser

import (
	"context"
	"fmt"
	"os"

	"github.com/dolthub/swiss"
	"github.com/mna/zyc/lang/arena"
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/scanner"
	"github.com/mna/zyc/lang/token"
)

// ParseFiles parses each of files into g's IR graph, in order, and returns
// the FileSet used for position reporting along with the first fatal error
// encountered (if any). Per the fail-fast propagation policy, parsing of a
// given file stops at its first error and subsequent files are not parsed.
func ParseFiles(ctx context.Context, g *ir.Graph, files ...string) (*token.FileSet, error) {
	fs := token.NewFileSet()
	for _, name := range files {
		if err := ParseFile(ctx, g, fs, name); err != nil {
			return fs, err
		}
	}
	return fs, nil
}

// ParseFile reads and parses a single source file into g, registering it in
// fs for position reporting. The returned error, if non-nil, is a
// *scanner.Error carrying the originating file, line and column.
func ParseFile(ctx context.Context, g *ir.Graph, fs *token.FileSet, filename string) (err error) {
	src, rerr := os.ReadFile(filename)
	if rerr != nil {
		return &scanner.Error{Pos: token.Position{Filename: filename}, Msg: rerr.Error()}
	}

	var p parser
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(*scanner.Error)
			if !ok {
				panic(r)
			}
			err = fe
		}
	}()

	p.init(g, fs, filename, src)
	p.parseProgram()
	return nil
}

// scopeFrame is one entry of the parser's scope stack: the ir.Scope being
// populated, its not-yet-flushed symbols, and a set of names already
// declared in it (for early duplicate detection, a tightening over the
// source per the spec's open question on duplicate-symbol timing). seen
// uses a swiss-table set rather than a builtin map since a scope's name
// set is checked on every single declaration and never needs ordered
// iteration.
type scopeFrame struct {
	id      ir.ScopeID
	pending []ir.PendingSymbol
	seen    *swiss.Map[arena.String, struct{}]
}

// parser holds all state for parsing a single file into a Graph.
type parser struct {
	g       *ir.Graph
	scanner scanner.Scanner
	file    *token.File
	fileID  ir.FileID

	tok token.Token
	val token.Value

	// scopes is a growable stack (unlike the source's fixed depth-16 array)
	// since nothing in this language bounds nesting depth except available
	// memory.
	scopes []*scopeFrame
}

func (p *parser) init(g *ir.Graph, fs *token.FileSet, filename string, src []byte) {
	p.g = g
	p.file = fs.AddFile(filename, -1, len(src))
	p.scanner.Init(p.file, src, func(pos token.Position, msg string) {
		panic(&scanner.Error{Pos: pos, Msg: msg})
	})

	path := g.Strings.InternString(filename)
	p.fileID = ir.FileID(g.Files.Append(ir.File{Path: path, Size: len(src), Buf: src}))

	// The bottom of the scope stack is g.Global itself, not a freshly minted
	// scope: NewGraph already appended it (with no parent, so lookup's walk
	// terminates there) and queued the base-type symbols into it via
	// PendingGlobalSymbols. Minting a second global scope here would orphan
	// g.Global: every top-level Symref would chain up to the new parentless
	// scope, where resolver.lookup's walk stops, and never see the base types.
	p.scopes = append(p.scopes, &scopeFrame{id: g.Global, seen: swiss.NewMap[arena.String, struct{}](8)})
	// Seed the global frame with the base-type symbols the Graph already
	// knows about, so they flush as part of the same contiguous batch as
	// this file's own top-level declarations.
	top := p.scopes[0]
	top.pending = append(top.pending, g.PendingGlobalSymbols...)
	for _, ps := range g.PendingGlobalSymbols {
		top.seen.Put(ps.Name, struct{}{})
	}

	p.advance()
}

func (p *parser) pushScope(kind ir.ScopeKind, proc ir.ProcID) ir.ScopeID {
	var parent ir.ScopeID
	if len(p.scopes) > 0 {
		parent = p.scopes[len(p.scopes)-1].id
	}
	id := ir.ScopeID(p.g.Scopes.Append(ir.Scope{Parent: parent, Kind: kind, Proc: proc}))
	p.scopes = append(p.scopes, &scopeFrame{id: id, seen: swiss.NewMap[arena.String, struct{}](8)})
	return id
}

// popScope flushes the top scope frame's pending symbols as one contiguous
// batch and pops it, returning the resulting ids in declaration order.
func (p *parser) popScope() []ir.SymbolID {
	top := p.scopes[len(p.scopes)-1]
	p.scopes = p.scopes[:len(p.scopes)-1]
	return p.g.FlushScopeSymbols(top.id, top.pending)
}

func (p *parser) curScopeID() ir.ScopeID {
	return p.scopes[len(p.scopes)-1].id
}

// declare stages name as a new symbol of kind in the current scope,
// reporting (fatally) a duplicate if name is already declared there.
func (p *parser) declare(pos token.Pos, name arena.String, kind ir.SymbolKind, payload arena.ID) {
	top := p.scopes[len(p.scopes)-1]
	if top.seen.Has(name) {
		p.errorf(pos, "duplicate symbol %q in scope", p.g.Strings.String(name))
	}
	top.seen.Put(name, struct{}{})
	top.pending = append(top.pending, ir.PendingSymbol{Name: name, Kind: kind, Payload: payload})
}

// newSymref interns an identifier token as a use-site Symref against the
// current scope, for the resolver to bind later.
func (p *parser) newSymref(tok ir.TokenID, name arena.String) ir.SymrefID {
	return ir.SymrefID(p.g.Symrefs.Append(ir.Symref{
		Name:     name,
		RefScope: p.curScopeID(),
		Tok:      tok,
	}))
}

// recordToken appends the current token's value to the Tokens arena and
// returns its id, for nodes (literals, symrefs, operators) that keep a
// token for diagnostics.
func (p *parser) recordToken(v token.Value) ir.TokenID {
	return ir.TokenID(p.g.Tokens.Append(v))
}

func (p *parser) advance() {
	p.tok = p.scanner.Scan(&p.val)
}

// at reports whether the current token is tok.
func (p *parser) at(tok token.Token) bool { return p.tok == tok }

// accept consumes and returns true if the current token is tok, otherwise
// leaves the parser state untouched and returns false.
func (p *parser) accept(tok token.Token) bool {
	if p.tok == tok {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it is tok, otherwise reports a fatal
// error. Returns the consumed token's value.
func (p *parser) expect(tok token.Token) token.Value {
	if p.tok != tok {
		p.errorExpected(tok)
	}
	v := p.val
	p.advance()
	return v
}

// expectIdent expects and consumes an IDENT, interning its text.
func (p *parser) expectIdent() (arena.String, token.Pos) {
	v := p.expect(token.IDENT)
	return p.g.Strings.InternString(v.Raw), v.Pos
}

func (p *parser) error(pos token.Pos, msg string) {
	panic(&scanner.Error{Pos: p.file.Position(pos), Msg: msg})
}

func (p *parser) errorf(pos token.Pos, format string, args ...any) {
	p.error(pos, fmt.Sprintf(format, args...))
}

func (p *parser) errorExpected(want token.Token) {
	lit := p.tok.Literal()
	found := lit
	if found == "" {
		found = p.tok.GoString()
	}
	p.errorf(p.val.Pos, "expected %s, found %s", want.GoString(), found)
}
