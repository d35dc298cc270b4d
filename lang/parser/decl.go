package parser

import (
	"github.com/mna/zyc/lang/arena"
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/token"
)

// parseTopLevelDecl parses one global-scope declaration (data, array,
// entity or proc). Global declarations get no Stmt wrapper; data/array
// declarations in statement position are wrapped by parseStmt instead.
func (p *parser) parseTopLevelDecl() {
	switch {
	case p.at(token.DATA):
		p.parseDataDecl()
	case p.at(token.ARRAY):
		p.parseArrayDecl()
	case p.at(token.ENTITY):
		p.parseEntityDecl()
	case p.at(token.PROC):
		p.parseProcDecl()
	default:
		p.errorf(p.val.Pos, "expected declaration, found %s", tokenDescription(p.tok, p.val))
	}
}

// parseDataDecl parses `data NAME TYPE ;` and declares NAME as a
// SymbolData in the current scope.
func (p *parser) parseDataDecl() ir.DataID {
	p.expect(token.DATA)
	name, pos := p.expectIdent()
	typ := p.parseType()
	p.expect(token.SEMI)

	id := ir.DataID(p.g.Datas.Append(ir.Data{Scope: p.curScopeID(), Type: typ}))
	p.declare(pos, name, ir.SymbolData, arena.ID(id))
	return id
}

// parseArrayDecl parses `array NAME [IDXTYPE] VALTYPE ;` and declares NAME
// as a SymbolArray in the current scope.
func (p *parser) parseArrayDecl() ir.ArrayID {
	p.expect(token.ARRAY)
	name, pos := p.expectIdent()
	p.expect(token.LBRACK)
	idxType := p.parseType()
	p.expect(token.RBRACK)
	valType := p.parseType()
	p.expect(token.SEMI)

	typ := ir.TypeID(p.g.Types.Append(ir.NewArrayType(ir.ArrayType{Index: idxType, Value: valType})))
	id := ir.ArrayID(p.g.Arrays.Append(ir.Array{Scope: p.curScopeID(), Type: typ}))
	p.declare(pos, name, ir.SymbolArray, arena.ID(id))
	return id
}

// parseEntityDecl parses `entity NAME { TYPE ; TYPE ; ... }` and declares
// NAME as a SymbolType naming an entity type. Member lists of more than one
// type generalize spec.md's single-member grammar, following
// original_source's EntitytypeInfo; members are numbered in declaration
// order.
func (p *parser) parseEntityDecl() ir.TypeID {
	p.expect(token.ENTITY)
	name, pos := p.expectIdent()
	p.expect(token.LBRACE)

	var members []ir.TypeID
	for !p.at(token.RBRACE) {
		members = append(members, p.parseType())
		p.expect(token.SEMI)
	}
	p.expect(token.RBRACE)

	id := ir.TypeID(p.g.Types.Append(ir.NewEntityType(ir.EntityType{Name: name, Members: members})))
	p.declare(pos, name, ir.SymbolType, arena.ID(id))
	return id
}

// parseProcDecl parses `proc NAME ( param-list ) RETTYPE { body }`: it
// opens a new proc scope, declares each parameter as a SymbolParam with
// sequential rank, parses the body as a compound statement, closes the
// scope, and then declares NAME as a SymbolProc in the enclosing scope.
func (p *parser) parseProcDecl() ir.ProcID {
	p.expect(token.PROC)
	name, pos := p.expectIdent()

	// The Proc record is appended before its body is parsed so that the
	// proc's own scope can carry its id (needed by nested `return`/symref
	// bookkeeping only indirectly; the scope mainly needs Kind/Parent).
	procID := ir.ProcID(p.g.Procs.Append(ir.Proc{}))

	p.expect(token.LPAREN)
	scope := p.pushScope(ir.ScopeProc, procID)

	var paramTypes []ir.TypeID
	var firstParam ir.ParamID
	var numParams int
	if !p.at(token.RPAREN) {
		for {
			pt, pid := p.parseParam(procID, numParams)
			paramTypes = append(paramTypes, pt)
			if numParams == 0 {
				firstParam = pid
			}
			numParams++
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)

	retType := p.parseType()
	body := p.parseCompoundStmt()
	p.popScope()

	var firstParamType ir.ParamTypeID
	for i, pt := range paramTypes {
		id := ir.ParamTypeID(p.g.ParamTypes.Append(ir.ParamType{Arg: pt, Rank: i}))
		if i == 0 {
			firstParamType = id
		}
	}
	procType := ir.TypeID(p.g.Types.Append(ir.NewProcType(ir.ProcType{
		Return:         retType,
		NumParams:      numParams,
		FirstParamType: firstParamType,
	})))

	p.g.Procs.Set(arena.ID(procID), ir.Proc{
		Type:       procType,
		Scope:      scope,
		NumParams:  numParams,
		FirstParam: firstParam,
		Body:       body,
	})
	p.declare(pos, name, ir.SymbolProc, arena.ID(procID))
	return procID
}

// parseParam parses one `TYPE NAME` procedure parameter and declares it as
// a SymbolParam in the (already pushed) proc scope.
func (p *parser) parseParam(proc ir.ProcID, rank int) (ir.TypeID, ir.ParamID) {
	typ := p.parseType()
	name, pos := p.expectIdent()

	id := ir.ParamID(p.g.Params.Append(ir.Param{Proc: proc, Type: typ, Rank: rank}))
	p.declare(pos, name, ir.SymbolParam, arena.ID(id))
	return typ, id
}
