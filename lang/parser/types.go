package parser

import (
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/token"
)

// parseType parses one of the four type-syntax forms and returns the
// resulting TypeID:
//
//	IDENT          a symref to a named (base or entity) type
//	* IDENT        a pointer: TYPE_REFERENCE wrapping a fresh Symref
//	[ type ] type  an array: index type, then element type
//	proc ( types ) type   a procedure type
func (p *parser) parseType() ir.TypeID {
	switch {
	case p.at(token.STAR):
		return p.parsePointerType()
	case p.at(token.LBRACK):
		return p.parseArrayType()
	case p.at(token.PROC):
		return p.parseProcType()
	default:
		return p.parseNamedType()
	}
}

// parseNamedType parses a bare IDENT naming a type and wraps it in a fresh
// Symref inside a TYPE_REFERENCE: every named-type use is a
// forward-resolvable reference, resolved by a later pass rather than the
// parser. Unlike a pointer, a bare reference is not complete until its
// target type is complete too (see ir.ReferenceType.Pointer).
func (p *parser) parseNamedType() ir.TypeID {
	return p.parseReferenceType(false)
}

// parsePointerType parses `* IDENT`. The pointee must be a named type: the
// IR's TYPE_REFERENCE only ever wraps a Symref, never an arbitrary nested
// type, so multi-level pointers (`**Foo`) are not expressible and are not
// part of this grammar. A pointer reference completes as soon as its
// symref resolves, independent of the pointee's own completeness, which is
// what lets mutually-pointing entities complete (see ir.ReferenceType).
func (p *parser) parsePointerType() ir.TypeID {
	p.expect(token.STAR)
	return p.parseReferenceType(true)
}

func (p *parser) parseReferenceType(pointer bool) ir.TypeID {
	v := p.expect(token.IDENT)
	name := p.g.Strings.InternString(v.Raw)
	tok := p.recordToken(v)
	ref := p.newSymref(tok, name)
	return ir.TypeID(p.g.Types.Append(ir.NewReferenceType(ir.ReferenceType{Ref: ref, Pointer: pointer})))
}

func (p *parser) parseArrayType() ir.TypeID {
	p.expect(token.LBRACK)
	index := p.parseType()
	p.expect(token.RBRACK)
	value := p.parseType()
	return ir.TypeID(p.g.Types.Append(ir.NewArrayType(ir.ArrayType{Index: index, Value: value})))
}

func (p *parser) parseProcType() ir.TypeID {
	p.expect(token.PROC)
	p.expect(token.LPAREN)

	var params []ir.TypeID
	if !p.at(token.RPAREN) {
		params = append(params, p.parseType())
		for p.accept(token.COMMA) {
			params = append(params, p.parseType())
		}
	}
	p.expect(token.RPAREN)
	ret := p.parseType()

	var first ir.ParamTypeID
	for i, arg := range params {
		id := ir.ParamTypeID(p.g.ParamTypes.Append(ir.ParamType{Arg: arg, Rank: i}))
		if i == 0 {
			first = id
		}
	}

	return ir.TypeID(p.g.Types.Append(ir.NewProcType(ir.ProcType{
		Return:         ret,
		NumParams:      len(params),
		FirstParamType: first,
	})))
}
