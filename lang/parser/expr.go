package parser

import (
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/token"
)

// parseExpr parses a full expression via precedence climbing, starting at
// the loosest precedence (assignment).
func (p *parser) parseExpr() ir.ExprID {
	return p.parseBinaryExpr(1)
}

// parseBinaryExpr parses a prefix-unop-led primary, then repeatedly folds
// in binary operators whose precedence is >= minPrec. Every operator here
// is left-associative, including assignment (`a = b = c` parses as
// `(a = b) = c`), per this port's resolution of the open question on
// assignment associativity.
func (p *parser) parseBinaryExpr(minPrec int) ir.ExprID {
	left := p.parseUnaryExpr()

	for {
		op, ok := ir.BinopFor(p.tok)
		if !ok {
			return left
		}
		prec := ir.BinopPrecedence(op)
		if prec < minPrec {
			return left
		}

		opTokVal := p.val
		p.advance()
		opTok := p.recordToken(opTokVal)
		next := prec + 1
		if ir.RightAssociative(op) {
			next = prec
		}
		right := p.parseBinaryExpr(next)

		left = ir.ExprID(p.g.Exprs.Append(ir.NewBinopExpr(ir.BinopExpr{
			Op:    op,
			Tok:   opTok,
			Left:  left,
			Right: right,
		})))
	}
}

// parseUnaryExpr parses a chain of prefix unary operators around a
// postfix-chained primary.
func (p *parser) parseUnaryExpr() ir.ExprID {
	if op, ok := ir.PrefixUnopFor(p.tok); ok {
		opTokVal := p.val
		p.advance()
		opTok := p.recordToken(opTokVal)
		operand := p.parseUnaryExpr()
		return ir.ExprID(p.g.Exprs.Append(ir.NewUnopExpr(ir.UnopExpr{
			Op:      op,
			Tok:     opTok,
			Operand: operand,
		})))
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary, then repeatedly matches `(args)` as a
// call, `[expr]` as a subscript, `.IDENT` as a member access, or `++`/`--`
// as a postfix unary operator.
func (p *parser) parsePostfixExpr() ir.ExprID {
	e := p.parsePrimaryExpr()

	for {
		switch {
		case p.at(token.LPAREN):
			e = p.parseCallArgs(e)
		case p.at(token.LBRACK):
			p.advance()
			index := p.parseExpr()
			p.expect(token.RBRACK)
			e = ir.ExprID(p.g.Exprs.Append(ir.NewSubscriptExpr(ir.SubscriptExpr{Base: e, Index: index})))
		case p.at(token.DOT):
			p.advance()
			v := p.expect(token.IDENT)
			name := p.g.Strings.InternString(v.Raw)
			e = ir.ExprID(p.g.Exprs.Append(ir.NewMemberExpr(ir.MemberExpr{Base: e, Name: name})))
		default:
			op, ok := ir.PostfixUnopFor(p.tok)
			if !ok {
				return e
			}
			opTokVal := p.val
			p.advance()
			opTok := p.recordToken(opTokVal)
			e = ir.ExprID(p.g.Exprs.Append(ir.NewUnopExpr(ir.UnopExpr{Op: op, Tok: opTok, Operand: e})))
		}
	}
}

// parseCallArgs parses the `(args...)` suffix of a call expression, given
// the already-parsed callee. Arguments are appended to the CallArgs arena
// as they are parsed and the CallExpr's FirstArg/NumArgs are patched in
// once the full argument list is known.
func (p *parser) parseCallArgs(callee ir.ExprID) ir.ExprID {
	p.expect(token.LPAREN)

	id := p.g.Exprs.Append(ir.NewCallExpr(ir.CallExpr{Callee: callee}))

	var numArgs int
	var first ir.CallArgID
	if !p.at(token.RPAREN) {
		for {
			arg := p.parseExpr()
			argID := ir.CallArgID(p.g.CallArgs.Append(ir.CallArg{Call: ir.ExprID(id), Arg: arg, Rank: numArgs}))
			if numArgs == 0 {
				first = argID
			}
			numArgs++
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)

	call := p.g.Exprs.Get(id)
	callData := call.Data.(ir.CallExpr)
	callData.NumArgs = numArgs
	callData.FirstArg = first
	call.Data = callData
	p.g.Exprs.Set(id, call)

	return ir.ExprID(id)
}

// parsePrimaryExpr parses an integer literal, a word (symref or the head of
// a postfix chain), or a parenthesized expression.
func (p *parser) parsePrimaryExpr() ir.ExprID {
	switch {
	case p.at(token.INT):
		v := p.val
		p.advance()
		tok := p.recordToken(v)
		return ir.ExprID(p.g.Exprs.Append(ir.NewLiteralExpr(ir.LiteralExpr{Tok: tok})))

	case p.at(token.IDENT):
		v := p.val
		p.advance()
		name := p.g.Strings.InternString(v.Raw)
		tok := p.recordToken(v)
		ref := p.newSymref(tok, name)
		return ir.ExprID(p.g.Exprs.Append(ir.NewSymrefExpr(ir.SymrefExpr{Ref: ref})))

	case p.at(token.LPAREN):
		p.advance()
		e := p.parseExpr()
		p.expect(token.RPAREN)
		return e

	default:
		p.errorf(p.val.Pos, "expected expression, found %s", tokenDescription(p.tok, p.val))
		panic("unreachable")
	}
}

func tokenDescription(tok token.Token, val token.Value) string {
	if lit := tok.Literal(); lit != "" {
		return lit
	}
	if val.Raw != "" {
		return val.Raw
	}
	return tok.GoString()
}
