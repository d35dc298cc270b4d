package parser

import (
	"github.com/mna/zyc/lang/ir"
	"github.com/mna/zyc/lang/token"
)

// parseStmt parses one statement: a compound block, an if/while/for/return,
// a data/array declaration (legal inside proc bodies too), or an
// expression-statement.
func (p *parser) parseStmt() ir.StmtID {
	switch {
	case p.at(token.LBRACE):
		return p.parseCompoundStmt()
	case p.at(token.IF):
		return p.parseIfStmt()
	case p.at(token.WHILE):
		return p.parseWhileStmt()
	case p.at(token.FOR):
		return p.parseForStmt()
	case p.at(token.RETURN):
		return p.parseReturnStmt()
	case p.at(token.DATA):
		id := p.parseDataDecl()
		return ir.StmtID(p.g.Stmts.Append(ir.NewDataStmt(ir.DataStmt{Data: id})))
	case p.at(token.ARRAY):
		id := p.parseArrayDecl()
		return ir.StmtID(p.g.Stmts.Append(ir.NewArrayStmt(ir.ArrayStmt{Array: id})))
	default:
		return p.parseExprStmt()
	}
}

// parseCompoundStmt parses `{ stmt... }`. Nested compounds do not introduce
// a new scope in this language; only proc bodies do, and that scope is
// pushed by the caller (parseProcDecl) before parseCompoundStmt runs.
func (p *parser) parseCompoundStmt() ir.StmtID {
	p.expect(token.LBRACE)

	id := p.g.Stmts.Append(ir.NewCompoundStmt(ir.CompoundStmt{}))
	compound := ir.StmtID(id)

	var numStmts int
	var first ir.ChildStmtID
	for !p.at(token.RBRACE) {
		child := p.parseStmt()
		childID := ir.ChildStmtID(p.g.ChildStmts.Append(ir.ChildStmt{Parent: compound, Child: child, Rank: numStmts}))
		if numStmts == 0 {
			first = childID
		}
		numStmts++
	}
	p.expect(token.RBRACE)

	stmt := p.g.Stmts.Get(id)
	stmt.Data = ir.CompoundStmt{NumStmts: numStmts, FirstChild: first}
	p.g.Stmts.Set(id, stmt)

	return compound
}

func (p *parser) parseIfStmt() ir.StmtID {
	p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	then := p.parseStmt()

	return ir.StmtID(p.g.Stmts.Append(ir.NewIfStmt(ir.IfStmt{Cond: cond, Then: then})))
}

func (p *parser) parseWhileStmt() ir.StmtID {
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)
	body := p.parseStmt()

	return ir.StmtID(p.g.Stmts.Append(ir.NewWhileStmt(ir.WhileStmt{Cond: cond, Body: body})))
}

// parseForStmt parses `for (initStmt; condExpr; stepStmt) stmt`. Init and
// step are statements in their own right (so `for (data i int; i; i++) ...`
// and `for (i = 0; ...; i = i + 1)` both work); cond is a bare expression.
// Any clause may be empty, per the grammar's optional for-clauses.
func (p *parser) parseForStmt() ir.StmtID {
	p.expect(token.FOR)
	p.expect(token.LPAREN)

	var init ir.StmtID
	if !p.at(token.SEMI) {
		init = p.parseForClauseStmt()
	} else {
		p.expect(token.SEMI)
	}

	var cond ir.ExprID
	if !p.at(token.SEMI) {
		cond = p.parseExpr()
	}
	p.expect(token.SEMI)

	var step ir.StmtID
	if !p.at(token.RPAREN) {
		step = p.parseForStepStmt()
	}
	p.expect(token.RPAREN)

	body := p.parseStmt()

	return ir.StmtID(p.g.Stmts.Append(ir.NewForStmt(ir.ForStmt{Init: init, Cond: cond, Step: step, Body: body})))
}

// parseForClauseStmt parses a data/array declaration or expression used as
// the for-loop's init clause, consuming its own trailing `;`.
func (p *parser) parseForClauseStmt() ir.StmtID {
	switch {
	case p.at(token.DATA):
		id := p.parseDataDecl()
		return ir.StmtID(p.g.Stmts.Append(ir.NewDataStmt(ir.DataStmt{Data: id})))
	case p.at(token.ARRAY):
		id := p.parseArrayDecl()
		return ir.StmtID(p.g.Stmts.Append(ir.NewArrayStmt(ir.ArrayStmt{Array: id})))
	default:
		expr := p.parseExpr()
		p.expect(token.SEMI)
		return ir.StmtID(p.g.Stmts.Append(ir.NewExprStmt(ir.ExprStmt{Expr: expr})))
	}
}

// parseForStepStmt parses the for-loop's step clause: always a bare
// expression, with no trailing `;` (the clause is terminated by `)`).
func (p *parser) parseForStepStmt() ir.StmtID {
	expr := p.parseExpr()
	return ir.StmtID(p.g.Stmts.Append(ir.NewExprStmt(ir.ExprStmt{Expr: expr})))
}

// parseReturnStmt parses `return expr? ;`.
func (p *parser) parseReturnStmt() ir.StmtID {
	p.expect(token.RETURN)

	var expr ir.ExprID
	if !p.at(token.SEMI) {
		expr = p.parseExpr()
	}
	p.expect(token.SEMI)

	return ir.StmtID(p.g.Stmts.Append(ir.NewReturnStmt(ir.ReturnStmt{Expr: expr})))
}

func (p *parser) parseExprStmt() ir.StmtID {
	expr := p.parseExpr()
	p.expect(token.SEMI)
	return ir.StmtID(p.g.Stmts.Append(ir.NewExprStmt(ir.ExprStmt{Expr: expr})))
}

// parseProgram parses the top-level stream of declarations at global scope
// until EOF, then flushes the global scope's accumulated symbols as one
// contiguous batch.
func (p *parser) parseProgram() {
	for !p.at(token.EOF) {
		p.parseTopLevelDecl()
	}
	p.popScope()
}
