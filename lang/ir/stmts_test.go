package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStmtConstructorsKeepKindAndDataInSync(t *testing.T) {
	ifs := NewIfStmt(IfStmt{Cond: 1, Then: 2})
	require.Equal(t, StmtIf, ifs.Kind)

	fors := NewForStmt(ForStmt{Init: 1, Cond: 2, Step: 3, Body: 4})
	require.Equal(t, StmtFor, fors.Kind)

	whiles := NewWhileStmt(WhileStmt{Cond: 1, Body: 2})
	require.Equal(t, StmtWhile, whiles.Kind)

	ret := NewReturnStmt(ReturnStmt{Expr: 1})
	require.Equal(t, StmtReturn, ret.Kind)

	exprStmt := NewExprStmt(ExprStmt{Expr: 1})
	require.Equal(t, StmtExpr, exprStmt.Kind)

	compound := NewCompoundStmt(CompoundStmt{NumStmts: 3, FirstChild: 1})
	require.Equal(t, StmtCompound, compound.Kind)
	compoundData, ok := compound.Data.(CompoundStmt)
	require.True(t, ok)
	require.Equal(t, 3, compoundData.NumStmts)

	dataStmt := NewDataStmt(DataStmt{Data: 1})
	require.Equal(t, StmtData, dataStmt.Kind)

	arrayStmt := NewArrayStmt(ArrayStmt{Array: 1})
	require.Equal(t, StmtArray, arrayStmt.Kind)
}

func TestStmtKindString(t *testing.T) {
	require.Equal(t, "if", StmtIf.String())
	require.Equal(t, "for", StmtFor.String())
	require.Equal(t, "while", StmtWhile.String())
	require.Equal(t, "return", StmtReturn.String())
	require.Equal(t, "expr", StmtExpr.String())
	require.Equal(t, "compound", StmtCompound.String())
	require.Equal(t, "data", StmtData.String())
	require.Equal(t, "array", StmtArray.String())
	require.Equal(t, "unknown stmt kind", StmtKind(99).String())
}

// TestReturnStmtOptionalExpr documents that a bare `return;` is represented
// by the zero ExprID, not a sentinel Expr — matching the grammar's optional
// return value.
func TestReturnStmtOptionalExpr(t *testing.T) {
	bare := NewReturnStmt(ReturnStmt{})
	data, ok := bare.Data.(ReturnStmt)
	require.True(t, ok)
	require.False(t, data.Expr.Valid())
}
