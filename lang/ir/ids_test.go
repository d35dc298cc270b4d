package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDsZeroValueInvalid(t *testing.T) {
	require.False(t, FileID(0).Valid())
	require.False(t, TokenID(0).Valid())
	require.False(t, TypeID(0).Valid())
	require.False(t, SymbolID(0).Valid())
	require.False(t, SymrefID(0).Valid())
	require.False(t, ScopeID(0).Valid())
	require.False(t, ExprID(0).Valid())
	require.False(t, StmtID(0).Valid())

	require.True(t, FileID(1).Valid())
	require.True(t, TypeID(1).Valid())
}

func TestUnresolvedSymbolIsZero(t *testing.T) {
	require.Equal(t, SymbolID(0), UnresolvedSymbol)
	require.False(t, UnresolvedSymbol.Valid())
}
