package ir

import (
	"testing"

	"github.com/mna/zyc/lang/token"
	"github.com/stretchr/testify/require"
)

func TestPrefixUnopOf(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want UnopKind
		ok   bool
	}{
		{token.TILDE, UnopInvertBits, true},
		{token.BANG, UnopNot, true},
		{token.AMP, UnopAddressOf, true},
		{token.STAR, UnopDeref, true},
		{token.MINUS, UnopNegative, true},
		{token.PLUS, UnopPositive, true},
		{token.DEC, UnopPreDecrement, true},
		{token.INC, UnopPreIncrement, true},
		{token.SLASH, 0, false},
		{token.IDENT, 0, false},
	}
	for _, c := range cases {
		got, ok := PrefixUnopFor(c.tok)
		require.Equal(t, c.ok, ok, "tok=%v", c.tok)
		if ok {
			require.Equal(t, c.want, got, "tok=%v", c.tok)
		}
	}
}

func TestPostfixUnopOf(t *testing.T) {
	got, ok := PostfixUnopFor(token.DEC)
	require.True(t, ok)
	require.Equal(t, UnopPostDecrement, got)

	got, ok = PostfixUnopFor(token.INC)
	require.True(t, ok)
	require.Equal(t, UnopPostIncrement, got)

	_, ok = PostfixUnopFor(token.MINUS)
	require.False(t, ok)
}

func TestBinopOf(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want BinopKind
	}{
		{token.EQ, BinopAssign},
		{token.EQL, BinopEquals},
		{token.MINUS, BinopMinus},
		{token.PLUS, BinopPlus},
		{token.STAR, BinopMul},
		{token.SLASH, BinopDiv},
		{token.AMP, BinopBitAnd},
		{token.PIPE, BinopBitOr},
		{token.CARET, BinopBitXor},
	}
	for _, c := range cases {
		got, ok := BinopFor(c.tok)
		require.True(t, ok)
		require.Equal(t, c.want, got)
	}

	_, ok := BinopFor(token.COLON)
	require.False(t, ok)
}

// TestBinopPrecedenceOrdering exercises testable property #6: `a + b * c`
// must parse as binop(+, a, binop(*, b, c)), which requires Mul to bind
// tighter than Plus.
func TestBinopPrecedenceOrdering(t *testing.T) {
	require.Less(t, BinopPrecedence(BinopAssign), BinopPrecedence(BinopEquals))
	require.Less(t, BinopPrecedence(BinopEquals), BinopPrecedence(BinopPlus))
	require.Less(t, BinopPrecedence(BinopPlus), BinopPrecedence(BinopMul))
	require.Less(t, BinopPrecedence(BinopMul), BinopPrecedence(BinopBitAnd))
	require.Equal(t, BinopPrecedence(BinopPlus), BinopPrecedence(BinopMinus))
	require.Equal(t, BinopPrecedence(BinopMul), BinopPrecedence(BinopDiv))
	require.Equal(t, BinopPrecedence(BinopBitAnd), BinopPrecedence(BinopBitOr))
	require.Equal(t, BinopPrecedence(BinopBitOr), BinopPrecedence(BinopBitXor))
}

func TestAssignmentIsLeftAssociative(t *testing.T) {
	// Open question resolution: preserve left-associativity for every
	// operator, including assignment.
	require.False(t, RightAssociative(BinopAssign))
	require.False(t, RightAssociative(BinopPlus))
}
