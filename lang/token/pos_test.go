package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakePosLineCol(t *testing.T) {
	cases := []struct {
		line, col int
	}{
		{1, 1},
		{1, 10},
		{42, 7},
		{MaxLines, MaxCols},
	}
	for _, c := range cases {
		p := MakePos(c.line, c.col)
		gotLine, gotCol := p.LineCol()
		require.Equal(t, c.line, gotLine)
		require.Equal(t, c.col, gotCol)
		require.False(t, p.Unknown())
	}
}

func TestPosUnknown(t *testing.T) {
	require.True(t, MakePos(0, 1).Unknown())
	require.True(t, MakePos(1, 0).Unknown())
	require.False(t, MakePos(1, 1).Unknown())
}

func TestFilePosition(t *testing.T) {
	// source: "ab\ncd\nef" -- lines start at offsets 0, 3, 6
	f := NewFile("test.zy", 8)
	f.AddLine(3)
	f.AddLine(6)

	cases := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 3, 2},
	}
	for _, c := range cases {
		pos := f.Pos(c.offset)
		position := f.Position(pos)
		require.Equal(t, c.wantLine, position.Line, "offset=%d", c.offset)
		require.Equal(t, c.wantCol, position.Column, "offset=%d", c.offset)
		require.Equal(t, "test.zy", position.Filename)
	}
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "-", Position{}.String())
	require.Equal(t, "a.zy:3:4", Position{Filename: "a.zy", Line: 3, Column: 4}.String())
	require.Equal(t, "a.zy:3", Position{Filename: "a.zy", Line: 3}.String())
	require.Equal(t, "a.zy", Position{Filename: "a.zy"}.String())
}
