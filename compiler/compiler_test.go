package compiler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/zyc/compiler"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.zy")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// TestCompileSucceeds exercises the full pipeline end to end on a program
// exercising several testable properties at once: forward references (S4)
// and a complete proctype (S3).
func TestCompileSucceeds(t *testing.T) {
	path := writeSource(t, `
		proc g() int { return h(); }
		proc h() int { return 0; }
	`)

	res, err := compiler.Compile(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, res.Graph)
	require.NotNil(t, res.File)
}

// TestCompileStopsAtFirstPhaseError checks the fail-fast composition: a
// syntax error never reaches the resolver or completer.
func TestCompileStopsAtFirstPhaseError(t *testing.T) {
	path := writeSource(t, `data x ;`)

	_, err := compiler.Compile(context.Background(), path)
	require.Error(t, err)
}

// TestCompileUnresolvedSymbolFails exercises scenario S5 through the full
// pipeline.
func TestCompileUnresolvedSymbolFails(t *testing.T) {
	path := writeSource(t, `data z Bar;`)

	_, err := compiler.Compile(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Bar")
}

// TestCompileCycleFails exercises scenario S6's direct-cycle failure
// through the full pipeline.
func TestCompileCycleFails(t *testing.T) {
	path := writeSource(t, `entity A { B; } entity B { A; }`)

	_, err := compiler.Compile(context.Background(), path)
	require.Error(t, err)
}
