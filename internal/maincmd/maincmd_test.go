package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/mna/zyc/internal/filetest"
	"github.com/mna/zyc/internal/maincmd"
)

var testUpdateCmdTests = flag.Bool("test.update-cmd-tests", false, "If set, replace expected maincmd test results with actual results.")

func TestTokenize(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out", "tokenize")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".zy") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			// error, if any, is printed to ebuf and checked via the golden file
			_ = maincmd.TokenizeFiles(ctx, stdio, filepath.Join(srcDir, fi.Name()))
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateCmdTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateCmdTests)
		})
	}
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out", "check")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".zy") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			_ = maincmd.CheckFiles(ctx, stdio, filepath.Join(srcDir, fi.Name()))
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateCmdTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateCmdTests)
		})
	}
}
