package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/zyc/lang/scanner"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFiles(ctx, stdio, args...)
}

// TokenizeFiles runs only the scanner phase over files and prints one line
// per token: "file:line:col: TOKEN_NAME [literal]". Each file is scanned
// independently so a read/lexical error in one never misattributes
// positions recorded for another.
func TokenizeFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	for _, name := range files {
		fs, toksByFile, err := scanner.ScanFiles(ctx, name)
		if len(fs.Files()) > 0 {
			file := fs.Files()[0]
			for _, tv := range toksByFile[0] {
				fmt.Fprintf(stdio.Stdout, "%s: %s", file.Position(tv.Value.Pos), tv.Token)
				// Tokens with a fixed spelling (punctuation, keywords) already say
				// everything Raw would; only IDENT and INT need their text shown.
				if tv.Token.Literal() == "" && tv.Value.Raw != "" {
					fmt.Fprintf(stdio.Stdout, " %s", tv.Value.Raw)
				}
				fmt.Fprintln(stdio.Stdout)
			}
		}
		if err != nil {
			return printError(stdio, err)
		}
	}
	return nil
}
