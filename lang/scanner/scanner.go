// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/mna/zyc/lang/token"
)

// TokenAndValue combines the token type with the token value type in the
// same struct.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanFiles tokenizes the given source files and returns the list of
// tokens, grouped by the file at the same index, along with any error
// encountered. The error, if non-nil, is guaranteed to be an ErrorList;
// per the fail-fast propagation policy the caller should treat any non-nil
// error as aborting the whole run, not just the offending file.
func ScanFiles(ctx context.Context, files ...string) (*token.FileSet, [][]TokenAndValue, error) {
	if len(files) == 0 {
		return nil, nil, nil
	}

	var (
		s      Scanner
		tokVal token.Value
		el     ErrorList
	)

	fs := token.NewFileSet()
	tokensByFile := make([][]TokenAndValue, len(files))
	for i, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			el.Add(token.Position{Filename: file}, err.Error())
			continue
		}

		fsf := fs.AddFile(file, -1, len(b))
		s.Init(fsf, b, el.Add)
		for {
			tok := s.Scan(&tokVal)
			tokensByFile[i] = append(tokensByFile[i], TokenAndValue{
				Token: tok,
				Value: tokVal,
			})
			if tok == token.EOF {
				break
			}
		}
	}
	el.Sort()
	return fs, tokensByFile, el.Err()
}

// Scanner tokenizes a single source file for the parser to consume, one
// token of lookahead at a time.
type Scanner struct {
	// immutable state after Init
	file *token.File
	src  []byte
	err  func(pos token.Position, msg string)

	// mutable scanning state
	invalidByte byte // when cur==RuneError due to failed utf8 decode, this is the invalid byte
	cur         rune // current character
	off         int  // byte offset of cur
	roff        int  // reading offset in bytes (position after current character)

	// one-token lookahead, as required by the grammar: a saved token plus its
	// value, set by Peek and consumed by Scan.
	havePeek bool
	peekTok  token.Token
	peekVal  token.Value
}

// Init initializes the scanner to tokenize a new file. It panics if the
// file size is not the same as the length of the src slice.
func (s *Scanner) Init(file *token.File, src []byte, errHandler func(token.Position, string)) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}

	s.file = file
	s.src = src
	s.err = errHandler

	s.invalidByte = 0
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.havePeek = false

	s.advance()
}

// Peek returns the next token without consuming it; a second call to Peek
// before any Consume returns the same token and value. This, plus Consume,
// is the lexer's one-token-lookahead contract.
func (s *Scanner) Peek(tokVal *token.Value) token.Token {
	if !s.havePeek {
		s.peekTok = s.scan(&s.peekVal)
		s.havePeek = true
	}
	if tokVal != nil {
		*tokVal = s.peekVal
	}
	return s.peekTok
}

// Consume returns the next token, first returning a token saved by Peek if
// one is pending.
func (s *Scanner) Consume(tokVal *token.Value) token.Token {
	if s.havePeek {
		s.havePeek = false
		if tokVal != nil {
			*tokVal = s.peekVal
		}
		return s.peekTok
	}
	if tokVal == nil {
		tokVal = new(token.Value)
	}
	return s.scan(tokVal)
}

// Scan is an alias for Consume, kept for callers (such as ScanFiles) that
// want to drain every token without distinguishing peek from consume.
func (s *Scanner) Scan(tokVal *token.Value) token.Token {
	return s.Consume(tokVal)
}

// peekByte returns the byte following the most recently read character
// without advancing the scanner. If the scanner is at EOF, peekByte
// returns 0.
func (s *Scanner) peekByte() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

// advance reads the next Unicode char into s.cur; s.cur < 0 means
// end-of-file.
func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		if s.cur == '\n' {
			s.file.AddLine(s.off)
		}
		s.cur = -1
		return
	}

	s.off = s.roff
	if s.cur == '\n' {
		s.file.AddLine(s.off)
	}

	s.invalidByte = 0
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.off, "illegal UTF-8 encoding")
			s.invalidByte = s.src[s.roff]
		}
	}
	s.roff += w
	s.cur = r
}

func (s *Scanner) error(off int, msg string) {
	if s.err != nil {
		s.err(s.file.Position(s.file.Pos(off)), msg)
	}
}

func (s *Scanner) errorf(off int, format string, args ...any) {
	s.error(off, fmt.Sprintf(format, args...))
}

// advanceIf advances only if the current char matches any of the specified
// bytes, returning whether it did.
func (s *Scanner) advanceIf(matches ...byte) bool {
	if bytes.ContainsRune(matches, s.cur) {
		s.advance()
		return true
	}
	return false
}

// scan produces the next raw token, skipping whitespace and comments.
func (s *Scanner) scan(tokVal *token.Value) (tok token.Token) {
	s.skipWhitespaceAndComments()

	pos := s.file.Pos(s.off)
	start := s.off

	switch cur := s.cur; {
	case isLetter(cur):
		lit := s.ident()
		tok = token.LookupKeyword(lit)
		*tokVal = token.Value{Raw: lit, Pos: pos}

	case isDecimal(cur):
		lit := s.integer()
		tok = token.INT
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil && errors.Is(err, strconv.ErrRange) {
			s.error(start, "integer literal value out of range")
		}
		*tokVal = token.Value{Raw: lit, Pos: pos, Int: v}

	default:
		s.advance() // always make progress
		switch cur {
		case '(':
			tok = token.LPAREN
		case ')':
			tok = token.RPAREN
		case '{':
			tok = token.LBRACE
		case '}':
			tok = token.RBRACE
		case '[':
			tok = token.LBRACK
		case ']':
			tok = token.RBRACK
		case '.':
			tok = token.DOT
		case ',':
			tok = token.COMMA
		case ';':
			tok = token.SEMI
		case ':':
			tok = token.COLON
		case '~':
			tok = token.TILDE
		case '^':
			tok = token.CARET
		case '&':
			tok = token.AMP
		case '|':
			tok = token.PIPE

		case '=':
			tok = token.EQ
			if s.advanceIf('=') {
				tok = token.EQL
			}

		case '+':
			tok = token.PLUS
			if s.advanceIf('+') {
				tok = token.INC
			}

		case '-':
			tok = token.MINUS
			if s.advanceIf('-') {
				tok = token.DEC
			}

		case '*':
			tok = token.STAR

		case '/':
			tok = token.SLASH

		case '!':
			tok = token.BANG

		case -1:
			tok = token.EOF

		default:
			if cur == utf8.RuneError && s.invalidByte > 0 {
				cur = rune(s.invalidByte)
				s.invalidByte = 0
			}
			s.errorf(start, "illegal character %#U", cur)
			tok = token.ILLEGAL
		}
		*tokVal = token.Value{Raw: string(s.src[start:s.off]), Pos: pos}
	}
	return tok
}

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

func (s *Scanner) integer() string {
	start := s.off
	for isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

// skipWhitespaceAndComments skips runs of whitespace and nested block
// comments (`/* ... */`, where an inner `/*` opens another nesting level
// rather than being ignored) until a real token begins.
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		for isWhitespace(s.cur) {
			s.advance()
		}
		if s.cur == '/' && s.peekByte() == '*' {
			s.skipBlockComment()
			continue
		}
		return
	}
}

func (s *Scanner) skipBlockComment() {
	start := s.off
	s.advance() // consume '/'
	s.advance() // consume '*'
	depth := 1
	for depth > 0 {
		switch {
		case s.cur == -1:
			s.error(start, "block comment not terminated")
			return
		case s.cur == '/' && s.peekByte() == '*':
			s.advance()
			s.advance()
			depth++
		case s.cur == '*' && s.peekByte() == '/':
			s.advance()
			s.advance()
			depth--
		default:
			s.advance()
		}
	}
}

func isWhitespace(rn rune) bool {
	return rn == ' ' || rn == '\t' || rn == '\n' || rn == '\r'
}

func isLetter(rn rune) bool {
	return 'a' <= rn && rn <= 'z' ||
		'A' <= rn && rn <= 'Z' ||
		rn == '_'
}

func isDigit(rn rune) bool {
	return isDecimal(rn)
}

func isDecimal(rn rune) bool {
	return '0' <= rn && rn <= '9'
}
