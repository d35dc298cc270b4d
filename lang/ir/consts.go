package ir

import "github.com/mna/zyc/lang/token"

// keywordConstStrings lists the keyword spellings interned into the Graph's
// Interner at startup, mirroring the original implementation's
// stringsToBeInterned table: keywords are frequently compared by identity
// (interned String value) rather than by byte comparison, so interning them
// once up front avoids repeating the work on every occurrence in the source.
var keywordConstStrings = [...]string{
	"if",
	"while",
	"for",
	"return",
	"proc",
	"data",
	"entity",
	"array",
}

// baseTypeInit describes one built-in type registered into a fresh Graph,
// mirroring basetypesToBeInitialized.
type baseTypeInit struct {
	name string
	size int
}

// baseTypesToInit is the set of built-in types every Graph starts with. Only
// a single machine-word integer type is named in the grammar; more could be
// added here without touching any other package.
var baseTypesToInit = [...]baseTypeInit{
	{name: "int", size: 8},
}

// PrefixUnopFor maps a token kind to the UnopKind it produces when parsed in
// prefix position, mirroring toktypeToPrefixUnop. The zero value (ok=false)
// means tok cannot start a prefix unary expression. Exported for the
// parser's precedence-climbing expression grammar.
func PrefixUnopFor(tok token.Token) (UnopKind, bool) {
	switch tok {
	case token.TILDE:
		return UnopInvertBits, true
	case token.BANG:
		return UnopNot, true
	case token.AMP:
		return UnopAddressOf, true
	case token.STAR:
		return UnopDeref, true
	case token.MINUS:
		return UnopNegative, true
	case token.PLUS:
		return UnopPositive, true
	case token.DEC:
		return UnopPreDecrement, true
	case token.INC:
		return UnopPreIncrement, true
	default:
		return 0, false
	}
}

// PostfixUnopFor maps a token kind to the UnopKind it produces when parsed in
// postfix position, mirroring toktypeToPostfixUnop.
func PostfixUnopFor(tok token.Token) (UnopKind, bool) {
	switch tok {
	case token.DEC:
		return UnopPostDecrement, true
	case token.INC:
		return UnopPostIncrement, true
	default:
		return 0, false
	}
}

// BinopFor maps a token kind to the BinopKind it produces in infix position,
// mirroring toktypeToBinop.
func BinopFor(tok token.Token) (BinopKind, bool) {
	switch tok {
	case token.EQ:
		return BinopAssign, true
	case token.EQL:
		return BinopEquals, true
	case token.MINUS:
		return BinopMinus, true
	case token.PLUS:
		return BinopPlus, true
	case token.STAR:
		return BinopMul, true
	case token.SLASH:
		return BinopDiv, true
	case token.AMP:
		return BinopBitAnd, true
	case token.PIPE:
		return BinopBitOr, true
	case token.CARET:
		return BinopBitXor, true
	default:
		return 0, false
	}
}

// BinopPrecedence returns the binding power of op: higher binds tighter.
// Assignment binds loosest; bitwise operators bind tightest, following the
// order in which the grammar lists them. See RightAssociative for why
// assignment still groups left-to-right despite binding loosest.
func BinopPrecedence(op BinopKind) int {
	switch op {
	case BinopAssign:
		return 1
	case BinopEquals:
		return 2
	case BinopMinus, BinopPlus:
		return 3
	case BinopMul, BinopDiv:
		return 4
	case BinopBitAnd, BinopBitOr, BinopBitXor:
		return 5
	default:
		return 0
	}
}

// RightAssociative reports whether op groups right-to-left. The
// precedence-climbing scheme as specified is left-associative throughout,
// including assignment (`a = b = c` parses as `(a = b) = c`); this
// preserves the source's behavior rather than adopting the conventional
// right-associative assignment found in most other languages.
func RightAssociative(op BinopKind) bool { return false }
