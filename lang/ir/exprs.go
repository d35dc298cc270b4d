package ir

import "github.com/mna/zyc/lang/arena"

// UnopKind identifies a unary operator.
type UnopKind int

const (
	UnopInvertBits    UnopKind = iota // ~x
	UnopNot                           // !x
	UnopAddressOf                     // &x
	UnopDeref                         // *x
	UnopNegative                      // -x
	UnopPositive                      // +x
	UnopPreDecrement                  // --x
	UnopPreIncrement                  // ++x
	UnopPostDecrement                 // x--
	UnopPostIncrement                 // x++
)

func (k UnopKind) String() string { return unopStrings[k] }

var unopStrings = [...]string{
	UnopInvertBits:     "~",
	UnopNot:            "!",
	UnopAddressOf:      "&",
	UnopDeref:          "*",
	UnopNegative:       "-",
	UnopPositive:       "+",
	UnopPreDecrement:   "--",
	UnopPreIncrement:   "++",
	UnopPostDecrement:  "--",
	UnopPostIncrement:  "++",
}

// BinopKind identifies a binary operator.
type BinopKind int

const (
	BinopAssign BinopKind = iota // =
	BinopEquals                  // ==
	BinopMinus                   // -
	BinopPlus                    // +
	BinopMul                     // *
	BinopDiv                     // /
	BinopBitAnd                  // &
	BinopBitOr                   // |
	BinopBitXor                  // ^
)

func (k BinopKind) String() string { return binopStrings[k] }

var binopStrings = [...]string{
	BinopAssign: "=",
	BinopEquals: "==",
	BinopMinus:  "-",
	BinopPlus:   "+",
	BinopMul:    "*",
	BinopDiv:    "/",
	BinopBitAnd: "&",
	BinopBitOr:  "|",
	BinopBitXor: "^",
}

// ExprKind identifies the concrete shape of an Expr's Data.
type ExprKind int

const (
	ExprLiteral ExprKind = iota
	ExprSymref
	ExprUnop
	ExprBinop
	ExprMember
	ExprSubscript
	ExprCall
)

func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "literal"
	case ExprSymref:
		return "symref"
	case ExprUnop:
		return "unop"
	case ExprBinop:
		return "binop"
	case ExprMember:
		return "member"
	case ExprSubscript:
		return "subscript"
	case ExprCall:
		return "call"
	default:
		return "unknown expr kind"
	}
}

// ExprData is the kind-specific payload of an Expr: an exhaustive sum type
// over the seven expression shapes the grammar produces.
type ExprData interface {
	exprData()
}

// LiteralExpr wraps the originating integer-literal Token.
type LiteralExpr struct {
	Tok TokenID
}

func (LiteralExpr) exprData() {}

// SymrefExpr wraps a use-site Symref.
type SymrefExpr struct {
	Ref SymrefID
}

func (SymrefExpr) exprData() {}

// UnopExpr is a prefix or postfix unary operator application.
type UnopExpr struct {
	Op      UnopKind
	Tok     TokenID
	Operand ExprID
}

func (UnopExpr) exprData() {}

// BinopExpr is a binary operator application.
type BinopExpr struct {
	Op    BinopKind
	Tok   TokenID
	Left  ExprID
	Right ExprID
}

func (BinopExpr) exprData() {}

// MemberExpr is `base.name`.
type MemberExpr struct {
	Base ExprID
	Name arena.String
}

func (MemberExpr) exprData() {}

// SubscriptExpr is `base[index]`.
type SubscriptExpr struct {
	Base  ExprID
	Index ExprID
}

func (SubscriptExpr) exprData() {}

// CallExpr is `callee(args...)`. Its CallArgs are contiguous in the CallArg
// arena, starting at FirstArg, ordered by rank.
type CallExpr struct {
	Callee   ExprID
	FirstArg CallArgID
	NumArgs  int
}

func (CallExpr) exprData() {}

// Expr is the arena-resident envelope around an ExprData. Type is reserved
// for a future typing pass (populated by no pass described in this spec) and
// is always the zero TypeID here.
type Expr struct {
	Kind ExprKind
	Data ExprData
	Type TypeID
}

func NewLiteralExpr(d LiteralExpr) Expr       { return Expr{Kind: ExprLiteral, Data: d} }
func NewSymrefExpr(d SymrefExpr) Expr         { return Expr{Kind: ExprSymref, Data: d} }
func NewUnopExpr(d UnopExpr) Expr             { return Expr{Kind: ExprUnop, Data: d} }
func NewBinopExpr(d BinopExpr) Expr           { return Expr{Kind: ExprBinop, Data: d} }
func NewMemberExpr(d MemberExpr) Expr         { return Expr{Kind: ExprMember, Data: d} }
func NewSubscriptExpr(d SubscriptExpr) Expr   { return Expr{Kind: ExprSubscript, Data: d} }
func NewCallExpr(d CallExpr) Expr             { return Expr{Kind: ExprCall, Data: d} }
