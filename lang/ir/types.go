package ir

import "github.com/mna/zyc/lang/arena"

// TypeKind identifies the concrete shape of a Type's Data.
type TypeKind int

const (
	TypeBase TypeKind = iota
	TypeEntity
	TypeArray
	TypeProc
	TypeReference
)

func (k TypeKind) String() string {
	switch k {
	case TypeBase:
		return "base"
	case TypeEntity:
		return "entity"
	case TypeArray:
		return "array"
	case TypeProc:
		return "proc"
	case TypeReference:
		return "reference"
	default:
		return "unknown type kind"
	}
}

// TypeData is the kind-specific payload of a Type: an exhaustive sum type
// over BaseType, EntityType, ArrayType, ProcType and ReferenceType. A type
// switch on TypeData (or a check of Type.Kind, kept in sync by construction)
// is expected to handle every case; there is deliberately no default
// interface method that lets a new variant silently fall through.
type TypeData interface {
	typeData()
}

// BaseType is a built-in type such as int, named and sized in bytes.
type BaseType struct {
	Name arena.String
	Size int
}

func (BaseType) typeData() {}

// EntityType is a user-defined record type: a name plus an ordered list of
// member types. spec.md's grammar shows a single member
// (`entity Foo { int; }`); Members generalizes that to the list form
// (`entity Foo { int; *Foo; }`) implied by the original implementation's
// EntitytypeInfo, with members numbered 0..len(Members)-1 in declaration
// order.
type EntityType struct {
	Name    arena.String
	Members []TypeID
}

func (EntityType) typeData() {}

// ArrayType is `[IDXTYPE]VALTYPE`: an index type and an element (value)
// type.
type ArrayType struct {
	Index TypeID
	Value TypeID
}

func (ArrayType) typeData() {}

// ProcType is `proc(paramtypes...)RETTYPE`. Its ParamTypes are contiguous in
// the ParamType arena, starting at FirstParamType, ordered by rank.
type ProcType struct {
	Return         TypeID
	NumParams      int
	FirstParamType ParamTypeID
}

func (ProcType) typeData() {}

// ParamType is one parameter type of a ProcType. There is no back-link to
// the owning ProcType: ProcType already reaches its ParamTypes forward via
// FirstParamType, and nothing needs the reverse direction.
type ParamType struct {
	Arg  TypeID
	Rank int
}

// ReferenceType is a symref to a named type: either a bare use of that name
// (`Foo`) or a pointer to it (`*Foo`). Ref must resolve to a SYMBOL_TYPE
// symbol. ResolvedType caches the target TypeID once the symref resolves.
//
// Pointer distinguishes the two forms because they complete differently:
// a bare reference is complete only once its target type is complete (it
// IS that type, under another name), while a pointer is complete as soon
// as its symref resolves, regardless of whether the pointee is itself
// complete yet — the classic forward-declared-pointer rule that lets two
// entities point at each other (`entity A { *B; } entity B { *A; }`)
// complete without forming a cycle.
type ReferenceType struct {
	Ref          SymrefID
	Pointer      bool
	ResolvedType TypeID
}

func (ReferenceType) typeData() {}

// Type is the arena-resident envelope around a TypeData: the shared
// bookkeeping (Kind, for dispatch without a type assertion, and Complete,
// mutated in place only by the type completer) plus the kind-specific Data.
type Type struct {
	Kind     TypeKind
	Data     TypeData
	Complete bool
}

// NewBaseType, NewEntityType, etc. build a Type envelope with Kind and Data
// kept consistent, so the two never diverge.

func NewBaseType(d BaseType) Type           { return Type{Kind: TypeBase, Data: d} }
func NewEntityType(d EntityType) Type       { return Type{Kind: TypeEntity, Data: d} }
func NewArrayType(d ArrayType) Type         { return Type{Kind: TypeArray, Data: d} }
func NewProcType(d ProcType) Type           { return Type{Kind: TypeProc, Data: d} }
func NewReferenceType(d ReferenceType) Type { return Type{Kind: TypeReference, Data: d} }
