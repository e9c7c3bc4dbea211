// Package types implements the type lattice used to infer and narrow the
// types of values flowing through the symbolic stack during decompilation.
//
// The lattice has a single top (AnyType), primitive types that widen along
// the VM's numeric promotion order, reference types rooted at
// java.lang.Object, and a family of special placeholder types used only
// during inference (VariableCapacityIntegralType, AnyObjectType,
// ExcludingBooleanType).
package types

// Size classifies the footprint of a type on the operand stack / in a
// local-variable slot.
type Size int

const (
	SizeZero Size = iota
	SizeFour
	SizeEight
)

// CastStatus describes whether an implicit cast from one type to another
// is free, widening, narrowing, or impossible.
type CastStatus int

const (
	CastSame CastStatus = iota
	CastExtend
	CastNarrow
	CastNarrowExtend
	CastIncompatible
)

func (s CastStatus) String() string {
	switch s {
	case CastSame:
		return "same"
	case CastExtend:
		return "extend"
	case CastNarrow:
		return "narrow"
	case CastNarrowExtend:
		return "narrow-extend"
	default:
		return "incompatible"
	}
}

// Type is a node in the type lattice.
//
// Cast, CastToWidest and ReversedCast return nil (⊥) when no common type
// exists; callers must check for nil rather than relying on a panic, since
// an impossible cast is a routine outcome during inference (spec.md §4.1).
type Type interface {
	// Name is the source-level name, e.g. "int" or "java.lang.String".
	Name() string
	// EncodedName is the one-letter or descriptor-shaped encoded form,
	// e.g. "I" for int, "Ljava/lang/String;" for String.
	EncodedName() string
	// VarNameStem is the default stem used to synthesize a variable name
	// when no debug name is available, e.g. "n" for int, "b" for byte.
	VarNameStem() string
	// Size is the stack-slot / local-slot footprint of the type.
	Size() Size

	IsSubtypeOf(other Type) bool
	Cast(other Type) Type
	CastToWidest(other Type) Type
	ReversedCast(other Type) Type
	ImplicitCastStatus(other Type) CastStatus

	// Equal reports structural equality; for singleton types this is
	// pointer identity, for constructed reference types it compares the
	// encoded name.
	Equal(other Type) bool

	String() string
}

// IsVoid reports whether t is the VOID singleton.
func IsVoid(t Type) bool {
	return t != nil && t.Equal(VOID)
}
