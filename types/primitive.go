package types

// PrimitiveType implements the eight JVM primitive types plus void.
// Grounded on original_source/types/primitive.cpp, int.cpp, byte.cpp,
// short.cpp, char.cpp, long.cpp, boolean.cpp, float.cpp, double.cpp,
// void.cpp: each carries an encoded one-letter name, a source name, a
// variable-name stem, and a size class, matching the teacher's
// ValueType/BlockType enum-with-String()-method shape (wasm/types.go)
// generalized from four value types to the full JVM primitive set.
type PrimitiveType struct {
	encodedName string
	name        string
	varName     string
	size        Size
	capacity    uint8 // 0 for non-integral primitives
	integral    bool
}

var (
	VOID    = &PrimitiveType{encodedName: "V", name: "void", varName: "v", size: SizeZero}
	BOOLEAN = &PrimitiveType{encodedName: "Z", name: "boolean", varName: "bool", size: SizeFour}
	BYTE    = &PrimitiveType{encodedName: "B", name: "byte", varName: "b", size: SizeFour, capacity: 1, integral: true}
	CHAR    = &PrimitiveType{encodedName: "C", name: "char", varName: "c", size: SizeFour}
	SHORT   = &PrimitiveType{encodedName: "S", name: "short", varName: "s", size: SizeFour, capacity: 2, integral: true}
	INT     = &PrimitiveType{encodedName: "I", name: "int", varName: "n", size: SizeFour, capacity: 4, integral: true}
	LONG    = &PrimitiveType{encodedName: "J", name: "long", varName: "l", size: SizeEight}
	FLOAT   = &PrimitiveType{encodedName: "F", name: "float", varName: "f", size: SizeFour}
	DOUBLE  = &PrimitiveType{encodedName: "D", name: "double", varName: "d", size: SizeEight}
)

func (t *PrimitiveType) Name() string        { return t.name }
func (t *PrimitiveType) EncodedName() string { return t.encodedName }
func (t *PrimitiveType) VarNameStem() string { return t.varName }
func (t *PrimitiveType) Size() Size          { return t.size }
func (t *PrimitiveType) String() string      { return t.name }

// IsIntegral reports whether t is one of byte, short, int (the "integral
// subfamily" of spec.md §3 — long is excluded, as in the original: it
// occupies 8 bytes and never appears in a VariableCapacityIntegralType).
func (t *PrimitiveType) IsIntegral() bool { return t.integral }

// Capacity returns the integral capacity in bytes (1, 2 or 4), or 0 if t
// is not integral.
func (t *PrimitiveType) Capacity() uint8 { return t.capacity }

func (t *PrimitiveType) Equal(other Type) bool {
	o, ok := other.(*PrimitiveType)
	return ok && o == t
}

// IsSubtypeOf implements the VM widening order: byte ⊆ short ⊆ int,
// char ⊆ int (original_source/types/double.cpp's isSubtypeOfImpl trio).
func (t *PrimitiveType) IsSubtypeOf(other Type) bool {
	if _, ok := other.(*AnyType); ok {
		return true
	}
	if t == other {
		return true
	}
	switch t {
	case BYTE:
		return other == SHORT || other == INT
	case SHORT:
		return other == INT
	case CHAR:
		return other == INT
	}
	if vc, ok := other.(*VariableCapacityIntegralType); ok {
		return vc.acceptsConcrete(t)
	}
	return false
}

func (t *PrimitiveType) Cast(other Type) Type {
	if t.IsSubtypeOf(other) {
		return t
	}
	if vc, ok := other.(*VariableCapacityIntegralType); ok {
		return vc.reversedCastConcrete(t)
	}
	if _, ok := other.(*AnyType); ok {
		return t
	}
	return nil
}

func (t *PrimitiveType) CastToWidest(other Type) Type {
	if t.IsSubtypeOf(other) {
		return other
	}
	if other.IsSubtypeOf(t) {
		return t
	}
	if vc, ok := other.(*VariableCapacityIntegralType); ok {
		return vc.castToWidestConcrete(t)
	}
	return nil
}

func (t *PrimitiveType) ReversedCast(other Type) Type {
	return t.Cast(other)
}

func (t *PrimitiveType) ImplicitCastStatus(other Type) CastStatus {
	if t == other {
		return CastSame
	}
	op, ok := other.(*PrimitiveType)
	if !ok {
		return CastIncompatible
	}
	if t.IsSubtypeOf(op) {
		return CastExtend
	}
	if op.IsSubtypeOf(t) {
		return CastNarrow
	}
	return CastIncompatible
}

// ToVariableCapacityIntegralType widens a concrete integral/char primitive
// to the canonical interval it could have been inferred from, used when a
// constant sink needs to re-open inference (original_source's
// toVariableCapacityIntegralType overrides on ByteType/CharType/ShortType).
func (t *PrimitiveType) ToVariableCapacityIntegralType() Type {
	switch t {
	case BYTE:
		return ANY_INT
	case CHAR:
		return CHAR_OR_INT
	case SHORT:
		return SHORT_OR_INT
	default:
		return t
	}
}
