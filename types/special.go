package types

// AnyType is the top of the whole lattice. Grounded on
// original_source/types/any.cpp.
type AnyType struct{}

var ANY = &AnyType{}

func (t *AnyType) Name() string        { return "java.lang.Object" }
func (t *AnyType) EncodedName() string { return "SAnyType" }
func (t *AnyType) VarNameStem() string { return "o" }
func (t *AnyType) Size() Size          { return SizeFour }
func (t *AnyType) String() string      { return "AnyType" }
func (t *AnyType) Equal(other Type) bool {
	_, ok := other.(*AnyType)
	return ok
}
func (t *AnyType) IsSubtypeOf(other Type) bool { return true }
func (t *AnyType) Cast(other Type) Type        { return other }
func (t *AnyType) CastToWidest(other Type) Type {
	if p, ok := other.(*PrimitiveType); ok {
		return p.ToVariableCapacityIntegralType()
	}
	return other
}
func (t *AnyType) ReversedCast(other Type) Type { return t.Cast(other) }
func (t *AnyType) ImplicitCastStatus(other Type) CastStatus {
	if _, ok := other.(*AnyType); ok {
		return CastSame
	}
	return CastNarrow
}

// AnyObjectType is the top of the reference-type sub-lattice: any non-
// primitive value, narrower than AnyType but wider than any concrete
// reference type. Grounded on original_source/types/any-object.cpp.
type AnyObjectType struct{}

var ANY_OBJECT = &AnyObjectType{}

func (t *AnyObjectType) Name() string        { return "java.lang.Object" }
func (t *AnyObjectType) EncodedName() string { return "SAnyObjectType" }
func (t *AnyObjectType) VarNameStem() string { return "o" }
func (t *AnyObjectType) Size() Size          { return SizeFour }
func (t *AnyObjectType) String() string      { return "AnyObjectType" }
func (t *AnyObjectType) Equal(other Type) bool {
	_, ok := other.(*AnyObjectType)
	return ok
}
func (t *AnyObjectType) IsSubtypeOf(other Type) bool {
	if t.Equal(other) {
		return true
	}
	if _, ok := other.(*AnyType); ok {
		return true
	}
	_, isRef := other.(*ClassType)
	_, isArr := other.(*ArrayType)
	return isRef || isArr
}
func (t *AnyObjectType) Cast(other Type) Type {
	if t.IsSubtypeOf(other) {
		return other
	}
	return nil
}
func (t *AnyObjectType) CastToWidest(other Type) Type  { return t.Cast(other) }
func (t *AnyObjectType) ReversedCast(other Type) Type  { return t.Cast(other) }
func (t *AnyObjectType) ImplicitCastStatus(other Type) CastStatus {
	if t.Equal(other) {
		return CastSame
	}
	if t.IsSubtypeOf(other) {
		return CastExtend
	}
	return CastNarrow
}

// ExcludingBooleanType is the required-operand type of a non-equals
// comparison (spec.md §4.3's CompareType.getRequiredType): anything except
// boolean. Grounded on original_source/types/excluding-boolean.cpp.
type ExcludingBooleanType struct{}

var EXCLUDING_BOOLEAN = &ExcludingBooleanType{}

func (t *ExcludingBooleanType) Name() string        { return "ExcludingBooleanType" }
func (t *ExcludingBooleanType) EncodedName() string { return "SExcludingBooleanType" }
func (t *ExcludingBooleanType) VarNameStem() string { return "e" }
func (t *ExcludingBooleanType) Size() Size          { return SizeFour }
func (t *ExcludingBooleanType) String() string      { return "ExcludingBooleanType" }
func (t *ExcludingBooleanType) Equal(other Type) bool {
	_, ok := other.(*ExcludingBooleanType)
	return ok
}
func (t *ExcludingBooleanType) IsSubtypeOf(other Type) bool {
	return t.Cast(other) != nil
}
func (t *ExcludingBooleanType) Cast(other Type) Type {
	if vc, ok := other.(*VariableCapacityIntegralType); ok {
		if !vc.includeBoolean {
			return vc
		}
		return getInterned(vc.minCapacity, vc.maxCapacity, false, vc.includeChar)
	}
	if other.Equal(BOOLEAN) {
		return nil
	}
	return other
}
func (t *ExcludingBooleanType) CastToWidest(other Type) Type { return t.Cast(other) }
func (t *ExcludingBooleanType) ReversedCast(other Type) Type { return t.Cast(other) }
func (t *ExcludingBooleanType) ImplicitCastStatus(other Type) CastStatus {
	if t.Cast(other) != nil {
		return CastExtend
	}
	return CastIncompatible
}
