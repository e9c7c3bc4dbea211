package expr

import "github.com/jdecompiler/jdgo/types"

// IntConstOperation is an int-family constant (iconst_*, bipush, sipush,
// ldc of an int). Its return type starts as the widest
// VariableCapacityIntegralType consistent with the literal value and
// narrows as it's consumed (spec.md §4.2) — grounded on
// operations/const-operations.cpp's IConstOperation, whose type field the
// original also narrows in place.
type IntConstOperation struct {
	Value      int32
	returnType types.Type
}

// NewIntConst builds an int constant with the widest plausible capacity
// interval for value, matching the original's getConstIntegralType table
// (spec.md §4.1's literal-driven narrowing).
func NewIntConst(value int32) *IntConstOperation {
	return &IntConstOperation{Value: value, returnType: widestIntervalFor(value)}
}

// widestIntervalFor picks the starting interval for a bare int32 constant:
// 0 and 1 start at ANY_INT_OR_BOOLEAN, since either may be a boolean;
// every other value starts at ANY_SIGNED_INT, which admits neither boolean
// nor char. The value's magnitude is not used to rule out narrower
// capacities; consumers narrow down from there.
func widestIntervalFor(value int32) types.Type {
	if value == 0 || value == 1 {
		return types.ANY_INT_OR_BOOLEAN
	}
	return types.ANY_SIGNED_INT
}

func (c *IntConstOperation) ReturnType() types.Type { return c.returnType }
func (c *IntConstOperation) Priority() Priority      { return PriorityLiteral }
func (c *IntConstOperation) IsStatement() bool       { return false }

func (c *IntConstOperation) CastReturnTypeTo(want types.Type) types.Type {
	if r := c.returnType.Cast(want); r != nil {
		c.returnType = r
		return r
	}
	return nil
}

// LongConstOperation, FloatConstOperation and DoubleConstOperation carry
// fixed return types: long/float/double never join the capacity-interval
// lattice (spec.md §5's integral subfamily excludes long; float/double
// have no narrower siblings).
type LongConstOperation struct{ Value int64 }

func (c *LongConstOperation) ReturnType() types.Type { return types.LONG }
func (c *LongConstOperation) Priority() Priority      { return PriorityLiteral }
func (c *LongConstOperation) IsStatement() bool       { return false }

type FloatConstOperation struct{ Value float32 }

func (c *FloatConstOperation) ReturnType() types.Type { return types.FLOAT }
func (c *FloatConstOperation) Priority() Priority      { return PriorityLiteral }
func (c *FloatConstOperation) IsStatement() bool       { return false }

type DoubleConstOperation struct{ Value float64 }

func (c *DoubleConstOperation) ReturnType() types.Type { return types.DOUBLE }
func (c *DoubleConstOperation) Priority() Priority      { return PriorityLiteral }
func (c *DoubleConstOperation) IsStatement() bool       { return false }

// StringConstOperation is a `ldc` of a string-pool entry.
type StringConstOperation struct{ Value string }

func (c *StringConstOperation) ReturnType() types.Type { return types.STRING }
func (c *StringConstOperation) Priority() Priority      { return PriorityLiteral }
func (c *StringConstOperation) IsStatement() bool       { return false }

// ClassConstOperation is a `ldc` of a Class literal (`Foo.class`).
type ClassConstOperation struct{ Referenced types.Type }

func (c *ClassConstOperation) ReturnType() types.Type { return types.CLASS_CLASS }
func (c *ClassConstOperation) Priority() Priority      { return PriorityLiteral }
func (c *ClassConstOperation) IsStatement() bool       { return false }

// NullConstOperation is `aconst_null`. Its return type is ANY_OBJECT until
// a consumer narrows it toward a concrete reference type.
type NullConstOperation struct {
	returnType types.Type
}

func NewNullConst() *NullConstOperation {
	return &NullConstOperation{returnType: types.ANY_OBJECT}
}

func (c *NullConstOperation) ReturnType() types.Type { return c.returnType }
func (c *NullConstOperation) Priority() Priority      { return PriorityLiteral }
func (c *NullConstOperation) IsStatement() bool       { return false }

func (c *NullConstOperation) CastReturnTypeTo(want types.Type) types.Type {
	if want.IsSubtypeOf(types.ANY_OBJECT) || want.Equal(types.ANY_OBJECT) {
		c.returnType = want
		return want
	}
	return nil
}
