package expr

import "github.com/jdecompiler/jdgo/types"

// CompareType is the relational spelling a condition prints with
// (`>`, `>=`, `<`, `<=`), each invertible to its logical opposite so an
// inverted condition (spec.md glossary "Inversion") never needs a new
// node. Grounded on condition-operations.cpp's CompareType enum.
type CompareType int

const (
	CompareGreater CompareType = iota
	CompareGreaterOrEquals
	CompareLess
	CompareLessOrEquals
)

func (c CompareType) String() string {
	switch c {
	case CompareGreater:
		return ">"
	case CompareGreaterOrEquals:
		return ">="
	case CompareLess:
		return "<"
	case CompareLessOrEquals:
		return "<="
	default:
		return "?"
	}
}

// Invert returns the logical negation (`x > y` inverted is `x <= y`).
func (c CompareType) Invert() CompareType {
	switch c {
	case CompareGreater:
		return CompareLessOrEquals
	case CompareGreaterOrEquals:
		return CompareLess
	case CompareLess:
		return CompareGreaterOrEquals
	case CompareLessOrEquals:
		return CompareGreater
	default:
		return c
	}
}

// EqualsCompareType is the separate `==`/`!=` family: the VM's if_acmp*
// and ifnull/ifnonnull families only ever produce an equality test, never
// an ordering one, so it's kept distinct from CompareType (mirrors the
// original's EqualsCompareType vs CompareType split).
type EqualsCompareType int

const (
	CompareEquals EqualsCompareType = iota
	CompareNotEquals
)

// Unary renders the equality spelling as a standalone boolean test, used
// when the compared value is itself already boolean-typed (`!x` rather
// than `x == false`).
func (e EqualsCompareType) Unary(negatedPrefix bool) string {
	if (e == CompareEquals) != negatedPrefix {
		return "!"
	}
	return ""
}

func (e EqualsCompareType) String() string {
	if e == CompareEquals {
		return "=="
	}
	return "!="
}

func (e EqualsCompareType) Invert() EqualsCompareType {
	if e == CompareEquals {
		return CompareNotEquals
	}
	return CompareEquals
}

// CmpOperation is the intermediate three-way result of lcmp/fcmpl/fcmpg/
// dcmpl/dcmpg: pushes -1/0/1, always immediately consumed by a following
// if<cond> against zero. The decompiler fuses the pair into a
// CompareBinaryOperation and this node should never survive to
// stringification; it exists so the dispatch table can push something
// between the two opcodes (spec.md §4.4's two-phase compare note).
type CmpOperation struct {
	Left, Right Operation
	// NaNGreater distinguishes fcmpg/dcmpg (NaN compares as greater) from
	// fcmpl/dcmpl (NaN compares as less); lcmp has no NaN case and sets
	// this arbitrarily since it's only inspected when Left/Right are
	// floating.
	NaNGreater bool
}

func (c *CmpOperation) ReturnType() types.Type { return types.INT }
func (c *CmpOperation) Priority() Priority      { return PriorityRelational }
func (c *CmpOperation) IsStatement() bool       { return false }

// ConditionOperation is any boolean-valued node usable directly as an
// if-statement's condition, invertible in place (spec.md §4.4's AND/OR
// fusion only ever inverts the fused leaves, never rebuilds them).
type ConditionOperation interface {
	Operation
	Invert() Operation
}

// CompareBinaryOperation is `left <cmp> right`, built by fusing a
// CmpOperation with the if<cond> that consumes it, or directly from
// if_icmp*/if_acmp* (spec.md §4.4). Equals is set instead of CompareType
// for if_icmpeq/if_icmpne/if_acmpeq/if_acmpne, which test equality rather
// than ordering (`==`/`!=` rather than `<`/`>=`/...); exactly one of the
// two fields is meaningful on a given node.
type CompareBinaryOperation struct {
	Left, Right Operation
	CompareType CompareType
	Equals      *EqualsCompareType
}

func (c *CompareBinaryOperation) ReturnType() types.Type { return types.BOOLEAN }
func (c *CompareBinaryOperation) Priority() Priority {
	if c.Equals != nil {
		return PriorityEquality
	}
	return PriorityRelational
}
func (c *CompareBinaryOperation) IsStatement() bool { return false }
func (c *CompareBinaryOperation) Invert() Operation {
	if c.Equals != nil {
		inverted := c.Equals.Invert()
		c.Equals = &inverted
	} else {
		c.CompareType = c.CompareType.Invert()
	}
	return c
}

// CompareWithZeroOperation is `ifeq`/`ifne`/`iflt`/... against an int
// operand with no preceding icmp — equivalently `operand <cmp> 0`.
type CompareWithZeroOperation struct {
	Operand     Operation
	CompareType CompareType
	// Equals is used instead of CompareType when this is ifeq/ifne,
	// whatever the operand's type. A boolean-typed operand then prints as
	// `!x`/`x` rather than `x == 0`/`x != 0` (spec.md §4.4's unary boolean
	// spelling); any other operand keeps the `== 0`/`!= 0` form.
	Equals      *EqualsCompareType
}

func (c *CompareWithZeroOperation) ReturnType() types.Type { return types.BOOLEAN }
func (c *CompareWithZeroOperation) Priority() Priority {
	if c.Equals != nil && c.Operand.ReturnType().Equal(types.BOOLEAN) {
		return PriorityUnary
	}
	return PriorityRelational
}
func (c *CompareWithZeroOperation) IsStatement() bool { return false }
func (c *CompareWithZeroOperation) Invert() Operation {
	if c.Equals != nil {
		inverted := c.Equals.Invert()
		c.Equals = &inverted
	} else {
		c.CompareType = c.CompareType.Invert()
	}
	return c
}

// CompareWithNullOperation is `ifnull`/`ifnonnull`, or an `if_acmp*`
// against a known-null operand folded the same way.
type CompareWithNullOperation struct {
	Operand Operation
	Equals  EqualsCompareType
}

func (c *CompareWithNullOperation) ReturnType() types.Type { return types.BOOLEAN }
func (c *CompareWithNullOperation) Priority() Priority      { return PriorityEquality }
func (c *CompareWithNullOperation) IsStatement() bool       { return false }
func (c *CompareWithNullOperation) Invert() Operation {
	c.Equals = c.Equals.Invert()
	return c
}

// AndOperation / OrOperation fuse adjacent condition tests joined by
// short-circuit branching structure into `&&`/`||` (spec.md §4.4's
// condition-fusion pass). Inverting a fused condition pushes the
// inversion down into both operands and flips the connective (De
// Morgan), rather than wrapping in a new negation node, matching the
// original's in-place AndOperation::invert/OrOperation::invert.
type AndOperation struct {
	Left, Right ConditionOperation
}

func (a *AndOperation) ReturnType() types.Type { return types.BOOLEAN }
func (a *AndOperation) Priority() Priority      { return PriorityLogicalAnd }
func (a *AndOperation) IsStatement() bool       { return false }
func (a *AndOperation) Invert() Operation {
	left := a.Left.Invert().(ConditionOperation)
	right := a.Right.Invert().(ConditionOperation)
	return &OrOperation{Left: left, Right: right}
}

type OrOperation struct {
	Left, Right ConditionOperation
}

func (o *OrOperation) ReturnType() types.Type { return types.BOOLEAN }
func (o *OrOperation) Priority() Priority      { return PriorityLogicalOr }
func (o *OrOperation) IsStatement() bool       { return false }
func (o *OrOperation) Invert() Operation {
	left := o.Left.Invert().(ConditionOperation)
	right := o.Right.Invert().(ConditionOperation)
	return &AndOperation{Left: left, Right: right}
}

// TernaryOperatorOperation is `cond ? ifTrue : ifFalse`, detected by the
// scope package when an if/else's two branches each assign the same
// variable (spec.md §4.5's ternary detection).
type TernaryOperatorOperation struct {
	Condition         ConditionOperation
	IfTrue, IfFalse   Operation
	Type              types.Type
	// IsShort marks the `cond ? 1 : 0` shape, where the ternary's value is
	// already exactly the condition's own boolean value — the print
	// package then renders the bare condition instead of the full
	// `cond ? 1 : 0` spelling. Grounded on condition-operations.cpp's
	// TernaryOperatorOperation::isShort.
	IsShort bool
}

func (t *TernaryOperatorOperation) ReturnType() types.Type { return t.Type }
func (t *TernaryOperatorOperation) Priority() Priority      { return PriorityTernary }
func (t *TernaryOperatorOperation) IsStatement() bool       { return false }
