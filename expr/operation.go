// Package expr implements the Operation AST (spec.md §3, §4.3): nodes
// produced by the decompile package's symbolic stack interpreter, typed
// and precedence-tagged so the print package can stringify them without
// re-deriving any semantics.
//
// Grounded on original_source/condition-operations.cpp and
// operations/declare-variable.cpp. The original's deep virtual hierarchy
// (Operation -> BooleanOperation -> ConditionOperation -> ...) is
// replaced by a single Operation interface implemented by a closed set of
// structs, per spec.md §9's "closed variant" guidance — the set of
// operation kinds is bounded by the VM's opcode table, so a sealed
// interface plus type switches in the print package is a better fit for
// Go than an open class hierarchy.
package expr

import "github.com/jdecompiler/jdgo/types"

// Priority is the operator-precedence class used to decide when a child
// operation needs parenthesizing. Grounded on condition-operations.cpp's
// Priority enum (Priority::GREATER_LESS_COMPARASION,
// Priority::EQUALS_COMPARASION, Priority::LOGICAL_AND, ...), widened to
// cover the operation families the original spreads across other files.
type Priority int

const (
	PriorityLiteral Priority = iota
	PriorityPostfix          // array access, field access, method call
	PriorityUnary
	PriorityMultiplicative
	PriorityAdditive
	PriorityShift
	PriorityRelational // > >= < <=
	PriorityEquality   // == !=
	PriorityBitwiseAnd
	PriorityBitwiseXor
	PriorityBitwiseOr
	PriorityLogicalAnd
	PriorityLogicalOr
	PriorityTernary
	PriorityAssignment
)

// Associativity tags which side of a binary operation a child occupies,
// so the print package knows which side a weaker-but-equal-priority child
// may omit parentheses on.
type Associativity int

const (
	AssocLeft Associativity = iota
	AssocRight
)

// Operation is one node of the expression tree. Every instruction in the
// dispatch table either pushes or pops some number of Operations.
type Operation interface {
	// ReturnType is the (possibly still-narrowing) type this operation
	// evaluates to.
	ReturnType() types.Type
	// Priority is this operation's precedence class.
	Priority() Priority
	// IsStatement reports whether this operation is only ever legal as a
	// standalone statement (assignment, invoke-as-statement, return,
	// throw, variable declaration) rather than nested inside another
	// expression.
	IsStatement() bool
}

// ReturnTypeNarrower is implemented by operations whose return type can
// still be narrowed after construction — constants and variable loads
// typed with a VariableCapacityIntegralType. Mirrors
// castReturnTypeTo/cast_return_type_to from spec.md §4.2: pop_as invokes
// this on the popped operation so aliased references benefit too
// (monotone narrowing, spec.md §8 property 4).
type ReturnTypeNarrower interface {
	Operation
	// CastReturnTypeTo narrows the operation's return type toward want,
	// in place, and returns the resulting type (nil if the cast is
	// impossible — the caller then keeps the operation's own type and
	// records a diagnostics warning when that type cannot be cast to want
	// either, per spec.md §7).
	CastReturnTypeTo(want types.Type) types.Type
}

// Invertible is implemented by condition operations: toggling polarity
// (spec.md glossary "Inversion") happens in place, exactly like the
// original's mutable `inverted` field, because an inverted condition must
// still refer to the same AST node shared by any other scope that fused
// it (AND/OR fusion in blocks/if-blocks.cpp).
type Invertible interface {
	Operation
	Invert() Operation
}
