package expr

import "github.com/jdecompiler/jdgo/types"

// Variable is a single local slot's decompiled identity: its inferred (and
// possibly still-narrowing) type and a display name, shared by every
// load/store/declare operation that touches the slot so a later rename or
// narrowing is visible everywhere at once (spec.md §3's "Variable"
// entity). Grounded on operations/variable.cpp's Variable class.
type Variable struct {
	Slot        uint16
	Name        string
	Type        types.Type
	// DeclaredAt is the instruction index of the implicit or explicit
	// declaration point. It is recorded only; nothing in this module
	// reads it to decide where a `declare` statement belongs.
	DeclaredAt int
}

// VariableLoadOperation reads a local's current value (spec.md §4.2's
// `*load` family).
type VariableLoadOperation struct {
	Var *Variable
}

func (v *VariableLoadOperation) ReturnType() types.Type { return v.Var.Type }
func (v *VariableLoadOperation) Priority() Priority      { return PriorityLiteral }
func (v *VariableLoadOperation) IsStatement() bool       { return false }

func (v *VariableLoadOperation) CastReturnTypeTo(want types.Type) types.Type {
	if r := v.Var.Type.Cast(want); r != nil {
		v.Var.Type = r
		return r
	}
	return nil
}

// VariableStoreOperation assigns a value to a local (spec.md §4.2's
// `*store` family). Always a statement.
type VariableStoreOperation struct {
	Var   *Variable
	Value Operation
	// Declare marks this store as also being the variable's first
	// assignment in its current scope, so the print package emits a type
	// prefix ("int x = ...") instead of a bare assignment ("x = ...").
	Declare bool
}

func (v *VariableStoreOperation) ReturnType() types.Type { return types.VOID }
func (v *VariableStoreOperation) Priority() Priority      { return PriorityAssignment }
func (v *VariableStoreOperation) IsStatement() bool       { return true }

// IncrementOperation is `iinc`: an in-place add that the original
// recognizes specially so it can print as `x++`, `x--`, or `x += n`
// instead of `x = x + n` (spec.md §4.2).
type IncrementOperation struct {
	Var    *Variable
	Amount int32
	// AsStatement is false when iinc's pre/post value is itself consumed
	// by the surrounding expression (postfix/prefix ++/-- in an
	// expression context rather than standing alone).
	AsStatement bool
	// PostfixValueUsed and PrefixValueUsed distinguish `x++`/`x--` from
	// `++x`/`--x` when the incremented value is also read. Only one may
	// be true; both false implies AsStatement.
	PostfixValueUsed bool
	PrefixValueUsed  bool
}

func (i *IncrementOperation) ReturnType() types.Type {
	if i.AsStatement {
		return types.VOID
	}
	return i.Var.Type
}
func (i *IncrementOperation) Priority() Priority { return PriorityUnary }
func (i *IncrementOperation) IsStatement() bool  { return i.AsStatement }
