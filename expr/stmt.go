package expr

import "github.com/jdecompiler/jdgo/types"

// ReturnOperation is `*return`; Value is nil for a void return.
type ReturnOperation struct {
	Value Operation
}

func (r *ReturnOperation) ReturnType() types.Type { return types.VOID }
func (r *ReturnOperation) Priority() Priority      { return PriorityAssignment }
func (r *ReturnOperation) IsStatement() bool       { return true }

// ThrowOperation is `athrow`.
type ThrowOperation struct {
	Value Operation
}

func (t *ThrowOperation) ReturnType() types.Type { return types.VOID }
func (t *ThrowOperation) Priority() Priority      { return PriorityAssignment }
func (t *ThrowOperation) IsStatement() bool       { return true }

// ExprStatementOperation wraps a non-void invoke whose result is
// discarded (the expression's value is popped, not assigned): the VM
// allows this but it only ever arises from a plain `foo();` call whose
// return value the source simply ignored.
type ExprStatementOperation struct {
	Value Operation
}

func (e *ExprStatementOperation) ReturnType() types.Type { return types.VOID }
func (e *ExprStatementOperation) Priority() Priority      { return PriorityAssignment }
func (e *ExprStatementOperation) IsStatement() bool       { return true }

// DeclareVariableOperation is a variable declaration with no initializer
// (a local that's assigned on only some paths before its first read,
// forcing an explicit `Type name;` line rather than folding the
// declaration into the first store) — grounded on
// operations/declare-variable.cpp.
type DeclareVariableOperation struct {
	Var *Variable
}

func (d *DeclareVariableOperation) ReturnType() types.Type { return types.VOID }
func (d *DeclareVariableOperation) Priority() Priority      { return PriorityAssignment }
func (d *DeclareVariableOperation) IsStatement() bool       { return true }

// MonitorOperation is monitorenter/monitorexit, emitted as a bare
// statement; the `scope` package's KindSynchronized exists for a future
// pass that fuses a well-formed enter/exit pair into a
// `synchronized(x) { ... }` scope, but nothing builds that fusion yet.
type MonitorOperation struct {
	Object Operation
	Enter  bool
}

func (m *MonitorOperation) ReturnType() types.Type { return types.VOID }
func (m *MonitorOperation) Priority() Priority      { return PriorityAssignment }
func (m *MonitorOperation) IsStatement() bool       { return true }

// BreakOperation is a `break` (or `break label`) statement, synthesized
// from a forward goto that isn't consumed as an if/else boundary marker
// (spec.md §4.4). Label is always empty: nothing in this module assigns
// a label, so jumps out of more than one enclosing loop or switch are not
// disambiguated.
type BreakOperation struct {
	Label string
}

func (b *BreakOperation) ReturnType() types.Type { return types.VOID }
func (b *BreakOperation) Priority() Priority      { return PriorityAssignment }
func (b *BreakOperation) IsStatement() bool       { return true }

// ContinueOperation is a `continue` (or `continue label`) statement,
// synthesized by the decompile package from a backward goto that is not
// the current loop's own closing edge, and as the body of the
// `if(cond) continue;` check built from a backward conditional branch.
type ContinueOperation struct {
	Label string
}

func (c *ContinueOperation) ReturnType() types.Type { return types.VOID }
func (c *ContinueOperation) Priority() Priority      { return PriorityAssignment }
func (c *ContinueOperation) IsStatement() bool       { return true }
