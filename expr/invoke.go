package expr

import "github.com/jdecompiler/jdgo/types"

// InvokeKind distinguishes the four invoke opcodes' dispatch semantics
// (spec.md §4.2); the decompiler doesn't re-derive dispatch, it just
// carries the opcode's own kind through to printing (a static call prints
// its owner's simple name as the receiver).
type InvokeKind int

const (
	InvokeVirtual InvokeKind = iota
	InvokeSpecial
	InvokeStatic
	InvokeInterface
)

// InvokeOperation is a method call. A void-returning invoke is only ever
// legal as a statement (spec.md §4.2); invokes returning a value may
// nest inside another expression.
type InvokeOperation struct {
	Kind     InvokeKind
	Instance Operation // nil for InvokeStatic
	Owner    *types.ClassType
	Name     string
	Args     []Operation
	Type     types.Type // VOID for a void method
}

func (i *InvokeOperation) ReturnType() types.Type { return i.Type }
func (i *InvokeOperation) Priority() Priority      { return PriorityPostfix }
func (i *InvokeOperation) IsStatement() bool       { return i.Type.Equal(types.VOID) }

// NewInstanceOperation is the fused `new Foo(...)` produced by pairing a
// `new` + dup + field-init pattern with the matching invokespecial
// <init> call (spec.md §4.2's constructor-call recognition) — the raw
// `new` opcode never survives to a standalone node once its constructor
// call is located.
type NewInstanceOperation struct {
	Class *types.ClassType
	Args  []Operation
}

func (n *NewInstanceOperation) ReturnType() types.Type { return n.Class }
func (n *NewInstanceOperation) Priority() Priority      { return PriorityUnary }
func (n *NewInstanceOperation) IsStatement() bool       { return false }

// InstanceOfOperation is `instanceof`.
type InstanceOfOperation struct {
	Operand Operation
	Target  types.Type
}

func (i *InstanceOfOperation) ReturnType() types.Type { return types.BOOLEAN }
func (i *InstanceOfOperation) Priority() Priority      { return PriorityRelational }
func (i *InstanceOfOperation) IsStatement() bool       { return false }
