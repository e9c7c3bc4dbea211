// Package decompile implements stage 2 of the pipeline (spec.md §2,
// §4.2–§4.4): driving a symbolic operand stack and locals table over the
// disassembled instruction stream to build a typed Operation tree and a
// nested Scope tree. It depends on classfile, disasm, types, expr, scope
// and internal/diag. It keeps its own typed OperandStack rather than using
// internal/stack, which stays generic (plain uint64 depth bookkeeping for
// stage 1) precisely so it need not depend on expr, avoiding an import
// cycle.
package decompile

import (
	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/internal/diag"
	"github.com/jdecompiler/jdgo/types"
)

// OperandStack is the typed symbolic stack spec.md §3 calls the operand
// stack: entries are Operation trees, not runtime values, built up and
// consumed exactly the way the instruction dispatch table would push and
// pop real operands. Grounded on spec.md §4.2's pop_as description and the
// teacher's validate/vm.go operand-stack frame (a plain growable slice
// with height bookkeeping, no separate capacity class).
type OperandStack struct {
	values []expr.Operation
}

// Push puts op on top of the stack.
func (s *OperandStack) Push(op expr.Operation) {
	s.values = append(s.values, op)
}

// Pop removes and returns the top operation. Pop on an empty stack is an
// internal-invariant violation — well-formed bytecode never pops more
// than it has pushed — so it returns an *diag.InvariantError-wrapping
// panic recovered by the caller's per-method decompile loop, mirroring
// spec.md §7's "internal bug indicator" handling.
func (s *OperandStack) Pop() expr.Operation {
	n := len(s.values) - 1
	if n < 0 {
		panic(&diag.InvariantError{Where: "decompile.OperandStack.Pop", Reason: "pop on empty operand stack"})
	}
	op := s.values[n]
	s.values = s.values[:n]
	return resolvePlaceholder(op)
}

// Peek returns the operation k entries below the top without removing
// anything (k == 0 is the top itself) — used by dup handling, which
// pushes Peek(0) a second time.
func (s *OperandStack) Peek(k int) expr.Operation {
	return s.values[len(s.values)-1-k]
}

// Len returns the number of operations currently on the stack.
func (s *OperandStack) Len() int { return len(s.values) }

// Empty reports whether the stack holds no operations.
func (s *OperandStack) Empty() bool { return len(s.values) == 0 }

// PopAs pops the top operation and narrows its return type toward want,
// exactly as spec.md §4.2 describes: if the popped operation implements
// expr.ReturnTypeNarrower (a constant or variable load still holding a
// VariableCapacityIntegralType), the narrowing happens in place and is
// visible to every other alias of that same node — the monotone-narrowing
// property spec.md §8 calls out. If the type cannot be cast to want, diag
// records a warning at index and the operation is returned with its own
// type unchanged; no other type is substituted, and the method is not
// aborted.
func (s *OperandStack) PopAs(want types.Type, diags *diag.Diagnostics, index int) expr.Operation {
	op := s.Pop()
	if narrower, ok := op.(expr.ReturnTypeNarrower); ok {
		if narrower.CastReturnTypeTo(want) != nil {
			return op
		}
	}
	got := op.ReturnType()
	if got.Equal(want) || got.IsSubtypeOf(want) {
		return op
	}
	if got.Cast(want) == nil {
		diags.Warn(index, "cannot cast %s to %s; keeping %s", got, want, got)
	}
	return op
}
