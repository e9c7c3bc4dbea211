package decompile

import (
	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/types"
)

// newInstancePlaceholder stands in for the value a `new` opcode pushes,
// between the `new`/`dup` pair and the invokespecial <init> call that
// eventually consumes one of the two duplicated references (spec.md
// §4.2's new+dup+invokespecial<init> fusion). Both stack slots created
// by `new; dup` hold this same pointer; resolving it in place once
// <init> is located makes the surviving duplicate (whatever the caller
// does with the constructed value next: store it, pass it as an arg,
// discard it) observe the final *expr.NewInstanceOperation without a
// separate tree-rewrite pass, the same way the original leaves
// `NewOperation::operation` to be filled in once the constructor call is
// matched.
type newInstancePlaceholder struct {
	Class    *types.ClassType
	Resolved expr.Operation
}

func (p *newInstancePlaceholder) ReturnType() types.Type {
	if p.Resolved != nil {
		return p.Resolved.ReturnType()
	}
	return p.Class
}

func (p *newInstancePlaceholder) Priority() expr.Priority {
	if p.Resolved != nil {
		return p.Resolved.Priority()
	}
	return expr.PriorityUnary
}

func (p *newInstancePlaceholder) IsStatement() bool { return false }

// resolvePlaceholder substitutes an already-resolved newInstancePlaceholder
// for the real NewInstanceOperation it stands for; an operation that isn't
// one, or one still unresolved (malformed bytecode: a use site reached
// before <init> ran), passes through unchanged.
func resolvePlaceholder(op expr.Operation) expr.Operation {
	if p, ok := op.(*newInstancePlaceholder); ok && p.Resolved != nil {
		return p.Resolved
	}
	return op
}
