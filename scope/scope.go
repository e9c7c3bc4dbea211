// Package scope implements stage 2's control-flow reconstruction (spec.md
// §4.4): turning disasm.Block markers into a nested tree of typed,
// decompiled Scopes once their body's Operations are known.
//
// The original keeps each block kind as a distinct C++ class in a single
// virtual hierarchy with mutable cross-references (IfBlock.elseBlock,
// ElseBlock.ifBlock) that point directly at each other. Per spec.md §9's
// guidance, this package replaces that with one Scope struct tagged by
// Kind plus index-addressed side fields (ElseOfIndex holds an *index*, not a
// pointer, exactly like the teacher's disasm.BlockInfo.PairIndex) so the
// tree stays acyclic and safe to walk without knowing which concrete kind
// produced a node.
package scope

import "github.com/jdecompiler/jdgo/expr"

// Kind identifies which control-flow construct a Scope reconstructs.
type Kind int

const (
	KindRoot Kind = iota
	KindIf
	KindElse
	KindWhile
	KindInfiniteLoop
	KindSwitch
	KindCase
	KindTry
	KindCatch
	KindSynchronized
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindIf:
		return "if"
	case KindElse:
		return "else"
	case KindWhile:
		return "while"
	case KindInfiniteLoop:
		return "loop"
	case KindSwitch:
		return "switch"
	case KindCase:
		return "case"
	case KindTry:
		return "try"
	case KindCatch:
		return "catch"
	case KindSynchronized:
		return "synchronized"
	default:
		return "?"
	}
}

// Node is one entry of a Scope's body: either an expr.Operation (a plain
// statement) or a nested *Scope.
type Node interface{}

// Scope is a decompiled, typed, nested control-flow region. Grounded on
// blocks/if-blocks.cpp, switch.cpp, try.cpp, catch.cpp — IfScope,
// SwitchScope, TryScope and CatchScope in the original all share this
// same shape (a condition/selector, a body, an index range); what varies
// between them lives in the Kind-specific fields below instead of in a
// subclass.
type Scope struct {
	Kind Kind

	StartIndex, EndIndex int
	Parent               *Scope
	Body                 []Node

	// Condition is the (possibly AND/OR-fused) test for KindIf/KindWhile;
	// nil for every other Kind.
	Condition expr.ConditionOperation

	// ElseOfIndex is the index (into the owning method's flattened scope
	// list, assigned by Builder.AttachElse when the else is attached) of
	// the KindIf scope this KindElse scope attaches to, or -1. Kept as an
	// index rather than a pointer so the tree has no back-reference
	// cycles, per spec.md §9.
	ElseOfIndex int

	// Selector is the switched-on expression for a KindSwitch scope, nil
	// for every other Kind.
	Selector expr.Operation

	// SwitchCases holds one entry per case label for a KindSwitch scope,
	// in source order; the `default` label (if present) always appears
	// last regardless of its position in the class file's switch table,
	// matching javac's own convention.
	SwitchCases []SwitchCase

	// CaughtTypes lists the (possibly coalesced, spec.md §4.4) exception
	// type names a KindCatch scope handles; more than one entry means a
	// multi-catch (`catch (A | B e)`).
	CaughtTypes []string
	// CatchVar is nil for a caught-but-unused exception value.
	CatchVar *expr.Variable

	// Label is a loop or switch label; the print package writes it before
	// an infinite loop's header when it is non-empty. Nothing in this
	// module assigns it, so it is always empty and no labeled
	// break/continue is produced.
	Label string
}

// SwitchCase is one `case value:` (or the trailing `default:`) label
// attached to a KindSwitch scope's body at the index where its
// instructions begin.
type SwitchCase struct {
	Values    []int32 // empty for `default`
	IsDefault bool
	BodyIndex int
	// EndIndex is the index where the next case in code order begins (or
	// the switch's own EndIndex for whichever case is last), letting the
	// decompile package close each case's own sub-scope at the right
	// instruction regardless of the source-order position `default` is
	// displayed at.
	EndIndex int
}

// NewRoot creates the method-body root scope spanning the whole
// instruction range.
func NewRoot(endIndex int) *Scope {
	return &Scope{Kind: KindRoot, StartIndex: 0, EndIndex: endIndex, ElseOfIndex: -1}
}

// Append adds a statement or nested scope to s's body.
func (s *Scope) Append(n Node) {
	s.Body = append(s.Body, n)
}

// Statements returns s's body filtered to plain operations (KindRoot and
// every other scope kind may freely mix operations and nested scopes;
// this is a convenience accessor for callers that only want one or the
// other).
func (s *Scope) Statements() []expr.Operation {
	var out []expr.Operation
	for _, n := range s.Body {
		if op, ok := n.(expr.Operation); ok {
			out = append(out, op)
		}
	}
	return out
}

// NestedScopes returns s's body filtered to nested scopes.
func (s *Scope) NestedScopes() []*Scope {
	var out []*Scope
	for _, n := range s.Body {
		if sc, ok := n.(*Scope); ok {
			out = append(out, sc)
		}
	}
	return out
}
