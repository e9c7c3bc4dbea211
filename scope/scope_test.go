package scope

import (
	"testing"

	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/types"
)

func cond(v int32, ct expr.CompareType) expr.ConditionOperation {
	return &expr.CompareWithZeroOperation{Operand: expr.NewIntConst(v), CompareType: ct}
}

func TestOpenIfAndFusion(t *testing.T) {
	root := NewRoot(100)
	b := NewBuilder(root)

	first := b.OpenIf(cond(1, expr.CompareGreater), 0, 10)
	if first == nil {
		t.Fatal("first OpenIf should open a new scope")
	}

	second := b.OpenIf(cond(2, expr.CompareLess), 1, 10)
	if second != nil {
		t.Fatal("matching second if with no body should fuse into an AndOperation, not open a new scope")
	}
	if _, ok := first.Condition.(*expr.AndOperation); !ok {
		t.Fatalf("expected fused AndOperation, got %T", first.Condition)
	}
}

func TestAttachElse(t *testing.T) {
	root := NewRoot(100)
	b := NewBuilder(root)
	ifScope := b.OpenIf(cond(1, expr.CompareGreater), 0, 10)
	b.AddStatement(expr.NewIntConst(0))
	b.Pop()

	elseScope := b.AttachElse(ifScope, 20)
	if elseScope.ElseOfIndex < 0 {
		t.Fatal("else scope should record its owning if scope's index")
	}
	if root.NestedScopes()[1] != elseScope {
		t.Fatal("else scope should be appended to the same parent as the if scope")
	}
}

func TestRewriteAsWhileReplacesEmptyInfiniteLoop(t *testing.T) {
	root := NewRoot(100)
	b := NewBuilder(root)

	loop := b.OpenInfiniteLoop(0, 10)
	while := b.RewriteAsWhile(loop, cond(1, expr.CompareGreater), 1, 10)
	b.AddStatement(expr.NewIntConst(2))
	b.Pop()

	if len(root.NestedScopes()) != 1 {
		t.Fatalf("expected exactly one scope under root, got %d", len(root.NestedScopes()))
	}
	if root.NestedScopes()[0] != while {
		t.Fatal("expected the while scope to replace the infinite loop in the parent's body, not sit alongside it")
	}
	if while.Kind != KindWhile {
		t.Fatalf("expected KindWhile, got %v", while.Kind)
	}
	if while.StartIndex != 1 || while.EndIndex != 10 {
		t.Fatalf("expected the while scope to keep the given range, got [%d,%d)", while.StartIndex, while.EndIndex)
	}
}

func TestMultiCatchCoalescing(t *testing.T) {
	root := NewRoot(100)
	b := NewBuilder(root)
	first := b.OpenCatch(50, 60, "java/lang/IllegalArgumentException")
	second := b.OpenCatch(50, 60, "java/lang/IllegalStateException")
	if first != second {
		t.Fatal("two catch handlers starting at the same index should coalesce into one scope")
	}
	if len(first.CaughtTypes) != 2 {
		t.Fatalf("expected 2 caught types, got %v", first.CaughtTypes)
	}
}

func TestOpenCaseNestsUnderSwitch(t *testing.T) {
	root := NewRoot(100)
	b := NewBuilder(root)

	selector := expr.NewIntConst(0)
	sw := b.OpenSwitch(selector, 0, 20, []SwitchCase{
		{Values: []int32{1}, BodyIndex: 1, EndIndex: 5},
		{IsDefault: true, BodyIndex: 5, EndIndex: 20},
	})

	c1 := b.OpenCase(1, 5)
	b.AddStatement(expr.NewIntConst(1))
	b.Pop()
	c2 := b.OpenCase(5, 20)
	b.AddStatement(expr.NewIntConst(2))
	b.Pop()

	if len(sw.Body) != 2 {
		t.Fatalf("expected two case sub-scopes in the switch body, got %d", len(sw.Body))
	}
	if sw.Body[0] != Node(c1) || sw.Body[1] != Node(c2) {
		t.Fatal("expected the case scopes to appear in the switch body in open order")
	}
	if c1.Kind != KindCase || c2.Kind != KindCase {
		t.Fatal("expected both sub-scopes to be KindCase")
	}
}

func TestTernaryCollapse(t *testing.T) {
	root := NewRoot(100)
	v := &expr.Variable{Slot: 1, Name: "x", Type: types.INT}

	ifScope := &Scope{Kind: KindIf, Condition: cond(1, expr.CompareGreater), StartIndex: 0, EndIndex: 5, ElseOfIndex: -1}
	ifScope.Append(&expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(1)})
	elseScope := &Scope{Kind: KindElse, StartIndex: 5, EndIndex: 10, ElseOfIndex: 0}
	elseScope.Append(&expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(2)})

	root.Append(ifScope)
	root.Append(elseScope)

	Finalize(root)

	if len(root.Body) != 1 {
		t.Fatalf("expected if/else pair collapsed to a single statement, got %d nodes", len(root.Body))
	}
	store, ok := root.Body[0].(*expr.VariableStoreOperation)
	if !ok {
		t.Fatalf("expected a VariableStoreOperation, got %T", root.Body[0])
	}
	if _, ok := store.Value.(*expr.TernaryOperatorOperation); !ok {
		t.Fatalf("expected ternary-valued store, got %T", store.Value)
	}
}

func TestTernaryCollapseSetsIsShortFor1And0Branches(t *testing.T) {
	root := NewRoot(100)
	v := &expr.Variable{Slot: 1, Name: "x", Type: types.BOOLEAN}

	ifScope := &Scope{Kind: KindIf, Condition: cond(1, expr.CompareGreater), StartIndex: 0, EndIndex: 5, ElseOfIndex: -1}
	ifScope.Append(&expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(1)})
	elseScope := &Scope{Kind: KindElse, StartIndex: 5, EndIndex: 10, ElseOfIndex: 0}
	elseScope.Append(&expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(0)})

	root.Append(ifScope)
	root.Append(elseScope)

	Finalize(root)

	store := root.Body[0].(*expr.VariableStoreOperation)
	ternary := store.Value.(*expr.TernaryOperatorOperation)
	if !ternary.IsShort {
		t.Fatal("expected a 1/0 ternary to be marked IsShort")
	}
}

func TestTernaryCollapseLeavesIsShortFalseForOtherConstants(t *testing.T) {
	root := NewRoot(100)
	v := &expr.Variable{Slot: 1, Name: "x", Type: types.INT}

	ifScope := &Scope{Kind: KindIf, Condition: cond(1, expr.CompareGreater), StartIndex: 0, EndIndex: 5, ElseOfIndex: -1}
	ifScope.Append(&expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(1)})
	elseScope := &Scope{Kind: KindElse, StartIndex: 5, EndIndex: 10, ElseOfIndex: 0}
	elseScope.Append(&expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(2)})

	root.Append(ifScope)
	root.Append(elseScope)

	Finalize(root)

	store := root.Body[0].(*expr.VariableStoreOperation)
	ternary := store.Value.(*expr.TernaryOperatorOperation)
	if ternary.IsShort {
		t.Fatal("expected a 1/2 ternary not to be marked IsShort")
	}
}
