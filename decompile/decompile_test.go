package decompile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdecompiler/jdgo/classfile"
	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/internal/diag"
	"github.com/jdecompiler/jdgo/scope"
	"github.com/jdecompiler/jdgo/types"
)

// buildMethod lays out instructions at sequential positions 0..n-1, matching
// disasm.buildMethod's convention so BranchTarget can be written as a plain
// instruction index.
func buildMethod(name string, instrs ...classfile.Instruction) classfile.Method {
	for i := range instrs {
		instrs[i].Pos = uint32(i)
	}
	return classfile.Method{Name: name, Instructions: instrs, MaxLocals: 4}
}

func TestOperandStackPushPopPeek(t *testing.T) {
	var s OperandStack
	a := expr.NewIntConst(1)
	b := expr.NewIntConst(2)
	s.Push(a)
	s.Push(b)
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.Peek(0) != b || s.Peek(1) != a {
		t.Fatal("peek order wrong")
	}
	if got := s.Pop(); got != b {
		t.Fatal("pop should return top (b)")
	}
	if got := s.Pop(); got != a {
		t.Fatal("pop should return a next")
	}
	if !s.Empty() {
		t.Fatal("stack should be empty")
	}
}

func TestOperandStackPopAsNarrows(t *testing.T) {
	var s OperandStack
	var diags diag.Diagnostics
	c := expr.NewIntConst(0)
	s.Push(c)
	got := s.PopAs(types.BOOLEAN, &diags, 0)
	if !got.ReturnType().Equal(types.BOOLEAN) {
		t.Fatalf("expected narrowed to boolean, got %v", got.ReturnType())
	}
	if diags.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", diags.Warnings)
	}
}

func TestOperandStackPopAsWarnsOnIncompatible(t *testing.T) {
	var s OperandStack
	var diags diag.Diagnostics
	s.Push(&expr.LongConstOperation{Value: 5})
	got := s.PopAs(types.STRING, &diags, 3)
	if got == nil {
		t.Fatal("PopAs should still return the operation on failed narrowing")
	}
	if !diags.HasWarnings() {
		t.Fatal("expected a warning for an impossible cast")
	}
}

func TestLocalsWideSlotReservation(t *testing.T) {
	locals := NewLocals(4, nil)
	locals.Declare(0, types.LONG, 0)
	if locals.Get(1) != nil {
		t.Fatal("slot 1 should be reserved by the preceding long, not independently addressable")
	}
	locals.Declare(2, types.INT, 0)
	if locals.Get(2) == nil || !locals.Get(2).Type.Equal(types.INT) {
		t.Fatal("slot 2 should hold an independent int local")
	}
}

func TestLocalsHintName(t *testing.T) {
	hints := []classfile.LocalVariableEntry{{Slot: 0, StartPos: 0, EndPos: 10, Name: "count"}}
	locals := NewLocals(2, hints)
	v := locals.Declare(0, types.INT, 3)
	if v.Name != "count" {
		t.Fatalf("expected debug-table name 'count', got %q", v.Name)
	}
}

// TestDecompileStraightLineReturnsValue exercises the simplest shape end to
// end: no blocks at all, a single stored local fed straight into a return.
func TestDecompileStraightLineReturnsValue(t *testing.T) {
	method := buildMethod("answer",
		classfile.Instruction{Op: classfile.OpBIPush, IntImmediate: 42}, // 0
		classfile.Instruction{Op: classfile.OpIStore, LocalSlot: 0},     // 1: declare x = 42
		classfile.Instruction{Op: classfile.OpILoad, LocalSlot: 0},      // 2
		classfile.Instruction{Op: classfile.OpIReturn},                 // 3: return x
	)

	root, diags, err := Decompile(MethodInfo{
		Method:         method,
		DeclaringClass: types.NewClassType("Test"),
		IsStatic:       true,
	})
	require.NoError(t, err)
	require.False(t, diags.HasWarnings(), "unexpected warnings: %v", diags.Warnings)
	require.Len(t, root.Body, 2)

	store, ok := root.Body[0].(*expr.VariableStoreOperation)
	require.True(t, ok, "expected a declaring store first, got %+v", root.Body[0])
	assert.True(t, store.Declare)

	ret, ok := root.Body[1].(*expr.ReturnOperation)
	require.True(t, ok, "expected a return second, got %+v", root.Body[1])
	load, ok := ret.Value.(*expr.VariableLoadOperation)
	require.True(t, ok, "expected the return value to load a variable, got %+v", ret.Value)
	assert.EqualValues(t, 0, load.Var.Slot)
}

// TestDecompileDoWhileLoopReconstructsContinueCheck exercises the
// BlockLoop/KindInfiniteLoop machinery on a do-while shape: the body runs
// unconditionally once, then the backward branch becomes a trailing
// if(cond) continue; inside the loop scope rather than a fresh if-scope.
func TestDecompileDoWhileLoopReconstructsContinueCheck(t *testing.T) {
	method := buildMethod("countDown",
		classfile.Instruction{Op: classfile.OpIConst5},                           // 0
		classfile.Instruction{Op: classfile.OpIStore, LocalSlot: 0},               // 1: declare x = 5
		classfile.Instruction{Op: classfile.OpIInc, LocalSlot: 0, IncAmount: -1},  // 2: x--
		classfile.Instruction{Op: classfile.OpILoad, LocalSlot: 0},                // 3
		classfile.Instruction{Op: classfile.OpIfGt, BranchTarget: 2},              // 4: backward to body start
		classfile.Instruction{Op: classfile.OpReturn},                             // 5
	)

	root, diags, err := Decompile(MethodInfo{
		Method:         method,
		DeclaringClass: types.NewClassType("Test"),
		IsStatic:       true,
	})
	require.NoError(t, err)
	require.False(t, diags.HasWarnings(), "unexpected warnings: %v", diags.Warnings)
	require.Len(t, root.Body, 3)

	store, ok := root.Body[0].(*expr.VariableStoreOperation)
	require.True(t, ok, "expected a declaring store first, got %+v", root.Body[0])
	assert.True(t, store.Declare)

	loop, ok := root.Body[1].(*scope.Scope)
	require.True(t, ok, "expected an infinite-loop scope second, got %+v", root.Body[1])
	require.Equal(t, scope.KindInfiniteLoop, loop.Kind)
	require.Len(t, loop.Body, 2)
	_, ok = loop.Body[0].(*expr.IncrementOperation)
	assert.True(t, ok, "expected an increment first in the loop body, got %+v", loop.Body[0])

	check, ok := loop.Body[1].(*scope.Scope)
	require.True(t, ok, "expected a trailing if(check) continue, got %+v", loop.Body[1])
	require.Equal(t, scope.KindIf, check.Kind)
	cond, ok := check.Condition.(*expr.CompareWithZeroOperation)
	require.True(t, ok, "expected a CompareWithZeroOperation, got %+v", check.Condition)
	assert.Equal(t, expr.CompareGreater, cond.CompareType)
	require.Len(t, check.Body, 1)
	_, ok = check.Body[0].(*expr.ContinueOperation)
	assert.True(t, ok, "expected a continue statement, got %+v", check.Body[0])

	_, ok = root.Body[2].(*expr.ReturnOperation)
	assert.True(t, ok, "expected a return last, got %+v", root.Body[2])
}

// TestDecompileWhileLoopRewriteFromLeadingGuard exercises the other
// documented loop shape (spec.md §4.4, §8 scenario 6): the condition
// check is the loop's very own first instruction and its guarded region
// spans the whole loop, so while(true){ if(cond){...} } rewrites to
// while(cond){...} directly instead of surfacing as an infinite loop.
func TestDecompileWhileLoopRewriteFromLeadingGuard(t *testing.T) {
	method := buildMethod("countDown",
		classfile.Instruction{Op: classfile.OpIConst5},                          // 0: push 5
		classfile.Instruction{Op: classfile.OpIStore, LocalSlot: 0},              // 1: declare x = 5
		classfile.Instruction{Op: classfile.OpILoad, LocalSlot: 0},               // 2: x        <- loop start
		classfile.Instruction{Op: classfile.OpIfLe, BranchTarget: 6},             // 3: if (x <= 0) goto end
		classfile.Instruction{Op: classfile.OpIInc, LocalSlot: 0, IncAmount: -1}, // 4: x--
		classfile.Instruction{Op: classfile.OpGoto, BranchTarget: 2},             // 5: back to loop start
		classfile.Instruction{Op: classfile.OpReturn},                           // 6
	)

	root, diags, err := Decompile(MethodInfo{
		Method:         method,
		DeclaringClass: types.NewClassType("Test"),
		IsStatic:       true,
	})
	require.NoError(t, err)
	require.False(t, diags.HasWarnings(), "unexpected warnings: %v", diags.Warnings)
	require.Len(t, root.Body, 3)

	store, ok := root.Body[0].(*expr.VariableStoreOperation)
	require.True(t, ok, "expected a declaring store first, got %+v", root.Body[0])
	assert.True(t, store.Declare)

	while, ok := root.Body[1].(*scope.Scope)
	require.True(t, ok, "expected a while scope second, got %+v", root.Body[1])
	require.Equal(t, scope.KindWhile, while.Kind)
	cond, ok := while.Condition.(*expr.CompareWithZeroOperation)
	require.True(t, ok, "expected a CompareWithZeroOperation condition, got %+v", while.Condition)
	assert.Equal(t, expr.CompareGreater, cond.CompareType, "expected the guard's negation (x > 0) as the while condition")

	require.Len(t, while.Body, 1, "expected the leading guard's body to be absorbed and the redundant trailing continue dropped")
	_, ok = while.Body[0].(*expr.IncrementOperation)
	assert.True(t, ok, "expected the decrement as the while body's only statement, got %+v", while.Body[0])

	_, ok = root.Body[2].(*expr.ReturnOperation)
	assert.True(t, ok, "expected a return last, got %+v", root.Body[2])
}

// TestDecompileIfElseCollapsesToTernary exercises the forward-goto else
// shape end to end: a branch skip-condition that must be inverted to read
// as the source-level guard, an `if`/`else` pair each assigning the same
// local, and the resulting collapse into a single ternary-valued store.
func TestDecompileIfElseCollapsesToTernary(t *testing.T) {
	method := buildMethod("sign",
		classfile.Instruction{Op: classfile.OpILoad, LocalSlot: 0},  // 0: x
		classfile.Instruction{Op: classfile.OpIfLe, BranchTarget: 5}, // 1: skip to else when x <= 0
		classfile.Instruction{Op: classfile.OpIConst1},               // 2: then: push 1
		classfile.Instruction{Op: classfile.OpIStore, LocalSlot: 1},  // 3: y = 1
		classfile.Instruction{Op: classfile.OpGoto, BranchTarget: 7}, // 4: skip else-branch
		classfile.Instruction{Op: classfile.OpIConstM1},              // 5: else: push -1
		classfile.Instruction{Op: classfile.OpIStore, LocalSlot: 1},  // 6: y = -1
		classfile.Instruction{Op: classfile.OpReturn},                // 7
	)

	root, diags, err := Decompile(MethodInfo{
		Method:         method,
		DeclaringClass: types.NewClassType("Test"),
		IsStatic:       true,
		ParamTypes:     []types.Type{types.INT},
	})
	require.NoError(t, err)
	require.False(t, diags.HasWarnings(), "unexpected warnings: %v", diags.Warnings)
	require.Len(t, root.Body, 2, "expected the if/else pair to collapse to one store")

	store, ok := root.Body[0].(*expr.VariableStoreOperation)
	require.True(t, ok, "expected a declaring store first, got %+v", root.Body[0])
	assert.True(t, store.Declare)

	ternary, ok := store.Value.(*expr.TernaryOperatorOperation)
	require.True(t, ok, "expected the stored value to be a ternary, got %+v", store.Value)
	cond, ok := ternary.Condition.(*expr.CompareWithZeroOperation)
	require.True(t, ok, "expected a CompareWithZeroOperation, got %+v", ternary.Condition)
	assert.Equal(t, expr.CompareGreater, cond.CompareType, "expected an x > 0 guard inverted from the ifle skip test")

	_, ok = root.Body[1].(*expr.ReturnOperation)
	assert.True(t, ok, "expected a return last, got %+v", root.Body[1])
}

// TestDecompileTryCatchDeclaresExceptionVariable exercises the implicit
// caught-exception push: the handler's astore has no preceding instruction
// that produced its operand, so Decompile must synthesize one.
func TestDecompileTryCatchDeclaresExceptionVariable(t *testing.T) {
	method := buildMethod("guarded",
		classfile.Instruction{Op: classfile.OpIConst0},               // 0: try: push 0
		classfile.Instruction{Op: classfile.OpPop},                   // 1: discard it
		classfile.Instruction{Op: classfile.OpGoto, BranchTarget: 4}, // 2: exit try
		classfile.Instruction{Op: classfile.OpAStore, LocalSlot: 1},  // 3: handler: e = caught exception
		classfile.Instruction{Op: classfile.OpReturn},                // 4
	)
	method.ExceptionTable = []classfile.ExceptionHandler{
		{StartPos: 0, EndPos: 3, HandlerPos: 3, ClassName: "java/lang/RuntimeException"},
	}

	root, diags, err := Decompile(MethodInfo{
		Method:         method,
		DeclaringClass: types.NewClassType("Test"),
		IsStatic:       true,
	})
	require.NoError(t, err)
	require.False(t, diags.HasWarnings(), "unexpected warnings: %v", diags.Warnings)

	var tryScope, catchScope *scope.Scope
	for _, n := range root.Body {
		s, ok := n.(*scope.Scope)
		if !ok {
			continue
		}
		switch s.Kind {
		case scope.KindTry:
			tryScope = s
		case scope.KindCatch:
			catchScope = s
		}
	}
	require.NotNil(t, tryScope, "expected a try scope, got %+v", root.Body)
	require.NotNil(t, catchScope, "expected a catch scope, got %+v", root.Body)
	require.Equal(t, []string{"java/lang/RuntimeException"}, catchScope.CaughtTypes)

	require.NotEmpty(t, catchScope.Body)
	store, ok := catchScope.Body[0].(*expr.VariableStoreOperation)
	require.True(t, ok, "expected the handler to declare its exception variable first, got %+v", catchScope.Body)
	assert.True(t, store.Declare)
	_, ok = store.Value.(*expr.CaughtExceptionOperation)
	assert.True(t, ok, "expected the declared value to be the caught exception placeholder, got %+v", store.Value)
	assert.True(t, store.Var.Type.Equal(types.NewClassType("java/lang/RuntimeException")))
}

// TestDecompileSwitchFallsThroughToLastCase exercises buildSwitchCases and
// Builder.OpenSwitch end to end: a two-case table switch with no explicit
// default, where the table's default target is javac's ordinary merge
// point rather than a handler body of its own, and the final case relies
// on fallthrough (no trailing goto) to reach it.
func TestDecompileSwitchFallsThroughToLastCase(t *testing.T) {
	method := buildMethod("describe",
		classfile.Instruction{Op: classfile.OpILoad, LocalSlot: 0}, // 0: x
		classfile.Instruction{Op: classfile.OpTableSwitch, Switch: &classfile.SwitchTable{ // 1
			Cases: []classfile.SwitchCase{
				{Value: 1, Target: 2},
				{Value: 2, Target: 5},
			},
			DefaultTarget: 7,
		}},
		classfile.Instruction{Op: classfile.OpBIPush, IntImmediate: 10},  // 2: case 1: push 10
		classfile.Instruction{Op: classfile.OpIStore, LocalSlot: 1},      // 3: y = 10
		classfile.Instruction{Op: classfile.OpGoto, BranchTarget: 7},     // 4: break
		classfile.Instruction{Op: classfile.OpBIPush, IntImmediate: 20},  // 5: case 2: push 20
		classfile.Instruction{Op: classfile.OpIStore, LocalSlot: 1},      // 6: y = 20 (falls through)
		classfile.Instruction{Op: classfile.OpReturn},                   // 7
	)

	root, diags, err := Decompile(MethodInfo{
		Method:         method,
		DeclaringClass: types.NewClassType("Test"),
		IsStatic:       true,
		ParamTypes:     []types.Type{types.INT},
	})
	require.NoError(t, err)
	require.False(t, diags.HasWarnings(), "unexpected warnings: %v", diags.Warnings)
	require.Len(t, root.Body, 2, "expected the switch and a trailing return")

	sw, ok := root.Body[0].(*scope.Scope)
	require.True(t, ok, "expected a switch scope first, got %+v", root.Body[0])
	assert.Equal(t, scope.KindSwitch, sw.Kind)
	_, ok = root.Body[1].(*expr.ReturnOperation)
	assert.True(t, ok, "expected a return after the switch, got %+v", root.Body[1])

	_, ok = sw.Selector.(*expr.VariableLoadOperation)
	assert.True(t, ok, "expected the selector to load the switched variable, got %+v", sw.Selector)
	require.Len(t, sw.SwitchCases, 3, "expected 2 explicit cases plus the implicit default")
	assert.Equal(t, []int32{1}, sw.SwitchCases[0].Values)
	assert.Equal(t, []int32{2}, sw.SwitchCases[1].Values)
	assert.True(t, sw.SwitchCases[2].IsDefault)

	require.Len(t, sw.Body, 2, "expected one per-case sub-scope for each of the two explicit cases")

	case1, ok := sw.Body[0].(*scope.Scope)
	require.True(t, ok, "expected case 1's own sub-scope, got %+v", sw.Body[0])
	require.Equal(t, scope.KindCase, case1.Kind)
	require.Len(t, case1.Body, 2, "expected [store, break] in case 1's own body")
	first, ok := case1.Body[0].(*expr.VariableStoreOperation)
	require.True(t, ok, "expected case 1's store to declare y, got %+v", case1.Body[0])
	assert.True(t, first.Declare)
	_, ok = case1.Body[1].(*expr.BreakOperation)
	assert.True(t, ok, "expected case 1's trailing goto to become a break, got %+v", case1.Body[1])

	case2, ok := sw.Body[1].(*scope.Scope)
	require.True(t, ok, "expected case 2's own sub-scope, got %+v", sw.Body[1])
	require.Equal(t, scope.KindCase, case2.Kind)
	require.Len(t, case2.Body, 1, "expected case 2 to fall through into the default with just its own store")
	second, ok := case2.Body[0].(*expr.VariableStoreOperation)
	require.True(t, ok, "expected case 2's store to reuse y, got %+v", case2.Body[0])
	assert.False(t, second.Declare, "expected case 2's store not to redeclare y")
}
