package print

import (
	"strings"
	"testing"

	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/scope"
	"github.com/jdecompiler/jdgo/types"
)

func TestIntLiteralDecimalByDefault(t *testing.T) {
	c := NewConfig()
	if got := c.IntLiteral(10); got != "10" {
		t.Errorf("IntLiteral(10) = %q, want %q", got, "10")
	}
}

func TestIntLiteralHexHeuristic(t *testing.T) {
	c := NewConfig()
	cases := []struct {
		in   int32
		want string
	}{
		{16, "0x10"},     // power of two, >= 16
		{255, "0xff"},    // one less than a power of two
		{-256, "-0x100"}, // sign carried outside the 0x
		{10, "10"},       // below the threshold, stays decimal
		{17, "17"},       // neither a power of two nor one less
	}
	for _, tc := range cases {
		if got := c.IntLiteral(tc.in); got != tc.want {
			t.Errorf("IntLiteral(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIntLiteralUseHexNumbersAlways(t *testing.T) {
	c := NewConfig(UseHexNumbersAlways(true))
	if got := c.IntLiteral(10); got != "0xa" {
		t.Errorf("IntLiteral(10) with UseHexNumbersAlways = %q, want %q", got, "0xa")
	}
}

func TestIntLiteralCanUseHexNumbersDisabled(t *testing.T) {
	c := NewConfig(CanUseHexNumbers(false))
	if got := c.IntLiteral(256); got != "256" {
		t.Errorf("IntLiteral(256) with CanUseHexNumbers(false) = %q, want %q", got, "256")
	}
}

func TestLongLiteralPostfix(t *testing.T) {
	c := NewConfig()
	if got := c.LongLiteral(5); got != "5L" {
		t.Errorf("LongLiteral(5) = %q, want %q", got, "5L")
	}
	c = NewConfig(LongPostfix(""))
	if got := c.LongLiteral(5); got != "5" {
		t.Errorf("LongLiteral(5) with empty postfix = %q, want %q", got, "5")
	}
}

func TestFloatLiteralNaNAndInf(t *testing.T) {
	c := NewConfig()
	nan := float32(nan32())
	if got := c.FloatLiteral(nan); got != "(0f / 0f)" {
		t.Errorf("FloatLiteral(NaN) = %q, want %q", got, "(0f / 0f)")
	}
	if got := c.FloatLiteral(inf32(1)); got != "(1f / 0f)" {
		t.Errorf("FloatLiteral(+Inf) = %q, want %q", got, "(1f / 0f)")
	}
	if got := c.FloatLiteral(inf32(-1)); got != "(-1f / 0f)" {
		t.Errorf("FloatLiteral(-Inf) = %q, want %q", got, "(-1f / 0f)")
	}
}

func TestFloatLiteralIntegralSuffix(t *testing.T) {
	c := NewConfig()
	if got := c.FloatLiteral(5); got != "5f" {
		t.Errorf("FloatLiteral(5) = %q, want %q", got, "5f")
	}
	c = NewConfig(UseTrailingZero(true))
	if got := c.FloatLiteral(5); got != "5.0f" {
		t.Errorf("FloatLiteral(5) with UseTrailingZero = %q, want %q", got, "5.0f")
	}
}

func TestDoubleLiteralIntegralSuffix(t *testing.T) {
	c := NewConfig()
	if got := c.DoubleLiteral(5); got != "5.0" {
		t.Errorf("DoubleLiteral(5) = %q, want %q", got, "5.0")
	}
	c = NewConfig(UseDoublePostfix(true))
	if got := c.DoubleLiteral(5); got != "5d" {
		t.Errorf("DoubleLiteral(5) with UseDoublePostfix = %q, want %q", got, "5d")
	}
}

func TestStringLiteralEscaping(t *testing.T) {
	c := NewConfig()
	if got := c.StringLiteral("a\"b\n\\c"); got != `"a\"b\n\\c"` {
		t.Errorf("StringLiteral escaping = %q, want %q", got, `"a\"b\n\\c"`)
	}
}

func TestCharLiteralEscaping(t *testing.T) {
	c := NewConfig()
	if got := c.CharLiteral('\''); got != `'\''` {
		t.Errorf("CharLiteral(') = %q, want %q", got, `'\''`)
	}
	if got := c.CharLiteral('a'); got != "'a'" {
		t.Errorf("CharLiteral(a) = %q, want %q", got, "'a'")
	}
}

func TestOperationBinaryPrecedenceParenthesization(t *testing.T) {
	c := NewConfig()
	// (1 + 2) * 3 needs parens around the lower-priority add on the left
	// of the tighter-binding multiply.
	add := &expr.BinaryOperation{Left: expr.NewIntConst(1), Right: expr.NewIntConst(2), Op: expr.OpAdd, Type: types.INT}
	mul := &expr.BinaryOperation{Left: add, Right: expr.NewIntConst(3), Op: expr.OpMul, Type: types.INT}
	want := "(1 + 2) * 3"
	if got := c.Operation(mul); got != want {
		t.Errorf("Operation(mul) = %q, want %q", got, want)
	}
}

func TestOperationNoParensWhenTighterBindingChild(t *testing.T) {
	c := NewConfig()
	// 1 + 2 * 3 does not need parens since * already binds tighter than +.
	mul := &expr.BinaryOperation{Left: expr.NewIntConst(2), Right: expr.NewIntConst(3), Op: expr.OpMul, Type: types.INT}
	add := &expr.BinaryOperation{Left: expr.NewIntConst(1), Right: mul, Op: expr.OpAdd, Type: types.INT}
	want := "1 + 2 * 3"
	if got := c.Operation(add); got != want {
		t.Errorf("Operation(add) = %q, want %q", got, want)
	}
}

func TestOperationSubtractionRightAssociativityParens(t *testing.T) {
	c := NewConfig()
	// a - (b - c) must keep its parens: same priority on the non-associative
	// (right) side changes meaning if dropped.
	inner := &expr.BinaryOperation{Left: expr.NewIntConst(2), Right: expr.NewIntConst(3), Op: expr.OpSub, Type: types.INT}
	outer := &expr.BinaryOperation{Left: expr.NewIntConst(1), Right: inner, Op: expr.OpSub, Type: types.INT}
	want := "1 - (2 - 3)"
	if got := c.Operation(outer); got != want {
		t.Errorf("Operation(outer) = %q, want %q", got, want)
	}
}

func TestOperationVariableStoreDeclare(t *testing.T) {
	c := NewConfig()
	v := &expr.Variable{Slot: 1, Name: "x", Type: types.INT}
	store := &expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(5), Declare: true}
	want := "int x = 5"
	if got := c.Operation(store); got != want {
		t.Errorf("Operation(declare store) = %q, want %q", got, want)
	}
	store.Declare = false
	want = "x = 5"
	if got := c.Operation(store); got != want {
		t.Errorf("Operation(plain store) = %q, want %q", got, want)
	}
}

func TestOperationCastSuppressedWhenImplicit(t *testing.T) {
	c := NewConfig()
	v := &expr.Variable{Slot: 1, Name: "x", Type: types.INT}
	cast := &expr.CastOperation{Operand: &expr.VariableLoadOperation{Var: v}, Target: types.LONG, Explicit: false}
	if got := c.Operation(cast); got != "x" {
		t.Errorf("implicit cast should print bare operand, got %q", got)
	}
	cast.Explicit = true
	if got := c.Operation(cast); got != "(long) x" {
		t.Errorf("explicit cast = %q, want %q", got, "(long) x")
	}
}

func TestOperationCompareWithZeroBooleanUnary(t *testing.T) {
	c := NewConfig()
	v := &expr.Variable{Slot: 1, Name: "flag", Type: types.BOOLEAN}
	eqFalse := expr.CompareEquals
	cmp := &expr.CompareWithZeroOperation{Operand: &expr.VariableLoadOperation{Var: v}, CompareType: expr.CompareGreaterOrEquals, Equals: &eqFalse}
	if got := c.Operation(cmp); got != "!flag" {
		t.Errorf("boolean == 0 compare = %q, want %q", got, "!flag")
	}
	neFalse := expr.CompareNotEquals
	cmp.Equals = &neFalse
	if got := c.Operation(cmp); got != "flag" {
		t.Errorf("boolean != 0 compare = %q, want %q", got, "flag")
	}
}

func TestOperationNewInstanceAndInvoke(t *testing.T) {
	c := NewConfig()
	cls := types.NewClassType("java/util/ArrayList")
	newInst := &expr.NewInstanceOperation{Class: cls, Args: nil}
	if got := c.Operation(newInst); got != "new ArrayList()" {
		t.Errorf("Operation(new) = %q, want %q", got, "new ArrayList()")
	}

	v := &expr.Variable{Slot: 1, Name: "list", Type: cls}
	call := &expr.InvokeOperation{
		Kind:     expr.InvokeVirtual,
		Instance: &expr.VariableLoadOperation{Var: v},
		Owner:    cls,
		Name:     "add",
		Args:     []expr.Operation{expr.NewIntConst(1)},
		Type:     types.BOOLEAN,
	}
	if got := c.Operation(call); got != "list.add(1)" {
		t.Errorf("Operation(invoke) = %q, want %q", got, "list.add(1)")
	}
}

func TestOperationTernaryShortCollapsesToCondition(t *testing.T) {
	c := NewConfig()
	v := &expr.Variable{Slot: 1, Name: "flag", Type: types.BOOLEAN}
	eqFalse := expr.CompareEquals
	cond := &expr.CompareWithZeroOperation{Operand: &expr.VariableLoadOperation{Var: v}, CompareType: expr.CompareGreaterOrEquals, Equals: &eqFalse}

	ternary := &expr.TernaryOperatorOperation{Condition: cond, IfTrue: expr.NewIntConst(1), IfFalse: expr.NewIntConst(0), Type: types.BOOLEAN, IsShort: true}
	if got := c.Operation(ternary); got != "!flag" {
		t.Errorf("short ternary = %q, want %q", got, "!flag")
	}

	ternary.IsShort = false
	if got := c.Operation(ternary); got != "!flag ? 1 : 0" {
		t.Errorf("non-short ternary = %q, want %q", got, "!flag ? 1 : 0")
	}
}

func TestScopeIfElseRendering(t *testing.T) {
	c := NewConfig()
	root := scope.NewRoot(10)
	b := scope.NewBuilder(root)
	v := &expr.Variable{Slot: 1, Name: "x", Type: types.INT}
	cond := &expr.CompareWithZeroOperation{Operand: &expr.VariableLoadOperation{Var: v}, CompareType: expr.CompareGreater}
	ifScope := b.OpenIf(cond, 0, 5)
	b.AddStatement(&expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(1)})
	b.Pop()
	b.AttachElse(ifScope, 10)
	b.AddStatement(&expr.VariableStoreOperation{Var: v, Value: expr.NewIntConst(2)})
	b.Pop()

	out := c.Scope(root)
	for _, want := range []string{"if (x > 0) {", "x = 1;", "else {", "x = 2;"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered scope missing %q, got:\n%s", want, out)
		}
	}
}

func TestScopeSwitchSelectorRendered(t *testing.T) {
	c := NewConfig()
	root := scope.NewRoot(10)
	b := scope.NewBuilder(root)
	v := &expr.Variable{Slot: 1, Name: "day", Type: types.INT}
	y := &expr.Variable{Slot: 2, Name: "y", Type: types.INT}
	selector := &expr.VariableLoadOperation{Var: v}
	b.OpenSwitch(selector, 0, 10, []scope.SwitchCase{
		{Values: []int32{1}, BodyIndex: 1, EndIndex: 5},
		{IsDefault: true, BodyIndex: 5, EndIndex: 10},
	})
	b.OpenCase(1, 5)
	b.AddStatement(&expr.VariableStoreOperation{Var: y, Value: expr.NewIntConst(10)})
	b.Pop()
	b.OpenCase(5, 10)
	b.AddStatement(&expr.VariableStoreOperation{Var: y, Value: expr.NewIntConst(20)})
	b.Pop()

	out := c.Scope(root)
	if !strings.Contains(out, "switch (day) {") {
		t.Errorf("switch selector not rendered, got:\n%s", out)
	}

	// Each label must appear immediately before the body it guards, not
	// all bunched up before a single flattened body.
	caseIdx := strings.Index(out, "case 1:")
	case1BodyIdx := strings.Index(out, "y = 10;")
	defaultIdx := strings.Index(out, "default:")
	case2BodyIdx := strings.Index(out, "y = 20;")
	if caseIdx < 0 || case1BodyIdx < 0 || defaultIdx < 0 || case2BodyIdx < 0 {
		t.Fatalf("switch case labels or bodies not rendered, got:\n%s", out)
	}
	if !(caseIdx < case1BodyIdx && case1BodyIdx < defaultIdx && defaultIdx < case2BodyIdx) {
		t.Errorf("expected case label then its own body, then the next label then its own body, got:\n%s", out)
	}
}

func TestUnrecognizedFailOnError(t *testing.T) {
	c := NewConfig(FailOnError(true))
	defer func() {
		if recover() == nil {
			t.Error("expected panic from unrecognized operation with FailOnError")
		}
	}()
	c.Operation(nil)
}

func TestUnrecognizedPlaceholder(t *testing.T) {
	c := NewConfig()
	got := c.Operation(nil)
	if !strings.Contains(got, "unprintable") {
		t.Errorf("Operation(nil) = %q, want placeholder mentioning unprintable", got)
	}
}

func nan32() float32 {
	var zero float32
	return zero / zero
}

func inf32(sign float32) float32 {
	var zero float32
	return sign / zero
}
