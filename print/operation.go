package print

import (
	"fmt"
	"strings"

	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/types"
)

// Operation renders a single expression node. Grounded on spec.md §4.5's
// "precedence-driven... to_string_priority" description: every composite
// operation stringifies its children through child, which only adds
// parentheses when the child's own priority would otherwise be lost.
func (c *Config) Operation(op expr.Operation) string {
	switch o := op.(type) {
	case *expr.IntConstOperation:
		return c.IntLiteral(o.Value)
	case *expr.LongConstOperation:
		return c.LongLiteral(o.Value)
	case *expr.FloatConstOperation:
		return c.FloatLiteral(o.Value)
	case *expr.DoubleConstOperation:
		return c.DoubleLiteral(o.Value)
	case *expr.StringConstOperation:
		return c.StringLiteral(o.Value)
	case *expr.ClassConstOperation:
		return sourceTypeName(o.Referenced) + ".class"
	case *expr.NullConstOperation:
		return "null"

	case *expr.VariableLoadOperation:
		return o.Var.Name

	case *expr.IncrementOperation:
		return c.increment(o)

	case *expr.BinaryOperation:
		return c.child(o.Left, o.Priority(), expr.AssocLeft) + " " + o.Op.String() + " " +
			c.child(o.Right, o.Priority(), expr.AssocRight)

	case *expr.UnaryOperation:
		return "-" + c.child(o.Operand, o.Priority(), expr.AssocRight)

	case *expr.CastOperation:
		if !o.Explicit {
			return c.Operation(o.Operand)
		}
		return "(" + sourceTypeName(o.Target) + ") " + c.child(o.Operand, o.Priority(), expr.AssocRight)

	case *expr.CompareBinaryOperation:
		sym := o.CompareType.String()
		if o.Equals != nil {
			sym = o.Equals.String()
		}
		return c.child(o.Left, o.Priority(), expr.AssocLeft) + " " + sym + " " +
			c.child(o.Right, o.Priority(), expr.AssocRight)

	case *expr.CompareWithZeroOperation:
		operand := c.child(o.Operand, o.Priority(), expr.AssocLeft)
		if o.Equals != nil && o.Operand.ReturnType().Equal(types.BOOLEAN) {
			return o.Equals.Unary(false) + operand
		}
		sym := o.CompareType.String()
		if o.Equals != nil {
			sym = o.Equals.String()
		}
		return operand + " " + sym + " 0"

	case *expr.CompareWithNullOperation:
		return c.child(o.Operand, o.Priority(), expr.AssocLeft) + " " + o.Equals.String() + " null"

	case *expr.AndOperation:
		return c.child(o.Left, o.Priority(), expr.AssocLeft) + " && " + c.child(o.Right, o.Priority(), expr.AssocRight)

	case *expr.OrOperation:
		return c.child(o.Left, o.Priority(), expr.AssocLeft) + " || " + c.child(o.Right, o.Priority(), expr.AssocRight)

	case *expr.TernaryOperatorOperation:
		if o.IsShort {
			return c.Operation(o.Condition)
		}
		return c.child(o.Condition, o.Priority(), expr.AssocLeft) + " ? " +
			c.child(o.IfTrue, o.Priority(), expr.AssocRight) + " : " +
			c.child(o.IfFalse, o.Priority(), expr.AssocRight)

	case *expr.FieldAccessOperation:
		if o.Instance == nil {
			return o.Owner.SimpleName() + "." + o.Name
		}
		return c.child(o.Instance, o.Priority(), expr.AssocLeft) + "." + o.Name

	case *expr.FieldAssignOperation:
		return c.Operation(o.Field) + " = " + c.Operation(o.Value)

	case *expr.ArrayAccessOperation:
		return c.child(o.Array, o.Priority(), expr.AssocLeft) + "[" + c.Operation(o.Index) + "]"

	case *expr.ArrayAssignOperation:
		return c.Operation(o.Access) + " = " + c.Operation(o.Value)

	case *expr.ArrayLengthOperation:
		return c.child(o.Array, o.Priority(), expr.AssocLeft) + ".length"

	case *expr.NewArrayOperation:
		return "new " + sourceTypeName(o.ElementType) + c.arrayDims(o.Lengths)

	case *expr.InvokeOperation:
		return c.invoke(o)

	case *expr.NewInstanceOperation:
		return "new " + o.Class.SimpleName() + "(" + c.argList(o.Args) + ")"

	case *expr.InstanceOfOperation:
		return c.child(o.Operand, o.Priority(), expr.AssocLeft) + " instanceof " + sourceTypeName(o.Target)

	case *expr.VariableStoreOperation:
		return c.variableStore(o)

	case *expr.ReturnOperation:
		if o.Value == nil {
			return "return"
		}
		return "return " + c.Operation(o.Value)

	case *expr.ThrowOperation:
		return "throw " + c.Operation(o.Value)

	case *expr.ExprStatementOperation:
		return c.Operation(o.Value)

	case *expr.DeclareVariableOperation:
		return sourceTypeName(o.Var.Type) + " " + o.Var.Name

	case *expr.MonitorOperation:
		if o.Enter {
			return "synchronized (" + c.Operation(o.Object) + ") enter"
		}
		return "synchronized (" + c.Operation(o.Object) + ") exit"

	case *expr.BreakOperation:
		if o.Label == "" {
			return "break"
		}
		return "break " + o.Label

	case *expr.ContinueOperation:
		if o.Label == "" {
			return "continue"
		}
		return "continue " + o.Label

	default:
		return c.unrecognized(op)
	}
}

// child stringifies a sub-expression, parenthesizing it when its own
// priority is weaker than parentPriority, or equal to it on the
// non-associative side (spec.md §4.5) — side is AssocRight for the
// operand that a left-associative operator cannot reorder across an
// equal-priority sibling without changing meaning (`a - (b - c)` is not
// `a - b - c`), and AssocLeft otherwise.
func (c *Config) child(op expr.Operation, parentPriority expr.Priority, side expr.Associativity) string {
	s := c.Operation(op)
	if op.Priority() > parentPriority || (op.Priority() == parentPriority && side == expr.AssocRight) {
		return "(" + s + ")"
	}
	return s
}

func (c *Config) increment(o *expr.IncrementOperation) string {
	name := o.Var.Name
	switch {
	case o.PostfixValueUsed:
		if o.Amount < 0 {
			return name + "--"
		}
		return name + "++"
	case o.PrefixValueUsed:
		if o.Amount < 0 {
			return "--" + name
		}
		return "++" + name
	case o.Amount == 1:
		return name + "++"
	case o.Amount == -1:
		return name + "--"
	case o.Amount > 0:
		return fmt.Sprintf("%s += %s", name, c.IntLiteral(o.Amount))
	default:
		return fmt.Sprintf("%s -= %s", name, c.IntLiteral(-o.Amount))
	}
}

func (c *Config) variableStore(o *expr.VariableStoreOperation) string {
	if o.Declare {
		return sourceTypeName(o.Var.Type) + " " + o.Var.Name + " = " + c.Operation(o.Value)
	}
	return o.Var.Name + " = " + c.Operation(o.Value)
}

func (c *Config) invoke(o *expr.InvokeOperation) string {
	var target string
	switch {
	case o.Instance != nil:
		target = c.child(o.Instance, o.Priority(), expr.AssocLeft) + "."
	case o.Kind == expr.InvokeStatic:
		target = o.Owner.SimpleName() + "."
	default:
		target = ""
	}
	return target + o.Name + "(" + c.argList(o.Args) + ")"
}

func (c *Config) argList(args []expr.Operation) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = c.Operation(a)
	}
	return strings.Join(parts, ", ")
}

func (c *Config) arrayDims(lengths []expr.Operation) string {
	var b strings.Builder
	for _, l := range lengths {
		b.WriteByte('[')
		b.WriteString(c.Operation(l))
		b.WriteByte(']')
	}
	return b.String()
}

// unrecognized handles an Operation kind the printer has no case for: an
// internal inconsistency (every Operation variant the decompiler can
// produce is covered above), so this only fires if a future operation
// kind is added to expr without a matching print case. FailOnError
// decides whether that's a panic or a visible placeholder, mirroring
// spec.md §7's recoverable/fatal split at the stringification boundary.
func (c *Config) unrecognized(op expr.Operation) string {
	if c.failOnError {
		panic(fmt.Sprintf("print: no stringification case for %T", op))
	}
	return fmt.Sprintf("/* unprintable %T */", op)
}

// sourceTypeName renders a Type the way it appears in a cast, declaration
// or `new` expression — Type.String() instead prints a debug form
// (ClassType.String() prepends "class ", matching java.lang.Class's own
// toString()) that would be wrong here.
func sourceTypeName(t types.Type) string {
	switch tt := t.(type) {
	case *types.ClassType:
		return tt.SimpleName()
	case *types.ArrayType:
		return sourceTypeName(elementSourceType(tt)) + strings.Repeat("[]", int(tt.NestingLevel()))
	default:
		return t.Name()
	}
}

func elementSourceType(at *types.ArrayType) types.Type {
	return at.MemberType()
}
