package decompile

import (
	"github.com/jdecompiler/jdgo/classfile"
	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/internal/diag"
	"github.com/jdecompiler/jdgo/types"
)

func isConstOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpAConstNull, classfile.OpIConstM1, classfile.OpIConst0, classfile.OpIConst1, classfile.OpIConst2,
		classfile.OpIConst3, classfile.OpIConst4, classfile.OpIConst5, classfile.OpLConst0, classfile.OpLConst1,
		classfile.OpFConst0, classfile.OpFConst1, classfile.OpFConst2, classfile.OpDConst0, classfile.OpDConst1,
		classfile.OpBIPush, classfile.OpSIPush, classfile.OpLdc, classfile.OpLdcW, classfile.OpLdc2W:
		return true
	default:
		return false
	}
}

func constOperation(instr classfile.Instruction) expr.Operation {
	switch instr.Op {
	case classfile.OpAConstNull:
		return expr.NewNullConst()
	case classfile.OpIConstM1:
		return expr.NewIntConst(-1)
	case classfile.OpIConst0:
		return expr.NewIntConst(0)
	case classfile.OpIConst1:
		return expr.NewIntConst(1)
	case classfile.OpIConst2:
		return expr.NewIntConst(2)
	case classfile.OpIConst3:
		return expr.NewIntConst(3)
	case classfile.OpIConst4:
		return expr.NewIntConst(4)
	case classfile.OpIConst5:
		return expr.NewIntConst(5)
	case classfile.OpLConst0:
		return &expr.LongConstOperation{Value: 0}
	case classfile.OpLConst1:
		return &expr.LongConstOperation{Value: 1}
	case classfile.OpFConst0:
		return &expr.FloatConstOperation{Value: 0}
	case classfile.OpFConst1:
		return &expr.FloatConstOperation{Value: 1}
	case classfile.OpFConst2:
		return &expr.FloatConstOperation{Value: 2}
	case classfile.OpDConst0:
		return &expr.DoubleConstOperation{Value: 0}
	case classfile.OpDConst1:
		return &expr.DoubleConstOperation{Value: 1}
	case classfile.OpBIPush, classfile.OpSIPush:
		return expr.NewIntConst(instr.IntImmediate)
	case classfile.OpLdc, classfile.OpLdcW, classfile.OpLdc2W:
		return ldcOperation(instr.ConstValue)
	default:
		return expr.NewIntConst(0)
	}
}

func ldcOperation(value interface{}) expr.Operation {
	switch v := value.(type) {
	case int32:
		return expr.NewIntConst(v)
	case int64:
		return &expr.LongConstOperation{Value: v}
	case float32:
		return &expr.FloatConstOperation{Value: v}
	case float64:
		return &expr.DoubleConstOperation{Value: v}
	case string:
		return &expr.StringConstOperation{Value: v}
	case *classfile.MemberRef:
		return &expr.ClassConstOperation{Referenced: types.NewClassType(v.ClassName)}
	default:
		return expr.NewNullConst()
	}
}

func isLoadOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpILoad, classfile.OpLLoad, classfile.OpFLoad, classfile.OpDLoad, classfile.OpALoad:
		return true
	default:
		return false
	}
}

func isStoreOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpIStore, classfile.OpLStore, classfile.OpFStore, classfile.OpDStore, classfile.OpAStore:
		return true
	default:
		return false
	}
}

func storeOpcodeType(op classfile.Opcode) types.Type {
	switch op {
	case classfile.OpIStore:
		return types.ANY_SIGNED_INT
	case classfile.OpLStore:
		return types.LONG
	case classfile.OpFStore:
		return types.FLOAT
	case classfile.OpDStore:
		return types.DOUBLE
	default:
		return types.ANY_OBJECT
	}
}

func isArithmeticOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpIAdd, classfile.OpISub, classfile.OpIMul, classfile.OpIDiv, classfile.OpIRem,
		classfile.OpLAdd, classfile.OpLSub, classfile.OpLMul, classfile.OpLDiv, classfile.OpLRem,
		classfile.OpFAdd, classfile.OpFSub, classfile.OpFMul, classfile.OpFDiv, classfile.OpFRem,
		classfile.OpDAdd, classfile.OpDSub, classfile.OpDMul, classfile.OpDDiv, classfile.OpDRem,
		classfile.OpIShl, classfile.OpIShr, classfile.OpIUshr, classfile.OpLShl, classfile.OpLShr, classfile.OpLUshr,
		classfile.OpIAnd, classfile.OpIOr, classfile.OpIXor, classfile.OpLAnd, classfile.OpLOr, classfile.OpLXor:
		return true
	default:
		return false
	}
}

func arithmeticOpcodeInfo(op classfile.Opcode) (expr.ArithmeticOperator, types.Type) {
	switch op {
	case classfile.OpIAdd:
		return expr.OpAdd, types.INT
	case classfile.OpISub:
		return expr.OpSub, types.INT
	case classfile.OpIMul:
		return expr.OpMul, types.INT
	case classfile.OpIDiv:
		return expr.OpDiv, types.INT
	case classfile.OpIRem:
		return expr.OpRem, types.INT
	case classfile.OpLAdd:
		return expr.OpAdd, types.LONG
	case classfile.OpLSub:
		return expr.OpSub, types.LONG
	case classfile.OpLMul:
		return expr.OpMul, types.LONG
	case classfile.OpLDiv:
		return expr.OpDiv, types.LONG
	case classfile.OpLRem:
		return expr.OpRem, types.LONG
	case classfile.OpFAdd:
		return expr.OpAdd, types.FLOAT
	case classfile.OpFSub:
		return expr.OpSub, types.FLOAT
	case classfile.OpFMul:
		return expr.OpMul, types.FLOAT
	case classfile.OpFDiv:
		return expr.OpDiv, types.FLOAT
	case classfile.OpFRem:
		return expr.OpRem, types.FLOAT
	case classfile.OpDAdd:
		return expr.OpAdd, types.DOUBLE
	case classfile.OpDSub:
		return expr.OpSub, types.DOUBLE
	case classfile.OpDMul:
		return expr.OpMul, types.DOUBLE
	case classfile.OpDDiv:
		return expr.OpDiv, types.DOUBLE
	case classfile.OpDRem:
		return expr.OpRem, types.DOUBLE
	case classfile.OpIShl:
		return expr.OpShl, types.INT
	case classfile.OpIShr:
		return expr.OpShr, types.INT
	case classfile.OpIUshr:
		return expr.OpUshr, types.INT
	case classfile.OpLShl:
		return expr.OpShl, types.LONG
	case classfile.OpLShr:
		return expr.OpShr, types.LONG
	case classfile.OpLUshr:
		return expr.OpUshr, types.LONG
	case classfile.OpIAnd:
		return expr.OpAnd, types.INT
	case classfile.OpIOr:
		return expr.OpOr, types.INT
	case classfile.OpIXor:
		return expr.OpXor, types.INT
	case classfile.OpLAnd:
		return expr.OpAnd, types.LONG
	case classfile.OpLOr:
		return expr.OpOr, types.LONG
	case classfile.OpLXor:
		return expr.OpXor, types.LONG
	default:
		return expr.OpAdd, types.INT
	}
}

func isNegOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpINeg, classfile.OpLNeg, classfile.OpFNeg, classfile.OpDNeg:
		return true
	default:
		return false
	}
}

func negOpcodeType(op classfile.Opcode) types.Type {
	switch op {
	case classfile.OpLNeg:
		return types.LONG
	case classfile.OpFNeg:
		return types.FLOAT
	case classfile.OpDNeg:
		return types.DOUBLE
	default:
		return types.INT
	}
}

func isCompareOpOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpLCmp, classfile.OpFCmpL, classfile.OpFCmpG, classfile.OpDCmpL, classfile.OpDCmpG:
		return true
	default:
		return false
	}
}

func cmpOperation(instr classfile.Instruction, st *OperandStack, diags *diag.Diagnostics, i int) expr.Operation {
	var ty types.Type
	naNGreater := false
	switch instr.Op {
	case classfile.OpLCmp:
		ty = types.LONG
	case classfile.OpFCmpL:
		ty = types.FLOAT
	case classfile.OpFCmpG:
		ty, naNGreater = types.FLOAT, true
	case classfile.OpDCmpL:
		ty = types.DOUBLE
	case classfile.OpDCmpG:
		ty, naNGreater = types.DOUBLE, true
	}
	right := st.PopAs(ty, diags, i)
	left := st.PopAs(ty, diags, i)
	return &expr.CmpOperation{Left: left, Right: right, NaNGreater: naNGreater}
}

// ifCondition builds the ConditionOperation for a conditional branch,
// fusing a preceding CmpOperation when one was just pushed (spec.md
// §4.4's two-phase compare note) or reading straight off a boolean-typed
// int/reference operand otherwise.
func ifCondition(instr classfile.Instruction, st *OperandStack, diags *diag.Diagnostics, i int) expr.ConditionOperation {
	switch instr.Op {
	case classfile.OpIfNull:
		return &expr.CompareWithNullOperation{Operand: st.Pop(), Equals: expr.CompareEquals}
	case classfile.OpIfNonNull:
		return &expr.CompareWithNullOperation{Operand: st.Pop(), Equals: expr.CompareNotEquals}
	case classfile.OpIfACmpEq, classfile.OpIfACmpNe:
		right := st.Pop()
		left := st.Pop()
		eq := expr.CompareEquals
		if instr.Op == classfile.OpIfACmpNe {
			eq = expr.CompareNotEquals
		}
		return &expr.CompareBinaryOperation{Left: left, Right: right, Equals: &eq}
	case classfile.OpIfICmpEq, classfile.OpIfICmpNe:
		right := st.PopAs(types.ANY_INT, diags, i)
		left := st.PopAs(types.ANY_INT, diags, i)
		eq := expr.CompareEquals
		if instr.Op == classfile.OpIfICmpNe {
			eq = expr.CompareNotEquals
		}
		return &expr.CompareBinaryOperation{Left: left, Right: right, Equals: &eq}
	case classfile.OpIfICmpLt, classfile.OpIfICmpGe, classfile.OpIfICmpGt, classfile.OpIfICmpLe:
		right := st.PopAs(types.ANY_INT, diags, i)
		left := st.PopAs(types.ANY_INT, diags, i)
		return &expr.CompareBinaryOperation{Left: left, Right: right, CompareType: icmpCompareType(instr.Op)}
	default: // ifeq/ifne/iflt/ifge/ifgt/ifle against an int or the folded *cmp result
		operand := st.Pop()
		isEqFamily := instr.Op == classfile.OpIfEq || instr.Op == classfile.OpIfNe
		var eq *expr.EqualsCompareType
		if isEqFamily {
			e := expr.CompareEquals
			if instr.Op == classfile.OpIfNe {
				e = expr.CompareNotEquals
			}
			eq = &e
		}
		if cmp, ok := operand.(*expr.CmpOperation); ok {
			return &expr.CompareBinaryOperation{Left: cmp.Left, Right: cmp.Right, CompareType: zeroCompareType(instr.Op), Equals: eq}
		}
		return &expr.CompareWithZeroOperation{Operand: operand, CompareType: zeroCompareType(instr.Op), Equals: eq}
	}
}

func icmpCompareType(op classfile.Opcode) expr.CompareType {
	switch op {
	case classfile.OpIfICmpLt:
		return expr.CompareLess
	case classfile.OpIfICmpGe:
		return expr.CompareGreaterOrEquals
	case classfile.OpIfICmpGt:
		return expr.CompareGreater
	default: // OpIfICmpLe
		return expr.CompareLessOrEquals
	}
}

func zeroCompareType(op classfile.Opcode) expr.CompareType {
	switch op {
	case classfile.OpIfLt:
		return expr.CompareLess
	case classfile.OpIfGe:
		return expr.CompareGreaterOrEquals
	case classfile.OpIfGt:
		return expr.CompareGreater
	case classfile.OpIfLe:
		return expr.CompareLessOrEquals
	default: // ifeq/ifne handled by the Equals field, CompareType unused
		return expr.CompareGreaterOrEquals
	}
}

func isArrayLoadOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpIALoad, classfile.OpLALoad, classfile.OpFALoad, classfile.OpDALoad, classfile.OpAALoad,
		classfile.OpBALoad, classfile.OpCALoad, classfile.OpSALoad:
		return true
	default:
		return false
	}
}

func arrayElementType(op classfile.Opcode) types.Type {
	switch op {
	case classfile.OpIALoad:
		return types.INT
	case classfile.OpLALoad:
		return types.LONG
	case classfile.OpFALoad:
		return types.FLOAT
	case classfile.OpDALoad:
		return types.DOUBLE
	case classfile.OpAALoad:
		return types.ANY_OBJECT
	case classfile.OpBALoad:
		return types.BYTE
	case classfile.OpCALoad:
		return types.CHAR
	case classfile.OpSALoad:
		return types.SHORT
	default:
		return types.ANY
	}
}

func isArrayStoreOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpIAStore, classfile.OpLAStore, classfile.OpFAStore, classfile.OpDAStore, classfile.OpAAStore,
		classfile.OpBAStore, classfile.OpCAStore, classfile.OpSAStore:
		return true
	default:
		return false
	}
}

func arrayStoreElementType(op classfile.Opcode) types.Type {
	switch op {
	case classfile.OpIAStore:
		return types.INT
	case classfile.OpLAStore:
		return types.LONG
	case classfile.OpFAStore:
		return types.FLOAT
	case classfile.OpDAStore:
		return types.DOUBLE
	case classfile.OpAAStore:
		return types.ANY_OBJECT
	case classfile.OpBAStore:
		return types.BYTE
	case classfile.OpCAStore:
		return types.CHAR
	case classfile.OpSAStore:
		return types.SHORT
	default:
		return types.ANY
	}
}
