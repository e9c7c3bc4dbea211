package classfile

// IsConditionalBranch reports whether op is one of the if<cond>/if_<cond>
// family (everything that tests a value and branches, excluding the
// unconditional goto and the switch opcodes).
func IsConditionalBranch(op Opcode) bool {
	switch op {
	case OpIfEq, OpIfNe, OpIfLt, OpIfGe, OpIfGt, OpIfLe,
		OpIfICmpEq, OpIfICmpNe, OpIfICmpLt, OpIfICmpGe, OpIfICmpGt, OpIfICmpLe,
		OpIfACmpEq, OpIfACmpNe, OpIfNull, OpIfNonNull:
		return true
	default:
		return false
	}
}
