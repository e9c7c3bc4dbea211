// Package classfile describes the pre-parsed inputs the decompilation
// core consumes from the class-file binary parser (spec.md §6): an
// instruction stream with byte positions, an exception table, an optional
// local-variable debug table, and constant-pool entries already resolved
// onto each instruction. Parsing the
// class binary itself — constant pool, method/field tables, attributes —
// is explicitly out of scope (spec.md §1); this package only fixes the
// shape of the contract the parser hands to the decompiler.
package classfile

// Opcode is a single-byte VM instruction opcode. Values match the real
// instruction set so that a class-file parser feeding this package can do
// so without a translation table.
type Opcode uint8

const (
	OpNop    Opcode = 0x00
	OpAConstNull Opcode = 0x01
	OpIConstM1 Opcode = 0x02
	OpIConst0 Opcode = 0x03
	OpIConst1 Opcode = 0x04
	OpIConst2 Opcode = 0x05
	OpIConst3 Opcode = 0x06
	OpIConst4 Opcode = 0x07
	OpIConst5 Opcode = 0x08
	OpLConst0 Opcode = 0x09
	OpLConst1 Opcode = 0x0a
	OpFConst0 Opcode = 0x0b
	OpFConst1 Opcode = 0x0c
	OpFConst2 Opcode = 0x0d
	OpDConst0 Opcode = 0x0e
	OpDConst1 Opcode = 0x0f
	OpBIPush Opcode = 0x10
	OpSIPush Opcode = 0x11
	OpLdc    Opcode = 0x12
	OpLdcW   Opcode = 0x13
	OpLdc2W  Opcode = 0x14

	OpILoad Opcode = 0x15
	OpLLoad Opcode = 0x16
	OpFLoad Opcode = 0x17
	OpDLoad Opcode = 0x18
	OpALoad Opcode = 0x19

	OpIALoad Opcode = 0x2e
	OpLALoad Opcode = 0x2f
	OpFALoad Opcode = 0x30
	OpDALoad Opcode = 0x31
	OpAALoad Opcode = 0x32
	OpBALoad Opcode = 0x33
	OpCALoad Opcode = 0x34
	OpSALoad Opcode = 0x35

	OpIStore Opcode = 0x36
	OpLStore Opcode = 0x37
	OpFStore Opcode = 0x38
	OpDStore Opcode = 0x39
	OpAStore Opcode = 0x3a

	OpIAStore Opcode = 0x4f
	OpLAStore Opcode = 0x50
	OpFAStore Opcode = 0x51
	OpDAStore Opcode = 0x52
	OpAAStore Opcode = 0x53
	OpBAStore Opcode = 0x54
	OpCAStore Opcode = 0x55
	OpSAStore Opcode = 0x56

	OpPop    Opcode = 0x57
	OpPop2   Opcode = 0x58
	OpDup    Opcode = 0x59
	OpDupX1  Opcode = 0x5a
	OpDupX2  Opcode = 0x5b
	OpDup2   Opcode = 0x5c
	OpSwap   Opcode = 0x5f

	OpIAdd Opcode = 0x60
	OpLAdd Opcode = 0x61
	OpFAdd Opcode = 0x62
	OpDAdd Opcode = 0x63
	OpISub Opcode = 0x64
	OpLSub Opcode = 0x65
	OpFSub Opcode = 0x66
	OpDSub Opcode = 0x67
	OpIMul Opcode = 0x68
	OpLMul Opcode = 0x69
	OpFMul Opcode = 0x6a
	OpDMul Opcode = 0x6b
	OpIDiv Opcode = 0x6c
	OpLDiv Opcode = 0x6d
	OpFDiv Opcode = 0x6e
	OpDDiv Opcode = 0x6f
	OpIRem Opcode = 0x70
	OpLRem Opcode = 0x71
	OpFRem Opcode = 0x72
	OpDRem Opcode = 0x73
	OpINeg Opcode = 0x74
	OpLNeg Opcode = 0x75
	OpFNeg Opcode = 0x76
	OpDNeg Opcode = 0x77

	OpIShl  Opcode = 0x78
	OpLShl  Opcode = 0x79
	OpIShr  Opcode = 0x7a
	OpLShr  Opcode = 0x7b
	OpIUshr Opcode = 0x7c
	OpLUshr Opcode = 0x7d
	OpIAnd  Opcode = 0x7e
	OpLAnd  Opcode = 0x7f
	OpIOr   Opcode = 0x80
	OpLOr   Opcode = 0x81
	OpIXor  Opcode = 0x82
	OpLXor  Opcode = 0x83

	OpIInc Opcode = 0x84

	OpI2L Opcode = 0x85
	OpI2F Opcode = 0x86
	OpI2D Opcode = 0x87
	OpL2I Opcode = 0x88
	OpL2F Opcode = 0x89
	OpL2D Opcode = 0x8a
	OpF2I Opcode = 0x8b
	OpF2L Opcode = 0x8c
	OpF2D Opcode = 0x8d
	OpD2I Opcode = 0x8e
	OpD2L Opcode = 0x8f
	OpD2F Opcode = 0x90
	OpI2B Opcode = 0x91
	OpI2C Opcode = 0x92
	OpI2S Opcode = 0x93

	OpLCmp  Opcode = 0x94
	OpFCmpL Opcode = 0x95
	OpFCmpG Opcode = 0x96
	OpDCmpL Opcode = 0x97
	OpDCmpG Opcode = 0x98

	OpIfEq Opcode = 0x99
	OpIfNe Opcode = 0x9a
	OpIfLt Opcode = 0x9b
	OpIfGe Opcode = 0x9c
	OpIfGt Opcode = 0x9d
	OpIfLe Opcode = 0x9e

	OpIfICmpEq Opcode = 0x9f
	OpIfICmpNe Opcode = 0xa0
	OpIfICmpLt Opcode = 0xa1
	OpIfICmpGe Opcode = 0xa2
	OpIfICmpGt Opcode = 0xa3
	OpIfICmpLe Opcode = 0xa4
	OpIfACmpEq Opcode = 0xa5
	OpIfACmpNe Opcode = 0xa6

	OpGoto Opcode = 0xa7

	OpTableSwitch  Opcode = 0xaa
	OpLookupSwitch Opcode = 0xab

	OpIReturn Opcode = 0xac
	OpLReturn Opcode = 0xad
	OpFReturn Opcode = 0xae
	OpDReturn Opcode = 0xaf
	OpAReturn Opcode = 0xb0
	OpReturn  Opcode = 0xb1

	OpGetStatic Opcode = 0xb2
	OpPutStatic Opcode = 0xb3
	OpGetField  Opcode = 0xb4
	OpPutField  Opcode = 0xb5

	OpInvokeVirtual   Opcode = 0xb6
	OpInvokeSpecial   Opcode = 0xb7
	OpInvokeStatic    Opcode = 0xb8
	OpInvokeInterface Opcode = 0xb9
	OpInvokeDynamic   Opcode = 0xba

	OpNew          Opcode = 0xbb
	OpNewArray     Opcode = 0xbc
	OpANewArray    Opcode = 0xbd
	OpArrayLength  Opcode = 0xbe
	OpAThrow       Opcode = 0xbf
	OpCheckCast    Opcode = 0xc0
	OpInstanceOf   Opcode = 0xc1
	OpMonitorEnter Opcode = 0xc2
	OpMonitorExit  Opcode = 0xc3

	OpIfNull    Opcode = 0xc6
	OpIfNonNull Opcode = 0xc7
)

// Instruction is a single opcode at a known byte position, carrying
// whatever pre-resolved immediate values the class-file parser attached
// (constant-pool entries, branch offsets, switch tables). Grounded on the
// teacher's disasm.Instr (disasm/disasm.go), generalized from WASM's
// fixed []interface{} Immediates to named fields since JVM instructions
// carry more varied immediate shapes (branch targets, switch tables,
// pool references) than WASM's mostly-scalar ones.
type Instruction struct {
	Op  Opcode
	Pos uint32 // byte offset of this instruction in the method's code array

	// LocalSlot is the local-variable slot for *load/*store/iinc/ret.
	LocalSlot uint16
	// IncAmount is iinc's signed increment.
	IncAmount int32

	// ConstValue is the resolved constant-pool entry for ldc/ldc_w/ldc2_w
	// (an int32, int64, float32, float64, string, or, for a Class constant,
	// a *MemberRef with only ClassName set).
	ConstValue interface{}
	// IntImmediate carries bipush/sipush/newarray's immediate operand.
	IntImmediate int32

	// BranchTarget is the absolute byte position a branch/goto/switch
	// entry targets (already resolved from the relative offset the class
	// file encodes, by the parser).
	BranchTarget uint32

	// Switch holds tableswitch/lookupswitch data.
	Switch *SwitchTable

	// Member is the resolved field/method reference for *field/invoke*/new.
	Member *MemberRef

	// Dims is multianewarray's dimension count.
	Dims uint8
}

// SwitchTable carries the offset table of a tableswitch or lookupswitch
// instruction: a case value maps to the absolute byte position of its
// target (spec.md §4.4).
type SwitchTable struct {
	DefaultTarget uint32
	// Cases preserves encounter order (tableswitch: ascending by
	// construction; lookupswitch: whatever order the class file lists).
	Cases []SwitchCase
}

// SwitchCase is one `case value -> target` entry.
type SwitchCase struct {
	Value  int32
	Target uint32
}

// MemberRef is a resolved field or method reference: owning class, name,
// and descriptor. The descriptor is kept as the raw resolved string; the
// decompile package turns it into Types through ParseFieldDescriptor/
// ParseMethodDescriptor (descriptor.go) when it needs them.
type MemberRef struct {
	ClassName  string // binary (slash-separated) name of the owner
	Name       string
	Descriptor string
	Interface  bool // true for invokeinterface
}

// ExceptionHandler is one entry of a method's exception table (spec.md §6).
type ExceptionHandler struct {
	StartPos, EndPos, HandlerPos uint32
	// ClassName is the binary name of the caught type, or "" for a
	// `finally` handler (the JVM's catch_type == 0 convention).
	ClassName string
}

// LocalVariableEntry is one optional debug-table hint (spec.md §6).
type LocalVariableEntry struct {
	Slot             uint16
	StartPos, EndPos uint32
	Name             string
	Descriptor       string
}

// Method is the pre-parsed method body this package's consumers operate
// on, bundling the instruction stream with its exception table and
// optional debug hints.
type Method struct {
	Name          string
	Descriptor    string
	Instructions  []Instruction
	ExceptionTable []ExceptionHandler
	LocalVariables []LocalVariableEntry // optional, may be empty
	MaxLocals     uint16
}
