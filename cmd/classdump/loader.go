package main

import (
	"encoding/json"
	"fmt"

	"github.com/jdecompiler/jdgo/classfile"
)

// wireClass is the on-disk shape classdump reads in place of a real
// class-file binary parser (spec.md §6 scopes binary class-file parsing
// out of the core entirely and hands the decompiler pre-resolved
// instructions instead). It's a direct JSON rendering of that same
// "inputs from the class-file parser" contract — opcode numbers matching
// the JVM's own encoding, constant-pool references already resolved to
// Go values — not a new input format invented for this CLI.
type wireClass struct {
	BinaryName string       `json:"class"`
	Methods    []wireMethod `json:"methods"`
}

type wireMethod struct {
	Name           string                        `json:"name"`
	Descriptor     string                        `json:"descriptor"`
	Static         bool                          `json:"static,omitempty"`
	MaxLocals      uint16                        `json:"maxLocals"`
	Instructions   []wireInstruction             `json:"instructions"`
	ExceptionTable []classfile.ExceptionHandler  `json:"exceptionTable,omitempty"`
	LocalVariables []classfile.LocalVariableEntry `json:"localVariables,omitempty"`
}

// wireInstruction mirrors classfile.Instruction but splits its
// interface{}-typed ConstValue into one optional field per concrete kind,
// since JSON can't round-trip an untyped Go interface value (it would
// decode every number back as float64, losing the int32/int64/float32/
// float64 distinction the rest of the pipeline depends on).
type wireInstruction struct {
	Op           uint8              `json:"op"`
	Pos          uint32             `json:"pos"`
	LocalSlot    uint16             `json:"localSlot,omitempty"`
	IncAmount    int32              `json:"incAmount,omitempty"`
	IntConst     *int32             `json:"intConst,omitempty"`
	LongConst    *int64             `json:"longConst,omitempty"`
	FloatConst   *float32           `json:"floatConst,omitempty"`
	DoubleConst  *float64           `json:"doubleConst,omitempty"`
	StringConst  *string            `json:"stringConst,omitempty"`
	ClassConst   *string            `json:"classConst,omitempty"` // binary name of a Class constant
	IntImmediate int32              `json:"intImmediate,omitempty"`
	BranchTarget uint32             `json:"branchTarget,omitempty"`
	Switch       *classfile.SwitchTable `json:"switch,omitempty"`
	Member       *classfile.MemberRef   `json:"member,omitempty"`
	Dims         uint8              `json:"dims,omitempty"`
}

// loadClass decodes data as a wireClass and converts it into the plain
// classfile.Method values the decompiler consumes.
func loadClass(data []byte) (binaryName string, methods []classfile.Method, static []bool, err error) {
	var wc wireClass
	if err := json.Unmarshal(data, &wc); err != nil {
		return "", nil, nil, fmt.Errorf("decoding class input: %w", err)
	}
	if wc.BinaryName == "" {
		return "", nil, nil, fmt.Errorf("class input is missing a \"class\" name")
	}

	methods = make([]classfile.Method, len(wc.Methods))
	static = make([]bool, len(wc.Methods))
	for i, wm := range wc.Methods {
		instrs := make([]classfile.Instruction, len(wm.Instructions))
		for j, wi := range wm.Instructions {
			instrs[j] = wi.toInstruction()
		}
		methods[i] = classfile.Method{
			Name:           wm.Name,
			Descriptor:     wm.Descriptor,
			Instructions:   instrs,
			ExceptionTable: wm.ExceptionTable,
			LocalVariables: wm.LocalVariables,
			MaxLocals:      wm.MaxLocals,
		}
		static[i] = wm.Static
	}
	return wc.BinaryName, methods, static, nil
}

func (wi wireInstruction) toInstruction() classfile.Instruction {
	instr := classfile.Instruction{
		Op:           classfile.Opcode(wi.Op),
		Pos:          wi.Pos,
		LocalSlot:    wi.LocalSlot,
		IncAmount:    wi.IncAmount,
		IntImmediate: wi.IntImmediate,
		BranchTarget: wi.BranchTarget,
		Switch:       wi.Switch,
		Member:       wi.Member,
		Dims:         wi.Dims,
	}
	switch {
	case wi.IntConst != nil:
		instr.ConstValue = *wi.IntConst
	case wi.LongConst != nil:
		instr.ConstValue = *wi.LongConst
	case wi.FloatConst != nil:
		instr.ConstValue = *wi.FloatConst
	case wi.DoubleConst != nil:
		instr.ConstValue = *wi.DoubleConst
	case wi.StringConst != nil:
		instr.ConstValue = *wi.StringConst
	case wi.ClassConst != nil:
		instr.ConstValue = &classfile.MemberRef{ClassName: *wi.ClassConst}
	}
	return instr
}
