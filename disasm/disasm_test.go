package disasm

import (
	"testing"

	"github.com/jdecompiler/jdgo/classfile"
)

// buildMethod lays out instructions at sequential positions 0..n-1 for
// tests that don't care about realistic variable-width encoding.
func buildMethod(name string, instrs ...classfile.Instruction) classfile.Method {
	for i := range instrs {
		instrs[i].Pos = uint32(i)
	}
	return classfile.Method{Name: name, Instructions: instrs}
}

func TestDisassembleRegistersForwardIfBlock(t *testing.T) {
	method := buildMethod("cond",
		classfile.Instruction{Op: classfile.OpILoad},
		classfile.Instruction{Op: classfile.OpIfEq, BranchTarget: 3},
		classfile.Instruction{Op: classfile.OpNop},
		classfile.Instruction{Op: classfile.OpReturn},
	)
	d, err := Disassemble(method)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(d.Blocks))
	}
	b := d.Blocks[0]
	if b.Kind != BlockIf || b.StartIndex != 1 || b.EndIndex != 3 {
		t.Fatalf("unexpected block: %+v", b)
	}
}

func TestDisassembleRegistersBackwardLoopBlock(t *testing.T) {
	method := buildMethod("loop",
		classfile.Instruction{Op: classfile.OpILoad},
		classfile.Instruction{Op: classfile.OpIfNe, BranchTarget: 0},
		classfile.Instruction{Op: classfile.OpReturn},
	)
	d, err := Disassemble(method)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Blocks) != 1 || d.Blocks[0].Kind != BlockLoop {
		t.Fatalf("expected a single loop block, got %+v", d.Blocks)
	}
}

func TestDisassembleRegistersTryCatchPair(t *testing.T) {
	method := buildMethod("trycatch",
		classfile.Instruction{Op: classfile.OpNop},
		classfile.Instruction{Op: classfile.OpNop},
		classfile.Instruction{Op: classfile.OpGoto, BranchTarget: 4},
		classfile.Instruction{Op: classfile.OpNop},
		classfile.Instruction{Op: classfile.OpReturn},
	)
	method.ExceptionTable = []classfile.ExceptionHandler{
		{StartPos: 0, EndPos: 2, HandlerPos: 3, ClassName: "java/lang/Exception"},
	}
	d, err := Disassemble(method)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sawTry, sawCatch bool
	for _, b := range d.Blocks {
		if b.Kind == BlockTry && b.StartIndex == 0 && b.EndIndex == 2 {
			sawTry = true
		}
		if b.Kind == BlockCatch && b.StartIndex == 3 && b.HandlerClass == "java/lang/Exception" {
			sawCatch = true
		}
	}
	if !sawTry || !sawCatch {
		t.Fatalf("expected matching try/catch blocks, got %+v", d.Blocks)
	}
}

func TestDisassembleRejectsBranchOutsideStream(t *testing.T) {
	method := buildMethod("bad",
		classfile.Instruction{Op: classfile.OpGoto, BranchTarget: 99},
	)
	if _, err := Disassemble(method); err == nil {
		t.Fatal("expected an error for an out-of-range branch target")
	}
}

func TestDisassembleTracksMaxDepth(t *testing.T) {
	method := buildMethod("depth",
		classfile.Instruction{Op: classfile.OpIConst1},
		classfile.Instruction{Op: classfile.OpIConst2},
		classfile.Instruction{Op: classfile.OpIAdd},
		classfile.Instruction{Op: classfile.OpReturn},
	)
	d, err := Disassemble(method)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.MaxDepth != 2 {
		t.Fatalf("max depth = %d, want 2", d.MaxDepth)
	}
}
