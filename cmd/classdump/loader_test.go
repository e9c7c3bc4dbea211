package main

import (
	"testing"

	"github.com/jdecompiler/jdgo/classfile"
)

func TestLoadClassDecodesInstructionsAndConstants(t *testing.T) {
	data := []byte(`{
		"class": "com/example/Greeter",
		"methods": [{
			"name": "greet",
			"descriptor": "(I)Ljava/lang/String;",
			"static": true,
			"maxLocals": 2,
			"instructions": [
				{"op": 18, "pos": 0, "stringConst": "hi"},
				{"op": 176, "pos": 2}
			]
		}]
	}`)

	binaryName, methods, static, err := loadClass(data)
	if err != nil {
		t.Fatal(err)
	}
	if binaryName != "com/example/Greeter" {
		t.Fatalf("binaryName = %q", binaryName)
	}
	if len(methods) != 1 || len(static) != 1 {
		t.Fatalf("expected one method, got %d", len(methods))
	}
	if !static[0] {
		t.Fatal("expected static flag to decode true")
	}
	m := methods[0]
	if m.Name != "greet" || m.MaxLocals != 2 {
		t.Fatalf("unexpected method header: %+v", m)
	}
	if len(m.Instructions) != 2 {
		t.Fatalf("expected 2 instructions, got %d", len(m.Instructions))
	}
	if m.Instructions[0].Op != classfile.OpLdc {
		t.Fatalf("expected ldc opcode, got %v", m.Instructions[0].Op)
	}
	s, ok := m.Instructions[0].ConstValue.(string)
	if !ok || s != "hi" {
		t.Fatalf("expected string constant %q, got %#v", "hi", m.Instructions[0].ConstValue)
	}
}

func TestLoadClassRejectsMissingClassName(t *testing.T) {
	_, _, _, err := loadClass([]byte(`{"methods": []}`))
	if err == nil {
		t.Fatal("expected an error for a missing class name")
	}
}

func TestWireInstructionClassConstant(t *testing.T) {
	name := "java/lang/Object"
	wi := wireInstruction{Op: uint8(classfile.OpLdc), ClassConst: &name}
	instr := wi.toInstruction()
	ref, ok := instr.ConstValue.(*classfile.MemberRef)
	if !ok || ref.ClassName != name {
		t.Fatalf("expected *classfile.MemberRef{ClassName: %q}, got %#v", name, instr.ConstValue)
	}
}
