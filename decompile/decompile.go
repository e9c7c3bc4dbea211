package decompile

import (
	"sort"

	"github.com/jdecompiler/jdgo/classfile"
	"github.com/jdecompiler/jdgo/disasm"
	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/internal/diag"
	"github.com/jdecompiler/jdgo/scope"
	"github.com/jdecompiler/jdgo/types"
)

// MethodInfo carries the declaring-class context a method body needs but
// its own classfile.Method doesn't: whether it's static (no implicit
// `this` at slot 0), its declaring class (for `this`'s type and for
// invokespecial super/this-constructor calls), and its descriptor-derived
// parameter types (needed to pre-declare argument locals before the body
// runs).
type MethodInfo struct {
	Method         classfile.Method
	DeclaringClass *types.ClassType
	IsStatic       bool
	ParamTypes     []types.Type
}

// Decompile runs stage 2 (spec.md §2, §4.2–§4.4) over one method: it
// disassembles the instruction stream, pre-declares parameter locals,
// then drives the typed operand stack and scope.Builder through the
// instruction dispatch table described in spec.md §4.3, returning the
// method's root Scope and any accumulated diagnostics.
func Decompile(info MethodInfo) (root *scope.Scope, diags *diag.Diagnostics, err error) {
	d, err := disasm.Disassemble(info.Method)
	if err != nil {
		return nil, nil, err
	}

	locals := NewLocals(info.Method.MaxLocals, info.Method.LocalVariables)
	slot := uint16(0)
	if !info.IsStatic {
		locals.Declare(slot, info.DeclaringClass, -1)
		slot++
	}
	for _, pt := range info.ParamTypes {
		locals.Declare(slot, pt, -1)
		if pt.Size() == types.SizeEight {
			slot += 2
		} else {
			slot++
		}
	}

	diags = &diag.Diagnostics{}
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*diag.InvariantError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	root = scope.NewRoot(len(d.Code))
	b := scope.NewBuilder(root)
	st := &OperandStack{}

	blocksByStart := make(map[int][]disasm.Block, len(d.Blocks))
	loopByBodyStart := make(map[int]disasm.Block)
	for _, blk := range d.Blocks {
		blocksByStart[blk.StartIndex] = append(blocksByStart[blk.StartIndex], blk)
		if blk.Kind == disasm.BlockLoop {
			loopByBodyStart[blk.EndIndex] = blk
		}
	}

	catchEntryPushed := make(map[int]bool)
	code := d.Code
	for i := 0; i < len(code); i++ {
		closeScopesAt(b, i)

		if loopBlk, ok := loopByBodyStart[i]; ok {
			b.OpenInfiniteLoop(i, loopBlk.StartIndex+1)
		}
		if cur := b.Current(); cur.Kind == scope.KindSwitch {
			for _, c := range cur.SwitchCases {
				if c.BodyIndex == i {
					b.OpenCase(i, c.EndIndex)
					break
				}
			}
		}
		for _, blk := range blocksByStart[i] {
			switch blk.Kind {
			case disasm.BlockTry:
				b.OpenTry(blk.StartIndex, blk.EndIndex)
			case disasm.BlockCatch:
				b.OpenCatch(blk.StartIndex, catchEndIndex(i, d.Blocks, len(code)), blk.HandlerClass)
				// The JVM pushes the caught exception onto the operand
				// stack implicitly at a handler's entry; push the
				// matching placeholder once so the handler's own astore
				// (or pop, if it discards the exception) has something
				// to consume. A coalesced multi-catch handler revisits
				// this index once per exception-table row, so only the
				// first row pushes.
				if !catchEntryPushed[i] {
					st.Push(&expr.CaughtExceptionOperation{Type: types.NewClassType(blk.HandlerClass)})
					catchEntryPushed[i] = true
				}
			}
		}

		instr := code[i]
		switch {
		case isConstOpcode(instr.Op):
			st.Push(constOperation(instr))

		case isLoadOpcode(instr.Op):
			v := locals.Get(instr.LocalSlot)
			if v == nil {
				diags.Warn(i, "load from undeclared local slot %d", instr.LocalSlot)
				continue
			}
			st.Push(&expr.VariableLoadOperation{Var: v})

		case isStoreOpcode(instr.Op):
			valueType := storeOpcodeType(instr.Op)
			value := st.PopAs(valueType, diags, i)
			v := locals.Get(instr.LocalSlot)
			declare := v == nil
			if declare {
				v = locals.Declare(instr.LocalSlot, value.ReturnType(), i)
			}
			b.AddStatement(&expr.VariableStoreOperation{Var: v, Value: value, Declare: declare})

		case instr.Op == classfile.OpIInc:
			v := locals.Get(instr.LocalSlot)
			if v == nil {
				diags.Warn(i, "iinc on undeclared local slot %d", instr.LocalSlot)
				continue
			}
			b.AddStatement(&expr.IncrementOperation{Var: v, Amount: instr.IncAmount, AsStatement: true})

		case isArithmeticOpcode(instr.Op):
			op, ty := arithmeticOpcodeInfo(instr.Op)
			right := st.PopAs(ty, diags, i)
			left := st.PopAs(ty, diags, i)
			st.Push(&expr.BinaryOperation{Op: op, Left: left, Right: right, Type: ty})

		case isNegOpcode(instr.Op):
			ty := negOpcodeType(instr.Op)
			operand := st.PopAs(ty, diags, i)
			st.Push(&expr.UnaryOperation{Operand: operand, Type: ty})

		case isCompareOpOpcode(instr.Op):
			st.Push(cmpOperation(instr, st, diags, i))

		case classfile.IsConditionalBranch(instr.Op):
			if loopBlk := lookupBlock(blocksByStart, i, disasm.BlockLoop); loopBlk != nil {
				cond := ifCondition(instr, st, diags, i)
				check := &scope.Scope{Kind: scope.KindIf, Condition: cond, StartIndex: i, EndIndex: i + 1, ElseOfIndex: -1}
				check.Append(&expr.ContinueOperation{})
				b.Current().Append(check)
				continue
			}
			cond := ifCondition(instr, st, diags, i)
			blk := lookupBlock(blocksByStart, i, disasm.BlockIf)
			if blk == nil {
				diags.Warn(i, "no disassembled block for conditional branch")
				continue
			}
			// The branch instruction tests the condition under which the
			// guarded region is skipped; the if-statement's own condition
			// is therefore its negation.
			inverted := cond.Invert().(expr.ConditionOperation)
			if loop := b.Current(); loop.Kind == scope.KindInfiniteLoop && len(loop.Body) == 0 && blk.EndIndex == loop.EndIndex {
				// This branch is the loop's very first instruction and its
				// guarded region runs to the loop's own end: the condition
				// governs the whole body, so while(true) wrapping a single
				// if rewrites as while(cond) directly (spec.md §4.4).
				b.RewriteAsWhile(loop, inverted, i+1, blk.EndIndex)
				continue
			}
			b.OpenIf(inverted, i+1, blk.EndIndex)

		case instr.Op == classfile.OpGoto:
			handleGoto(b, i, instr, d, diags)

		case instr.Op == classfile.OpTableSwitch || instr.Op == classfile.OpLookupSwitch:
			selector := st.PopAs(types.INT, diags, i)
			blk := lookupBlock(blocksByStart, i, disasm.BlockSwitch)
			if blk == nil {
				diags.Warn(i, "no disassembled block for switch")
				continue
			}
			b.OpenSwitch(selector, i+1, blk.EndIndex, buildSwitchCases(instr.Switch, d, blk.EndIndex))

		case instr.Op == classfile.OpGetStatic, instr.Op == classfile.OpGetField:
			fieldType, perr := classfile.ParseFieldDescriptor(instr.Member.Descriptor)
			if perr != nil {
				return nil, nil, perr
			}
			var instance expr.Operation
			if instr.Op == classfile.OpGetField {
				instance = st.Pop()
			}
			st.Push(&expr.FieldAccessOperation{
				Instance: instance,
				Owner:    types.NewClassType(instr.Member.ClassName),
				Name:     instr.Member.Name,
				Type:     fieldType,
			})

		case instr.Op == classfile.OpPutStatic, instr.Op == classfile.OpPutField:
			fieldType, perr := classfile.ParseFieldDescriptor(instr.Member.Descriptor)
			if perr != nil {
				return nil, nil, perr
			}
			value := st.PopAs(fieldType, diags, i)
			var instance expr.Operation
			if instr.Op == classfile.OpPutField {
				instance = st.Pop()
			}
			access := &expr.FieldAccessOperation{Instance: instance, Owner: types.NewClassType(instr.Member.ClassName), Name: instr.Member.Name, Type: fieldType}
			b.AddStatement(&expr.FieldAssignOperation{Field: access, Value: value})

		case isArrayLoadOpcode(instr.Op):
			elemType := arrayElementType(instr.Op)
			index := st.PopAs(types.INT, diags, i)
			array := st.Pop()
			st.Push(&expr.ArrayAccessOperation{Array: array, Index: index, Type: elemType})

		case isArrayStoreOpcode(instr.Op):
			elemType := arrayStoreElementType(instr.Op)
			value := st.PopAs(elemType, diags, i)
			index := st.PopAs(types.INT, diags, i)
			array := st.Pop()
			b.AddStatement(&expr.ArrayAssignOperation{Access: &expr.ArrayAccessOperation{Array: array, Index: index, Type: elemType}, Value: value})

		case instr.Op == classfile.OpArrayLength:
			st.Push(&expr.ArrayLengthOperation{Array: st.Pop()})

		case instr.Op == classfile.OpNewArray:
			length := st.PopAs(types.INT, diags, i)
			elemType := primitiveFromAtype(instr.IntImmediate)
			st.Push(&expr.NewArrayOperation{ElementType: elemType, Lengths: []expr.Operation{length}, Type: types.NewArrayType(elemType, 1)})

		case instr.Op == classfile.OpANewArray:
			length := st.PopAs(types.INT, diags, i)
			elemType := types.NewClassType(instr.Member.ClassName)
			st.Push(&expr.NewArrayOperation{ElementType: elemType, Lengths: []expr.Operation{length}, Type: types.NewArrayType(elemType, 1)})

		case instr.Op == classfile.OpNew:
			st.Push(&newInstancePlaceholder{Class: types.NewClassType(instr.Member.ClassName)})

		case instr.Op == classfile.OpDup:
			st.Push(st.Peek(0))
		case instr.Op == classfile.OpPop:
			st.Pop()
		case instr.Op == classfile.OpPop2:
			st.Pop()
			st.Pop()
		case instr.Op == classfile.OpSwap:
			a := st.Pop()
			b2 := st.Pop()
			st.Push(a)
			st.Push(b2)

		case instr.Op == classfile.OpCheckCast:
			target := types.NewClassType(instr.Member.ClassName)
			st.Push(&expr.CastOperation{Operand: st.Pop(), Target: target, Explicit: true})

		case instr.Op == classfile.OpInstanceOf:
			target := types.NewClassType(instr.Member.ClassName)
			st.Push(&expr.InstanceOfOperation{Operand: st.Pop(), Target: target})

		case isInvokeOpcode(instr.Op):
			handleInvoke(b, st, instr, diags, i)

		case instr.Op == classfile.OpAThrow:
			b.AddStatement(&expr.ThrowOperation{Value: st.Pop()})

		case instr.Op == classfile.OpMonitorEnter:
			b.AddStatement(&expr.MonitorOperation{Object: st.Pop(), Enter: true})
		case instr.Op == classfile.OpMonitorExit:
			b.AddStatement(&expr.MonitorOperation{Object: st.Pop(), Enter: false})

		case isReturnOpcode(instr.Op):
			if instr.Op == classfile.OpReturn {
				b.AddStatement(&expr.ReturnOperation{})
			} else {
				b.AddStatement(&expr.ReturnOperation{Value: st.Pop()})
			}

		default:
			diags.Warn(i, "unhandled opcode 0x%x", instr.Op)
		}
	}

	closeScopesAt(b, len(code))
	scope.Finalize(root)
	return root, diags, nil
}

// closeScopesAt pops every open scope (except the root) whose EndIndex
// has just been reached. It attaches nothing; an `else` is attached by
// handleGoto when it meets the forward goto ending an if-scope (spec.md
// §4.4's else-attachment rule).
func closeScopesAt(b *scope.Builder, i int) {
	for {
		cur := b.Current()
		if cur.Kind == scope.KindRoot || cur.EndIndex != i {
			return
		}
		b.Pop()
	}
}

// handleGoto classifies an unconditional jump as either the marker for an
// else region (consumed here, producing no statement of its own), a
// loop-back edge (continue), or an exit from a loop/switch (break) — the
// three shapes spec.md §4.4 describes for a bare goto once conditional
// branches are already accounted for by the classfile.IsConditionalBranch
// case of Decompile's dispatch loop.
func handleGoto(b *scope.Builder, i int, instr classfile.Instruction, d *disasm.Disassembly, diags *diag.Diagnostics) {
	target, ok := d.PosToIndex[instr.BranchTarget]
	if !ok {
		diags.Warn(i, "goto target outside instruction stream")
		return
	}

	cur := b.Current()
	if cur.Kind == scope.KindIf && cur.EndIndex == i+1 && target > i {
		ifScope := cur
		b.Pop()
		b.AttachElse(ifScope, target)
		return
	}

	if target <= i {
		if cur.EndIndex == i+1 && (cur.Kind == scope.KindWhile || cur.Kind == scope.KindInfiniteLoop) {
			// This goto is the loop's own backward edge and the last
			// instruction before the scope closes: a continue here would
			// be the literal last statement of the loop body, a no-op.
			return
		}
		b.AddStatement(&expr.ContinueOperation{})
		return
	}
	if isLoopCheckIndex(d, target) {
		// Skips straight to the loop's trailing condition check (the
		// classic compiled `while` shape: enter at the top, jump past the
		// body on the first pass, fall into the backward if<cond> at the
		// bottom). The backward branch is folded into a trailing
		// `if(cond) continue;` by the conditional-branch case above, so
		// this goto carries no statement of its own; the cost is that the
		// reconstructed loop always runs its body once before the first
		// condition check, which a true `while(cond)` would not.
		return
	}
	b.AddStatement(&expr.BreakOperation{})
}

// isLoopCheckIndex reports whether idx is the instruction index of some
// BlockLoop's backward branch (i.e. the trailing `if<cond> goto body` a
// leading skip-ahead goto jumps to).
func isLoopCheckIndex(d *disasm.Disassembly, idx int) bool {
	for _, blk := range d.Blocks {
		if blk.Kind == disasm.BlockLoop && blk.StartIndex == idx {
			return true
		}
	}
	return false
}

// catchEndIndex approximates where a catch handler's body ends: disasm
// only resolves where it starts (spec.md §4.4's exception-table rows give
// no explicit handler-body length), so this takes the nearest following
// block boundary of any kind as the likely merge point, falling back to
// the method's end.
func catchEndIndex(handlerIndex int, blocks []disasm.Block, codeLen int) int {
	end := codeLen
	for _, blk := range blocks {
		if blk.StartIndex > handlerIndex && blk.StartIndex < end {
			end = blk.StartIndex
		}
	}
	return end
}

func lookupBlock(byStart map[int][]disasm.Block, i int, kind disasm.BlockKind) *disasm.Block {
	for idx, blk := range byStart[i] {
		if blk.Kind == kind {
			return &byStart[i][idx]
		}
	}
	return nil
}

// buildSwitchCases resolves each case/default target to an instruction
// index and computes the boundary (EndIndex) each case's own sub-scope
// closes at. `default` always sorts last in the returned slice (javac's
// own display convention), but its body can start anywhere in the code,
// so boundaries are computed over a copy sorted by BodyIndex and then
// written back onto the source-ordered entries.
func buildSwitchCases(sw *classfile.SwitchTable, d *disasm.Disassembly, switchEnd int) []scope.SwitchCase {
	byTarget := make(map[int]*scope.SwitchCase)
	var cases []scope.SwitchCase
	for _, c := range sw.Cases {
		idx, ok := d.PosToIndex[c.Target]
		if !ok {
			continue
		}
		if existing, found := byTarget[idx]; found {
			existing.Values = append(existing.Values, c.Value)
			continue
		}
		cases = append(cases, scope.SwitchCase{Values: []int32{c.Value}, BodyIndex: idx})
		byTarget[idx] = &cases[len(cases)-1]
	}
	if defIdx, ok := d.PosToIndex[sw.DefaultTarget]; ok {
		cases = append(cases, scope.SwitchCase{IsDefault: true, BodyIndex: defIdx})
	}

	byBodyIndex := append([]scope.SwitchCase(nil), cases...)
	sort.Slice(byBodyIndex, func(i, j int) bool { return byBodyIndex[i].BodyIndex < byBodyIndex[j].BodyIndex })
	endByBodyIndex := make(map[int]int, len(byBodyIndex))
	for i, c := range byBodyIndex {
		end := switchEnd
		if i+1 < len(byBodyIndex) {
			end = byBodyIndex[i+1].BodyIndex
		}
		endByBodyIndex[c.BodyIndex] = end
	}
	for i := range cases {
		cases[i].EndIndex = endByBodyIndex[cases[i].BodyIndex]
	}
	return cases
}

func handleInvoke(b *scope.Builder, st *OperandStack, instr classfile.Instruction, diags *diag.Diagnostics, i int) {
	params, ret, err := classfile.ParseMethodDescriptor(instr.Member.Descriptor)
	if err != nil {
		diags.Warn(i, "malformed method descriptor %q: %v", instr.Member.Descriptor, err)
		return
	}
	args := make([]expr.Operation, len(params))
	for k := len(params) - 1; k >= 0; k-- {
		args[k] = st.PopAs(params[k], diags, i)
	}

	kind := invokeKindFor(instr.Op)
	if kind == expr.InvokeStatic {
		invoke := &expr.InvokeOperation{Kind: kind, Owner: types.NewClassType(instr.Member.ClassName), Name: instr.Member.Name, Args: args, Type: ret}
		pushOrStatement(b, st, invoke)
		return
	}

	instance := st.Pop()
	if kind == expr.InvokeSpecial && instr.Member.Name == "<init>" {
		if placeholder, ok := instance.(*newInstancePlaceholder); ok {
			placeholder.Resolved = &expr.NewInstanceOperation{Class: placeholder.Class, Args: args}
			return
		}
	}
	invoke := &expr.InvokeOperation{Kind: kind, Instance: instance, Owner: types.NewClassType(instr.Member.ClassName), Name: instr.Member.Name, Args: args, Type: ret}
	pushOrStatement(b, st, invoke)
}

func pushOrStatement(b *scope.Builder, st *OperandStack, invoke *expr.InvokeOperation) {
	if invoke.IsStatement() {
		b.AddStatement(invoke)
		return
	}
	st.Push(invoke)
}

func invokeKindFor(op classfile.Opcode) expr.InvokeKind {
	switch op {
	case classfile.OpInvokeStatic:
		return expr.InvokeStatic
	case classfile.OpInvokeSpecial:
		return expr.InvokeSpecial
	case classfile.OpInvokeInterface:
		return expr.InvokeInterface
	default:
		return expr.InvokeVirtual
	}
}

func isInvokeOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpInvokeVirtual, classfile.OpInvokeSpecial, classfile.OpInvokeStatic, classfile.OpInvokeInterface:
		return true
	default:
		return false
	}
}

func isReturnOpcode(op classfile.Opcode) bool {
	switch op {
	case classfile.OpIReturn, classfile.OpLReturn, classfile.OpFReturn, classfile.OpDReturn, classfile.OpAReturn, classfile.OpReturn:
		return true
	default:
		return false
	}
}

func primitiveFromAtype(atype int32) types.Type {
	switch atype {
	case 4:
		return types.BOOLEAN
	case 5:
		return types.CHAR
	case 6:
		return types.FLOAT
	case 7:
		return types.DOUBLE
	case 8:
		return types.BYTE
	case 9:
		return types.SHORT
	case 10:
		return types.INT
	case 11:
		return types.LONG
	default:
		return types.INT
	}
}
