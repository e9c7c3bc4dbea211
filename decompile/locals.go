package decompile

import (
	"fmt"

	"github.com/jdecompiler/jdgo/classfile"
	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/types"
)

// Locals is the decompiler's view of a method's local-variable slots
// (spec.md §3's "locals table"): long and double values occupy two
// adjacent slots (the JVM's own convention), so the table is indexed by
// slot with the upper half of a wide value marked reserved rather than
// holding a second Variable.
type Locals struct {
	// slots[i] is nil for an unused slot, the reserved sentinel for the
	// upper half of a wide value at slot i-1, or the live *expr.Variable.
	slots []*expr.Variable
	// hints is the optional debug-table name/descriptor data, keyed by
	// slot, consulted when a slot's first declaration needs a name.
	hints []classfile.LocalVariableEntry
}

// reserved is a sentinel marking the upper half of a wide (long/double)
// slot pair so Get never mistakes it for an unused or independently
// named local.
var reserved = &expr.Variable{Name: "<reserved>"}

// NewLocals builds an empty locals table sized for maxLocals slots, with
// any debug-table hints attached for later lookup.
func NewLocals(maxLocals uint16, hints []classfile.LocalVariableEntry) *Locals {
	return &Locals{slots: make([]*expr.Variable, maxLocals), hints: hints}
}

// Get returns the variable currently occupying slot, or nil if the slot
// has never been declared at this point in the instruction stream.
func (l *Locals) Get(slot uint16) *expr.Variable {
	if int(slot) >= len(l.slots) {
		return nil
	}
	v := l.slots[slot]
	if v == reserved {
		return nil
	}
	return v
}

// Declare installs a new variable at slot with the given type, reserving
// the following slot too when t occupies two (long/double, spec.md §3).
// pos is the instruction index this declaration is first visible at; it
// picks the debug-table name and is stored as the Variable's DeclaredAt,
// which nothing in this module reads to place declarations.
func (l *Locals) Declare(slot uint16, t types.Type, pos int) *expr.Variable {
	name := l.hintName(slot, pos)
	if name == "" {
		name = defaultVarName(t, slot)
	}
	v := &expr.Variable{Slot: slot, Name: name, Type: t, DeclaredAt: pos}
	l.slots[slot] = v
	if t.Size() == types.SizeEight && int(slot)+1 < len(l.slots) {
		l.slots[slot+1] = reserved
	}
	return v
}

// hintName looks up the debug-table name for slot that's live at pos, if
// the class file carried one (spec.md §6: optional, may be empty).
func (l *Locals) hintName(slot uint16, pos int) string {
	for _, h := range l.hints {
		if h.Slot == slot && uint32(pos) >= h.StartPos && uint32(pos) < h.EndPos {
			return h.Name
		}
	}
	return ""
}

// defaultVarName synthesizes a variable name from its type's stem plus a
// disambiguating slot number, matching the teacher's fallback-naming
// convention of deriving an identifier from a type name when no better
// name is available (spec.md §4.2's synthesized-name fallback).
func defaultVarName(t types.Type, slot uint16) string {
	return fmt.Sprintf("%s%d", t.VarNameStem(), slot)
}

// Rename changes slot's display name in place, so every Operation already
// holding a pointer to this *expr.Variable picks up the new name without
// the tree needing a rewrite pass (mirrors the shared-identity behavior
// documented on expr.Variable).
func (l *Locals) Rename(slot uint16, name string) {
	if v := l.Get(slot); v != nil {
		v.Name = name
	}
}
