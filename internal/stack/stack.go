// Package stack implements the small depth-tracking stack the
// disassembly pass uses to keep its running operand count (a single
// entry, read and replaced through Top/SetTop) while registering branch/exception Block markers (spec.md §2 stage 1).
// It does not hold typed expression trees — that is the symbolic operand
// stack built by package decompile during stage 2.
//
// The shape is grounded on the teacher's (unretrieved but call-site
// visible) github.com/go-interpreter/wagon/internal/stack package: a
// `stackDepths`/`blockIndices` pair of these stacks drives
// disasm/disasm.go's block bookkeeping via Push/Top/SetTop/Get/Set/Len.
package stack

// Stack is an append-only slice of uint64 values with stack-style access
// plus indexed Get/Set, matching wagon's internal/stack.Stack API surface
// as used from disasm/disasm.go.
type Stack struct {
	values []uint64
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v uint64) {
	s.values = append(s.values, v)
}

// Pop removes and returns the top value. Pop on an empty stack panics,
// matching the teacher's unchecked Stack (disassembly never pops more
// than it pushed for well-formed bytecode; a panic here is this module's
// internal-invariant signal, not a user-facing error).
func (s *Stack) Pop() uint64 {
	n := len(s.values) - 1
	v := s.values[n]
	s.values = s.values[:n]
	return v
}

// Top returns the top value without removing it.
func (s *Stack) Top() uint64 {
	return s.values[len(s.values)-1]
}

// SetTop replaces the top value.
func (s *Stack) SetTop(v uint64) {
	s.values[len(s.values)-1] = v
}

// Get returns the value at depth i from the top (0 = top).
func (s *Stack) Get(i int) uint64 {
	return s.values[len(s.values)-1-i]
}

// Set replaces the value at depth i from the top (0 = top).
func (s *Stack) Set(i int, v uint64) {
	s.values[len(s.values)-1-i] = v
}

// Len returns the number of values currently on the stack.
func (s *Stack) Len() int {
	return len(s.values)
}
