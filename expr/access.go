package expr

import "github.com/jdecompiler/jdgo/types"

// FieldAccessOperation is a field read (getfield/getstatic) or, wrapped
// by FieldAssignOperation, the left side of a field write. Grounded on
// operations/field-operations.cpp.
type FieldAccessOperation struct {
	// Instance is nil for a static field.
	Instance Operation
	Owner    *types.ClassType
	Name     string
	Type     types.Type
}

func (f *FieldAccessOperation) ReturnType() types.Type { return f.Type }
func (f *FieldAccessOperation) Priority() Priority      { return PriorityPostfix }
func (f *FieldAccessOperation) IsStatement() bool       { return false }

// FieldAssignOperation is a field write (putfield/putstatic), always a
// statement.
type FieldAssignOperation struct {
	Field *FieldAccessOperation
	Value Operation
}

func (f *FieldAssignOperation) ReturnType() types.Type { return types.VOID }
func (f *FieldAssignOperation) Priority() Priority      { return PriorityAssignment }
func (f *FieldAssignOperation) IsStatement() bool       { return true }

// ArrayAccessOperation is an array element read (*aload family).
type ArrayAccessOperation struct {
	Array Operation
	Index Operation
	Type  types.Type
}

func (a *ArrayAccessOperation) ReturnType() types.Type { return a.Type }
func (a *ArrayAccessOperation) Priority() Priority      { return PriorityPostfix }
func (a *ArrayAccessOperation) IsStatement() bool       { return false }

// ArrayAssignOperation is an array element write (*astore family), always
// a statement.
type ArrayAssignOperation struct {
	Access *ArrayAccessOperation
	Value  Operation
}

func (a *ArrayAssignOperation) ReturnType() types.Type { return types.VOID }
func (a *ArrayAssignOperation) Priority() Priority      { return PriorityAssignment }
func (a *ArrayAssignOperation) IsStatement() bool       { return true }

// ArrayLengthOperation is `arraylength`.
type ArrayLengthOperation struct {
	Array Operation
}

func (a *ArrayLengthOperation) ReturnType() types.Type { return types.INT }
func (a *ArrayLengthOperation) Priority() Priority      { return PriorityPostfix }
func (a *ArrayLengthOperation) IsStatement() bool       { return false }

// NewArrayOperation is newarray/anewarray/multianewarray.
type NewArrayOperation struct {
	ElementType types.Type
	// Lengths holds one dimension's length expression per declared
	// dimension, outermost first; multianewarray supplies more than one.
	Lengths []Operation
	Type    *types.ArrayType
}

func (n *NewArrayOperation) ReturnType() types.Type { return n.Type }
func (n *NewArrayOperation) Priority() Priority      { return PriorityUnary }
func (n *NewArrayOperation) IsStatement() bool       { return false }
