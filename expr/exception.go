package expr

import "github.com/jdecompiler/jdgo/types"

// CaughtExceptionOperation stands for the exception object the JVM pushes
// implicitly onto the operand stack at a catch handler's entry point —
// there's no corresponding instruction that produces it, so the
// conditional-branch/try-catch wiring in the decompile package pushes one
// of these the moment it opens a KindCatch scope, letting that handler's
// leading `astore` (or `pop`, if the exception goes unused) consume it
// like any other stack value.
type CaughtExceptionOperation struct {
	Type types.Type
}

func (c *CaughtExceptionOperation) ReturnType() types.Type { return c.Type }
func (c *CaughtExceptionOperation) Priority() Priority      { return PriorityLiteral }
func (c *CaughtExceptionOperation) IsStatement() bool       { return false }
