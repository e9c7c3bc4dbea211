package print

import (
	"strings"

	"github.com/jdecompiler/jdgo/expr"
	"github.com/jdecompiler/jdgo/scope"
)

// Scope renders sc's body as a sequence of `;`-terminated statement lines
// and brace-delimited nested blocks. This is deliberately not a
// full pretty-printer — no indentation tracking, no line-wrapping, no
// comment placement — since source formatting is an external collaborator
// per spec.md §1; it exists only so the stringification pass (spec.md
// §2's third stage) has something to walk to, and is grounded on
// cmd/wasm-dump/main.go's own unadorned fmt.Sprintf-based dump output.
func (c *Config) Scope(sc *scope.Scope) string {
	var b strings.Builder
	c.writeBody(&b, sc)
	return b.String()
}

func (c *Config) writeBody(b *strings.Builder, sc *scope.Scope) {
	for _, n := range sc.Body {
		switch v := n.(type) {
		case expr.Operation:
			b.WriteString(c.Operation(v))
			b.WriteString(";\n")
		case *scope.Scope:
			c.writeNested(b, v)
		}
	}
}

func (c *Config) writeNested(b *strings.Builder, sc *scope.Scope) {
	switch sc.Kind {
	case scope.KindIf:
		b.WriteString("if (")
		b.WriteString(c.Operation(sc.Condition))
		b.WriteString(") {\n")
		c.writeBody(b, sc)
		b.WriteString("}\n")

	case scope.KindElse:
		b.WriteString("else {\n")
		c.writeBody(b, sc)
		b.WriteString("}\n")

	case scope.KindWhile:
		b.WriteString("while (")
		b.WriteString(c.Operation(sc.Condition))
		b.WriteString(") {\n")
		c.writeBody(b, sc)
		b.WriteString("}\n")

	case scope.KindInfiniteLoop:
		label := labelPrefix(sc)
		b.WriteString(label + "while (true) {\n")
		c.writeBody(b, sc)
		b.WriteString("}\n")

	case scope.KindSwitch:
		b.WriteString("switch (")
		if sc.Selector != nil {
			b.WriteString(c.Operation(sc.Selector))
		}
		b.WriteString(") {\n")
		for _, n := range sc.Body {
			caseScope, ok := n.(*scope.Scope)
			if !ok || caseScope.Kind != scope.KindCase {
				// Any statement directly in a switch's body with no
				// enclosing case (shouldn't normally arise once every
				// case opens its own sub-scope) still renders, labelless.
				if op, ok := n.(expr.Operation); ok {
					b.WriteString(c.Operation(op))
					b.WriteString(";\n")
				}
				continue
			}
			b.WriteString(c.switchLabel(caseLabelFor(sc, caseScope)))
			b.WriteString(":\n")
			c.writeNested(b, caseScope)
		}
		b.WriteString("}\n")

	case scope.KindCase:
		c.writeBody(b, sc)

	case scope.KindTry:
		b.WriteString("try {\n")
		c.writeBody(b, sc)
		b.WriteString("}\n")

	case scope.KindCatch:
		b.WriteString("catch (" + strings.Join(sc.CaughtTypes, " | "))
		if sc.CatchVar != nil {
			b.WriteString(" " + sc.CatchVar.Name)
		}
		b.WriteString(") {\n")
		c.writeBody(b, sc)
		b.WriteString("}\n")

	case scope.KindSynchronized:
		b.WriteString("synchronized {\n")
		c.writeBody(b, sc)
		b.WriteString("}\n")

	default:
		c.writeBody(b, sc)
	}
}

func labelPrefix(sc *scope.Scope) string {
	if sc.Label == "" {
		return ""
	}
	return sc.Label + ": "
}

// caseLabelFor finds the SwitchCase matching caseScope's own body start,
// so its label is written immediately above its own nested body.
func caseLabelFor(sw *scope.Scope, caseScope *scope.Scope) scope.SwitchCase {
	for _, c := range sw.SwitchCases {
		if c.BodyIndex == caseScope.StartIndex {
			return c
		}
	}
	return scope.SwitchCase{}
}

func (c *Config) switchLabel(sw scope.SwitchCase) string {
	if sw.IsDefault {
		return "default"
	}
	parts := make([]string, len(sw.Values))
	for i, v := range sw.Values {
		parts[i] = "case " + c.IntLiteral(v)
	}
	return strings.Join(parts, ", ")
}
