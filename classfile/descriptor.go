package classfile

import (
	"strings"

	"github.com/jdecompiler/jdgo/internal/diag"
	"github.com/jdecompiler/jdgo/types"
)

// ParseFieldDescriptor decodes a single JVM field descriptor
// ("I", "Ljava/lang/String;", "[[I", ...) into a types.Type. This is
// plain descriptor decoding, not generic signature parsing (the
// `<T:Ljava/lang/Object;>` attribute syntax) — that stays out of scope
// per spec.md §1; a descriptor is a small fixed grammar the
// decompiler must read regardless, since every field and local slot's
// static type comes from one.
func ParseFieldDescriptor(desc string) (types.Type, error) {
	t, rest, err := parseOne(desc)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &diag.InvalidInputError{Method: "ParseFieldDescriptor", Reason: "trailing data after descriptor: " + desc}
	}
	return t, nil
}

// ParseMethodDescriptor decodes a method descriptor
// ("(ILjava/lang/String;)V") into its parameter types and return type.
func ParseMethodDescriptor(desc string) (params []types.Type, ret types.Type, err error) {
	if !strings.HasPrefix(desc, "(") {
		return nil, nil, &diag.InvalidInputError{Method: "ParseMethodDescriptor", Reason: "missing '(' in " + desc}
	}
	rest := desc[1:]
	for !strings.HasPrefix(rest, ")") {
		if rest == "" {
			return nil, nil, &diag.InvalidInputError{Method: "ParseMethodDescriptor", Reason: "unterminated parameter list in " + desc}
		}
		var t types.Type
		t, rest, err = parseOne(rest)
		if err != nil {
			return nil, nil, err
		}
		params = append(params, t)
	}
	rest = rest[1:] // consume ')'
	if rest == "V" {
		return params, types.VOID, nil
	}
	ret, rest, err = parseOne(rest)
	if err != nil {
		return nil, nil, err
	}
	if rest != "" {
		return nil, nil, &diag.InvalidInputError{Method: "ParseMethodDescriptor", Reason: "trailing data after return type: " + desc}
	}
	return params, ret, nil
}

// parseOne decodes a single type off the front of s, returning the
// remainder.
func parseOne(s string) (types.Type, string, error) {
	if s == "" {
		return nil, "", &diag.InvalidInputError{Method: "parseOne", Reason: "empty descriptor"}
	}
	switch s[0] {
	case 'V':
		return types.VOID, s[1:], nil
	case 'Z':
		return types.BOOLEAN, s[1:], nil
	case 'B':
		return types.BYTE, s[1:], nil
	case 'C':
		return types.CHAR, s[1:], nil
	case 'S':
		return types.SHORT, s[1:], nil
	case 'I':
		return types.INT, s[1:], nil
	case 'J':
		return types.LONG, s[1:], nil
	case 'F':
		return types.FLOAT, s[1:], nil
	case 'D':
		return types.DOUBLE, s[1:], nil
	case 'L':
		end := strings.IndexByte(s, ';')
		if end < 0 {
			return nil, "", &diag.InvalidInputError{Method: "parseOne", Reason: "unterminated class descriptor: " + s}
		}
		return types.NewClassType(s[1:end]), s[end+1:], nil
	case '[':
		level := 0
		for level < len(s) && s[level] == '[' {
			level++
		}
		member, rest, err := parseOne(s[level:])
		if err != nil {
			return nil, "", err
		}
		return types.NewArrayType(member, uint16(level)), rest, nil
	default:
		return nil, "", &diag.InvalidInputError{Method: "parseOne", Reason: "unrecognized descriptor character in: " + s}
	}
}
