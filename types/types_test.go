package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubtypeLattice is the table-driven sweep over IsSubtypeOf across
// every Type family this package defines — primitive widening, the two
// tops (AnyType/AnyObjectType), and array covariance all fall out of the
// same relation, so one table covers them instead of one test per family.
func TestSubtypeLattice(t *testing.T) {
	cases := []struct {
		name       string
		sub, super Type
		want       bool
	}{
		{"byte widens to short", BYTE, SHORT, true},
		{"byte widens to int", BYTE, INT, true},
		{"short widens to int", SHORT, INT, true},
		{"char widens to int", CHAR, INT, true},
		{"int does not narrow to byte", INT, BYTE, false},
		{"short does not narrow to byte", SHORT, BYTE, false},
		{"int is a subtype of itself", INT, INT, true},
		{"byte is a subtype of AnyType", BYTE, ANY, true},
		{"String is a subtype of AnyType", STRING, ANY, true},
		{"int[] is a subtype of AnyType", NewArrayType(INT, 1), ANY, true},
		{"AnyObjectType is a subtype of AnyType", ANY_OBJECT, ANY, true},
		{"AnyType is a subtype of itself", ANY, ANY, true},
		{"String[] is a subtype of Object[] (covariance)", NewArrayType(STRING, 1), NewArrayType(OBJECT, 1), true},
		{"any array is a subtype of Object", NewArrayType(STRING, 1), OBJECT, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.sub.IsSubtypeOf(c.super), "%v.IsSubtypeOf(%v)", c.sub, c.super)
		})
	}
}

func TestVariableCapacityIntegralInterning(t *testing.T) {
	a := GetInterned(1, 4, true, true)
	b := GetInterned(1, 4, true, true)
	require.Same(t, a, b, "expected interned instances to be pointer-equal")
	c := GetInterned(1, 2, false, false)
	assert.NotSame(t, a, c, "distinct tuples must not alias")
}

func TestVariableCapacityNarrowing(t *testing.T) {
	cases := []struct {
		name   string
		target Type
		want   Type // nil means Cast should fail
	}{
		{"narrowing toward long fails (long isn't in the interval)", LONG, nil},
		{"narrowing toward boolean crystallizes", BOOLEAN, BOOLEAN},
		{"narrowing toward byte crystallizes", BYTE, BYTE},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ANY_INT_OR_BOOLEAN.Cast(c.target)
			if c.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(c.want))
		})
	}
}

func TestClassTypeBinaryNameParsing(t *testing.T) {
	outer := NewClassType("com/example/Outer$Inner")
	assert.Equal(t, "Inner", outer.SimpleName())
	assert.True(t, outer.IsNested())
	require.NotNil(t, outer.Enclosing())
	assert.Equal(t, "com.example.Outer", outer.Enclosing().Name())
}

func TestArrayTypeFlattensNestedMemberType(t *testing.T) {
	inner := NewArrayType(INT, 2)
	outer := NewArrayType(inner, 1)
	require.Equal(t, uint16(3), outer.NestingLevel())
	assert.True(t, outer.MemberType().Equal(INT))
}

func TestImplicitCastStatus(t *testing.T) {
	cases := []struct {
		name       string
		from, to   Type
		want       CastStatus
	}{
		{"byte -> int extends", BYTE, INT, CastExtend},
		{"int -> byte narrows", INT, BYTE, CastNarrow},
		{"int -> int is unchanged", INT, INT, CastSame},
		{"String -> int is incompatible", STRING, INT, CastIncompatible},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.from.ImplicitCastStatus(c.to))
		})
	}
}
