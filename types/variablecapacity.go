package types

import "sync"

// VariableCapacityIntegralType is the inference placeholder described in
// spec.md §3: an integral stack slot whose concrete width is not yet
// known. Grounded on
// original_source/types/variable-capacity-integral.cpp.
//
// Instances are interned: two values with the same
// (minCapacity, maxCapacity, includeBoolean, includeChar) tuple are the
// same pointer (spec.md §3's interning invariant, §8 property 5).
type VariableCapacityIntegralType struct {
	minCapacity, maxCapacity   uint8
	includeBoolean, includeChar bool
}

// charCapacity is the capacity used to disambiguate char from short when
// includeChar is set, per the original's CHAR_CAPACITY constant.
const charCapacity = 2

func (t *VariableCapacityIntegralType) highPrimitive() *PrimitiveType {
	if t.includeChar && t.maxCapacity == charCapacity {
		return CHAR
	}
	switch t.maxCapacity {
	case 1:
		return BYTE
	case 2:
		return SHORT
	case 4:
		return INT
	default:
		return INT
	}
}

func (t *VariableCapacityIntegralType) Name() string        { return t.highPrimitive().Name() }
func (t *VariableCapacityIntegralType) EncodedName() string {
	flag := byte('0')
	if t.includeBoolean {
		flag++
	}
	if t.includeChar {
		flag += 2
	}
	return "SVariableCapacityIntegralType:" + itoa(t.minCapacity) + ":" + itoa(t.maxCapacity) + ":" + string(flag)
}
func (t *VariableCapacityIntegralType) VarNameStem() string { return t.highPrimitive().VarNameStem() }
func (t *VariableCapacityIntegralType) Size() Size          { return SizeFour }

func (t *VariableCapacityIntegralType) String() string {
	s := "VariableCapacityIntegralType(" + itoa(t.minCapacity) + ", " + itoa(t.maxCapacity)
	if t.includeBoolean {
		s += ", boolean"
	}
	if t.includeChar {
		s += ", char"
	}
	return s + ")"
}

func (t *VariableCapacityIntegralType) Equal(other Type) bool {
	o, ok := other.(*VariableCapacityIntegralType)
	return ok && o == t
}

func (t *VariableCapacityIntegralType) acceptsConcrete(p *PrimitiveType) bool {
	if p == BOOLEAN {
		return t.includeBoolean
	}
	if p == t.highPrimitive() {
		return true
	}
	if p == CHAR {
		return t.includeChar || t.maxCapacity > charCapacity
	}
	if p.IsIntegral() {
		return p.Capacity() >= t.minCapacity
	}
	return false
}

func (t *VariableCapacityIntegralType) IsSubtypeOf(other Type) bool {
	if _, ok := other.(*AnyType); ok {
		return true
	}
	if t.Equal(other) {
		return true
	}
	if p, ok := other.(*PrimitiveType); ok {
		return t.acceptsConcrete(p)
	}
	if o, ok := other.(*VariableCapacityIntegralType); ok {
		return o.maxCapacity >= t.minCapacity
	}
	return false
}

// castImpl0 implements the original's templated castImpl0<widest>: narrow
// (widest=false) or widen (widest=true) t toward other.
func (t *VariableCapacityIntegralType) castImpl0(other Type, widest bool) Type {
	if p, ok := other.(*PrimitiveType); ok {
		if p == BOOLEAN {
			if t.includeBoolean {
				return p
			}
			return nil
		}
		if p == t.highPrimitive() {
			if widest {
				return t
			}
			return p
		}
		if p == CHAR {
			if t.includeChar {
				return p
			}
			return nil
		}
		if p.IsIntegral() {
			cap := p.Capacity()
			if cap == t.minCapacity || cap == t.maxCapacity {
				if widest {
					return t
				}
				return p
			}
			if cap > t.minCapacity {
				max := cap
				if t.maxCapacity < max {
					max = t.maxCapacity
				}
				return getInterned(t.minCapacity, max, false, t.includeChar && cap > charCapacity)
			}
		}
	}
	if o, ok := other.(*VariableCapacityIntegralType); ok {
		max := o.maxCapacity
		if t.maxCapacity < max {
			max = t.maxCapacity
		}
		return getInterned(t.minCapacity, max, t.includeBoolean && o.includeBoolean, t.includeChar && o.includeChar)
	}
	return nil
}

func (t *VariableCapacityIntegralType) Cast(other Type) Type         { return t.castImpl0(other, false) }
func (t *VariableCapacityIntegralType) CastToWidest(other Type) Type { return t.castImpl0(other, true) }

func (t *VariableCapacityIntegralType) reversedCastImpl0(other Type, widest bool) Type {
	if p, ok := other.(*PrimitiveType); ok {
		if p == BOOLEAN {
			if t.includeBoolean {
				return p
			}
			return nil
		}
		if p == t.highPrimitive() {
			if widest {
				return t
			}
			return p
		}
		if p == CHAR {
			if t.includeChar || t.maxCapacity > charCapacity {
				if widest {
					return getInterned(charCapacity*2, t.maxCapacity, false, t.includeChar)
				}
				return p
			}
			return nil
		}
		if p.IsIntegral() {
			cap := p.Capacity()
			if widest {
				if cap <= t.minCapacity {
					return t
				}
				if cap <= t.maxCapacity {
					min := cap
					if t.minCapacity > min {
						min = t.minCapacity
					}
					return getInterned(min, cap, false, t.includeChar)
				}
			} else {
				if cap >= t.maxCapacity {
					return t
				}
				if cap >= t.minCapacity {
					max := t.maxCapacity
					if cap < max {
						max = cap
					}
					return getInterned(cap, max, false, t.includeChar)
				}
			}
		}
	}
	if o, ok := other.(*VariableCapacityIntegralType); ok {
		return o.castImpl0(t, false)
	}
	return nil
}

func (t *VariableCapacityIntegralType) ReversedCast(other Type) Type {
	return t.reversedCastImpl0(other, false)
}

func (t *VariableCapacityIntegralType) reversedCastToWidestImpl(other Type) Type {
	return t.reversedCastImpl0(other, true)
}

// reversedCastConcrete/castToWidestConcrete support the PrimitiveType side
// of a cast against a VariableCapacityIntegralType destination.
func (t *VariableCapacityIntegralType) reversedCastConcrete(p *PrimitiveType) Type {
	return t.reversedCastImpl0(p, false)
}

func (t *VariableCapacityIntegralType) castToWidestConcrete(p *PrimitiveType) Type {
	return t.reversedCastToWidestImpl(p)
}

func (t *VariableCapacityIntegralType) ImplicitCastStatus(other Type) CastStatus {
	if t.Equal(other) {
		return CastSame
	}
	if t.IsSubtypeOf(other) {
		return CastExtend
	}
	if r := t.Cast(other); r != nil {
		return CastNarrow
	}
	return CastIncompatible
}

// ReducedType returns the type this interval should crystallize to if no
// further sink narrows it: boolean wins over the integral high type
// (original_source's getReducedType).
func (t *VariableCapacityIntegralType) ReducedType() Type {
	if t.includeBoolean {
		return BOOLEAN
	}
	return t.highPrimitive()
}

type vcKey struct {
	min, max               uint8
	includeBool, includeCh bool
}

var (
	internMu    sync.Mutex
	internTable = map[vcKey]*VariableCapacityIntegralType{}
)

// getInterned returns the canonical instance for a tuple, creating and
// registering it under a mutex if this is the first request for that
// tuple — spec.md §5's "mutex around the insertion path" option. The
// canonical intervals declared below are built through it too, during
// package initialization.
func getInterned(min, max uint8, includeBoolean, includeChar bool) *VariableCapacityIntegralType {
	if min > max {
		return nil
	}
	key := vcKey{min, max, includeBoolean, includeChar}

	internMu.Lock()
	defer internMu.Unlock()

	if existing, ok := internTable[key]; ok {
		return existing
	}
	instance := &VariableCapacityIntegralType{
		minCapacity:    min,
		maxCapacity:    max,
		includeBoolean: includeBoolean,
		includeChar:    includeChar,
	}
	internTable[key] = instance
	return instance
}

// GetInterned is the exported form of getInterned, for callers outside
// this package constructing an interval directly (e.g. the decompile
// package typing a fresh iconst_* push).
func GetInterned(min, max uint8, includeBoolean, includeChar bool) *VariableCapacityIntegralType {
	return getInterned(min, max, includeBoolean, includeChar)
}

// The canonical, always-interned intervals (original_source's ANY_INT_OR_BOOLEAN
// et al.), pre-populated during package initialization. Code that names
// them directly takes no lock; every getInterned call, including one that
// returns a canonical interval, still takes the mutex.
var (
	ANY_INT_OR_BOOLEAN = getInterned(1, 4, true, true)
	ANY_INT            = getInterned(1, 4, false, true)
	ANY_SIGNED_INT     = getInterned(1, 4, false, false)
	CHAR_OR_SHORT_OR_INT = getInterned(2, 4, false, true)
	CHAR_OR_INT        = getInterned(4, 4, false, true)
	SHORT_OR_INT       = getInterned(2, 4, false, false)
	BYTE_OR_BOOLEAN    = getInterned(1, 1, true, false)
	INT_OR_BOOLEAN     = getInterned(4, 4, true, false)
)

func itoa(b uint8) string {
	if b == 0 {
		return "0"
	}
	digits := [3]byte{}
	n := 0
	for b > 0 {
		digits[n] = byte('0' + b%10)
		b /= 10
		n++
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = digits[n-1-i]
	}
	return string(out)
}
