package types

import "strings"

// ClassType is a reference type naming a class or interface. Grounded on
// original_source/types/class.cpp, trimmed to the fields the decompiler
// core actually consumes (spec.md's scope excludes generic-signature
// parsing beyond what the lattice needs as input strings — generic
// signatures are not parsed anywhere in this module; plain descriptors
// are decoded by the classfile package).
type ClassType struct {
	fullyQualifiedName string // dotted, e.g. "java.lang.String"
	binaryName         string // slash-separated, e.g. "java/lang/String"
	simpleName         string
	packageName        string
	enclosing          *ClassType
	parameters         []Type // generic type arguments, if any

	nested      bool
	anonymous   bool
	packageInfo bool
}

// NewClassType builds a ClassType from a binary (slash-separated) class
// name such as "java/util/List" or "com/foo/Outer$Inner".
func NewClassType(binaryName string) *ClassType {
	name := strings.ReplaceAll(binaryName, "/", ".")

	ct := &ClassType{
		binaryName:         binaryName,
		fullyQualifiedName: name,
		packageInfo:        strings.HasSuffix(binaryName, "/package-info"),
	}

	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		ct.packageName = name[:idx]
	}

	if idx := strings.LastIndexByte(binaryName, '$'); idx >= 0 {
		ct.nested = true
		enclosingBinary := binaryName[:idx]
		ct.simpleName = name[strings.LastIndexByte(name, '$')+1:]
		ct.enclosing = NewClassType(enclosingBinary)
		ct.anonymous = isAllDigits(ct.simpleName)
	} else if idx := strings.LastIndexByte(binaryName, '/'); idx >= 0 {
		ct.simpleName = binaryName[idx+1:]
	} else {
		ct.simpleName = binaryName
	}

	return ct
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// WithParameters returns a copy of ct carrying the given generic type
// arguments, mirroring the original's `parameters` vector on ClassType.
func (ct *ClassType) WithParameters(params ...Type) *ClassType {
	clone := *ct
	clone.parameters = params
	return &clone
}

func (ct *ClassType) Name() string        { return ct.fullyQualifiedName }
func (ct *ClassType) EncodedName() string { return "L" + ct.binaryName + ";" }
func (ct *ClassType) VarNameStem() string { return toLowerCamelCase(ct.simpleName) }
func (ct *ClassType) Size() Size          { return SizeFour }
func (ct *ClassType) SimpleName() string  { return ct.simpleName }
func (ct *ClassType) PackageName() string { return ct.packageName }
func (ct *ClassType) Enclosing() *ClassType { return ct.enclosing }
func (ct *ClassType) IsNested() bool      { return ct.nested }
func (ct *ClassType) IsAnonymous() bool   { return ct.anonymous }
func (ct *ClassType) IsPackageInfo() bool { return ct.packageInfo }

func (ct *ClassType) String() string {
	if len(ct.parameters) == 0 {
		return "class " + ct.fullyQualifiedName
	}
	parts := make([]string, len(ct.parameters))
	for i, p := range ct.parameters {
		parts[i] = p.String()
	}
	return "class " + ct.fullyQualifiedName + "<" + strings.Join(parts, ", ") + ">"
}

func (ct *ClassType) Equal(other Type) bool {
	o, ok := other.(*ClassType)
	return ok && o.binaryName == ct.binaryName
}

func (ct *ClassType) IsSubtypeOf(other Type) bool {
	if ct.Equal(other) {
		return true
	}
	if _, ok := other.(*AnyType); ok {
		return true
	}
	if _, ok := other.(*AnyObjectType); ok {
		return true
	}
	// Without a loaded classpath the core cannot walk the real
	// superclass/interface chain; every class is conservatively treated as
	// assignable only to itself, Object and the special tops, matching
	// the "external collaborator" boundary in spec.md §1 (full class
	// hierarchy resolution is the class-file parser's job, not the core's).
	if other.Equal(OBJECT) {
		return true
	}
	return false
}

func (ct *ClassType) Cast(other Type) Type {
	if ct.IsSubtypeOf(other) {
		return ct
	}
	return nil
}
func (ct *ClassType) CastToWidest(other Type) Type { return ct.Cast(other) }
func (ct *ClassType) ReversedCast(other Type) Type { return ct.Cast(other) }
func (ct *ClassType) ImplicitCastStatus(other Type) CastStatus {
	if ct.Equal(other) {
		return CastSame
	}
	if ct.IsSubtypeOf(other) {
		return CastExtend
	}
	if oc, ok := other.(*ClassType); ok && oc.IsSubtypeOf(ct) {
		return CastNarrow
	}
	return CastIncompatible
}

// Well-known class singletons, grounded on class.cpp's static constants.
var (
	OBJECT       = NewClassType("java/lang/Object")
	STRING       = NewClassType("java/lang/String")
	CLASS_CLASS  = NewClassType("java/lang/Class")
	ENUM         = NewClassType("java/lang/Enum")
	THROWABLE    = NewClassType("java/lang/Throwable")
	EXCEPTION    = NewClassType("java/lang/Exception")
	STRINGBUILDER = NewClassType("java/lang/StringBuilder")
)

// ArrayType is a reference type denoting an array, covariant in its
// element type. Grounded on original_source/types/array.cpp.
type ArrayType struct {
	memberType   Type // the innermost non-array element type
	nestingLevel uint16
}

// NewArrayType builds an array of nestingLevel dimensions over memberType,
// flattening a memberType that is itself an ArrayType (original's
// constructor collapses `memberType->nestingLevel` into the new one).
func NewArrayType(memberType Type, nestingLevel uint16) *ArrayType {
	if nestingLevel == 0 {
		nestingLevel = 1
	}
	if inner, ok := memberType.(*ArrayType); ok {
		nestingLevel += inner.nestingLevel
		memberType = inner.memberType
	}
	return &ArrayType{memberType: memberType, nestingLevel: nestingLevel}
}

func (at *ArrayType) braces() string { return strings.Repeat("[]", int(at.nestingLevel)) }

// ElementType returns the type one nesting level down: for a 1-D array
// this is the member type itself, for higher dimensions a narrower
// ArrayType (original's elementType field).
func (at *ArrayType) ElementType() Type {
	if at.nestingLevel == 1 {
		return at.memberType
	}
	return NewArrayType(at.memberType, at.nestingLevel-1)
}

func (at *ArrayType) MemberType() Type    { return at.memberType }
func (at *ArrayType) NestingLevel() uint16 { return at.nestingLevel }

func (at *ArrayType) Name() string {
	return at.memberType.Name() + at.braces()
}
func (at *ArrayType) EncodedName() string {
	return strings.Repeat("[", int(at.nestingLevel)) + at.memberType.EncodedName()
}
func (at *ArrayType) VarNameStem() string {
	if p, ok := at.memberType.(*PrimitiveType); ok {
		return p.Name() + "Array"
	}
	return at.memberType.VarNameStem() + "Array"
}
func (at *ArrayType) Size() Size     { return SizeFour }
func (at *ArrayType) String() string { return "class " + at.memberType.String() + at.braces() }

func (at *ArrayType) Equal(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && o.nestingLevel == at.nestingLevel && o.memberType.Equal(at.memberType)
}

func (at *ArrayType) IsSubtypeOf(other Type) bool {
	if other.Equal(OBJECT) {
		return true
	}
	if _, ok := other.(*AnyType); ok {
		return true
	}
	o, ok := other.(*ArrayType)
	if !ok {
		return false
	}
	if o.nestingLevel == at.nestingLevel {
		return at.memberType.IsSubtypeOf(o.memberType)
	}
	return at.ElementType().IsSubtypeOf(o.ElementType())
}

func (at *ArrayType) Cast(other Type) Type {
	if at.IsSubtypeOf(other) {
		return at
	}
	return nil
}
func (at *ArrayType) CastToWidest(other Type) Type { return at.Cast(other) }
func (at *ArrayType) ReversedCast(other Type) Type { return at.Cast(other) }
func (at *ArrayType) ImplicitCastStatus(other Type) CastStatus {
	if at.Equal(other) {
		return CastSame
	}
	if at.IsSubtypeOf(other) {
		return CastExtend
	}
	return CastIncompatible
}

// TypeVariable is a generic type-parameter reference, e.g. `T` in
// `List<T>`. Grounded on original_source/types/parameter.cpp.
type TypeVariable struct {
	name string
}

func NewTypeVariable(name string) *TypeVariable { return &TypeVariable{name: name} }

func (p *TypeVariable) Name() string        { return p.name }
func (p *TypeVariable) EncodedName() string { return p.name }
func (p *TypeVariable) VarNameStem() string { return toLowerCamelCase(p.name) }
func (p *TypeVariable) Size() Size          { return SizeFour }
func (p *TypeVariable) String() string      { return "<" + p.name + ">" }
func (p *TypeVariable) Equal(other Type) bool {
	o, ok := other.(*TypeVariable)
	return ok && o.name == p.name
}
func (p *TypeVariable) IsSubtypeOf(other Type) bool { return p.Equal(other) }
func (p *TypeVariable) Cast(other Type) Type {
	if p.IsSubtypeOf(other) {
		return p
	}
	return nil
}
func (p *TypeVariable) CastToWidest(other Type) Type { return p.Cast(other) }
func (p *TypeVariable) ReversedCast(other Type) Type { return p.Cast(other) }
func (p *TypeVariable) ImplicitCastStatus(other Type) CastStatus {
	if p.Equal(other) {
		return CastSame
	}
	return CastIncompatible
}

// WildcardKind distinguishes `?`, `? extends T` and `? super T`.
type WildcardKind int

const (
	WildcardAny WildcardKind = iota
	WildcardExtends
	WildcardSuper
)

// WildcardType is a generic wildcard argument. Grounded on
// original_source/types/generics.cpp's AnyGenericType / ExtendingGenericType
// / SuperGenericType trio, collapsed into one struct tagged by kind rather
// than three separate virtual classes, per spec.md §9's closed-variant
// guidance.
type WildcardType struct {
	kind  WildcardKind
	bound Type // nil for WildcardAny
}

func NewWildcard(kind WildcardKind, bound Type) *WildcardType {
	return &WildcardType{kind: kind, bound: bound}
}

func (w *WildcardType) Name() string {
	switch w.kind {
	case WildcardExtends:
		return "? extends " + w.bound.Name()
	case WildcardSuper:
		return "? super " + w.bound.Name()
	default:
		return "?"
	}
}
func (w *WildcardType) EncodedName() string {
	switch w.kind {
	case WildcardExtends:
		return "+" + w.bound.EncodedName()
	case WildcardSuper:
		return "-" + w.bound.EncodedName()
	default:
		return "*"
	}
}
func (w *WildcardType) VarNameStem() string { return "t" }
func (w *WildcardType) Size() Size          { return SizeFour }
func (w *WildcardType) String() string      { return w.Name() }
func (w *WildcardType) Equal(other Type) bool {
	o, ok := other.(*WildcardType)
	if !ok || o.kind != w.kind {
		return false
	}
	if w.bound == nil {
		return o.bound == nil
	}
	return o.bound != nil && o.bound.Equal(w.bound)
}
func (w *WildcardType) IsSubtypeOf(other Type) bool {
	_, ok := other.(*AnyObjectType)
	if ok {
		return true
	}
	_, ok = other.(*AnyType)
	return ok
}
func (w *WildcardType) Cast(other Type) Type {
	if w.IsSubtypeOf(other) {
		return w
	}
	return nil
}
func (w *WildcardType) CastToWidest(other Type) Type { return w.Cast(other) }
func (w *WildcardType) ReversedCast(other Type) Type { return w.Cast(other) }
func (w *WildcardType) ImplicitCastStatus(other Type) CastStatus {
	if w.Equal(other) {
		return CastSame
	}
	return CastIncompatible
}

func toLowerCamelCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = toLower(r[0])
	return string(r)
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
