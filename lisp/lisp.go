package lisp

import (
	"math/big"

	"github.com/ninjudd/clojure/host"
	"github.com/ninjudd/clojure/symbol"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LNil
	LSymbol
	LVar
	LInt
	LRatio
	LFloat
	LString
	LChar
	LSExpr
	LAccessor
	LClassName
	LInstanceMember
	LStaticMember
)

var ltypeStrings = []string{
	LInvalid:        "INVALID",
	LNil:            "nil",
	LSymbol:         "symbol",
	LVar:            "var",
	LInt:            "int",
	LRatio:          "ratio",
	LFloat:          "float",
	LString:         "string",
	LChar:           "char",
	LSExpr:          "sexpr",
	LAccessor:       "accessor",
	LClassName:      "class-name",
	LInstanceMember: "instance-member",
	LStaticMember:   "static-member",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LVal is a lisp value produced by the reader.  The set of populated fields
// depends on Type.
type LVal struct {
	Type LType

	// Str holds the name of a symbol, the contents of a string, or the
	// member name of an accessor or member reference.
	Str string

	// NS holds the namespace name of an LVar.
	NS string

	// Sym is the interned handle of an LSymbol or LVar.
	Sym symbol.ID

	// Int and Rat hold arbitrary precision numeric values.
	Int *big.Int
	Rat *big.Rat

	Float float64
	Char  rune

	// Class is the resolved type handle of a host reference.
	Class *host.Class

	// Cells holds the elements of an LSExpr.
	Cells []*LVal
}

// Nil returns an LVal representing nil, the absence of a value.
func Nil() *LVal {
	return &LVal{Type: LNil}
}

// Symbol returns an LVal representing the symbol s.  The caller is
// responsible for interning s and assigning the resulting handle.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// Var returns an LVal referencing the var name within namespace ns.
func Var(ns, name string) *LVal {
	return &LVal{
		Type: LVar,
		NS:   ns,
		Str:  name,
	}
}

// Int returns an LVal representing the integer x.
func Int(x *big.Int) *LVal {
	return &LVal{
		Type: LInt,
		Int:  x,
	}
}

// IntText returns an LVal representing the decimal integer literal s, or nil
// if s is not a valid literal.
func IntText(s string) *LVal {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil
	}
	return Int(x)
}

// Ratio returns an LVal representing the exact quotient num/den.  The result
// is normalized, an LInt when den divides num evenly and an LRatio otherwise.
// Ratio panics if den is zero.
func Ratio(num, den *big.Int) *LVal {
	rat := new(big.Rat).SetFrac(num, den)
	if rat.IsInt() {
		return Int(rat.Num())
	}
	return &LVal{
		Type: LRatio,
		Rat:  rat,
	}
}

// Float returns an LVal representing the number x.
func Float(x float64) *LVal {
	return &LVal{
		Type:  LFloat,
		Float: x,
	}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// Char returns an LVal representing the character c.
func Char(c rune) *LVal {
	return &LVal{
		Type: LChar,
		Char: c,
	}
}

// SExpr returns an LVal representing an s-expression, a list of values.  An
// empty list is a valid value distinct from Nil.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Accessor returns an LVal referencing the instance member accessor
// .member.
func Accessor(member string) *LVal {
	return &LVal{
		Type: LAccessor,
		Str:  member,
	}
}

// ClassName returns an LVal referencing the host type c.
func ClassName(c *host.Class) *LVal {
	return &LVal{
		Type:  LClassName,
		Class: c,
	}
}

// InstanceMember returns an LVal referencing the instance member of the host
// type c.
func InstanceMember(c *host.Class, member string) *LVal {
	return &LVal{
		Type:  LInstanceMember,
		Class: c,
		Str:   member,
	}
}

// StaticMember returns an LVal referencing the static member of the host
// type c.
func StaticMember(c *host.Class, member string) *LVal {
	return &LVal{
		Type:  LStaticMember,
		Class: c,
		Str:   member,
	}
}
