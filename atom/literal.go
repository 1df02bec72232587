package atom

import (
	"fmt"
	"math/big"
	"strings"
)

// Float represents a floating point literal as the sign/significand/
// exponent/radix quadruple from spec §3.1, rather than a machine float64,
// so that arbitrary radixes and exact round-tripping through the parser
// are possible.
type Float struct {
	Negative    bool
	Significand *big.Int
	Exponent    int
	Radix       int
}

func (f Float) hashParts() []uint64 {
	return []uint64{boolHash(f.Negative), hashBigInt(f.Significand), uint64(f.Exponent), uint64(f.Radix)}
}

func (f Float) String() string {
	sign := ""
	if f.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%sE%d_%d", sign, f.Significand.String(), f.Exponent, f.Radix)
}

func (f Float) equal(o Float) bool {
	return f.Negative == o.Negative && f.Exponent == o.Exponent && f.Radix == o.Radix &&
		bigIntEqual(f.Significand, o.Significand)
}

// BitString is a fixed-length bit vector: Bits is the length in bits and
// Value holds the bits as an unsigned magnitude.
type BitString struct {
	Bits  int
	Value *big.Int
}

func (b BitString) String() string {
	if b.Value == nil {
		return fmt.Sprintf("0[%d]", b.Bits)
	}
	return fmt.Sprintf("%s[%d]", b.Value.Text(2), b.Bits)
}

func (b BitString) equal(o BitString) bool {
	return b.Bits == o.Bits && bigIntEqual(b.Value, o.Value)
}

func hashBigInt(v *big.Int) uint64 {
	if v == nil {
		return 0
	}
	return fnvString(fnvOffset64, v.String())
}

func bigIntEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// Literal is the tagged union of the six literal payload kinds (spec
// §3.1): Integer, String, Boolean, Float, Symbol, BitString.
type Literal struct {
	base
	lkind LiteralKind
	i     *big.Int
	s     string
	b     bool
	f     Float
	bs    BitString
}

func (l *Literal) Kind() Kind             { return KindLiteral }
func (l *Literal) LiteralKind() LiteralKind { return l.lkind }

func (l *Literal) Type() Atom {
	switch l.lkind {
	case LitInteger:
		return RootTypeAtom(RootINTEGER)
	case LitString:
		return RootTypeAtom(RootSTRING)
	case LitBoolean:
		return RootTypeAtom(RootBOOLEAN)
	case LitFloat:
		return RootTypeAtom(RootFLOAT)
	case LitSymbol:
		return RootTypeAtom(RootSYMBOL)
	case LitBitString:
		return RootTypeAtom(RootBITSTRING)
	default:
		return RootTypeAtom(RootANY)
	}
}

// Int returns the integer payload; only meaningful when LiteralKind() ==
// LitInteger.
func (l *Literal) Int() *big.Int { return l.i }

// Str returns the string or symbol payload.
func (l *Literal) Str() string { return l.s }

// Bool returns the boolean payload.
func (l *Literal) Bool() bool { return l.b }

// FloatVal returns the float payload.
func (l *Literal) FloatVal() Float { return l.f }

// BitStringVal returns the bit-string payload.
func (l *Literal) BitStringVal() BitString { return l.bs }

func (l *Literal) Equal(other Atom) bool {
	o, ok := other.(*Literal)
	if !ok || o.lkind != l.lkind {
		return false
	}
	switch l.lkind {
	case LitInteger:
		return bigIntEqual(l.i, o.i)
	case LitString, LitSymbol:
		return l.s == o.s
	case LitBoolean:
		return l.b == o.b
	case LitFloat:
		return l.f.equal(o.f)
	case LitBitString:
		return l.bs.equal(o.bs)
	}
	return false
}

func (l *Literal) String() string {
	switch l.lkind {
	case LitInteger:
		return l.i.String()
	case LitString:
		return `"` + strings.ReplaceAll(l.s, `"`, `\"`) + `"`
	case LitBoolean:
		if l.b {
			return "true"
		}
		return "false"
	case LitFloat:
		return l.f.String()
	case LitSymbol:
		return l.s
	case LitBitString:
		return l.bs.String()
	default:
		return "<literal>"
	}
}

// NewInteger constructs an arbitrary-precision integer literal.
func NewInteger(v *big.Int) *Literal {
	return &Literal{
		base:  newBase(0, 0, true, true, hash1(KindLiteral, uint64(LitInteger), hashBigInt(v)), hash2(KindLiteral, uint64(LitInteger), hashBigInt(v))),
		lkind: LitInteger,
		i:     v,
	}
}

// NewIntegerInt64 is a convenience wrapper over NewInteger for small
// constants.
func NewIntegerInt64(v int64) *Literal { return NewInteger(big.NewInt(v)) }

// NewString constructs a string literal.
func NewString(s string) *Literal {
	return &Literal{
		base:  newBase(0, 0, true, true, hash1String(KindLiteral, s, uint64(LitString)), hash2String(KindLiteral, s, uint64(LitString))),
		lkind: LitString,
		s:     s,
	}
}

// NewBoolean constructs a boolean literal.
func NewBoolean(b bool) *Literal {
	return &Literal{
		base:  newBase(0, 0, true, true, hash1(KindLiteral, uint64(LitBoolean), boolHash(b)), hash2(KindLiteral, uint64(LitBoolean), boolHash(b))),
		lkind: LitBoolean,
		b:     b,
	}
}

// True and False are the canonical boolean literals.
var (
	True  = NewBoolean(true)
	False = NewBoolean(false)
)

// NewFloat constructs a sign/significand/exponent/radix float literal.
func NewFloat(negative bool, significand *big.Int, exponent, radix int) *Literal {
	f := Float{Negative: negative, Significand: significand, Exponent: exponent, Radix: radix}
	parts := append([]uint64{uint64(LitFloat)}, f.hashParts()...)
	return &Literal{
		base:  newBase(0, 0, true, true, hash1(KindLiteral, parts...), hash2(KindLiteral, parts...)),
		lkind: LitFloat,
		f:     f,
	}
}

// NewSymbol constructs a symbol literal (an interned bare name, distinct
// from a String literal and from a Variable).
func NewSymbol(name string) *Literal {
	return &Literal{
		base:  newBase(0, 0, true, true, hash1String(KindLiteral, name, uint64(LitSymbol)), hash2String(KindLiteral, name, uint64(LitSymbol))),
		lkind: LitSymbol,
		s:     name,
	}
}

// NewBitString constructs a fixed-length bit-vector literal.
func NewBitString(bits int, value *big.Int) *Literal {
	bs := BitString{Bits: bits, Value: value}
	parts := []uint64{uint64(LitBitString), uint64(bits), hashBigInt(value)}
	return &Literal{
		base:  newBase(0, 0, true, true, hash1(KindLiteral, parts...), hash2(KindLiteral, parts...)),
		lkind: LitBitString,
		bs:    bs,
	}
}
