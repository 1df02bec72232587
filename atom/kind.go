// Package atom implements the immutable term algebra the rewriter operates
// over: literals, variables, lambdas, sequences, applications, and the
// handful of special-purpose atoms (AlgProp, MapPair, OperatorRef,
// RulesetRef, SpecialForm) needed to make rules and properties first-class
// values in the algebra they constrain.
package atom

// Kind discriminates the tagged union of atom variants. Matcher dispatch
// and rule-library indexing both switch on Kind rather than using type
// assertions everywhere a fast discriminator will do.
type Kind int

const (
	KindInvalid Kind = iota
	KindLiteral
	KindVariable
	KindLambda
	KindAtomSeq
	KindApply
	KindMapPair
	KindOperatorRef
	KindRulesetRef
	KindAlgProp
	KindSpecialForm
	KindRootType
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindVariable:
		return "Variable"
	case KindLambda:
		return "Lambda"
	case KindAtomSeq:
		return "AtomSeq"
	case KindApply:
		return "Apply"
	case KindMapPair:
		return "MapPair"
	case KindOperatorRef:
		return "OperatorRef"
	case KindRulesetRef:
		return "RulesetRef"
	case KindAlgProp:
		return "AlgProp"
	case KindSpecialForm:
		return "SpecialForm"
	case KindRootType:
		return "RootType"
	default:
		return "Invalid"
	}
}

// LiteralKind discriminates the Literal variant's payload type.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitString
	LitBoolean
	LitFloat
	LitSymbol
	LitBitString
)

func (k LiteralKind) String() string {
	switch k {
	case LitInteger:
		return "Integer"
	case LitString:
		return "String"
	case LitBoolean:
		return "Boolean"
	case LitFloat:
		return "Float"
	case LitSymbol:
		return "Symbol"
	case LitBitString:
		return "BitString"
	default:
		return "Invalid"
	}
}

// RootTypeName names one of the well-known type atoms from spec §3.1.
// Their type is the type universe (RootTYPE), and the type universe is
// self-typed.
type RootTypeName int

const (
	RootANY RootTypeName = iota
	RootNONE
	RootINTEGER
	RootSTRING
	RootBOOLEAN
	RootFLOAT
	RootSYMBOL
	RootBITSTRING
	RootBINDING
	RootSTRATEGY
	RootOPREF
	RootRSREF
	RootRULETYPE
	RootTYPE // the type universe; self-typed
)

func (n RootTypeName) String() string {
	switch n {
	case RootANY:
		return "ANY"
	case RootNONE:
		return "NONE"
	case RootINTEGER:
		return "INTEGER"
	case RootSTRING:
		return "STRING"
	case RootBOOLEAN:
		return "BOOLEAN"
	case RootFLOAT:
		return "FLOAT"
	case RootSYMBOL:
		return "SYMBOL"
	case RootBITSTRING:
		return "BITSTRING"
	case RootBINDING:
		return "BINDING"
	case RootSTRATEGY:
		return "STRATEGY"
	case RootOPREF:
		return "OPREF"
	case RootRSREF:
		return "RSREF"
	case RootRULETYPE:
		return "RULETYPE"
	case RootTYPE:
		return "TYPE"
	default:
		return "?"
	}
}
