package minire

import (
	"strconv"
	"strings"
)

// Kind identifies what a Token matches.
type Kind uint8

const (
	// One input byte equal to Token.Char.
	KindLiteral Kind = iota
	// One ASCII digit ("\d").
	KindDigit
	// One ASCII letter, digit or underscore ("\w").
	KindWord
	// Any one byte (".").
	KindWildcard
	// One byte contained in Token.Set ("[abc]").
	KindPositiveGroup
	// One byte not contained in Token.Set ("[^abc]").
	KindNegativeGroup
	// A parenthesized sub-pattern, Token.Raw holds its uncompiled body.
	KindCapture
	// The text last captured by group Token.Ref ("\1").
	KindBackreference
	// Zero-width start of input ("^"). Only ever the first token.
	KindBeginAnchor
	// Zero-width end of input ("$"). Only ever the last token.
	KindEndAnchor
)

var kindNames = [...]string{
	KindLiteral:       "Literal",
	KindDigit:         "Digit",
	KindWord:          "Word",
	KindWildcard:      "Wildcard",
	KindPositiveGroup: "PositiveGroup",
	KindNegativeGroup: "NegativeGroup",
	KindCapture:       "Capture",
	KindBackreference: "Backreference",
	KindBeginAnchor:   "BeginAnchor",
	KindEndAnchor:     "EndAnchor",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Quantifier is the optional repetition suffix of a Token.
type Quantifier uint8

const (
	QuantNone Quantifier = iota
	// "+"
	QuantOneOrMore
	// "?"
	QuantZeroOrOne
)

func (q Quantifier) String() string {
	switch q {
	case QuantNone:
		return ""
	case QuantOneOrMore:
		return "+"
	case QuantZeroOrOne:
		return "?"
	}
	return "Quantifier(" + strconv.Itoa(int(q)) + ")"
}

// Token is a single compiled pattern atom.
//
// Only the fields relevant to Kind are set: Char for KindLiteral, Set for
// the character groups, Raw and Group for KindCapture and Ref for
// KindBackreference.
type Token struct {
	Kind  Kind
	Quant Quantifier
	Char  byte
	Set   string
	// Raw is the text between the parentheses of a capture group, nested
	// groups included. It is never modified after Parse.
	Raw string
	// Group is the 1-based number assigned by CollectGroups, 0 before that.
	Group int
	// Ref is the 1-based group number of a backreference.
	Ref int

	// byte offset of the atom in the pattern it was parsed from
	pos int
}

func (t Token) isAnchor() bool {
	return t.Kind == KindBeginAnchor || t.Kind == KindEndAnchor
}

// setQuantifier attaches q to t. Anchors cannot be repeated, so it is a
// no-op for them.
func (t *Token) setQuantifier(q Quantifier) {
	if t.isAnchor() {
		return
	}
	t.Quant = q
}

// String renders t back into pattern syntax.
func (t Token) String() string {
	var b strings.Builder
	switch t.Kind {
	case KindLiteral:
		if isEscapableMeta(t.Char) {
			b.WriteByte('\\')
		}
		b.WriteByte(t.Char)
	case KindDigit:
		b.WriteString(`\d`)
	case KindWord:
		b.WriteString(`\w`)
	case KindWildcard:
		b.WriteByte('.')
	case KindPositiveGroup:
		b.WriteByte('[')
		b.WriteString(t.Set)
		b.WriteByte(']')
	case KindNegativeGroup:
		b.WriteString("[^")
		b.WriteString(t.Set)
		b.WriteByte(']')
	case KindCapture:
		b.WriteByte('(')
		b.WriteString(t.Raw)
		b.WriteByte(')')
	case KindBackreference:
		b.WriteByte('\\')
		b.WriteString(strconv.Itoa(t.Ref))
	case KindBeginAnchor:
		b.WriteByte('^')
	case KindEndAnchor:
		b.WriteByte('$')
	default:
		b.WriteString(t.Kind.String())
	}
	b.WriteString(t.Quant.String())
	return b.String()
}

// FormatTokens renders a token sequence back into pattern syntax.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

// literalTokens compiles s into a program that matches exactly s.
func literalTokens(s string) []Token {
	tokens := make([]Token, len(s))
	for i := 0; i < len(s); i++ {
		tokens[i] = Token{Kind: KindLiteral, Char: s[i]}
	}
	return tokens
}
