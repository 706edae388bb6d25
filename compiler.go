package minire

import (
	"strconv"
	"strings"
)

type compiler struct {
	pattern string
	// End of the scanned range; excludes a trailing "$" anchor.
	end    int
	pos    int
	tokens []Token
}

// Parse compiles pattern into its token sequence.
//
// Capture group bodies are kept as raw text in Token.Raw and are not
// compiled here; CollectGroups compiles and numbers them.
func Parse(pattern string) ([]Token, error) {
	c := compiler{pattern: pattern, end: len(pattern)}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c.tokens, nil
}

func (c *compiler) compile() error {
	if c.end > 0 && isBeginAnchor(c.pattern[0]) {
		c.emit(Token{Kind: KindBeginAnchor}, 0)
		c.pos = 1
	}
	anchoredEnd := isEndAnchor(c.pattern[c.pos:])
	if anchoredEnd {
		c.end--
	}

	for c.pos < c.end {
		var err error
		switch ch := c.pattern[c.pos]; {
		case isLiteral(ch):
			err = c.compileLiteral(ch)
		case isEscape(ch):
			err = c.compileEscape()
		case isGroupOpener(ch):
			err = c.compileCharacterGroup()
		case isCaptureOpener(ch):
			err = c.compileCapture()
		}
		if err != nil {
			return err
		}
	}

	if anchoredEnd {
		c.emit(Token{Kind: KindEndAnchor}, c.end)
	}
	return nil
}

func (c *compiler) emit(t Token, pos int) {
	t.pos = pos
	c.tokens = append(c.tokens, t)
}

func (c *compiler) syntaxError(pos int, err error) SyntaxError {
	return newSyntaxError(c.pattern, pos, err)
}

func (c *compiler) compileLiteral(ch byte) error {
	switch ch {
	case '+':
		return c.quantify(QuantOneOrMore)
	case '?':
		return c.quantify(QuantZeroOrOne)
	case '.':
		c.emit(Token{Kind: KindWildcard}, c.pos)
	default:
		c.emit(Token{Kind: KindLiteral, Char: ch}, c.pos)
	}
	c.pos++
	return nil
}

// quantify attaches q to the previously emitted token.
func (c *compiler) quantify(q Quantifier) error {
	if len(c.tokens) == 0 {
		return c.syntaxError(c.pos, ErrNothingToRepeat)
	}
	c.tokens[len(c.tokens)-1].setQuantifier(q)
	c.pos++
	return nil
}

func (c *compiler) compileEscape() error {
	start := c.pos
	if start+1 >= c.end {
		return c.syntaxError(start, ErrDanglingEscape)
	}
	next := c.pattern[start+1]
	switch {
	case isDigitClass(next):
		c.emit(Token{Kind: KindDigit}, start)
		c.pos += 2
	case isWordClass(next):
		c.emit(Token{Kind: KindWord}, start)
		c.pos += 2
	case isDigit(next):
		i := start + 1
		for i < c.end && isDigit(c.pattern[i]) {
			i++
		}
		n, err := strconv.Atoi(c.pattern[start+1 : i])
		if err != nil {
			return c.syntaxError(start, ErrBadBackreference)
		}
		c.emit(Token{Kind: KindBackreference, Ref: n}, start)
		c.pos = i
	case isEscapableMeta(next):
		c.emit(Token{Kind: KindLiteral, Char: next}, start)
		c.pos += 2
	default:
		return c.syntaxError(start, ErrUnknownEscape)
	}
	return nil
}

// compileCharacterGroup reads "[set]" or "[^set]". Every byte up to the
// first "]" belongs to the set verbatim.
func (c *compiler) compileCharacterGroup() error {
	start := c.pos
	kind, offset := KindPositiveGroup, start+1
	if isNegatedGroup(c.pattern[:c.end], start) {
		kind, offset = KindNegativeGroup, start+2
	}
	n := strings.IndexByte(c.pattern[offset:c.end], ']')
	if n < 0 {
		return c.syntaxError(start, ErrUnterminatedClass)
	}
	c.emit(Token{Kind: kind, Set: c.pattern[offset : offset+n]}, start)
	c.pos = offset + n + 1
	return nil
}

// compileCapture finds the ")" closing the group opened at c.pos by
// counting parenthesis depth, and stores the text in between untouched.
func (c *compiler) compileCapture() error {
	start := c.pos
	depth := 0
	for i := start + 1; i < c.end; i++ {
		switch c.pattern[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
				continue
			}
			c.emit(Token{Kind: KindCapture, Raw: c.pattern[start+1 : i]}, start)
			c.pos = i + 1
			return nil
		}
	}
	return c.syntaxError(start, ErrUnterminatedGroup)
}
