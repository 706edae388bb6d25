// Package minire is a small backtracking regular expression engine for
// grep-style line matching.
//
// The syntax is deliberately narrow: literals, ".", "\d", "\w", character
// groups "[abc]" and "[^abc]", the quantifiers "+" and "?", capture groups
// "(...)" with backreferences "\1", "\2", ..., and the anchors "^" and "$"
// at the ends of a pattern. Matching is byte oriented and reports only
// whether a match exists.
//
// The pipeline is exposed in three steps, [Parse], [CollectGroups] and
// [MatchTokens]; [Compile] runs the first two and returns a [Regexp].
package minire

// Regexp represents a compiled pattern.
// It is safe for concurrent use by multiple goroutines.
// All methods on Regexp do not mutate internal state.
type Regexp struct {
	expr   string
	tokens []Token
	groups []*Group
}

// Compile parses pattern, numbers its capture groups and compiles their
// bodies. Syntax errors anywhere in the pattern, group bodies included,
// are reported as a [SyntaxError] against pattern.
func Compile(pattern string) (*Regexp, error) {
	tokens, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	r := registry{pattern: pattern}
	if err := r.collect(tokens, 0); err != nil {
		return nil, err
	}
	return &Regexp{expr: pattern, tokens: tokens, groups: r.groups}, nil
}

// MustCompile is like [Compile] but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables containing regular
// expressions.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("minire: MustCompile: " + err.Error())
	}
	return re
}

// MatchString reports whether s contains a match of pattern.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// MatchString reports whether s contains a match of re.
func (re *Regexp) MatchString(s string) bool {
	return MatchTokens(s, re.tokens, re.groups)
}

// Match reports whether b contains a match of re.
func (re *Regexp) Match(b []byte) bool {
	return re.MatchString(string(b))
}

// NumGroups returns the number of capture groups, nested ones included.
func (re *Regexp) NumGroups() int {
	return len(re.groups)
}

// Tokens returns a copy of the top-level token sequence.
func (re *Regexp) Tokens() []Token {
	return append([]Token(nil), re.tokens...)
}

// String returns the source text used to compile re.
func (re *Regexp) String() string {
	return re.expr
}
