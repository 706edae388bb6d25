package minire

import "strings"

type anchor uint8

const (
	anchorBegin anchor = 1 << iota
	anchorEnd
)

// stripAnchors splits a leading "^" and a trailing "$" off tokens.
func stripAnchors(tokens []Token) ([]Token, anchor) {
	var a anchor
	if len(tokens) > 0 && tokens[0].Kind == KindBeginAnchor {
		a |= anchorBegin
		tokens = tokens[1:]
	}
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == KindEndAnchor {
		a |= anchorEnd
		tokens = tokens[:len(tokens)-1]
	}
	return tokens, a
}

// machine holds the state of one top-level match call. Captured text
// lives here rather than in the tokens, so compiled patterns stay
// read-only.
type machine struct {
	input  string
	groups []*Group
	// captures[n] is the text last matched by group n, including matches
	// made on paths that were later backtracked. Index 0 is unused.
	captures []string
}

func newMachine(input string, groups []*Group) *machine {
	return &machine{
		input:    input,
		groups:   groups,
		captures: make([]string, len(groups)+1),
	}
}

// MatchTokens reports whether tokens match anywhere in input. Without a
// leading "^" every start offset is tried in turn.
//
// groups must come from CollectGroups on the same tokens. Capture tokens
// that were never numbered are compiled on the fly and record nothing, and
// a backreference past the last group never matches.
func MatchTokens(input string, tokens []Token, groups []*Group) bool {
	return newMachine(input, groups).run(tokens)
}

func (vm *machine) run(tokens []Token) bool {
	prog, anchors := stripAnchors(tokens)
	if anchors&anchorBegin != 0 {
		_, ok := vm.match(prog, 0, 0, anchors)
		return ok
	}
	for start := 0; start <= len(vm.input); start++ {
		if _, ok := vm.match(prog, 0, start, anchors); ok {
			return true
		}
	}
	return false
}

// match matches prog[pc:] against the input starting exactly at pos and
// returns the end of the match.
func (vm *machine) match(prog []Token, pc, pos int, flags anchor) (int, bool) {
	if pc == len(prog) {
		if flags&anchorEnd != 0 && pos != len(vm.input) {
			return 0, false
		}
		return pos, true
	}

	quant := prog[pc].Quant
	step, ok := vm.step(prog, pc, pos, flags)
	if !ok {
		if quant == QuantZeroOrOne {
			return vm.match(prog, pc+1, pos, flags)
		}
		return 0, false
	}

	// Greedy: a longer run is preferred over moving on.
	if quant == QuantOneOrMore && step > 0 {
		if end, ok := vm.match(prog, pc, pos+step, flags); ok {
			return end, true
		}
	}
	if end, ok := vm.match(prog, pc+1, pos+step, flags); ok {
		return end, true
	}
	if quant == QuantZeroOrOne && step > 0 {
		return vm.match(prog, pc+1, pos, flags)
	}
	return 0, false
}

// step matches a single occurrence of prog[pc] at pos and returns how much
// input it consumed.
func (vm *machine) step(prog []Token, pc, pos int, flags anchor) (int, bool) {
	t := &prog[pc]
	switch t.Kind {
	case KindCapture:
		return vm.stepCapture(t, pos, inheritedAnchors(prog, pc, flags))
	case KindBackreference:
		return vm.stepBackreference(t, pos, inheritedAnchors(prog, pc, flags))
	}
	if pos >= len(vm.input) || !matchByte(t, vm.input[pos]) {
		return 0, false
	}
	return 1, true
}

func matchByte(t *Token, c byte) bool {
	switch t.Kind {
	case KindLiteral:
		return c == t.Char
	case KindDigit:
		return isDigit(c)
	case KindWord:
		return isASCIIWordChar(c)
	case KindWildcard:
		return true
	case KindPositiveGroup:
		return strings.IndexByte(t.Set, c) >= 0
	case KindNegativeGroup:
		return strings.IndexByte(t.Set, c) < 0
	}
	return false
}

// inheritedAnchors returns the anchors a group or backreference at
// prog[pc] takes over from its program. A sub-match always starts at the
// current position, so only the end anchor carries over, and only to an
// unrepeated last token.
func inheritedAnchors(prog []Token, pc int, flags anchor) anchor {
	if pc == len(prog)-1 && prog[pc].Quant == QuantNone {
		return flags & anchorEnd
	}
	return 0
}

func (vm *machine) stepCapture(t *Token, pos int, inherited anchor) (int, bool) {
	body, anchors, ok := vm.groupBody(t)
	if !ok {
		return 0, false
	}
	if anchors&anchorBegin != 0 && pos != 0 {
		return 0, false
	}
	end, ok := vm.match(body, 0, pos, anchors|inherited)
	if !ok {
		return 0, false
	}
	if t.Group > 0 && t.Group < len(vm.captures) {
		vm.captures[t.Group] = vm.input[pos:end]
	}
	return end - pos, true
}

func (vm *machine) groupBody(t *Token) ([]Token, anchor, bool) {
	if t.Group > 0 && t.Group <= len(vm.groups) {
		g := vm.groups[t.Group-1]
		return g.body, g.anchors, true
	}
	tokens, err := Parse(t.Raw)
	if err != nil {
		return nil, 0, false
	}
	body, anchors := stripAnchors(tokens)
	return body, anchors, true
}

func (vm *machine) stepBackreference(t *Token, pos int, inherited anchor) (int, bool) {
	if t.Ref < 1 || t.Ref > len(vm.groups) {
		return 0, false
	}
	end, ok := vm.match(literalTokens(vm.captures[t.Ref]), 0, pos, inherited)
	if !ok {
		return 0, false
	}
	return end - pos, true
}
