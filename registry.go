package minire

import "errors"

// Group is the registry record of a capture group.
type Group struct {
	// Index is the group number used by backreferences, starting at 1.
	Index int
	// Raw is the uncompiled body of the group.
	Raw string

	body    []Token
	anchors anchor
}

// Tokens returns a copy of the compiled group body, without the anchors
// written inside it.
func (g *Group) Tokens() []Token {
	return append([]Token(nil), g.body...)
}

type registry struct {
	// Top-level pattern used to report errors inside group bodies. Empty
	// when unknown, in which case errors are relative to the body.
	pattern string
	groups  []*Group
}

// CollectGroups numbers the capture groups of tokens and of every nested
// group body, depth first and left to right: a group precedes the groups
// nested in it, which precede its next sibling. This is the numbering
// backreferences use.
//
// Each group body is compiled once here. The Group field of every capture
// token, including those in the compiled bodies, is set to its number.
// A syntax error inside a body is returned as a SyntaxError on that body.
func CollectGroups(tokens []Token) ([]*Group, error) {
	var r registry
	if err := r.collect(tokens, 0); err != nil {
		return nil, err
	}
	return r.groups, nil
}

// collect registers the groups of tokens, which were parsed from the text
// starting at byte offset base of r.pattern.
func (r *registry) collect(tokens []Token, base int) error {
	for i := range tokens {
		t := &tokens[i]
		if t.Kind != KindCapture {
			continue
		}
		g := &Group{Index: len(r.groups) + 1, Raw: t.Raw}
		r.groups = append(r.groups, g)
		t.Group = g.Index

		offset := base + t.pos + 1
		body, err := Parse(t.Raw)
		if err != nil {
			return r.relocate(err, offset)
		}
		g.body, g.anchors = stripAnchors(body)
		if err := r.collect(g.body, offset); err != nil {
			return err
		}
	}
	return nil
}

func (r *registry) relocate(err error, offset int) error {
	var se SyntaxError
	if r.pattern == "" || !errors.As(err, &se) {
		return err
	}
	se.Pattern = r.pattern
	se.Pos += offset
	return se
}
