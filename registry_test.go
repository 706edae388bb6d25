package minire

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func groupRaws(groups []*Group) []string {
	raws := make([]string, 0, len(groups))
	for _, g := range groups {
		raws = append(raws, g.Raw)
	}
	return raws
}

func TestCollectGroups(t *testing.T) {
	cases := []struct {
		pattern string
		want    []string
	}{
		{"abc", []string{}},
		{"(a)", []string{"a"}},
		{"(a)(b)", []string{"a", "b"}},
		{"(a(b)(c(d)))(e)", []string{"a(b)(c(d))", "b", "c(d)", "d", "e"}},
		{`('(cat) and \2') is the same as \1`, []string{`'(cat) and \2'`, "cat"}},
		{"^((x)y)+$", []string{"(x)y", "x"}},
		{"(^a$)", []string{"^a$"}},
	}
	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			tokens, err := Parse(c.pattern)
			assert.NilError(t, err)
			groups, err := CollectGroups(tokens)
			assert.NilError(t, err)
			assert.DeepEqual(t, groupRaws(groups), c.want)
			for i, g := range groups {
				assert.Equal(t, g.Index, i+1)
			}
		})
	}
}

func TestCollectGroupsNumbersTokens(t *testing.T) {
	tokens, err := Parse("(a(b))x(c)")
	assert.NilError(t, err)
	groups, err := CollectGroups(tokens)
	assert.NilError(t, err)
	assert.Equal(t, len(groups), 3)

	assert.Equal(t, tokens[0].Group, 1)
	assert.Equal(t, tokens[1].Group, 0)
	assert.Equal(t, tokens[2].Group, 3)

	body := groups[0].Tokens()
	assert.DeepEqual(t, body, []Token{lit('a'), {Kind: KindCapture, Raw: "b", Group: 2}}, ignorePos)
	assert.DeepEqual(t, groups[1].Tokens(), []Token{lit('b')}, ignorePos)
}

func TestCollectGroupsStripsBodyAnchors(t *testing.T) {
	tokens, err := Parse("(^a$)")
	assert.NilError(t, err)
	groups, err := CollectGroups(tokens)
	assert.NilError(t, err)
	assert.Equal(t, groups[0].anchors, anchorBegin|anchorEnd)
	assert.DeepEqual(t, groups[0].Tokens(), []Token{lit('a')}, ignorePos)
}

func TestCollectGroupsIsStable(t *testing.T) {
	pattern := `((\w+) (\d+))-(x(y))`
	var runs [][]string
	for i := 0; i < 2; i++ {
		tokens, err := Parse(pattern)
		assert.NilError(t, err)
		groups, err := CollectGroups(tokens)
		assert.NilError(t, err)
		runs = append(runs, groupRaws(groups))
	}
	assert.Assert(t, cmp.Equal(runs[0], runs[1]))
	assert.DeepEqual(t, runs[0], []string{`(\w+) (\d+)`, `\w+`, `\d+`, "x(y)", "y"})
}

func TestCollectGroupsSyntaxError(t *testing.T) {
	t.Run("CollectGroups", func(t *testing.T) {
		tokens, err := Parse(`ab(c\q)`)
		assert.NilError(t, err)
		_, err = CollectGroups(tokens)
		assert.Assert(t, errors.Is(err, ErrUnknownEscape))
		var se SyntaxError
		assert.Assert(t, errors.As(err, &se))
		assert.Equal(t, se.Pattern, `c\q`)
		assert.Equal(t, se.Pos, 1)
	})
	t.Run("Compile", func(t *testing.T) {
		_, err := Compile(`ab(c\q)`)
		var se SyntaxError
		assert.Assert(t, errors.As(err, &se))
		assert.Equal(t, se.Pattern, `ab(c\q)`)
		assert.Equal(t, se.Pos, 4)
	})
	t.Run("CompileNested", func(t *testing.T) {
		_, err := Compile(`a((b)(\q))`)
		var se SyntaxError
		assert.Assert(t, errors.As(err, &se))
		assert.Equal(t, se.Pos, 6)
		assert.ErrorContains(t, err, `unknown escape sequence at position 6 in "a((b)(\\q))"`)
	})
	t.Run("CompileNestedUnterminated", func(t *testing.T) {
		_, err := Compile(`x([a)`)
		assert.Assert(t, errors.Is(err, ErrUnterminatedClass))
		var se SyntaxError
		assert.Assert(t, errors.As(err, &se))
		assert.Equal(t, se.Pos, 2)
	})
}
