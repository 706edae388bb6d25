package minire

// Differential tests against full regex engines on the syntax both sides
// agree on. coregex covers group-free patterns, where this engine explores
// every repetition choice. regexp2 covers backreferences whose groups can
// only end in one place, so no backtracking into a group is needed.

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
	"gotest.tools/v3/assert"
)

var oracleAtoms = []string{"a", "b", "c", "1", " ", ".", `\d`, `\w`, "[ab]", "[^a]", "[1_]"}

func randomPattern(rnd *rand.Rand) string {
	var b strings.Builder
	if rnd.Intn(4) == 0 {
		b.WriteByte('^')
	}
	for n := 1 + rnd.Intn(4); n > 0; n-- {
		b.WriteString(oracleAtoms[rnd.Intn(len(oracleAtoms))])
		switch rnd.Intn(4) {
		case 0:
			b.WriteByte('+')
		case 1:
			b.WriteByte('?')
		}
	}
	if rnd.Intn(4) == 0 {
		b.WriteByte('$')
	}
	return b.String()
}

func randomSubject(rnd *rand.Rand) string {
	const alphabet = "abc1_ -"
	b := make([]byte, rnd.Intn(9))
	for i := range b {
		b[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(b)
}

func TestAgainstCoregex(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		pattern := randomPattern(rnd)
		ours := MustCompile(pattern)
		theirs := coregex.MustCompile(pattern)
		for j := 0; j < 20; j++ {
			in := randomSubject(rnd)
			assert.Equal(t, ours.MatchString(in), theirs.MatchString(in), "pattern %q, input %q", pattern, in)
		}
	}
}

func TestAgainstRegexp2(t *testing.T) {
	patterns := []string{
		`(\w+) and \1`,
		`^(\w+) and \1$`,
		`(\d+)-\1`,
		`^(a+)b\1$`,
		`(\d+) (\w+) and \1 \2`,
		`('(cat) and \2') is the same as \1`,
		`((\w\w\w\w) (\d\d\d)) is doing \2 \3 times, and again \1 times`,
	}
	subjects := []string{
		"",
		"cat and cat",
		"cat and cats",
		"cats and cat",
		"dog and dog",
		"dog and dogs",
		"12-12",
		"12-13",
		"x 7-7 y",
		"aabaa",
		"aaba",
		"abaa",
		"3 red and 3 red",
		"3 red and 3 blue",
		"'cat and cat' is the same as 'cat and cat'",
		"'cat and dog' is the same as 'cat and cat'",
		"'dog and dog' is the same as 'dog and dog'",
		"grep 101 is doing grep 101 times, and again grep 101 times",
		"grep 101 is doing grep 101 times, and again grep 102 times",
	}
	for _, pattern := range patterns {
		ours := MustCompile(pattern)
		theirs := regexp2.MustCompile(pattern, regexp2.None)
		for _, in := range subjects {
			want, err := theirs.MatchString(in)
			assert.NilError(t, err)
			assert.Equal(t, ours.MatchString(in), want, "pattern %q, input %q", pattern, in)
		}
	}
}
