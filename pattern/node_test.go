package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantifierValidation(t *testing.T) {
	t.Parallel()

	d := Digit()

	_, err := Exactly(d, -1)
	assert.ErrorIs(t, err, ErrBadQuantifier)

	_, err = AtLeast(d, -1)
	assert.ErrorIs(t, err, ErrBadQuantifier)

	_, err = Between(d, -1, 3)
	assert.ErrorIs(t, err, ErrBadQuantifier)

	_, err = Between(d, 5, 2)
	assert.ErrorIs(t, err, ErrBadQuantifier)

	// boundary values are legal
	zero, err := Exactly(d, 0)
	require.NoError(t, err)
	assert.Equal(t, `\d{0}`, zero.Regex())

	same, err := Between(d, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, `\d{2,2}`, same.Regex())

	_, err = AtLeast(d, 0)
	assert.NoError(t, err)
}

func TestEitherValidation(t *testing.T) {
	t.Parallel()

	_, err := Either()
	assert.ErrorIs(t, err, ErrEmptyAlternatives)

	e, err := Either("foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", e.Regex())
}

func TestSequenceValidation(t *testing.T) {
	t.Parallel()

	_, err := Sequence()
	assert.ErrorIs(t, err, ErrEmptySequence)

	s, err := Sequence(Digit())
	require.NoError(t, err)
	assert.Equal(t, `\d`, s.Regex())
}

func TestNamedGroupValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		valid bool
	}{
		{"id", true},
		{"Area51", true},
		{"x", true},
		{"", false},
		{"1abc", false},
		{"has_underscore", false},
		{"has-dash", false},
		{"sp ace", false},
	}

	for _, tt := range tests {
		_, err := NamedGroup(tt.name, Digit())
		if tt.valid {
			assert.NoError(t, err, "name %q", tt.name)
		} else {
			assert.ErrorIs(t, err, ErrBadGroupName, "name %q", tt.name)
		}
	}
}

func TestCharRangeValidation(t *testing.T) {
	t.Parallel()

	_, err := CharRange('z', 'a')
	assert.ErrorIs(t, err, ErrBadCharRange)

	r, err := CharRange('a', 'a')
	require.NoError(t, err)
	assert.Equal(t, "[a-a]", r.Regex())

	_, err = CharRangeStr("ab", "z")
	assert.ErrorIs(t, err, ErrBadCharRange)

	_, err = CharRangeStr("a", "")
	assert.ErrorIs(t, err, ErrBadCharRange)

	r, err = CharRangeStr("a", "z")
	require.NoError(t, err)
	assert.Equal(t, "[a-z]", r.Regex())
}

func TestMultiRangeValidation(t *testing.T) {
	t.Parallel()

	_, err := MultiRange()
	assert.ErrorIs(t, err, ErrEmptyRangeList)

	// only CharRange nodes are mergeable
	_, err = MultiRange(Digit())
	assert.ErrorIs(t, err, ErrBadCharRange)
}

func TestMultiRangeSpec(t *testing.T) {
	t.Parallel()

	mr, err := MultiRangeSpec(`'a'-'z', 'A'-'Z'`)
	require.NoError(t, err)
	assert.Equal(t, "[a-zA-Z]", mr.Regex())

	// double quotes and loose spacing are accepted
	mr, err = MultiRangeSpec(`"0" - "9"`)
	require.NoError(t, err)
	assert.Equal(t, "[0-9]", mr.Regex())

	_, err = MultiRangeSpec("not a range spec")
	assert.ErrorIs(t, err, ErrBadRangeSpec)

	_, err = MultiRangeSpec(`'z'-'a'`)
	assert.ErrorIs(t, err, ErrBadCharRange)
}

func TestBackreferenceValidation(t *testing.T) {
	t.Parallel()

	_, err := Backreference("")
	assert.ErrorIs(t, err, ErrEmptyBackrefName)

	b, err := Backreference("word")
	require.NoError(t, err)
	assert.Equal(t, `\k<word>`, b.Regex())
}

func TestChildrenAccessor(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Digit().Children())
	assert.Nil(t, Literal("x").Children())

	seq := Literal("a").Then(Literal("b"))
	require.Len(t, seq.Children(), 2)
	assert.Equal(t, OpLiteral, seq.Children()[0].Op())

	wrapped := Digit().OneOrMore()
	require.Len(t, wrapped.Children(), 1)
	assert.Equal(t, OpDigit, wrapped.Children()[0].Op())
}

func TestImmutability(t *testing.T) {
	t.Parallel()

	d := Digit()
	before := d.Regex()

	// composing must not change the shared child
	d.OneOrMore()
	d.Then(Literal("x"))
	g := d.Group()

	assert.Equal(t, before, d.Regex())
	assert.Equal(t, `(\d)`, g.Regex())
}
