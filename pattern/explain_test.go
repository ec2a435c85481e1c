package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainLeaf(t *testing.T) {
	t.Parallel()

	expected := `Pattern: \d
Type: Digit
Breakdown:
  Any digit (0-9)
`
	assert.Equal(t, expected, Digit().Explain())
}

func TestExplainTree(t *testing.T) {
	t.Parallel()

	p := Literal("user-").Then(Digit().OneOrMore())

	expected := `Pattern: user\-(?:\d)+
Type: Sequence
Breakdown:
  Sequence of 2 parts:
    Literal text: "user-"
    One or more times:
      Any digit (0-9)
`
	assert.Equal(t, expected, p.Explain())
}

func TestExplainEitherListsAlternatives(t *testing.T) {
	t.Parallel()

	e, err := Either("cat", "dog", "bird")
	require.NoError(t, err)

	expected := `Pattern: (?:cat|dog|bird)
Type: Either
Breakdown:
  One of:
    - cat
    - dog
    - bird
`
	assert.Equal(t, expected, e.Explain())
}

func TestExplainQuantifiersAndGroups(t *testing.T) {
	t.Parallel()

	three, err := Digit().Exactly(3)
	require.NoError(t, err)
	named, err := three.NamedGroup("code")
	require.NoError(t, err)

	expected := `Pattern: (?<code>\d{3})
Type: NamedGroup
Breakdown:
  Named group "code":
    Exactly 3 times:
      Any digit (0-9)
`
	assert.Equal(t, expected, named.Explain())
}

func TestDescribePhrases(t *testing.T) {
	t.Parallel()

	r, err := CharRange('a', 'z')
	require.NoError(t, err)
	between, err := Digit().Between(2, 5)
	require.NoError(t, err)
	atLeast, err := Digit().AtLeast(2)
	require.NoError(t, err)
	back, err := Backreference("id")
	require.NoError(t, err)

	tests := []struct {
		node     *Node
		expected string
	}{
		{AnyChar(), "Any character"},
		{WordChar(), "Any word character (a-z, A-Z, 0-9, _)"},
		{Whitespace(), "Any whitespace character"},
		{StartOfLine(), "Start of line"},
		{EndOfLine(), "End of line"},
		{StartOfText(), "Start of input"},
		{EndOfText(), "End of input"},
		{CharClass("xyz"), `Any character in set "xyz"`},
		{NotCharClass("xyz"), `Any character not in set "xyz"`},
		{r, `Any character from 'a' to 'z'`},
		{between, "Between 2 and 5 times:"},
		{atLeast, "At least 2 times:"},
		{Digit().Optional(), "Optional (zero or one):"},
		{Digit().ZeroOrMore(), "Zero or more times:"},
		{Digit().Group(), "Capturing group:"},
		{back, `Backreference to group "id"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.node.describe())
	}
}
