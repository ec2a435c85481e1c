package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualizeLeaf(t *testing.T) {
	t.Parallel()

	expected := `Digit

Regex: \d`
	assert.Equal(t, expected, Digit().Visualize())
}

func TestVisualizeTree(t *testing.T) {
	t.Parallel()

	p := Literal("user-").Then(Digit().OneOrMore())

	expected := `Sequence
├── Literal "user-"
└── OneOrMore
    └── Digit

Regex: user\-(?:\d)+`
	assert.Equal(t, expected, p.Visualize())
}

func TestVisualizeDeepNesting(t *testing.T) {
	t.Parallel()

	id, err := Digit().OneOrMore().NamedGroup("id")
	require.NoError(t, err)
	p := Literal("user-").Then(id).Then(EndOfLine())

	expected := `Sequence
├── Sequence
│   ├── Literal "user-"
│   └── NamedGroup "id"
│       └── OneOrMore
│           └── Digit
└── EndOfLine

Regex: user\-(?<id>(?:\d)+)$`
	assert.Equal(t, expected, p.Visualize())
}

func TestVisualizeEitherAlternatives(t *testing.T) {
	t.Parallel()

	e, err := Either("cat", "dog")
	require.NoError(t, err)

	expected := `Either
├── "cat"
└── "dog"

Regex: (?:cat|dog)`
	assert.Equal(t, expected, e.Visualize())
}
