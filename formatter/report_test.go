package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rexlang/rex/pattern"
)

func init() {
	// keep golden strings free of escape codes
	color.NoColor = true
}

func TestRenderReport(t *testing.T) {
	t.Parallel()

	p := pattern.Digit().OneOrMore()
	report := p.TestAll(map[string]bool{
		"123": true,
		"abc": false,
	})

	out := RenderReport("digits", p.Regex(), report)

	expected := `digits ((?:\d)+)
✓ "123"                expected match    got match
✓ "abc"                expected no match got no match
ALL PASSED (2/2)
`
	assert.Equal(t, expected, out)
}

func TestRenderReportWithFailure(t *testing.T) {
	t.Parallel()

	p := pattern.Digit().OneOrMore()
	report := p.TestAll(map[string]bool{"abc": true})

	out := RenderReport("digits", p.Regex(), report)
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "<-- FAIL")
	assert.Contains(t, out, "1 FAILED, 0 passed (of 1)")
}

func TestRenderPatternInfo(t *testing.T) {
	t.Parallel()

	p := pattern.Literal("user-").Then(pattern.Digit().OneOrMore())
	out := RenderPatternInfo("user-id", p)

	assert.Contains(t, out, "user-id\n")
	assert.Contains(t, out, `regex: user\-(?:\d)+`)
	assert.Contains(t, out, "  Pattern: ")
	assert.Contains(t, out, "├── ")
	assert.Contains(t, out, "└── ")
}

func TestRenderInputs(t *testing.T) {
	t.Parallel()

	p := pattern.Digit().OneOrMore()

	out := RenderInputs(p, []string{"abc123", "xyz"}, false)
	expected := `match    "abc123"
no match "xyz"
`
	assert.Equal(t, expected, out)

	// full-match mode anchors the pattern
	out = RenderInputs(p, []string{"abc123", "123"}, true)
	require.Contains(t, out, `no match "abc123"`)
	require.Contains(t, out, `match    "123"`)
}
