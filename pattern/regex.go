package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Regex renders the node tree as a regular expression string. It is pure and
// deterministic, and never fails for a tree whose nodes were all successfully
// constructed; validation happens in the constructors, not here.
func (n *Node) Regex() string {
	switch n.op {
	case OpLiteral:
		return Escape(n.text)

	case OpEither:
		if len(n.alts) == 1 {
			return Escape(n.alts[0])
		}
		escaped := make([]string, len(n.alts))
		for i, alt := range n.alts {
			escaped[i] = Escape(alt)
		}
		return "(?:" + strings.Join(escaped, "|") + ")"

	case OpSequence:
		var b strings.Builder
		for _, child := range n.sub {
			b.WriteString(child.Regex())
		}
		return b.String()

	case OpOptional:
		return "(?:" + n.sub[0].Regex() + ")?"
	case OpOneOrMore:
		return "(?:" + n.sub[0].Regex() + ")+"
	case OpZeroOrMore:
		return "(?:" + n.sub[0].Regex() + ")*"

	case OpExactly:
		return quantify(n.sub[0].Regex(), fmt.Sprintf("{%d}", n.min))
	case OpBetween:
		return quantify(n.sub[0].Regex(), fmt.Sprintf("{%d,%d}", n.min, n.max))
	case OpAtLeast:
		return quantify(n.sub[0].Regex(), fmt.Sprintf("{%d,}", n.min))

	case OpAnyChar:
		return "."
	case OpDigit:
		return `\d`
	case OpWordChar:
		return `\w`
	case OpWhitespace:
		return `\s`
	case OpStartOfLine:
		return "^"
	case OpEndOfLine:
		return "$"
	case OpStartOfText:
		return `\A`
	case OpEndOfText:
		return `\z`

	case OpCharClass:
		return "[" + escapeClass(n.text) + "]"
	case OpNotCharClass:
		return "[^" + escapeClass(n.text) + "]"

	case OpCharRange:
		return "[" + n.rangeBody() + "]"

	case OpMultiRange:
		if len(n.sub) == 1 {
			return n.sub[0].Regex()
		}
		var b strings.Builder
		b.WriteByte('[')
		for _, r := range n.sub {
			b.WriteString(r.rangeBody())
		}
		b.WriteByte(']')
		return b.String()

	case OpGroup:
		return "(" + n.sub[0].Regex() + ")"
	case OpNamedGroup:
		return "(?<" + n.name + ">" + n.sub[0].Regex() + ")"
	case OpBackreference:
		return `\k<` + n.name + ">"
	}
	return ""
}

// rangeBody renders a CharRange without its surrounding brackets, so that
// MultiRange can merge several ranges into one class.
func (n *Node) rangeBody() string {
	return escapeClassRune(n.lo) + "-" + escapeClassRune(n.hi)
}

// bracketExprRe recognizes a full-string bracket expression. The greedy .+
// scan is intentional and must stay that way: the policy decides textual
// safety, it does not parse regex syntax.
var bracketExprRe = regexp.MustCompile(`^\[.+\]$`)

// needsGrouping reports whether text must be wrapped in a non-capturing group
// before a counted quantifier is appended. Quantifying a multi-character
// sub-expression bare would silently change precedence (ab{3} repeats only
// the b), so anything that is not already a single regex atom gets grouped.
func needsGrouping(text string) bool {
	if text == "." {
		return false
	}
	if len(text) == 2 && text[0] == '\\' {
		return false
	}
	if bracketExprRe.MatchString(text) {
		return false
	}
	return true
}

func quantify(text, suffix string) string {
	if needsGrouping(text) {
		return "(?:" + text + ")" + suffix
	}
	return text + suffix
}
