package pattern

import (
	"fmt"
	"strings"
)

// describe returns the human phrase for a node, without its children.
func (n *Node) describe() string {
	switch n.op {
	case OpLiteral:
		return fmt.Sprintf("Literal text: %q", n.text)
	case OpEither:
		return "One of:"
	case OpSequence:
		return fmt.Sprintf("Sequence of %d parts:", len(n.sub))
	case OpOptional:
		return "Optional (zero or one):"
	case OpOneOrMore:
		return "One or more times:"
	case OpZeroOrMore:
		return "Zero or more times:"
	case OpExactly:
		return fmt.Sprintf("Exactly %d times:", n.min)
	case OpBetween:
		return fmt.Sprintf("Between %d and %d times:", n.min, n.max)
	case OpAtLeast:
		return fmt.Sprintf("At least %d times:", n.min)
	case OpAnyChar:
		return "Any character"
	case OpDigit:
		return "Any digit (0-9)"
	case OpWordChar:
		return "Any word character (a-z, A-Z, 0-9, _)"
	case OpWhitespace:
		return "Any whitespace character"
	case OpStartOfLine:
		return "Start of line"
	case OpEndOfLine:
		return "End of line"
	case OpStartOfText:
		return "Start of input"
	case OpEndOfText:
		return "End of input"
	case OpCharClass:
		return fmt.Sprintf("Any character in set %q", n.text)
	case OpNotCharClass:
		return fmt.Sprintf("Any character not in set %q", n.text)
	case OpCharRange:
		return fmt.Sprintf("Any character from %q to %q", n.lo, n.hi)
	case OpMultiRange:
		return "Any character in ranges:"
	case OpGroup:
		return "Capturing group:"
	case OpNamedGroup:
		return fmt.Sprintf("Named group %q:", n.name)
	case OpBackreference:
		return fmt.Sprintf("Backreference to group %q", n.name)
	}
	return n.op.String()
}

// Explain renders the pattern's regex text, its kind, and a recursive
// indented breakdown of the tree. It never fails for a constructed tree.
func (n *Node) Explain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pattern: %s\n", n.Regex())
	fmt.Fprintf(&b, "Type: %s\n", n.op)
	b.WriteString("Breakdown:\n")
	n.explainInto(&b, 1)
	return b.String()
}

func (n *Node) explainInto(b *strings.Builder, depth int) {
	pad := strings.Repeat("  ", depth)
	b.WriteString(pad)
	b.WriteString(n.describe())
	b.WriteByte('\n')

	// alternatives are raw strings, not sub-patterns; list them as items
	if n.op == OpEither {
		for _, alt := range n.alts {
			fmt.Fprintf(b, "%s  - %s\n", pad, alt)
		}
		return
	}

	for _, child := range n.Children() {
		child.explainInto(b, depth+1)
	}
}
