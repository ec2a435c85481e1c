package pattern

import "fmt"

// label returns the one-line node caption used in tree diagrams.
func (n *Node) label() string {
	switch n.op {
	case OpLiteral:
		return fmt.Sprintf("Literal %q", n.text)
	case OpEither:
		return "Either"
	case OpExactly:
		return fmt.Sprintf("Exactly {%d}", n.min)
	case OpBetween:
		return fmt.Sprintf("Between {%d,%d}", n.min, n.max)
	case OpAtLeast:
		return fmt.Sprintf("AtLeast {%d,}", n.min)
	case OpCharClass:
		return fmt.Sprintf("CharClass %q", n.text)
	case OpNotCharClass:
		return fmt.Sprintf("NotCharClass %q", n.text)
	case OpCharRange:
		return fmt.Sprintf("CharRange %c-%c", n.lo, n.hi)
	case OpNamedGroup:
		return fmt.Sprintf("NamedGroup %q", n.name)
	case OpBackreference:
		return fmt.Sprintf("Backreference %q", n.name)
	default:
		return n.op.String()
	}
}

// Visualize renders the pattern tree as an ASCII diagram with box-drawing
// connectors, followed by the full regex text.
func (n *Node) Visualize() string {
	tp := &treePrinter{}
	n.visualizeInto(tp)
	tp.writel("")
	tp.write("Regex: " + n.Regex())
	return tp.output.String()
}

// visualizeInto writes the node's label continuing the current line (the
// caller has already written any connector), then its children on fresh
// padded lines.
func (n *Node) visualizeInto(tp *treePrinter) {
	tp.writel(n.label())

	if n.op == OpEither {
		for i, alt := range n.alts {
			alt := alt
			tp.branch(i == len(n.alts)-1, func() {
				tp.writel(fmt.Sprintf("%q", alt))
			})
		}
		return
	}

	children := n.Children()
	for i, child := range children {
		child := child
		tp.branch(i == len(children)-1, func() {
			child.visualizeInto(tp)
		})
	}
}
