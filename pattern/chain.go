package pattern

// Chaining helpers. Each one constructs a new node wrapping the receiver;
// the receiver itself is never modified.

// Then returns a Sequence of exactly [n, next]. Chained calls produce nested
// two-child sequences rather than one flat list; emission still concatenates
// correctly because each level recurses.
func (n *Node) Then(next *Node) *Node {
	return &Node{op: OpSequence, sub: []*Node{n, next}}
}

// Optional wraps the node so it matches zero or one times.
func (n *Node) Optional() *Node { return Optional(n) }

// OneOrMore wraps the node so it matches one or more times.
func (n *Node) OneOrMore() *Node { return OneOrMore(n) }

// ZeroOrMore wraps the node so it matches zero or more times.
func (n *Node) ZeroOrMore() *Node { return ZeroOrMore(n) }

// Exactly wraps the node so it matches exactly count times.
func (n *Node) Exactly(count int) (*Node, error) { return Exactly(n, count) }

// Between wraps the node so it matches between min and max times.
func (n *Node) Between(min, max int) (*Node, error) { return Between(n, min, max) }

// AtLeast wraps the node so it matches min or more times.
func (n *Node) AtLeast(min int) (*Node, error) { return AtLeast(n, min) }

// Group wraps the node in a capturing group.
func (n *Node) Group() *Node { return Group(n) }

// NamedGroup wraps the node in a named capturing group.
func (n *Node) NamedGroup(name string) (*Node, error) { return NamedGroup(name, n) }
