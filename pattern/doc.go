// Package pattern provides a composable builder for regular expressions.
//
// A pattern is an immutable tree of nodes (literals, alternations, character
// classes, quantifiers, groups) that compiles to a single regex string via
// Regex(). Construction validates its inputs up front, so emission and
// traversal never fail on a built tree.
//
// Key components:
//
// Node: one constituent of the expression tree, tagged with an Op. Composition
// helpers (Then, OneOrMore, NamedGroup, ...) return new nodes wrapping the
// receiver.
//
// Escape: backslash-escapes literal text for safe embedding in regex syntax.
//
// Matching façade: Test, Matches, Extract and TestAll compile the emitted
// string with the standard regexp engine and report results; compiled regexes
// are cached per process.
//
// Introspection façade: Explain and Visualize walk the tree and render a
// human-readable breakdown and an ASCII diagram.
//
// Usage:
//
//	id, err := pattern.Digit().OneOrMore().NamedGroup("id")
//	if err != nil {
//	    // handle error
//	}
//	p := pattern.Literal("user-").Then(id)
//	p.Regex()           // user\-(?<id>(?:\d)+)
//	p.Extract("user-42") // map[0:user-42 match:user-42 id:42 ...]
//
// Trees are plain values; there is no shared mutable state, so the same tree
// may be tested and inspected concurrently.
package pattern
