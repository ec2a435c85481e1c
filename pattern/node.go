package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Construction-time validation errors. All of them are raised synchronously
// by the constructors below; a node that was successfully constructed never
// fails during emission or traversal.
var (
	ErrEmptyAlternatives = errors.New("alternatives list must not be empty")
	ErrEmptySequence     = errors.New("sequence must contain at least one node")
	ErrBadQuantifier     = errors.New("invalid quantifier bounds")
	ErrBadGroupName      = errors.New("invalid group name")
	ErrBadCharRange      = errors.New("invalid character range")
	ErrEmptyRangeList    = errors.New("range list must not be empty")
	ErrBadRangeSpec      = errors.New("unparsable range specification")
	ErrEmptyBackrefName  = errors.New("backreference name must not be empty")
)

// Op identifies the kind of a pattern node.
type Op int

const (
	OpLiteral Op = iota
	OpEither
	OpSequence
	OpOptional
	OpOneOrMore
	OpZeroOrMore
	OpExactly
	OpBetween
	OpAtLeast
	OpAnyChar
	OpDigit
	OpWordChar
	OpWhitespace
	OpStartOfLine
	OpEndOfLine
	OpStartOfText
	OpEndOfText
	OpCharClass
	OpNotCharClass
	OpCharRange
	OpMultiRange
	OpGroup
	OpNamedGroup
	OpBackreference
)

var opNames = map[Op]string{
	OpLiteral:       "Literal",
	OpEither:        "Either",
	OpSequence:      "Sequence",
	OpOptional:      "Optional",
	OpOneOrMore:     "OneOrMore",
	OpZeroOrMore:    "ZeroOrMore",
	OpExactly:       "Exactly",
	OpBetween:       "Between",
	OpAtLeast:       "AtLeast",
	OpAnyChar:       "AnyChar",
	OpDigit:         "Digit",
	OpWordChar:      "WordChar",
	OpWhitespace:    "Whitespace",
	OpStartOfLine:   "StartOfLine",
	OpEndOfLine:     "EndOfLine",
	OpStartOfText:   "StartOfText",
	OpEndOfText:     "EndOfText",
	OpCharClass:     "CharClass",
	OpNotCharClass:  "NotCharClass",
	OpCharRange:     "CharRange",
	OpMultiRange:    "MultiRange",
	OpGroup:         "Group",
	OpNamedGroup:    "NamedGroup",
	OpBackreference: "Backreference",
}

// String returns the human-readable name of the op.
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Node is one constituent of a composable regex expression tree. Nodes are
// immutable once constructed: composition always produces a new parent that
// references existing children, so the same subtree may be shared and read
// concurrently without locking.
//
// Only the fields relevant to a node's Op are populated; the rest stay zero.
type Node struct {
	op   Op
	text string   // OpLiteral raw text, OpCharClass/OpNotCharClass set text
	alts []string // OpEither alternatives
	sub  []*Node  // children for Sequence, quantifiers, groups, MultiRange
	min  int      // OpExactly count, OpBetween/OpAtLeast lower bound
	max  int      // OpBetween upper bound
	name string   // OpNamedGroup/OpBackreference group name
	lo   rune     // OpCharRange lower bound
	hi   rune     // OpCharRange upper bound
}

// Op reports the node's kind.
func (n *Node) Op() Op { return n.op }

// Children returns the node's child nodes in order. Leaf nodes return nil.
// Every consumer that walks the tree (emission, explain, visualize) goes
// through this accessor; there is no reflective field access anywhere.
func (n *Node) Children() []*Node { return n.sub }

// groupNameRe intentionally excludes underscores so that emitted names stay
// valid in every engine dialect that supports (?<name>...) groups.
var groupNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Literal matches the given text verbatim; every regex metacharacter in it
// is escaped on emission.
func Literal(text string) *Node {
	return &Node{op: OpLiteral, text: text}
}

// Either matches any one of the given literal alternatives. The alternatives
// are raw strings, not sub-patterns: each one is escaped before joining, so
// "a|b" matches the three characters a, |, b.
func Either(alternatives ...string) (*Node, error) {
	if len(alternatives) == 0 {
		return nil, ErrEmptyAlternatives
	}
	alts := make([]string, len(alternatives))
	copy(alts, alternatives)
	return &Node{op: OpEither, alts: alts}, nil
}

// Sequence matches the given nodes one after another, in order.
func Sequence(nodes ...*Node) (*Node, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptySequence
	}
	sub := make([]*Node, len(nodes))
	copy(sub, nodes)
	return &Node{op: OpSequence, sub: sub}, nil
}

// Optional matches the child zero or one times.
func Optional(child *Node) *Node {
	return &Node{op: OpOptional, sub: []*Node{child}}
}

// OneOrMore matches the child one or more times.
func OneOrMore(child *Node) *Node {
	return &Node{op: OpOneOrMore, sub: []*Node{child}}
}

// ZeroOrMore matches the child zero or more times.
func ZeroOrMore(child *Node) *Node {
	return &Node{op: OpZeroOrMore, sub: []*Node{child}}
}

// Exactly matches the child exactly n times.
func Exactly(child *Node, n int) (*Node, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: count %d is negative", ErrBadQuantifier, n)
	}
	return &Node{op: OpExactly, sub: []*Node{child}, min: n}, nil
}

// Between matches the child at least min and at most max times.
func Between(child *Node, min, max int) (*Node, error) {
	if min < 0 {
		return nil, fmt.Errorf("%w: min %d is negative", ErrBadQuantifier, min)
	}
	if max < min {
		return nil, fmt.Errorf("%w: max %d is less than min %d", ErrBadQuantifier, max, min)
	}
	return &Node{op: OpBetween, sub: []*Node{child}, min: min, max: max}, nil
}

// AtLeast matches the child n or more times.
func AtLeast(child *Node, n int) (*Node, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: min %d is negative", ErrBadQuantifier, n)
	}
	return &Node{op: OpAtLeast, sub: []*Node{child}, min: n}, nil
}

// AnyChar matches any single character.
func AnyChar() *Node { return &Node{op: OpAnyChar} }

// Digit matches a single decimal digit.
func Digit() *Node { return &Node{op: OpDigit} }

// WordChar matches a single word character (letter, digit or underscore).
func WordChar() *Node { return &Node{op: OpWordChar} }

// Whitespace matches a single whitespace character.
func Whitespace() *Node { return &Node{op: OpWhitespace} }

// StartOfLine anchors at the beginning of a line.
func StartOfLine() *Node { return &Node{op: OpStartOfLine} }

// EndOfLine anchors at the end of a line.
func EndOfLine() *Node { return &Node{op: OpEndOfLine} }

// StartOfText anchors at the beginning of the whole input.
func StartOfText() *Node { return &Node{op: OpStartOfText} }

// EndOfText anchors at the end of the whole input.
func EndOfText() *Node { return &Node{op: OpEndOfText} }

// CharClass matches any single character in the given set.
// ] \ ^ - inside the set are escaped on emission.
func CharClass(set string) *Node {
	return &Node{op: OpCharClass, text: set}
}

// NotCharClass matches any single character not in the given set.
func NotCharClass(set string) *Node {
	return &Node{op: OpNotCharClass, text: set}
}

// CharRange matches any single character between lo and hi inclusive,
// compared by code point.
func CharRange(lo, hi rune) (*Node, error) {
	if lo > hi {
		return nil, fmt.Errorf("%w: start %q is after end %q", ErrBadCharRange, lo, hi)
	}
	return &Node{op: OpCharRange, lo: lo, hi: hi}, nil
}

// CharRangeStr is CharRange over textual bounds; each bound must be exactly
// one character.
func CharRangeStr(lo, hi string) (*Node, error) {
	lr, err := singleRune(lo)
	if err != nil {
		return nil, err
	}
	hr, err := singleRune(hi)
	if err != nil {
		return nil, err
	}
	return CharRange(lr, hr)
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: bound %q is not a single character", ErrBadCharRange, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// MultiRange merges the given character ranges into one character class.
// Every argument must be a CharRange node.
func MultiRange(ranges ...*Node) (*Node, error) {
	if len(ranges) == 0 {
		return nil, ErrEmptyRangeList
	}
	sub := make([]*Node, len(ranges))
	for i, r := range ranges {
		if r == nil || r.op != OpCharRange {
			return nil, fmt.Errorf("%w: element %d is not a character range", ErrBadCharRange, i)
		}
		sub[i] = r
	}
	return &Node{op: OpMultiRange, sub: sub}, nil
}

// rangeSpecRe is deliberately permissive: single or double quotes, optional
// whitespace around the dash. Groups that don't fit are simply skipped.
var rangeSpecRe = regexp.MustCompile(`['"](.)['"]\s*-\s*['"](.)['"]`)

// MultiRangeSpec builds a MultiRange from a textual specification such as
// "'a'-'z', 'A'-'Z'". It fails when no valid range can be extracted, or when
// any extracted range is inverted.
func MultiRangeSpec(spec string) (*Node, error) {
	matches := rangeSpecRe.FindAllStringSubmatch(spec, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadRangeSpec, spec)
	}
	ranges := make([]*Node, 0, len(matches))
	for _, m := range matches {
		r, err := CharRangeStr(m[1], m[2])
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return MultiRange(ranges...)
}

// Group wraps the child in a capturing group. Unlike the quantifier grouping
// policy this is unconditional: a capture is a capture, not an optimization.
func Group(child *Node) *Node {
	return &Node{op: OpGroup, sub: []*Node{child}}
}

// NamedGroup wraps the child in a named capturing group. The name must start
// with a letter and contain only letters and digits.
func NamedGroup(name string, child *Node) (*Node, error) {
	if !groupNameRe.MatchString(name) {
		return nil, fmt.Errorf("%w: %q must match [A-Za-z][A-Za-z0-9]*", ErrBadGroupName, name)
	}
	return &Node{op: OpNamedGroup, sub: []*Node{child}, name: name}, nil
}

// Backreference matches the same text a previously matched named group did.
func Backreference(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyBackrefName
	}
	return &Node{op: OpBackreference, name: name}, nil
}
