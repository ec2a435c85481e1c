package pattern

import "strings"

// treePrinter accumulates an ASCII tree rendering. Nesting is tracked with a
// stack of padding fragments so that vertical continuation bars line up with
// their branch.
type treePrinter struct {
	pad    []string
	output strings.Builder
}

func (tp *treePrinter) indent(s string) {
	tp.pad = append(tp.pad, s)
}

func (tp *treePrinter) unindent() {
	tp.pad = tp.pad[:len(tp.pad)-1]
}

func (tp *treePrinter) write(s string) {
	tp.output.WriteString(s)
}

func (tp *treePrinter) writel(s string) {
	tp.output.WriteString(s)
	tp.output.WriteByte('\n')
}

// pwrite writes the accumulated padding followed by s.
func (tp *treePrinter) pwrite(s string) {
	for _, p := range tp.pad {
		tp.output.WriteString(p)
	}
	tp.output.WriteString(s)
}

func (tp *treePrinter) pwritel(s string) {
	tp.pwrite(s)
	tp.output.WriteByte('\n')
}

// branch writes one child entry and recurses via fn, choosing the connector
// by whether the child is the last of its siblings.
func (tp *treePrinter) branch(last bool, fn func()) {
	if last {
		tp.pwrite("└── ")
		tp.indent("    ")
	} else {
		tp.pwrite("├── ")
		tp.indent("│   ")
	}
	fn()
	tp.unindent()
}
