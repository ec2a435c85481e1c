package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// CaseResult is the outcome of one test case in a TestAll run.
type CaseResult struct {
	Input    string
	Expected bool
	Actual   bool
}

// Passed reports whether the actual result agreed with the expectation.
func (c CaseResult) Passed() bool { return c.Expected == c.Actual }

// Report aggregates the results of a TestAll run.
type Report struct {
	Total   int
	Passed  int
	Failed  int
	Results []CaseResult
}

// TestAll runs Test against every input in cases and compares the result with
// the expected value. Cases are evaluated in sorted input order so reports
// are deterministic.
func (n *Node) TestAll(cases map[string]bool) *Report {
	return RunCases(n.Test, cases)
}

// RunCases evaluates an arbitrary match predicate against every input in
// cases, in sorted input order. The empty-input rule lives here (and in the
// node façade's Test/Matches/Extract): an empty input counts as "no match"
// regardless of what the predicate would say, so callers supplying a bare
// engine predicate get the same policy as node-based matching.
func RunCases(test func(string) bool, cases map[string]bool) *Report {
	inputs := make([]string, 0, len(cases))
	for input := range cases {
		inputs = append(inputs, input)
	}
	sort.Strings(inputs)

	report := &Report{Total: len(inputs)}
	for _, input := range inputs {
		result := CaseResult{
			Input:    input,
			Expected: cases[input],
			Actual:   input != "" && test(input),
		}
		if result.Passed() {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}
	return report
}

func matchLabel(b bool) string {
	if b {
		return "match"
	}
	return "no match"
}

// Summary renders the report as plain text: one line per case with a
// pass/fail icon, then an aggregate banner.
func (r *Report) Summary() string {
	var b strings.Builder
	for _, res := range r.Results {
		icon := "✓"
		if !res.Passed() {
			icon = "✗"
		}
		fmt.Fprintf(&b, "%s %-20q expected %-8s got %s\n",
			icon, res.Input, matchLabel(res.Expected), matchLabel(res.Actual))
	}
	if r.Failed == 0 {
		fmt.Fprintf(&b, "ALL PASSED (%d/%d)\n", r.Passed, r.Total)
	} else {
		fmt.Fprintf(&b, "%d FAILED, %d passed (of %d)\n", r.Failed, r.Passed, r.Total)
	}
	return b.String()
}
