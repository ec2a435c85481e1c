package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/rexlang/rex/pattern"
)

var (
	passStyle    = color.New(color.FgGreen, color.Bold)
	failStyle    = color.New(color.FgRed, color.Bold)
	nameStyle    = color.New(color.FgCyan, color.Bold)
	regexStyle   = color.New(color.FgYellow)
	inputStyle   = color.New(color.FgWhite)
	sectionStyle = color.New(color.FgHiBlue, color.Bold)
)

const reportTemplate = `{{title .Name .Regex}}
{{- range .Results}}
{{caseLine .}}
{{- end}}
{{banner .Passed .Failed .Total}}
`

// reportData flattens a pattern report for the template.
type reportData struct {
	Name    string
	Regex   string
	Total   int
	Passed  int
	Failed  int
	Results []pattern.CaseResult
}

// RenderReport formats a TestAll report with colored pass/fail markers.
func RenderReport(name string, regex string, r *pattern.Report) string {
	data := reportData{
		Name:    name,
		Regex:   regex,
		Total:   r.Total,
		Passed:  r.Passed,
		Failed:  r.Failed,
		Results: r.Results,
	}

	funcMap := template.FuncMap{
		"title":    title,
		"caseLine": caseLine,
		"banner":   banner,
	}

	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting report: %v", err)
	}
	return buf.String()
}

// template helper functions

func title(name, regex string) string {
	return nameStyle.Sprintf("%s", name) + " " + regexStyle.Sprintf("(%s)", regex)
}

func matchLabel(b bool) string {
	if b {
		return "match"
	}
	return "no match"
}

func caseLine(res pattern.CaseResult) string {
	var icon string
	if res.Passed() {
		icon = passStyle.Sprint("✓")
	} else {
		icon = failStyle.Sprint("✗")
	}
	line := fmt.Sprintf("%s %-20q expected %-8s got %s",
		icon, res.Input, matchLabel(res.Expected), matchLabel(res.Actual))
	if res.Passed() {
		return line
	}
	return line + failStyle.Sprint("  <-- FAIL")
}

func banner(passed, failed, total int) string {
	if failed == 0 {
		return passStyle.Sprintf("ALL PASSED (%d/%d)", passed, total)
	}
	return failStyle.Sprintf("%d FAILED, %d passed (of %d)", failed, passed, total)
}

// RenderPatternInfo formats a pattern's regex, explanation and tree diagram
// as one labeled block.
func RenderPatternInfo(name string, n *pattern.Node) string {
	var b strings.Builder
	b.WriteString(nameStyle.Sprintf("%s\n", name))
	b.WriteString(regexStyle.Sprintf("regex: %s\n", n.Regex()))
	b.WriteString(sectionStyle.Sprint("explain:\n"))
	b.WriteString(indent(n.Explain(), "  "))
	b.WriteString(sectionStyle.Sprint("tree:\n"))
	b.WriteString(indent(n.Visualize(), "  "))
	b.WriteByte('\n')
	return b.String()
}

// RenderInputs runs the pattern against each input and formats one line per
// input with the match outcome.
func RenderInputs(n *pattern.Node, inputs []string, full bool) string {
	var b strings.Builder
	for _, input := range inputs {
		var matched bool
		if full {
			matched = n.Matches(input)
		} else {
			matched = n.Test(input)
		}
		if matched {
			b.WriteString(passStyle.Sprint("match    "))
		} else {
			b.WriteString(failStyle.Sprint("no match "))
		}
		b.WriteString(inputStyle.Sprintf("%q\n", input))
	}
	return b.String()
}

func indent(s string, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
