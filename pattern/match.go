package pattern

import (
	"regexp"
	"strconv"
	"sync"
)

// compileCache keeps compiled regexes keyed by their source text, so that
// repeated Test/Matches/Extract calls over the same tree don't recompile.
// Entries are kept for the process lifetime; pattern trees are small and the
// set of distinct regex texts in a run is bounded by what callers construct.
type compileCache struct {
	mutex   sync.RWMutex
	entries map[string]*regexp.Regexp
}

var cache = &compileCache{entries: make(map[string]*regexp.Regexp)}

func (c *compileCache) get(text string) (*regexp.Regexp, error) {
	c.mutex.RLock()
	re, ok := c.entries[text]
	c.mutex.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(text)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	c.entries[text] = re
	c.mutex.Unlock()

	return re, nil
}

// Compile compiles the node's regex text with the host regexp engine.
func (n *Node) Compile() (*regexp.Regexp, error) {
	return cache.get(n.Regex())
}

// Test reports whether any substring of input matches the pattern. An empty
// input is a normal "no match", never an error; a pattern whose text the host
// engine cannot compile (e.g. one containing a backreference) also reports
// false, keeping matching total.
func (n *Node) Test(input string) bool {
	if input == "" {
		return false
	}
	re, err := n.Compile()
	if err != nil {
		return false
	}
	return re.MatchString(input)
}

// Matches reports whether the entire input matches the pattern.
func (n *Node) Matches(input string) bool {
	if input == "" {
		return false
	}
	re, err := cache.get(`\A(?:` + n.Regex() + `)\z`)
	if err != nil {
		return false
	}
	return re.MatchString(input)
}

// namedGroupRe scans emitted regex text for named-group openers. Names come
// from NamedGroup construction, so the charset here mirrors groupNameRe.
var namedGroupRe = regexp.MustCompile(`\(\?<([A-Za-z][A-Za-z0-9]*)>`)

// Extract finds the first match of the pattern in input and returns its
// capture mapping, or nil when there is no match. An empty input and a
// pattern the host engine cannot compile are both treated as "no match",
// same as Test and Matches. The mapping holds the full match under "0" and "match", each
// participating positional group under "1", "2", ..., and each named group
// under its own name. Groups that did not participate in the match are
// omitted.
func (n *Node) Extract(input string) map[string]string {
	if input == "" {
		return nil
	}

	text := n.Regex()
	re, err := cache.get(text)
	if err != nil {
		return nil
	}

	loc := re.FindStringSubmatchIndex(input)
	if loc == nil {
		return nil
	}

	result := make(map[string]string)
	result["0"] = input[loc[0]:loc[1]]
	result["match"] = result["0"]

	for i := 1; i < re.NumSubexp()+1; i++ {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			continue
		}
		result[strconv.Itoa(i)] = input[start:end]
	}

	for _, m := range namedGroupRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		idx := re.SubexpIndex(name)
		if idx < 0 {
			// should not happen since the name came from the same text;
			// skip rather than fail the whole extraction
			continue
		}
		start, end := loc[2*idx], loc[2*idx+1]
		if start < 0 {
			continue
		}
		result[name] = input[start:end]
	}

	return result
}
