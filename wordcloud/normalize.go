package wordcloud

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// boilerplateResponses are low-information answers excluded before
// weighting. Matching happens on the normalized text.
var boilerplateResponses = map[string]struct{}{
	"n/a":            {},
	"n.a.":           {},
	"none":           {},
	"nothing":        {},
	"nil":            {},
	"no comment":     {},
	"no comments":    {},
	"nothing to add": {},
	"all good":       {},
	"not sure":       {},
	"dont know":      {},
	"don't know":     {},
	"idk":            {},
	"not applicable": {},
	"see above":      {},
	"same as above":  {},
	"-":              {},
	"none really":    {},
}

// NormalizeResponse folds a raw answer into its canonical comparison
// form: NFKC, trimmed, single-spaced, lower-case.
func NormalizeResponse(s string) string {
	s = norm.NFKC.String(s)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// CountResponses collapses near-identical raw responses into occurrence
// counts. Answers whose normalized form is shorter than three
// characters or matches the boilerplate set are discarded. The second
// return value lists the distinct surviving responses in first-seen
// order, which downstream stages rely on for deterministic ties.
func CountResponses(raw []string) (map[string]int, []string) {
	counts := make(map[string]int)
	distinct := make([]string, 0, len(raw))
	for _, r := range raw {
		normalized := NormalizeResponse(r)
		if len([]rune(normalized)) <= 2 {
			continue
		}
		if _, boiler := boilerplateResponses[normalized]; boiler {
			continue
		}
		if _, seen := counts[normalized]; !seen {
			distinct = append(distinct, normalized)
		}
		counts[normalized]++
	}
	return counts, distinct
}
