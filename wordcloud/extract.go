package wordcloud

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordScore is the running weighted total for one candidate word while
// frequencies accumulate across responses.
type WordScore struct {
	Word  string
	Score float64
}

// ExtractFrequencies runs every sampled response through the tagging
// capability and accumulates each response's weight (occurrence count
// times sample ratio) onto its surviving noun and adjective
// candidates. Candidates come back in first-seen order. A nil tagger
// yields no words.
func ExtractFrequencies(counts map[string]int, sampled []string, ratio float64, tagger Tagger) []WordScore {
	if tagger == nil || ratio <= 0 {
		return nil
	}
	totals := make(map[string]float64)
	order := make([]string, 0, 64)
	for _, resp := range sampled {
		count := counts[resp]
		if count <= 0 {
			count = 1
		}
		weight := float64(count) * ratio
		clean := cleanSentence(resp)
		if clean == "" {
			continue
		}
		for _, noun := range tagger.Nouns(clean) {
			addCandidate(totals, &order, singularize(strings.ToLower(noun)), weight)
		}
		for _, adj := range tagger.Adjectives(clean) {
			addCandidate(totals, &order, strings.ToLower(adj), weight)
		}
	}
	out := make([]WordScore, len(order))
	for i, w := range order {
		out[i] = WordScore{Word: w, Score: totals[w]}
	}
	return out
}

func addCandidate(totals map[string]float64, order *[]string, word string, weight float64) {
	if !keepCandidate(word) {
		return
	}
	if _, seen := totals[word]; !seen {
		*order = append(*order, word)
	}
	totals[word] += weight
}

// keepCandidate rejects short tokens, stop-words and pure numbers.
func keepCandidate(w string) bool {
	if utf8.RuneCountInString(w) <= 2 {
		return false
	}
	if isStopWord(w) {
		return false
	}
	if isNumeric(w) {
		return false
	}
	return true
}

func isNumeric(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return w != ""
}

// cleanSentence strips punctuation except hyphens and collapses runs
// of whitespace so the tagger sees plain word sequences.
func cleanSentence(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	fields := strings.Fields(b.String())
	return strings.Join(fields, " ")
}

// singularize applies the plural-stripping rules used for noun
// candidates: berries→berry, boxes→box, products→product. Words ending
// in a double s ("class") are left alone.
func singularize(w string) string {
	if strings.HasSuffix(w, "ies") && utf8.RuneCountInString(w) > 4 {
		return w[:len(w)-3] + "y"
	}
	if strings.HasSuffix(w, "es") {
		stem := w[:len(w)-2]
		if strings.HasSuffix(stem, "s") || strings.HasSuffix(stem, "x") || strings.HasSuffix(stem, "z") {
			return stem
		}
	}
	if strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return w[:len(w)-1]
	}
	return w
}
