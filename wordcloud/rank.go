package wordcloud

import (
	"math"
	"sort"
)

// RankWords rounds the accumulated scores to integer frequencies,
// sorts descending and keeps the strongest limit entries. The sort is
// stable so equal frequencies keep their first-seen order.
func RankWords(scores []WordScore, limit int) []WordFrequency {
	if limit <= 0 {
		limit = 30
	}
	ranked := make([]WordFrequency, 0, len(scores))
	for _, s := range scores {
		freq := int(math.Round(s.Score))
		if freq < 1 {
			continue
		}
		ranked = append(ranked, WordFrequency{Word: s.Word, Frequency: freq})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
