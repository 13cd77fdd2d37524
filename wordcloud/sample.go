package wordcloud

import (
	"math/rand"
	"time"
)

// SampleResponses caps the distinct response set for bounded runtime on
// very large datasets. At or below the limit the input passes through
// with ratio 1. Above it a uniform random subset of exactly limit
// responses is drawn and the ratio distinct/limit is returned so that
// weights contributed by sampled responses still approximate the full
// corpus. Sampling never fails.
func SampleResponses(distinct []string, limit int, rng *rand.Rand) ([]string, float64) {
	if limit <= 0 || len(distinct) <= limit {
		return distinct, 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	idx := rng.Perm(len(distinct))[:limit]
	sampled := make([]string, limit)
	for i, j := range idx {
		sampled[i] = distinct[j]
	}
	return sampled, float64(len(distinct)) / float64(limit)
}
