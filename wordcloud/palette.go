package wordcloud

import (
	"math/rand"
	"strings"
	"time"
)

var defaultPositivePalette = []string{
	"#2d7dd2", "#2e933c", "#eeb902", "#f45d01",
	"#087e8b", "#97cc04", "#6a4c93", "#474647",
}

var defaultNegativePalette = []string{
	"#8d0801", "#bf0603", "#a63c06", "#f4d58d",
	"#708d81", "#5c0002", "#001427", "#710000",
}

// negativeKeywords mark a question label as negative-sentiment, which
// flips the cloud onto the negative palette.
var negativeKeywords = []string{
	"negative", "dislike", "worst", "least", "hate", "don't like",
}

// ChoosePalette selects the palette for one rendering pass based on
// the question label. Matching is case-insensitive substring search.
func ChoosePalette(questionLabel string, cfg Config) []string {
	positive := cfg.PositivePalette
	if len(positive) == 0 {
		positive = defaultPositivePalette
	}
	negative := cfg.NegativePalette
	if len(negative) == 0 {
		negative = defaultNegativePalette
	}
	label := strings.ToLower(questionLabel)
	for _, kw := range negativeKeywords {
		if strings.Contains(label, kw) {
			return cloneStrings(negative)
		}
	}
	return cloneStrings(positive)
}

// AssignColors hands out one palette color per word by walking a
// shuffled pool. When a color would run three in a row a different
// color further down the pool is swapped in; an exhausted pool is
// reshuffled and the walk continues. For palettes with at least two
// distinct colors no color ever appears more than twice consecutively.
func AssignColors(palette []string, n int, rng *rand.Rand) []string {
	if n <= 0 || len(palette) == 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	pool := cloneStrings(palette)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	out := make([]string, n)
	pi := 0
	for i := 0; i < n; i++ {
		if pi >= len(pool) {
			rng.Shuffle(len(pool), func(a, b int) { pool[a], pool[b] = pool[b], pool[a] })
			pi = 0
		}
		c := pool[pi]
		if i >= 2 && out[i-1] == c && out[i-2] == c {
			if swapDifferent(pool, pi, c) {
				c = pool[pi]
			} else {
				// Everything left in the pool matches; start a fresh
				// shuffle and pull a different color from it.
				rng.Shuffle(len(pool), func(a, b int) { pool[a], pool[b] = pool[b], pool[a] })
				pi = 0
				swapDifferent(pool, pi, c)
				c = pool[pi]
			}
		}
		out[i] = c
		pi++
	}
	return out
}

// swapDifferent moves the first color after pos that differs from c
// into pos. Returns false when no such color exists.
func swapDifferent(pool []string, pos int, c string) bool {
	for j := pos; j < len(pool); j++ {
		if pool[j] != c {
			pool[pos], pool[j] = pool[j], pool[pos]
			return true
		}
	}
	return false
}
