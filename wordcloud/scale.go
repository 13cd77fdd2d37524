package wordcloud

import "math"

// FontSizes maps ranked frequencies onto pixel font sizes. The scale
// is logarithmic so a single dominant word compresses instead of
// dwarfing every other word into illegibility; ordering stays
// monotone. When all frequencies are equal every word gets the
// maximum size.
func FontSizes(words []WordFrequency, canvasHeight int) []int {
	if len(words) == 0 || canvasHeight <= 0 {
		return nil
	}
	maxFont := int(math.Round(float64(canvasHeight) / 5))
	minFont := int(math.Round(float64(canvasHeight) / 25))

	minFreq, maxFreq := words[0].Frequency, words[0].Frequency
	for _, w := range words[1:] {
		if w.Frequency < minFreq {
			minFreq = w.Frequency
		}
		if w.Frequency > maxFreq {
			maxFreq = w.Frequency
		}
	}

	sizes := make([]int, len(words))
	if minFreq == maxFreq {
		for i := range sizes {
			sizes[i] = maxFont
		}
		return sizes
	}

	logMin := math.Log(float64(minFreq) + 1)
	logMax := math.Log(float64(maxFreq) + 1)
	span := logMax - logMin
	for i, w := range words {
		t := (math.Log(float64(w.Frequency)+1) - logMin) / span
		sizes[i] = int(math.Round(float64(minFont) + t*float64(maxFont-minFont)))
	}
	return sizes
}
