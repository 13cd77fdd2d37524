package wordcloud

import "encoding/json"

// WordFrequency is one entry of the ranked frequency table. Word is
// lower-cased and Frequency is the rounded weighted score.
type WordFrequency struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// PlacementRect is the axis-aligned bounding box of one placed word in
// canvas pixel space. Rotated words store swapped width and height so
// collision checks stay rectangle-only.
type PlacementRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// PlacedWord couples a ranked word with its final placement.
type PlacedWord struct {
	Word      string
	Frequency int
	FontSize  int
	Color     string
	Rotated   bool
	Rect      PlacementRect
}

// LayoutResult holds the outcome of one placement pass. Dropped lists
// words that could not be placed at any font size down to the floor.
type LayoutResult struct {
	Placed  []PlacedWord
	Dropped []string
}

// Config aggregates runtime settings persisted to config.json.
type Config struct {
	MaxUniqueResponses int      `json:"maxUniqueResponses"`
	MaxWords           int      `json:"maxWords"`
	MinFontSize        int      `json:"minFontSize"`
	ShrinkStep         int      `json:"shrinkStep"`
	MaxAttempts        int      `json:"maxAttempts"`
	SpiralStep         float64  `json:"spiralStep"`
	EdgePadding        float64  `json:"edgePadding"`
	ShapeFactor        float64  `json:"shapeFactor"`
	ExtractDelayMS     int      `json:"extractDelayMs"`
	PositivePalette    []string `json:"positivePalette,omitempty"`
	NegativePalette    []string `json:"negativePalette,omitempty"`
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.MaxUniqueResponses <= 0 {
		c.MaxUniqueResponses = 2000
	}
	if c.MaxWords <= 0 {
		c.MaxWords = 30
	}
	if c.MinFontSize <= 0 {
		c.MinFontSize = 10
	}
	if c.ShrinkStep <= 0 {
		c.ShrinkStep = 2
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 2000
	}
	if c.SpiralStep == 0 {
		c.SpiralStep = 0.12
	}
	if c.EdgePadding == 0 {
		c.EdgePadding = 2
	}
	if c.ShapeFactor == 0 {
		c.ShapeFactor = 0.7
	}
	if c.ExtractDelayMS <= 0 {
		c.ExtractDelayMS = 250
	}
}
