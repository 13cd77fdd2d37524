package wordcloud

import (
	"fmt"
	"math"
	"testing"
)

// fixedMeasure sizes a word purely from its length so layout tests do
// not depend on glyph rasterization.
func fixedMeasure(text string, size int) (float64, float64) {
	return float64(len(text)) * float64(size) * 0.6, float64(size)
}

func layoutFixture(n int) ([]WordFrequency, []int, []string) {
	words := make([]WordFrequency, n)
	for i := range words {
		words[i] = WordFrequency{Word: fmt.Sprintf("word%02d", i), Frequency: n - i}
	}
	sizes := FontSizes(words, 560)
	colors := AssignColors(defaultPositivePalette, n, nil)
	return words, sizes, colors
}

func TestLayoutNoOverlapAndInBounds(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	words, sizes, colors := layoutFixture(25)

	res := Layout(words, sizes, colors, 900, 560, cfg, fixedMeasure)
	if len(res.Placed)+len(res.Dropped) != len(words) {
		t.Fatalf("placed %d + dropped %d != %d words", len(res.Placed), len(res.Dropped), len(words))
	}
	if len(res.Placed) == 0 {
		t.Fatal("nothing placed on a 900x560 canvas")
	}
	for i := range res.Placed {
		r := res.Placed[i].Rect
		if !insideCanvas(r, 900, 560, cfg.EdgePadding) {
			t.Fatalf("word %q escapes canvas: %+v", res.Placed[i].Word, r)
		}
		for j := i + 1; j < len(res.Placed); j++ {
			if overlaps(r, res.Placed[j].Rect) {
				t.Fatalf("words %q and %q overlap: %+v vs %+v",
					res.Placed[i].Word, res.Placed[j].Word, r, res.Placed[j].Rect)
			}
		}
	}
}

func TestLayoutCentersFirstWord(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	words := []WordFrequency{{Word: "anchor", Frequency: 10}}
	res := Layout(words, []int{40}, nil, 900, 560, cfg, fixedMeasure)
	if len(res.Placed) != 1 {
		t.Fatalf("expected one placed word, got %+v", res)
	}
	r := res.Placed[0].Rect
	if math.Abs(r.X+r.Width/2-450) > 1e-6 || math.Abs(r.Y+r.Height/2-280) > 1e-6 {
		t.Fatalf("first word not centered: %+v", r)
	}
}

func TestLayoutEmptyCanvas(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	words, sizes, _ := layoutFixture(5)
	res := Layout(words, sizes, nil, 0, 560, cfg, fixedMeasure)
	if len(res.Placed) != 0 || len(res.Dropped) != 0 {
		t.Fatalf("zero-width canvas should produce an empty result, got %+v", res)
	}
}

func TestLayoutRotationSwapsExtents(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	words, sizes, _ := layoutFixture(8)
	res := Layout(words, sizes, nil, 1600, 1200, cfg, fixedMeasure)

	for _, p := range res.Placed {
		w, h := fixedMeasure(p.Word, p.FontSize)
		if p.Rotated {
			w, h = h, w
		}
		if math.Abs(p.Rect.Width-w) > 1e-6 || math.Abs(p.Rect.Height-h) > 1e-6 {
			t.Fatalf("word %q (rotated=%v) extents %.1fx%.1f, rect %.1fx%.1f",
				p.Word, p.Rotated, w, h, p.Rect.Width, p.Rect.Height)
		}
	}

	sawRotated := false
	for _, p := range res.Placed {
		sawRotated = sawRotated || p.Rotated
	}
	if !sawRotated {
		t.Fatal("expected at least one rotated word among the later placements")
	}
}

func TestLayoutShrinksOrDropsOnTinyCanvas(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	words, sizes, _ := layoutFixture(20)
	// 20 words at the 10px floor need more area than an 80x60 canvas
	// offers, so at least some of them must be dropped.
	res := Layout(words, sizes, nil, 80, 60, cfg, fixedMeasure)
	if len(res.Placed)+len(res.Dropped) != len(words) {
		t.Fatalf("placed %d + dropped %d != %d", len(res.Placed), len(res.Dropped), len(words))
	}
	if len(res.Dropped) == 0 {
		t.Fatal("expected drops on an 80x60 canvas")
	}
	for _, p := range res.Placed {
		if p.FontSize < cfg.MinFontSize {
			t.Fatalf("word %q placed below the font floor: %d", p.Word, p.FontSize)
		}
	}
}

func TestOverlapsIsStrict(t *testing.T) {
	a := PlacementRect{X: 0, Y: 0, Width: 10, Height: 10}
	b := PlacementRect{X: 10, Y: 0, Width: 10, Height: 10}
	if overlaps(a, b) {
		t.Fatal("edge-touching rects must not count as overlapping")
	}
	c := PlacementRect{X: 9, Y: 9, Width: 10, Height: 10}
	if !overlaps(a, c) {
		t.Fatal("intersecting rects must overlap")
	}
}
