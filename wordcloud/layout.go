package wordcloud

import "math"

// MeasureFunc reports the horizontal pixel extents of a word rendered
// at the given font size. Layout receives it as a parameter so tests
// can run without rasterizing glyphs; MeasureText is the production
// implementation.
type MeasureFunc func(text string, size int) (w, h float64)

// Layout places each word on the canvas along an outward Archimedean
// spiral, dodging every previously placed bounding box. The
// highest-frequency word sits at the canvas midpoint; later words
// alternate spiral direction by index parity, and every third word
// after the first three is rotated 90 degrees. A word that cannot be
// placed within the attempt budget shrinks by ShrinkStep and retries;
// below MinFontSize it is dropped and reported in Dropped. A canvas
// with no usable area produces an empty result.
func Layout(words []WordFrequency, sizes []int, colors []string, width, height int, cfg Config, measure MeasureFunc) LayoutResult {
	var res LayoutResult
	if width <= 0 || height <= 0 || len(words) == 0 {
		return res
	}
	cfg.ApplyDefaults()
	if measure == nil {
		measure = MeasureText
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	shapeRatio := float64(width) / float64(height) * cfg.ShapeFactor

	placed := make([]PlacedWord, 0, len(words))
	for i, wf := range words {
		size := cfg.MinFontSize
		if i < len(sizes) {
			size = sizes[i]
		}
		rotated := i >= 3 && i%3 == 0
		dir := 1.0
		if i%2 == 1 {
			dir = -1
		}
		rect, finalSize, ok := placeWord(wf.Word, size, rotated, dir, cx, cy, shapeRatio, width, height, cfg, measure, placed)
		if !ok {
			res.Dropped = append(res.Dropped, wf.Word)
			continue
		}
		color := ""
		if len(colors) > 0 {
			color = colors[i%len(colors)]
		}
		placed = append(placed, PlacedWord{
			Word:      wf.Word,
			Frequency: wf.Frequency,
			FontSize:  finalSize,
			Color:     color,
			Rotated:   rotated,
			Rect:      rect,
		})
	}
	res.Placed = placed
	return res
}

// placeWord walks the spiral until the word's box is inside the canvas
// and clear of every placed box, shrinking the font when the local
// attempt budget runs out.
func placeWord(word string, size int, rotated bool, dir, cx, cy, shapeRatio float64, width, height int, cfg Config, measure MeasureFunc, placed []PlacedWord) (PlacementRect, int, bool) {
	for ; size >= cfg.MinFontSize; size -= cfg.ShrinkStep {
		w, h := measure(word, size)
		if rotated {
			w, h = h, w
		}
		theta := 0.0
		radius := 0.0
		for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
			rect := PlacementRect{
				X:      cx + math.Cos(theta*dir)*radius*shapeRatio - w/2,
				Y:      cy + math.Sin(theta*dir)*radius - h/2,
				Width:  w,
				Height: h,
			}
			if insideCanvas(rect, width, height, cfg.EdgePadding) && !collides(rect, placed) {
				return rect, size, true
			}
			theta += cfg.SpiralStep
			radius += cfg.SpiralStep
		}
	}
	return PlacementRect{}, 0, false
}

func insideCanvas(r PlacementRect, width, height int, padding float64) bool {
	return r.X >= padding &&
		r.Y >= padding &&
		r.X+r.Width <= float64(width)-padding &&
		r.Y+r.Height <= float64(height)-padding
}

func collides(r PlacementRect, placed []PlacedWord) bool {
	for i := range placed {
		if overlaps(r, placed[i].Rect) {
			return true
		}
	}
	return false
}

// overlaps is a strict axis-aligned rectangle intersection test; boxes
// that merely touch edges do not overlap.
func overlaps(a, b PlacementRect) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}
