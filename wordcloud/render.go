package wordcloud

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce   sync.Once
	fontSource *opentype.Font

	faceMu    sync.Mutex
	faceCache = map[int]font.Face{}
)

func loadFont() *opentype.Font {
	fontOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err == nil {
			fontSource = f
		}
	})
	return fontSource
}

func faceForSize(size int) font.Face {
	faceMu.Lock()
	defer faceMu.Unlock()
	if f, ok := faceCache[size]; ok {
		return f
	}
	src := loadFont()
	if src == nil {
		return nil
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	faceCache[size] = face
	return face
}

// MeasureText measures a word with the bundled Go Regular face. It is
// the default MeasureFunc for Layout.
func MeasureText(text string, size int) (float64, float64) {
	face := faceForSize(size)
	if face == nil {
		// Rough geometric estimate keeps layout alive if the bundled
		// font fails to parse.
		return float64(len(text)) * float64(size) * 0.6, float64(size)
	}
	adv := font.MeasureString(face, text)
	m := face.Metrics()
	return fixedToFloat(adv), fixedToFloat(m.Ascent + m.Descent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Render rasterizes one placement pass onto a white canvas. Dropped
// words are simply absent. A degenerate canvas yields nil.
func Render(layout LayoutResult, width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for _, pw := range layout.Placed {
		col, ok := parseHexColor(pw.Color)
		if !ok {
			col = color.RGBA{A: 0xff}
		}
		if pw.Rotated {
			drawRotatedWord(img, pw, col)
		} else {
			drawWord(img, pw, col)
		}
	}
	return img
}

// EncodePNG writes the rendered cloud as a PNG stream.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func drawWord(dst *image.RGBA, pw PlacedWord, col color.Color) {
	face := faceForSize(pw.FontSize)
	if face == nil {
		return
	}
	ascent := face.Metrics().Ascent
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: floatToFixed(pw.Rect.X),
			Y: floatToFixed(pw.Rect.Y) + ascent,
		},
	}
	d.DrawString(pw.Word)
}

// drawRotatedWord renders the word horizontally into a scratch image
// and transposes the pixels 90 degrees clockwise into the placement
// box, whose width/height are already swapped.
func drawRotatedWord(dst *image.RGBA, pw PlacedWord, col color.Color) {
	face := faceForSize(pw.FontSize)
	if face == nil {
		return
	}
	textW, textH := MeasureText(pw.Word, pw.FontSize)
	tw := int(textW + 0.5)
	th := int(textH + 0.5)
	if tw <= 0 || th <= 0 {
		return
	}
	scratch := image.NewRGBA(image.Rect(0, 0, tw, th))
	d := font.Drawer{
		Dst:  scratch,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: face.Metrics().Ascent},
	}
	d.DrawString(pw.Word)

	rotated := image.NewRGBA(image.Rect(0, 0, th, tw))
	for y := 0; y < th; y++ {
		for x := 0; x < tw; x++ {
			rotated.Set(th-1-y, x, scratch.At(x, y))
		}
	}
	target := image.Rect(
		int(pw.Rect.X+0.5), int(pw.Rect.Y+0.5),
		int(pw.Rect.X+0.5)+th, int(pw.Rect.Y+0.5)+tw,
	)
	draw.Draw(dst, target, rotated, image.Point{}, draw.Over)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// parseHexColor understands #rgb and #rrggbb.
func parseHexColor(s string) (color.RGBA, bool) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}
