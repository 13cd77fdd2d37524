package wordcloud

import (
	"math/rand"
	"testing"
)

func TestChoosePaletteByLabel(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	tests := []struct {
		label    string
		negative bool
	}{
		{"What do you like most?", false},
		{"What do you dislike most?", true},
		{"What is the WORST part of the product?", true},
		{"What feature do you use least often?", true},
		{"Any other feedback?", false},
		{"", false},
	}
	for _, tc := range tests {
		got := ChoosePalette(tc.label, cfg)
		want := defaultPositivePalette
		if tc.negative {
			want = defaultNegativePalette
		}
		if got[0] != want[0] {
			t.Fatalf("ChoosePalette(%q) picked wrong palette: got %v", tc.label, got)
		}
	}
}

func TestChoosePaletteConfigOverride(t *testing.T) {
	cfg := Config{
		PositivePalette: []string{"#111111"},
		NegativePalette: []string{"#222222"},
	}
	if got := ChoosePalette("favorite feature", cfg); got[0] != "#111111" {
		t.Fatalf("positive override ignored: %v", got)
	}
	if got := ChoosePalette("biggest dislike", cfg); got[0] != "#222222" {
		t.Fatalf("negative override ignored: %v", got)
	}
}

func TestChoosePaletteReturnsCopy(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	got := ChoosePalette("anything", cfg)
	got[0] = "#badbad"
	if defaultPositivePalette[0] == "#badbad" {
		t.Fatal("ChoosePalette leaked the shared palette slice")
	}
}

func TestAssignColorsNoTriples(t *testing.T) {
	for _, paletteSize := range []int{2, 3, 5, 8} {
		palette := defaultPositivePalette[:paletteSize]
		for seed := int64(0); seed < 20; seed++ {
			colors := AssignColors(palette, 60, rand.New(rand.NewSource(seed)))
			if len(colors) != 60 {
				t.Fatalf("palette %d seed %d: got %d colors", paletteSize, seed, len(colors))
			}
			for i := 2; i < len(colors); i++ {
				if colors[i] == colors[i-1] && colors[i] == colors[i-2] {
					t.Fatalf("palette %d seed %d: color %q three in a row at %d",
						paletteSize, seed, colors[i], i)
				}
			}
		}
	}
}

func TestAssignColorsDrawsFromPalette(t *testing.T) {
	palette := []string{"#aa0000", "#00bb00"}
	allowed := map[string]struct{}{"#aa0000": {}, "#00bb00": {}}
	colors := AssignColors(palette, 15, rand.New(rand.NewSource(3)))
	for _, c := range colors {
		if _, ok := allowed[c]; !ok {
			t.Fatalf("unexpected color %q", c)
		}
	}
}

func TestAssignColorsDegenerateInput(t *testing.T) {
	if got := AssignColors(nil, 5, rand.New(rand.NewSource(1))); got != nil {
		t.Fatalf("empty palette should yield nil, got %v", got)
	}
	if got := AssignColors([]string{"#ffffff"}, 0, rand.New(rand.NewSource(1))); got != nil {
		t.Fatalf("zero words should yield nil, got %v", got)
	}
	// A single-color palette cannot avoid repeats but must still fill.
	got := AssignColors([]string{"#ffffff"}, 4, rand.New(rand.NewSource(1)))
	if len(got) != 4 {
		t.Fatalf("single-color palette: got %d colors, want 4", len(got))
	}
}
