package wordcloud

import "testing"

func TestFontSizesEqualFrequencies(t *testing.T) {
	words := []WordFrequency{{Word: "solo", Frequency: 100}}
	sizes := FontSizes(words, 500)
	if len(sizes) != 1 {
		t.Fatalf("expected one size, got %v", sizes)
	}
	// H/5 = 100: the equal-frequency branch always uses the maximum.
	if sizes[0] != 100 {
		t.Fatalf("single word size = %d, want 100", sizes[0])
	}
}

func TestFontSizesMonotone(t *testing.T) {
	words := []WordFrequency{
		{Word: "a", Frequency: 120},
		{Word: "b", Frequency: 40},
		{Word: "c", Frequency: 40},
		{Word: "d", Frequency: 7},
		{Word: "e", Frequency: 1},
	}
	sizes := FontSizes(words, 500)
	for i := range words {
		for j := range words {
			if words[i].Frequency > words[j].Frequency && sizes[i] < sizes[j] {
				t.Fatalf("monotonicity violated: freq %d→size %d vs freq %d→size %d",
					words[i].Frequency, sizes[i], words[j].Frequency, sizes[j])
			}
		}
	}
	if sizes[0] != 100 {
		t.Fatalf("max frequency should map to max font 100, got %d", sizes[0])
	}
	if sizes[len(sizes)-1] != 20 {
		t.Fatalf("min frequency should map to min font 20, got %d", sizes[len(sizes)-1])
	}
}

func TestFontSizesDegenerateInput(t *testing.T) {
	if sizes := FontSizes(nil, 500); sizes != nil {
		t.Fatalf("expected nil for empty words, got %v", sizes)
	}
	if sizes := FontSizes([]WordFrequency{{Word: "x", Frequency: 1}}, 0); sizes != nil {
		t.Fatalf("expected nil for zero height, got %v", sizes)
	}
}
