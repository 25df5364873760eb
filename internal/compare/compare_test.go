package compare

import (
	"math"
	"testing"

	"github.com/srtran/srtran/internal/subtitle"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "hello world", "hello world", 1},
		{"disjoint", "hello world", "olá mundo", 0},
		{"half overlap", "a b c", "a b d", 0.5},
		{"case insensitive", "Hello World", "hello world", 1},
		{"empty left", "", "hello", 0},
		{"empty both", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func entries(texts ...string) []subtitle.Entry {
	out := make([]subtitle.Entry, len(texts))
	for i, text := range texts {
		out[i] = subtitle.Entry{
			Index:  i + 1,
			Timing: "00:00:01,000 --> 00:00:02,000",
			Text:   text,
		}
	}
	return out
}

func TestCompare(t *testing.T) {
	source := entries("hello there friend", "second line here")
	translated := entries("olá amigo", "segunda linha aqui")
	reference := entries("totally unrelated words", "ahoy hello there sailor")

	comparisons, summary := Compare(source, translated, reference, 0)

	if summary.SourceEntries != 2 || summary.TranslatedEntries != 2 || summary.ReferenceEntries != 2 {
		t.Errorf("unexpected summary counts: %+v", summary)
	}
	if summary.Compared != 2 {
		t.Fatalf("expected 2 comparisons, got %d", summary.Compared)
	}
	if len(comparisons) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(comparisons))
	}

	first := comparisons[0]
	if first.Index != 1 {
		t.Errorf("expected index 1, got %d", first.Index)
	}
	if !almostEqual(first.Similarity, 0) {
		t.Errorf("expected similarity 0, got %v", first.Similarity)
	}
	// "ahoy hello there sailor" shares two words with the source
	if first.ReferenceText != "ahoy hello there sailor" || first.ReferenceScore != 2 {
		t.Errorf("unexpected reference match: %q (score %d)",
			first.ReferenceText, first.ReferenceScore)
	}
}

func TestCompareLimitsToShortestFile(t *testing.T) {
	source := entries("one", "two", "three")
	translated := entries("um")

	comparisons, summary := Compare(source, translated, nil, 10)
	if len(comparisons) != 1 || summary.Compared != 1 {
		t.Errorf("expected 1 comparison, got %d", len(comparisons))
	}
}

func TestCompareStripsMarkup(t *testing.T) {
	source := entries("<i>hello world</i>")
	translated := entries("<b>hello world</b>")

	comparisons, _ := Compare(source, translated, nil, 0)
	if comparisons[0].SourceText != "hello world" {
		t.Errorf("expected stripped source text, got %q", comparisons[0].SourceText)
	}
	if !almostEqual(comparisons[0].Similarity, 1) {
		t.Errorf("expected similarity 1, got %v", comparisons[0].Similarity)
	}
}

func TestSummaryVerdict(t *testing.T) {
	tests := []struct {
		summary Summary
		want    string
	}{
		{Summary{Compared: 0}, "nothing compared"},
		{Summary{Compared: 1, AverageSimilarity: 0.1}, "low similarity - translations may be too different from source"},
		{Summary{Compared: 1, AverageSimilarity: 0.9}, "high similarity - translations may be too similar to source"},
		{Summary{Compared: 1, AverageSimilarity: 0.5}, "good similarity range"},
	}
	for _, tt := range tests {
		if got := tt.summary.Verdict(); got != tt.want {
			t.Errorf("Verdict() = %q, want %q", got, tt.want)
		}
	}
}
