// Package compare lines up source, translated, and reference subtitle
// files to help eyeball translation quality.
package compare

import (
	"strings"

	"github.com/srtran/srtran/internal/subtitle"
	"github.com/srtran/srtran/internal/translate"
)

const (
	// entries shown by default
	DefaultDisplayLimit = 10

	// reference entries scanned for a best match
	referenceSearchLimit = 50
)

// one source/translated pair, with an optional best-matching reference entry
type EntryComparison struct {
	Position       int // zero-based position in the files
	Index          int
	Timing         string
	SourceText     string
	TranslatedText string
	Similarity     float64
	ReferenceText  string // empty when no reference matched
	ReferenceScore int    // common words with the source text
}

type Summary struct {
	SourceEntries     int
	TranslatedEntries int
	ReferenceEntries  int
	Compared          int
	AverageSimilarity float64
}

// Verdict classifies the average similarity between source and
// translated text. Very low or very high averages both deserve a look.
func (s Summary) Verdict() string {
	switch {
	case s.Compared == 0:
		return "nothing compared"
	case s.AverageSimilarity < 0.3:
		return "low similarity - translations may be too different from source"
	case s.AverageSimilarity > 0.8:
		return "high similarity - translations may be too similar to source"
	default:
		return "good similarity range"
	}
}

// Compare pairs up the first limit entries of the source and translated
// files. When reference entries are given, each pair also carries the
// reference entry sharing the most words with the source text.
func Compare(source, translated, reference []subtitle.Entry, limit int) ([]EntryComparison, Summary) {
	if limit <= 0 {
		limit = DefaultDisplayLimit
	}
	if limit > len(source) {
		limit = len(source)
	}
	if limit > len(translated) {
		limit = len(translated)
	}

	summary := Summary{
		SourceEntries:     len(source),
		TranslatedEntries: len(translated),
		ReferenceEntries:  len(reference),
	}

	comparisons := make([]EntryComparison, 0, limit)
	var totalSimilarity float64

	for i := 0; i < limit; i++ {
		sourceText := translate.StripMarkup(source[i].Text)
		translatedText := translate.StripMarkup(translated[i].Text)

		c := EntryComparison{
			Position:       i,
			Index:          source[i].Index,
			Timing:         source[i].Timing,
			SourceText:     sourceText,
			TranslatedText: translatedText,
			Similarity:     Similarity(sourceText, translatedText),
		}
		if match, score := bestReference(sourceText, reference); score > 0 {
			c.ReferenceText = translate.StripMarkup(match.Text)
			c.ReferenceScore = score
		}

		totalSimilarity += c.Similarity
		comparisons = append(comparisons, c)
	}

	summary.Compared = len(comparisons)
	if summary.Compared > 0 {
		summary.AverageSimilarity = totalSimilarity / float64(summary.Compared)
	}
	return comparisons, summary
}

// Similarity is the Jaccard index over lowercased word sets.
func Similarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	union := len(wordsB)
	for word := range wordsA {
		if wordsB[word] {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}

// bestReference finds the reference entry sharing the most words with
// the source text, scanning only the first referenceSearchLimit entries.
func bestReference(sourceText string, reference []subtitle.Entry) (subtitle.Entry, int) {
	sourceWords := wordSet(sourceText)

	var best subtitle.Entry
	bestScore := 0

	limit := referenceSearchLimit
	if limit > len(reference) {
		limit = len(reference)
	}
	for _, entry := range reference[:limit] {
		score := 0
		for word := range wordSet(translate.StripMarkup(entry.Text)) {
			if sourceWords[word] {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry
		}
	}
	return best, bestScore
}

func wordSet(text string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		words[word] = true
	}
	return words
}
