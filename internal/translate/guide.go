package translate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/srtran/srtran/internal/subtitle"
)

// number of reference entries sampled into the global guide
const DefaultGuideLimit = 100

var markupPattern = regexp.MustCompile(`<[^>]+>`)

// StripMarkup removes tag-like markup (<i>, <font ...>, etc.) and trims
// surrounding whitespace.
func StripMarkup(text string) string {
	return strings.TrimSpace(markupPattern.ReplaceAllString(text, ""))
}

// BuildGlobalGuide concatenates markup-stripped text of the first limit
// reference entries, one per line. The result is used as a persistent
// style and terminology reference in every prompt of a run.
func BuildGlobalGuide(entries []subtitle.Entry, limit int) string {
	if limit <= 0 {
		limit = DefaultGuideLimit
	}
	if limit > len(entries) {
		limit = len(entries)
	}

	texts := make([]string, 0, limit)
	for _, entry := range entries[:limit] {
		if text := StripMarkup(entry.Text); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n")
}

// BuildLocalWindow produces an annotated window of reference entries
// around center: up to radius entries on each side, labeled Previous n,
// Current, and Next n in ascending order. Entries whose stripped text is
// empty are omitted. A center outside the reference bounds clamps to the
// valid range rather than failing.
func BuildLocalWindow(entries []subtitle.Entry, center, radius int) string {
	if len(entries) == 0 {
		return ""
	}

	start := center - radius
	if start < 0 {
		start = 0
	}
	end := center + radius + 1
	if end > len(entries) {
		end = len(entries)
	}

	var lines []string
	for i := start; i < end; i++ {
		text := StripMarkup(entries[i].Text)
		if text == "" {
			continue
		}
		switch {
		case i < center:
			lines = append(lines, fmt.Sprintf("[Previous %d]: %s", center-i, text))
		case i == center:
			lines = append(lines, fmt.Sprintf("[Current]: %s", text))
		default:
			lines = append(lines, fmt.Sprintf("[Next %d]: %s", i-center, text))
		}
	}
	return strings.Join(lines, "\n")
}
