package translate

import (
	"regexp"
	"strings"
)

// Lead-in phrases that open a meta-explanation paragraph in model
// responses. The list is a fixed, non-exhaustive heuristic covering the
// languages this tool is commonly run with; supporting a new language
// pair may require extending it.
var explanationLeadIns = []string{
	"This translation",
	"The translation",
	"Esta tradução",
	"A tradução",
	"pode ser traduzido",
	"can be translated",
	"está de acordo",
	"is in accordance",
	"mantendo o mesmo",
	"maintaining the same",
	"Além disso",
	"Additionally",
	"consistente com",
	"consistent with",
	"La traduction",
	"La traducción",
	"Die Übersetzung",
	"La traduzione",
	"Перевод",
	"翻訳",
	"번역",
	"翻译",
	"الترجمة",
	"अनुवाद",
}

// matches a paragraph break followed by any explanation lead-in,
// through the end of the string
var explanationPattern = regexp.MustCompile(
	`(?is)\n\s*\n\s*(?:` + strings.Join(explanationLeadIns, "|") + `).*$`,
)

// SanitizeResponse cleans a raw model response down to the translation:
// a leading echo of the "<TARGET> TRANSLATION:" cue is stripped, and any
// trailing paragraph that looks like meta-commentary about the
// translation is dropped.
func SanitizeResponse(raw, targetLangName string) string {
	text := strings.TrimSpace(raw)

	label := strings.ToUpper(targetLangName) + " TRANSLATION:"
	if len(text) >= len(label) && strings.EqualFold(text[:len(label)], label) {
		text = strings.TrimSpace(text[len(label):])
	}

	if loc := explanationPattern.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	return strings.TrimSpace(text)
}
