package translate

import (
	"fmt"
	"strings"
)

// ComposePrompt assembles the translation instruction sent to the model.
// Section order matters: the trailing "TRANSLATION:" cue and the
// return-only-the-translation directive are what the response sanitizer
// relies on.
func ComposePrompt(sourceText, sourceLangName, targetLangName, globalGuide, localWindow string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"You are a professional translator specializing in %s to %s translation for subtitles.\n\n",
		sourceLangName,
		targetLangName,
	))

	sb.WriteString("IMPORTANT CONTEXT - TRANSLATION GUIDE:\n")
	sb.WriteString(fmt.Sprintf(
		"Here are some professional %s translations from the same content to use as reference for style, tone, and terminology:\n\n",
		targetLangName,
	))
	sb.WriteString(globalGuide)
	sb.WriteString("\n\n")

	if localWindow != "" {
		sb.WriteString("CONTEXTUAL REFERENCE - NEARBY ENTRIES:\n")
		sb.WriteString(fmt.Sprintf(
			"Here are %s translations from nearby subtitle entries to help maintain context and consistency:\n\n",
			targetLangName,
		))
		sb.WriteString(localWindow)
		sb.WriteString("\n\n")
	}

	sb.WriteString("TASK:\n")
	sb.WriteString(fmt.Sprintf(
		"Translate the following %s subtitle text to %s. The translation should:\n",
		sourceLangName,
		targetLangName,
	))
	sb.WriteString(fmt.Sprintf("1. Be natural and fluent %s\n", targetLangName))
	sb.WriteString("2. Match the style and tone of the reference translations above\n")
	sb.WriteString("3. Maintain the same meaning and intent as the original\n")
	sb.WriteString("4. Be appropriate for subtitle format (concise but clear)\n")
	sb.WriteString(fmt.Sprintf("5. Use proper %s conventions\n", targetLangName))
	sb.WriteString("6. Be consistent with the contextual nearby entries provided\n\n")

	sb.WriteString(fmt.Sprintf(
		"CRITICAL: Return ONLY the %s translation. Do not include any explanations, comments, or additional text.\n\n",
		targetLangName,
	))

	sb.WriteString(fmt.Sprintf(
		"%s TEXT TO TRANSLATE:\n%s\n\n",
		strings.ToUpper(sourceLangName),
		sourceText,
	))
	sb.WriteString(fmt.Sprintf("%s TRANSLATION:", strings.ToUpper(targetLangName)))

	return sb.String()
}
