package language

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// sentinel code returned when detection fails or there is not enough signal
const Unknown = "unknown"

// minimum significant characters (after stripping punctuation) required
// before detection is attempted
const minDetectionChars = 10

// interface for language classification
type Detector interface {
	// Detect returns an ISO-639-1 code for the text, or Unknown.
	Detect(text string) string
}

type linguaDetector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a deterministic, caller-owned language detector.
func NewDetector() Detector {
	return &linguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

var punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

func (d *linguaDetector) Detect(text string) string {
	clean := strings.TrimSpace(punctuationPattern.ReplaceAllString(text, ""))
	if utf8.RuneCountInString(clean) < minDetectionChars {
		return Unknown
	}

	detected, ok := d.detector.DetectLanguageOf(clean)
	if !ok {
		return Unknown
	}
	return strings.ToLower(detected.IsoCode639_1().String())
}

// Name resolves an ISO code to a display name used in prompts and
// statistics. Unrecognized codes are passed through uppercased.
func Name(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

var languageNames = map[string]string{
	"en":      "English",
	"pt":      "Portuguese",
	"es":      "Spanish",
	"fr":      "French",
	"de":      "German",
	"it":      "Italian",
	"ru":      "Russian",
	"ja":      "Japanese",
	"ko":      "Korean",
	"zh":      "Chinese",
	"ar":      "Arabic",
	"hi":      "Hindi",
	"nl":      "Dutch",
	"sv":      "Swedish",
	"no":      "Norwegian",
	"da":      "Danish",
	"fi":      "Finnish",
	"pl":      "Polish",
	"tr":      "Turkish",
	"he":      "Hebrew",
	"th":      "Thai",
	"vi":      "Vietnamese",
	"id":      "Indonesian",
	"ms":      "Malay",
	"fa":      "Persian",
	"ur":      "Urdu",
	"bn":      "Bengali",
	"ta":      "Tamil",
	"te":      "Telugu",
	"ml":      "Malayalam",
	"kn":      "Kannada",
	"gu":      "Gujarati",
	"pa":      "Punjabi",
	"mr":      "Marathi",
	"ne":      "Nepali",
	"si":      "Sinhala",
	"my":      "Burmese",
	"km":      "Khmer",
	"lo":      "Lao",
	"ka":      "Georgian",
	"am":      "Amharic",
	"sw":      "Swahili",
	"zu":      "Zulu",
	"af":      "Afrikaans",
	"hr":      "Croatian",
	"cs":      "Czech",
	"sk":      "Slovak",
	"hu":      "Hungarian",
	"ro":      "Romanian",
	"bg":      "Bulgarian",
	"uk":      "Ukrainian",
	"be":      "Belarusian",
	"sl":      "Slovenian",
	"et":      "Estonian",
	"lv":      "Latvian",
	"lt":      "Lithuanian",
	"mt":      "Maltese",
	"ga":      "Irish",
	"cy":      "Welsh",
	"is":      "Icelandic",
	"fo":      "Faroese",
	"sq":      "Albanian",
	"mk":      "Macedonian",
	"sr":      "Serbian",
	"bs":      "Bosnian",
	"unknown": "Unknown",
}
