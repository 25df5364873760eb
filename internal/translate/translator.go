package translate

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/srtran/srtran/internal/language"
	"github.com/srtran/srtran/internal/llm"
	"github.com/srtran/srtran/internal/logging"
	"github.com/srtran/srtran/internal/subtitle"
)

// per-entry translation result
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeSuccessful
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccessful:
		return "successful"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

const (
	DefaultContextRadius = 20

	// language detection samples the first entries of a file
	detectionSampleEntries = 10
	detectionSampleJoin    = 5
	detectionSampleMinLen  = 5
)

type Options struct {
	SourceLang    string // ISO code, auto-detected when empty
	TargetLang    string // ISO code, auto-detected from context file when empty
	MaxEntries    int    // translate only the first N source entries (0 = all)
	ContextRadius int    // local window radius (default 20)
	GuideLimit    int    // global guide entry limit (default 100)
}

// Translator runs the per-entry translation pipeline: strip markup,
// compose a contextual prompt, invoke the model, sanitize the response.
type Translator struct {
	invoker  llm.Invoker
	detector language.Detector
	logger   *logging.Logger
	options  Options
}

func New(invoker llm.Invoker, detector language.Detector, logger *logging.Logger, opts Options) *Translator {
	if opts.ContextRadius <= 0 {
		opts.ContextRadius = DefaultContextRadius
	}
	if opts.GuideLimit <= 0 {
		opts.GuideLimit = DefaultGuideLimit
	}
	return &Translator{
		invoker:  invoker,
		detector: detector,
		logger:   logger,
		options:  opts,
	}
}

// run statistics
type Stats struct {
	TotalEntries           int
	SuccessfulTranslations int
	FailedTranslations     int
	SuccessRate            float64 // percent, 0 when no entries
	SourceLanguage         string
	TargetLanguage         string
	OutputFile             string
}

// TranslateEntry translates a single entry. Failures never propagate:
// on a service error or an empty sanitized response the original source
// text is kept and the outcome is OutcomeFailed, so a run always
// produces one output entry per input entry.
func (t *Translator) TranslateEntry(
	ctx context.Context,
	entry subtitle.Entry,
	sourceLangName, targetLangName, globalGuide, localWindow string,
) (subtitle.Entry, Outcome) {
	sourceText := StripMarkup(entry.Text)
	if sourceText == "" {
		return entry, OutcomeSkipped
	}

	prompt := ComposePrompt(sourceText, sourceLangName, targetLangName, globalGuide, localWindow)

	raw, err := t.invoker.Invoke(ctx, prompt)
	if err != nil {
		t.logger.Warnw("Translation request failed, keeping original text",
			"index", entry.Index,
			"error", err,
		)
		return replaceText(entry, sourceText), OutcomeFailed
	}

	translated := SanitizeResponse(raw, targetLangName)
	if translated == "" {
		t.logger.Warnw("Translation result was empty after cleaning, using original text",
			"index", entry.Index,
		)
		return replaceText(entry, sourceText), OutcomeFailed
	}

	if translated == sourceText {
		// identical-language edge case or the service echoing its input
		return replaceText(entry, translated), OutcomeFailed
	}
	return replaceText(entry, translated), OutcomeSuccessful
}

// TranslateFile translates every entry of the source file against the
// context file and writes the result to outputPath in one pass.
func (t *Translator) TranslateFile(ctx context.Context, sourcePath, contextPath, outputPath string) (*Stats, error) {
	t.logger.Infow("Starting SRT translation",
		"source", sourcePath,
		"context", contextPath,
		"output", outputPath,
	)

	sourceEntries, err := subtitle.ParseFile(sourcePath)
	if err != nil {
		return nil, err
	}
	t.logger.Debugw("Loaded source file", "entries", len(sourceEntries))

	contextEntries, err := subtitle.ParseFile(contextPath)
	if err != nil {
		return nil, err
	}
	t.logger.Debugw("Loaded context file", "entries", len(contextEntries))

	sourceLang := t.options.SourceLang
	if sourceLang == "" {
		sourceLang = t.detectLanguage(sourcePath, sourceEntries)
	}
	targetLang := t.options.TargetLang
	if targetLang == "" {
		targetLang = t.detectLanguage(contextPath, contextEntries)
	}

	sourceLangName := language.Name(sourceLang)
	targetLangName := language.Name(targetLang)
	t.logger.Infow("Translating",
		"source_language", sourceLangName,
		"target_language", targetLangName,
	)

	if t.options.MaxEntries > 0 && len(sourceEntries) > t.options.MaxEntries {
		sourceEntries = sourceEntries[:t.options.MaxEntries]
		t.logger.Infow("Limiting translation", "max_entries", t.options.MaxEntries)
	}

	globalGuide := BuildGlobalGuide(contextEntries, t.options.GuideLimit)
	if globalGuide == "" {
		t.logger.Warnw("No context text available for the translation guide")
	}

	translated := make([]subtitle.Entry, 0, len(sourceEntries))
	var successful, failed int

	for i, entry := range sourceEntries {
		t.logger.Infow("Translating subtitle",
			"position", i+1,
			"total", len(sourceEntries),
		)

		localWindow := BuildLocalWindow(contextEntries, i, t.options.ContextRadius)

		out, outcome := t.TranslateEntry(ctx, entry, sourceLangName, targetLangName, globalGuide, localWindow)
		switch outcome {
		case OutcomeSuccessful:
			successful++
		case OutcomeFailed:
			failed++
		}
		translated = append(translated, out)
	}

	if err := subtitle.WriteFile(outputPath, translated); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	stats := &Stats{
		TotalEntries:           len(sourceEntries),
		SuccessfulTranslations: successful,
		FailedTranslations:     failed,
		SourceLanguage:         sourceLangName,
		TargetLanguage:         targetLangName,
		OutputFile:             outputPath,
	}
	if len(sourceEntries) > 0 {
		stats.SuccessRate = float64(successful) / float64(len(sourceEntries)) * 100
	}

	t.logger.Infow("Translation completed",
		"success_rate", fmt.Sprintf("%.1f%%", stats.SuccessRate),
	)
	return stats, nil
}

// detectLanguage classifies a file from a sample of its first entries.
func (t *Translator) detectLanguage(path string, entries []subtitle.Entry) string {
	limit := detectionSampleEntries
	if limit > len(entries) {
		limit = len(entries)
	}

	var samples []string
	for _, entry := range entries[:limit] {
		text := StripMarkup(entry.Text)
		if utf8.RuneCountInString(text) > detectionSampleMinLen {
			samples = append(samples, text)
		}
	}
	if len(samples) == 0 {
		return language.Unknown
	}
	if len(samples) > detectionSampleJoin {
		samples = samples[:detectionSampleJoin]
	}

	code := t.detector.Detect(strings.Join(samples, " "))
	t.logger.Infow("Detected language",
		"file", path,
		"language", language.Name(code),
		"code", code,
	)
	return code
}

func replaceText(entry subtitle.Entry, text string) subtitle.Entry {
	return subtitle.Entry{
		Index:  entry.Index,
		Timing: entry.Timing,
		Text:   text,
	}
}
