package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/srtran/srtran/internal/config"
	"github.com/srtran/srtran/internal/language"
	"github.com/srtran/srtran/internal/llm"
	"github.com/srtran/srtran/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [source.srt] [context.srt] [output.srt]",
	Short: "Translate an SRT file using a context file as style reference",
	Long: `Translate a source SRT file, using a context SRT file in the target
language as a style and terminology reference.

Source and target languages are auto-detected from the files unless
specified. Per-entry translation failures fall back to the original
text, so the output always has one entry per input entry.

Examples:
  srtran translate source.srt context.srt output.srt
  srtran translate source.srt context.srt output.srt --source-lang en --target-lang pt
  srtran translate source.srt context.srt output.srt --provider anthropic --model claude-haiku-4-5
  srtran translate source.srt context.srt test.srt --max-entries 10`,
	Args: cobra.ExactArgs(3),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		String("source-lang", "", "Source language code (auto-detected if not specified)")
	translateCmd.Flags().
		String("target-lang", "", "Target language code (auto-detected from context file if not specified)")
	translateCmd.Flags().
		String("provider", "", "LLM provider (bedrock, anthropic, openai, gemini)")
	translateCmd.Flags().
		String("model", "", "Model identifier (provider-specific, uses sensible defaults)")
	translateCmd.Flags().
		String("region", "", "AWS region for Bedrock")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set ANTHROPIC_API_KEY/OPENAI_API_KEY/GEMINI_API_KEY)")
	translateCmd.Flags().
		Int("max-tokens", 0, "Maximum tokens for the LLM response")
	translateCmd.Flags().
		Int("max-entries", 0, "Maximum entries to translate (for testing)")
	translateCmd.Flags().
		Int("context-radius", 0, "Number of context entries on each side of the current one")
	translateCmd.Flags().
		String("config", "", "Path to a TOML config file")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	sourcePath, contextPath, outputPath := args[0], args[1], args[2]
	ctx := context.Background()

	for _, path := range []string{sourcePath, contextPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	provider := llm.Provider(cfg.Provider)
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = apiKeyFromEnv(provider)
	}
	if apiKey == "" && provider != llm.ProviderBedrock {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			apiKeyEnvVar(provider),
		)
	}

	maxEntries, _ := cmd.Flags().GetInt("max-entries")
	if maxEntries < 0 {
		return fmt.Errorf("max-entries must not be negative, got %d", maxEntries)
	}

	logger.Infow("Starting subtitle translation",
		"source", sourcePath,
		"context", contextPath,
		"output", outputPath,
		"provider", cfg.Provider,
		"model", cfg.Model,
	)

	invoker, err := llm.Factory(ctx, provider, llm.Options{
		Model:     cfg.Model,
		Region:    cfg.Region,
		APIKey:    apiKey,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	translator := translate.New(invoker, language.NewDetector(), logger, translate.Options{
		SourceLang:    cfg.SourceLang,
		TargetLang:    cfg.TargetLang,
		MaxEntries:    maxEntries,
		ContextRadius: cfg.ContextRadius,
		GuideLimit:    cfg.GuideLimit,
	})

	stats, err := translator.TranslateFile(ctx, sourcePath, contextPath, outputPath)
	if err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Translation completed successfully: %s\n", absOutput)
	fmt.Printf("  Total entries: %d\n", stats.TotalEntries)
	fmt.Printf("  Successful translations: %d\n", stats.SuccessfulTranslations)
	fmt.Printf("  Failed translations: %d\n", stats.FailedTranslations)
	fmt.Printf("  Success rate: %.1f%%\n", stats.SuccessRate)
	fmt.Printf("  Source language: %s\n", stats.SourceLanguage)
	fmt.Printf("  Target language: %s\n", stats.TargetLanguage)

	return nil
}

// resolveConfig layers an optional config file under the command flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("provider") {
		cfg.Provider, _ = cmd.Flags().GetString("provider")
	}
	if cmd.Flags().Changed("model") {
		cfg.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("region") {
		cfg.Region, _ = cmd.Flags().GetString("region")
	}
	if cmd.Flags().Changed("max-tokens") {
		cfg.MaxTokens, _ = cmd.Flags().GetInt("max-tokens")
	}
	if cmd.Flags().Changed("context-radius") {
		cfg.ContextRadius, _ = cmd.Flags().GetInt("context-radius")
	}
	if cmd.Flags().Changed("source-lang") {
		cfg.SourceLang, _ = cmd.Flags().GetString("source-lang")
	}
	if cmd.Flags().Changed("target-lang") {
		cfg.TargetLang, _ = cmd.Flags().GetString("target-lang")
	}

	if cfg.MaxTokens <= 0 {
		return cfg, fmt.Errorf("max-tokens must be positive, got %d", cfg.MaxTokens)
	}
	return cfg, nil
}

func apiKeyFromEnv(provider llm.Provider) string {
	return os.Getenv(apiKeyEnvVar(provider))
}

func apiKeyEnvVar(provider llm.Provider) string {
	switch provider {
	case llm.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case llm.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case llm.ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "API_KEY"
	}
}
