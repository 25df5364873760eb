package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/srtran/srtran/internal/compare"
	"github.com/srtran/srtran/internal/subtitle"
)

var compareCmd = &cobra.Command{
	Use:   "compare [source.srt] [translated.srt] [reference.srt]",
	Short: "Compare a translation against its source and an optional reference",
	Long: `Show source and translated entries side by side to help verify
translation quality. With a reference file, each entry also shows the
closest reference translation.

Examples:
  srtran compare source.srt translated.srt
  srtran compare source.srt translated.srt reference.srt --max-entries 20`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().
		Int("max-entries", compare.DefaultDisplayLimit, "Maximum entries to compare")
	compareCmd.Flags().
		Bool("no-similarity", false, "Hide similarity scores")
}

func runCompare(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}

	source, err := subtitle.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse source file: %w", err)
	}
	translated, err := subtitle.ParseFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to parse translated file: %w", err)
	}

	var reference []subtitle.Entry
	if len(args) == 3 {
		reference, err = subtitle.ParseFile(args[2])
		if err != nil {
			return fmt.Errorf("failed to parse reference file: %w", err)
		}
	}

	maxEntries, _ := cmd.Flags().GetInt("max-entries")
	hideSimilarity, _ := cmd.Flags().GetBool("no-similarity")

	comparisons, summary := compare.Compare(source, translated, reference, maxEntries)

	fmt.Printf("File statistics:\n")
	fmt.Printf("  Source: %d entries\n", summary.SourceEntries)
	fmt.Printf("  Translated: %d entries\n", summary.TranslatedEntries)
	if len(args) == 3 {
		fmt.Printf("  Reference: %d entries\n", summary.ReferenceEntries)
	} else {
		fmt.Printf("  Reference: not provided\n")
	}
	fmt.Println()

	fmt.Print(renderComparisonTable(comparisons, !hideSimilarity, len(reference) > 0))

	if !hideSimilarity && summary.Compared > 0 {
		fmt.Printf("\nSummary:\n")
		fmt.Printf("  Entries compared: %d\n", summary.Compared)
		fmt.Printf("  Average similarity: %.2f (%.1f%%)\n",
			summary.AverageSimilarity, summary.AverageSimilarity*100)
		fmt.Printf("  %s\n", summary.Verdict())
	}

	return nil
}
