package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AFLopez01/ai-execution-coach/internal/report"
	"github.com/AFLopez01/ai-execution-coach/internal/schema"
	"github.com/AFLopez01/ai-execution-coach/internal/score"
	"github.com/AFLopez01/ai-execution-coach/internal/service"
)

var scoreCmd = &cobra.Command{
	Use:   "score <file|folder>",
	Short: "Compute the Execution Score for a day or a week",
	Long: `Computes the daily Execution Score for a single log file, or the
weekly score over every valid log in a folder, with a per-day execution
pattern breakdown and a consolidated summary. Files are validated first;
within a folder, invalid files are skipped and reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return runWeeklyScore(cmd, path)
	}

	if err := schema.ValidateLogFile(path); err != nil {
		return fmt.Errorf("validation failed: %s", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	daily, err := score.DailyScore(doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Daily Execution Score: %.1f/100 (%s)\n", daily, score.Classify(daily))
	return nil
}

func runWeeklyScore(cmd *cobra.Command, dir string) error {
	docs, res, err := service.LoadWeekDocuments(dir)
	if err != nil {
		return err
	}
	if res.Warning != "" {
		logger.Warn(res.Warning)
	}
	for _, item := range res.Invalid {
		logger.Warnf("skipping %s: %s", item.Path, item.Reason)
	}

	weekly, err := score.WeeklyScore(docs, logger)
	if err != nil {
		return err
	}

	summary := report.WeekPatterns(docs, logger)
	summary.SkippedDays += len(res.Invalid)
	fmt.Fprint(cmd.OutOrStdout(), report.RenderPatternSummary(summary))

	fmt.Fprintf(cmd.OutOrStdout(), "Weekly Execution Score: %.1f/100 (%s) over %d day(s)\n",
		weekly, score.Classify(weekly), len(docs))
	return nil
}
