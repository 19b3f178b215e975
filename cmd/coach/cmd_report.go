package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AFLopez01/ai-execution-coach/internal/llm"
	"github.com/AFLopez01/ai-execution-coach/internal/report"
	"github.com/AFLopez01/ai-execution-coach/internal/service"
)

var (
	reportUser   string
	reportSave   bool
	reportOut    string
	reportEnrich bool
)

var reportCmd = &cobra.Command{
	Use:   "report <folder>",
	Short: "Render the weekly execution report for a folder of logs",
	Long: `Validates every log in the folder, aggregates the valid ones into
weekly metrics and renders the Markdown report. With --enrich the rendered
report plus the raw logs are forwarded to the configured LLM endpoint and its
narrative analysis is appended.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportUser, "user", "", "user name for the report (defaults to config)")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "write the report to the reports directory")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output directory for --save (defaults to config)")
	reportCmd.Flags().BoolVar(&reportEnrich, "enrich", false, "append LLM narrative analysis")
}

func runReport(cmd *cobra.Command, args []string) error {
	docs, res, err := service.LoadWeekDocuments(args[0])
	if err != nil {
		return err
	}
	if res.Warning != "" {
		logger.Warn(res.Warning)
	}
	for _, item := range res.Invalid {
		logger.Warnf("skipping %s: %s", item.Path, item.Reason)
	}

	userName := reportUser
	if userName == "" {
		userName = cfg.UserName
	}

	var enricher service.Enricher
	if reportEnrich {
		client, err := llm.NewClient(llm.Config{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
			Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		})
		if err != nil {
			return fmt.Errorf("--enrich needs a configured LLM endpoint (set LLM_API_KEY): %w", err)
		}
		enricher = client
	}

	analysis, err := service.AnalyzeWeek(cmd.Context(), docs, userName, enricher, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), analysis.FullReport())

	if reportSave {
		outDir := reportOut
		if outDir == "" {
			outDir = cfg.ReportsDir
		}
		path, err := report.SaveWeeklyReport(analysis.FullReport(), outDir, userName)
		if err != nil {
			return err
		}
		logger.Infof("report %s saved to %s", analysis.ID, path)
	}
	return nil
}
