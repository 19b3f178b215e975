package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AFLopez01/ai-execution-coach/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|folder>",
	Short: "Validate a daily log file or a folder of logs",
	Long: `Validates a single daily log against the schema, or every *.json file
in a folder. Folder validation checks each file independently and prints a
summary partitioned into valid and invalid logs.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		res := schema.ValidateFolder(path)
		fmt.Fprint(cmd.OutOrStdout(), schema.RenderBatchReport(res))
		if res.Warning != "" {
			logger.Warn(res.Warning)
		}
		if len(res.Invalid) > 0 {
			return fmt.Errorf("%d invalid log file(s)", len(res.Invalid))
		}
		return nil
	}

	if err := schema.ValidateLogFile(path); err != nil {
		return fmt.Errorf("validation failed: %s", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", path)
	return nil
}
