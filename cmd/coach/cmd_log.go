package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AFLopez01/ai-execution-coach/internal"
	"github.com/AFLopez01/ai-execution-coach/internal/score"
	"github.com/AFLopez01/ai-execution-coach/internal/service"
	"github.com/AFLopez01/ai-execution-coach/internal/storage"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record today's activities interactively",
	Long: `Walks through the day's activities and self-assessment, validates the
result and stores it in the configured backend. Press Enter on an empty
activity name to finish the activity list.`,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	date, err := promptLine(in, out, fmt.Sprintf("Date [%s]: ", time.Now().Format("2006-01-02")))
	if err != nil {
		return fmt.Errorf("input ended before the log was complete: %w", err)
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var activities []service.ActivityInput
	for {
		name, err := promptLine(in, out, fmt.Sprintf("Activity #%d name (empty to finish): ", len(activities)+1))
		if err != nil {
			return fmt.Errorf("input ended before the log was complete: %w", err)
		}
		if name == "" {
			if len(activities) == 0 {
				fmt.Fprintln(out, "At least one activity is required.")
				continue
			}
			break
		}
		duration, err := promptNumber(in, out, "  Duration in minutes: ", func(v float64) bool { return v > 0 })
		if err != nil {
			return fmt.Errorf("input ended before the log was complete: %w", err)
		}
		output, err := promptLine(in, out, "  Output produced (\"none\" if nothing): ")
		if err != nil {
			return fmt.Errorf("input ended before the log was complete: %w", err)
		}
		if output == "" {
			output = "none"
		}
		activityType, err := promptChoice(in, out, "  Type (production/consumption/both/learning): ",
			"production", "consumption", "both", "learning")
		if err != nil {
			return fmt.Errorf("input ended before the log was complete: %w", err)
		}

		activities = append(activities, service.ActivityInput{
			Name:            name,
			DurationMinutes: duration,
			OutputProduced:  output,
			Type:            activityType,
		})
	}

	fmt.Fprintln(out, "Self-assessment:")
	honesty, err := promptNumber(in, out, "  Honesty score (0-10): ", func(v float64) bool { return v >= 0 && v <= 10 })
	if err != nil {
		return fmt.Errorf("input ended before the log was complete: %w", err)
	}
	obstacle, err := promptLine(in, out, "  Main obstacle today: ")
	if err != nil {
		return fmt.Errorf("input ended before the log was complete: %w", err)
	}
	commitment, err := promptLine(in, out, "  Commitment for tomorrow: ")
	if err != nil {
		return fmt.Errorf("input ended before the log was complete: %w", err)
	}

	input := &service.DailyLogInput{
		Date:       date,
		Activities: activities,
		Assessment: service.SelfAssessmentInput{
			HonestyScore:       honesty,
			MainObstacle:       obstacle,
			CommitmentTomorrow: commitment,
		},
	}

	repo, err := storage.NewRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	log, err := service.CreateDailyLog(cmd.Context(), repo, input)
	if err != nil {
		return fmt.Errorf("could not save daily log: %w", err)
	}
	fmt.Fprintf(out, "Saved daily log for %s (%d activities).\n", log.Date, len(log.Activities))

	docs, err := service.Documents([]internal.DailyLog{*log})
	if err != nil {
		return err
	}
	daily, err := score.DailyScore(docs[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Daily Execution Score: %.1f/100 (%s)\n", daily, score.Classify(daily))
	return nil
}

// promptLine returns the read error so retry loops stop when input is
// exhausted; a final line without a trailing newline is still accepted.
func promptLine(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptNumber(in *bufio.Reader, out io.Writer, label string, valid func(float64) bool) (float64, error) {
	for {
		raw, err := promptLine(in, out, label)
		if err != nil {
			return 0, err
		}
		v, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr == nil && valid(v) {
			return v, nil
		}
		fmt.Fprintln(out, "  Please enter a valid number.")
	}
}

func promptChoice(in *bufio.Reader, out io.Writer, label string, choices ...string) (string, error) {
	for {
		raw, err := promptLine(in, out, label)
		if err != nil {
			return "", err
		}
		raw = strings.ToLower(raw)
		for _, c := range choices {
			if raw == c {
				return raw, nil
			}
		}
		fmt.Fprintf(out, "  Must be one of: %s\n", strings.Join(choices, ", "))
	}
}
