package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/AFLopez01/ai-execution-coach/internal"
	"github.com/AFLopez01/ai-execution-coach/internal/score"
)

// RenderWeeklyReport builds the weekly Markdown report from a batch of logs.
// Everything except the trailing generation-timestamp line is deterministic
// for a given input; tests compare content with that line stripped.
func RenderWeeklyReport(docs []map[string]interface{}, userName string, logger internal.Logger) string {
	m := WeeklyMetrics(docs, logger)
	weekScore := m.WeeklyScore
	classification := score.Classify(weekScore)

	var verdict string
	switch classification {
	case score.Excellent:
		verdict = "EXCELLENT - Keep it up"
	case score.Acceptable:
		verdict = "ACCEPTABLE - Lower bound, stay alert"
	default:
		verdict = "FAILURE - Immediate action required"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Weekly Execution Report - %s\n\n", userName)

	b.WriteString("## 1. Executive Summary\n")
	fmt.Fprintf(&b, "- *Total time invested:* %s minutes (%s hours)\n", formatNumber(m.TotalMinutes), formatNumber(m.TotalHours))
	fmt.Fprintf(&b, "- *Consumption vs production ratio:* %s%% consumption / %s%% production\n", formatNumber(m.ConsumptionPercent), formatNumber(m.ProductionPercent))
	fmt.Fprintf(&b, "- *Overall verdict:* **%s**\n", verdict)
	fmt.Fprintf(&b, "- *Execution Score:* %.1f/100\n\n", weekScore)

	b.WriteString("## 2. Execution Score\n")
	b.WriteString("*Formula:*\n(activities with tangible output / total activities) × 100\n\n")
	fmt.Fprintf(&b, "- Total activities: %d\n", m.TotalActivities)
	fmt.Fprintf(&b, "- Activities with tangible output: %d\n\n", m.ActivitiesWithOutput)
	fmt.Fprintf(&b, "*Calculation:*\n(%d / %d) × 100 = **%.1f**\n\n", m.ActivitiesWithOutput, m.TotalActivities, weekScore)
	fmt.Fprintf(&b, "*Classification:* **%s**\n", classification)

	switch classification {
	case score.Failure:
		b.WriteString("**CRITICAL ALERT:** Eliminate all passive consumption next week.\n")
	case score.Acceptable:
		b.WriteString("**WARNING:** You are at the lower bound. One more slip and you fall into failure.\n")
	default:
		b.WriteString("**EXCELLENT:** Keep this execution rhythm.\n")
	}

	b.WriteString("\n## 3. Breakdown by Activity Type\n\n")
	fmt.Fprintf(&b, "- *Pure consumption (no output):*\n  %s min → **%s%%**\n", formatNumber(m.ConsumptionMinutes), formatNumber(m.ConsumptionPercent))
	fmt.Fprintf(&b, "- *Direct production:*\n  %s min → **%s%%**\n\n", formatNumber(m.ProductionMinutes), formatNumber(m.ProductionPercent))

	insight := "you produced more than you consumed"
	if m.ConsumptionPercent > m.ProductionPercent {
		insight = "you spent MORE time consuming than producing"
	}
	fmt.Fprintf(&b, "**Key insight:** %s\n", insight)

	b.WriteString("\n## 4. Daily Scores\n")
	for i, dayScore := range m.DailyScores {
		fmt.Fprintf(&b, "- Day %d: %.1f/100 (%s)\n", i+1, dayScore, score.Classify(dayScore))
	}

	b.WriteString("\n## 5. Recommendations\n\n")
	switch classification {
	case score.Failure:
		b.WriteString(`- **IMMEDIATE ACTION:** Put ALL your focus on activities with tangible output
- Minimize or eliminate content consumption without a clear goal
- Define a clear objective before every activity
- Record WHAT you produced in every session
`)
	case score.Acceptable:
		b.WriteString(`- **IMPROVEMENT NEEDED:** Increase the share of productive activities
- Reduce purposeless content consumption
- Be more selective about what you consume
- Make sure you extract value from every activity
`)
	default:
		b.WriteString(`- **KEEP GOING:** Maintain this balance
- Your execution rhythm is sustainable
- Keep documenting your outputs clearly
- Consider sharing your method with others
`)
	}

	fmt.Fprintf(&b, "\n---\n*Report generated:* %s\n", time.Now().Format("2006-01-02 15:04"))
	return b.String()
}

// SaveWeeklyReport writes the rendered report to <dir>/week-<userName>.md,
// creating the directory if needed, and returns the file path.
func SaveWeeklyReport(content, dir, userName string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create output dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("week-%s.md", userName))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

// formatNumber prints minutes/percent values without a trailing ".0" for
// whole numbers, matching how the reports have always read.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
