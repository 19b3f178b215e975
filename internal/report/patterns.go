package report

import (
	"fmt"
	"strings"

	"github.com/AFLopez01/ai-execution-coach/internal"
	"github.com/AFLopez01/ai-execution-coach/internal/schema"
	"github.com/AFLopez01/ai-execution-coach/internal/score"
)

// DayPatterns is the per-day execution-vs-consumption breakdown. The
// execution ratio credits 'both' activities at half weight: (production
// minutes + both minutes / 2) / total minutes. 'learning' minutes count
// toward the total but toward no bucket.
type DayPatterns struct {
	Date                 string
	TotalMinutes         float64
	ProductionMinutes    float64
	ConsumptionMinutes   float64
	BothMinutes          float64
	ExecutionRatio       float64 // in [0,1], 0 when no time was logged
	TotalActivities      int
	ActivitiesWithOutput int
	ZeroOutputCount      int
	HonestyScore         float64
	MainObstacle         string
	Score                float64
	Classification       score.Classification
}

// AnalyzeDayPatterns computes the pattern breakdown for one parsed log.
// It fails on the same documents DailyScore fails on.
func AnalyzeDayPatterns(doc map[string]interface{}) (DayPatterns, error) {
	dayScore, err := score.DailyScore(doc)
	if err != nil {
		return DayPatterns{}, err
	}

	p := DayPatterns{Score: dayScore, Classification: score.Classify(dayScore)}
	p.Date, _ = doc["date"].(string)

	activities, _ := doc["activities"].([]interface{}) // shape already checked by DailyScore
	p.TotalActivities = len(activities)
	for _, item := range activities {
		activity, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		minutes := 0.0
		if v, ok := schema.Resolve(activity, schema.AliasDuration...); ok {
			if n, numeric := schema.Number(v); numeric {
				minutes = n
			}
		}
		p.TotalMinutes += minutes

		activityType, _ := activity["type"].(string)
		switch activityType {
		case "production":
			p.ProductionMinutes += minutes
		case "consumption":
			p.ConsumptionMinutes += minutes
		case "both":
			p.BothMinutes += minutes
		}

		if score.HasTangibleOutput(activity) {
			p.ActivitiesWithOutput++
		} else {
			p.ZeroOutputCount++
		}
	}

	if p.TotalMinutes > 0 {
		p.ExecutionRatio = (p.ProductionMinutes + p.BothMinutes/2) / p.TotalMinutes
	}

	if v, ok := schema.Resolve(doc, schema.AliasAssessment...); ok {
		if assessment, ok := v.(map[string]interface{}); ok {
			if h, ok := schema.Resolve(assessment, "honesty_score"); ok {
				if n, numeric := schema.Number(h); numeric {
					p.HonestyScore = n
				}
			}
			if o, ok := schema.Resolve(assessment, schema.AliasObstacle...); ok {
				p.MainObstacle, _ = o.(string)
			}
		}
	}
	return p, nil
}

// WeekPatternSummary consolidates the per-day breakdowns. The average
// execution ratio is total production over total minutes, as a percentage;
// the per-day half-weight credit for 'both' applies to daily ratios only.
type WeekPatternSummary struct {
	Days                    []DayPatterns
	SkippedDays             int
	TotalMinutes            float64
	TotalProductionMinutes  float64
	TotalConsumptionMinutes float64
	AverageExecutionRatio   float64 // percent
	AverageHonestyScore     float64
	AverageScore            float64
	Classification          score.Classification
}

// WeekPatterns analyzes a batch of logs. Logs that cannot be scored are
// skipped with a logged warning and counted, same resilience as WeeklyScore.
func WeekPatterns(docs []map[string]interface{}, logger internal.Logger) WeekPatternSummary {
	var s WeekPatternSummary

	for _, doc := range docs {
		p, err := AnalyzeDayPatterns(doc)
		if err != nil {
			logger.Warnf("skipping daily log in pattern analysis: %v", err)
			s.SkippedDays++
			continue
		}
		s.Days = append(s.Days, p)
		s.TotalMinutes += p.TotalMinutes
		s.TotalProductionMinutes += p.ProductionMinutes
		s.TotalConsumptionMinutes += p.ConsumptionMinutes
	}

	if s.TotalMinutes > 0 {
		s.AverageExecutionRatio = round1(s.TotalProductionMinutes / s.TotalMinutes * 100)
	}
	if len(s.Days) > 0 {
		var honesty, scores float64
		for _, d := range s.Days {
			honesty += d.HonestyScore
			scores += d.Score
		}
		s.AverageHonestyScore = round2(honesty / float64(len(s.Days)))
		s.AverageScore = round2(scores / float64(len(s.Days)))
	}
	s.Classification = score.Classify(s.AverageScore)
	return s
}

// RenderPatternSummary formats the per-day breakdowns and the consolidated
// block as a readable multi-day summary.
func RenderPatternSummary(s WeekPatternSummary) string {
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)

	var b strings.Builder
	if len(s.Days) > 0 {
		b.WriteString("EXECUTION PATTERNS\n")
		b.WriteString(thin + "\n")
		for _, d := range s.Days {
			fmt.Fprintf(&b, "%s | Score: %.1f (%s)\n", d.Date, d.Score, d.Classification)
			fmt.Fprintf(&b, "   Execution: %.1f%% | Output: %d/%d | Honesty: %s/10\n",
				d.ExecutionRatio*100, d.ActivitiesWithOutput, d.TotalActivities, formatNumber(d.HonestyScore))
		}
		b.WriteString("\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString("CONSOLIDATED SUMMARY\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Days analyzed: %d\n", len(s.Days))
	fmt.Fprintf(&b, "Days skipped: %d\n", s.SkippedDays)
	fmt.Fprintf(&b, "Total time: %s minutes (%dh)\n", formatNumber(s.TotalMinutes), int(s.TotalMinutes)/60)
	fmt.Fprintf(&b, "Production: %s min\n", formatNumber(s.TotalProductionMinutes))
	fmt.Fprintf(&b, "Consumption: %s min\n", formatNumber(s.TotalConsumptionMinutes))
	fmt.Fprintf(&b, "Average execution ratio: %.1f%%\n", s.AverageExecutionRatio)
	fmt.Fprintf(&b, "Average honesty: %.1f/10\n", s.AverageHonestyScore)
	fmt.Fprintf(&b, "Average Execution Score: %.1f (%s)\n", s.AverageScore, s.Classification)
	b.WriteString(rule + "\n")
	return b.String()
}
