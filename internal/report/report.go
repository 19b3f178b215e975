// Package report aggregates a week of daily logs into metrics and renders the
// weekly Markdown report.
package report

import (
	"math"

	"github.com/AFLopez01/ai-execution-coach/internal"
	"github.com/AFLopez01/ai-execution-coach/internal/schema"
	"github.com/AFLopez01/ai-execution-coach/internal/score"
)

type WeekMetrics struct {
	TotalActivities      int
	ActivitiesWithOutput int
	TotalMinutes         float64
	TotalHours           float64
	ProductionMinutes    float64
	ConsumptionMinutes   float64
	ProductionPercent    float64
	ConsumptionPercent   float64
	WeeklyScore          float64
	DailyScores          []float64 // in input order, one per aggregated log
}

// WeeklyMetrics accumulates activity and time counters over a week of logs.
// Time attribution: 'production' and 'consumption' activities add their full
// duration to their own bucket; 'both' and 'learning' activities count as
// production only when they produced tangible output, otherwise as
// consumption. Logs whose activities are missing or malformed are skipped
// with a warning, mirroring the weekly score's resilience.
func WeeklyMetrics(docs []map[string]interface{}, logger internal.Logger) WeekMetrics {
	var m WeekMetrics

	for _, doc := range docs {
		raw, ok := doc["activities"]
		if !ok {
			logger.Warnf("skipping daily log in weekly metrics: %v", score.ErrMissingActivities)
			continue
		}
		activities, ok := raw.([]interface{})
		if !ok {
			logger.Warnf("skipping daily log in weekly metrics: %v", score.ErrActivitiesNotList)
			continue
		}

		dayScore, err := score.DailyScore(doc)
		if err != nil {
			logger.Warnf("skipping daily log in weekly metrics: %v", err)
			continue
		}
		m.DailyScores = append(m.DailyScores, dayScore)
		m.TotalActivities += len(activities)

		for _, item := range activities {
			activity, ok := item.(map[string]interface{})
			if !ok {
				continue
			}

			tangible := score.HasTangibleOutput(activity)
			if tangible {
				m.ActivitiesWithOutput++
			}

			minutes := 0.0
			if v, ok := schema.Resolve(activity, schema.AliasDuration...); ok {
				if n, numeric := schema.Number(v); numeric {
					minutes = n
				}
			}
			m.TotalMinutes += minutes

			activityType, _ := activity["type"].(string)
			switch activityType {
			case "production":
				m.ProductionMinutes += minutes
			case "consumption":
				m.ConsumptionMinutes += minutes
			default: // both, learning: attribution follows the output
				if tangible {
					m.ProductionMinutes += minutes
				} else {
					m.ConsumptionMinutes += minutes
				}
			}
		}
	}

	m.TotalHours = round2(m.TotalMinutes / 60)
	if m.TotalMinutes > 0 {
		m.ProductionPercent = round1(m.ProductionMinutes / m.TotalMinutes * 100)
		m.ConsumptionPercent = round1(m.ConsumptionMinutes / m.TotalMinutes * 100)
	}
	if len(m.DailyScores) > 0 {
		sum := 0.0
		for _, s := range m.DailyScores {
			sum += s
		}
		m.WeeklyScore = round2(sum / float64(len(m.DailyScores)))
	}
	return m
}

// Rounding is half away from zero throughout, same as the score package.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
