// Package score computes the Execution Score: the share of logged activities
// that produced a tangible output. Anything other than the literal token
// "none" (case/whitespace-insensitive) counts as tangible output.
package score

import (
	"errors"
	"math"
	"strings"

	"github.com/AFLopez01/ai-execution-coach/internal"
)

var (
	// ErrMissingActivities: the document has no 'activities' key at all.
	ErrMissingActivities = errors.New("score: log has no 'activities' field")
	// ErrActivitiesNotList: 'activities' is present but not a sequence.
	ErrActivitiesNotList = errors.New("score: 'activities' must be a list")
	// ErrNoLogs: a weekly computation was asked for zero logs.
	ErrNoLogs = errors.New("score: the list of daily logs is empty")
	// ErrNoValidScores: every log in a weekly batch failed to score.
	ErrNoValidScores = errors.New("score: no valid daily score could be computed")
)

type Classification string

const (
	Excellent  Classification = "EXCELLENT"  // score > 80
	Acceptable Classification = "ACCEPTABLE" // 60 <= score <= 80
	Failure    Classification = "FAILURE"    // score < 60
)

// DailyScore returns the Execution Score for one day in [0,100].
// An empty activity list scores 0.0 rather than failing; the validator
// normally prevents that state from being reached, but direct callers get the
// defined edge case instead of an error.
func DailyScore(doc map[string]interface{}) (float64, error) {
	raw, ok := doc["activities"]
	if !ok {
		return 0, ErrMissingActivities
	}
	activities, ok := raw.([]interface{})
	if !ok {
		return 0, ErrActivitiesNotList
	}
	if len(activities) == 0 {
		return 0.0, nil
	}

	withOutput := 0
	for _, item := range activities {
		activity, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if HasTangibleOutput(activity) {
			withOutput++
		}
	}

	return round2(float64(withOutput) / float64(len(activities)) * 100), nil
}

// WeeklyScore averages the daily scores of a batch of logs. Single-record
// scoring is strict, batch scoring is resilient: a log that fails to score is
// skipped with a warning instead of aborting the week.
func WeeklyScore(docs []map[string]interface{}, logger internal.Logger) (float64, error) {
	if len(docs) == 0 {
		return 0, ErrNoLogs
	}

	var dailyScores []float64
	for _, doc := range docs {
		s, err := DailyScore(doc)
		if err != nil {
			logger.Warnf("skipping daily log in weekly score: %v", err)
			continue
		}
		dailyScores = append(dailyScores, s)
	}
	if len(dailyScores) == 0 {
		return 0, ErrNoValidScores
	}

	sum := 0.0
	for _, s := range dailyScores {
		sum += s
	}
	return round2(sum / float64(len(dailyScores))), nil
}

// Classify buckets a score into the three performance tiers. The boundaries
// are load-bearing: exactly 80 is ACCEPTABLE, exactly 60 is ACCEPTABLE.
func Classify(score float64) Classification {
	switch {
	case score > 80:
		return Excellent
	case score >= 60:
		return Acceptable
	default:
		return Failure
	}
}

// HasTangibleOutput applies the shared "none" test: trimmed, lower-cased
// output_produced that is non-empty and not the literal "none". A missing or
// non-string field counts as no output; the validator rejects non-strings
// before scoring, so treating them as output-less here is the deliberate
// choice for unvalidated callers.
func HasTangibleOutput(activity map[string]interface{}) bool {
	raw, ok := activity["output_produced"]
	if !ok {
		return false
	}
	output, ok := raw.(string)
	if !ok {
		return false
	}
	normalized := strings.ToLower(strings.TrimSpace(output))
	return normalized != "" && normalized != "none"
}

// round2 rounds to 2 decimal places, half away from zero. Every score in the
// package goes through this so results stay comparable.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
