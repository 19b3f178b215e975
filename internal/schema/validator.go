// Package schema validates daily activity logs against the canonical
// structure, tolerating the historical field-name aliases still present in
// stored files. Validation is a strict, ordered sequence of checks that
// returns on the first failure with a message naming the offending field.
package schema

import (
	"encoding/json"
	"os"
	"strings"
)

// Closed set of accepted activity types.
var ValidActivityTypes = []string{"production", "consumption", "both", "learning"}

const (
	MinHonestyScore = 0
	MaxHonestyScore = 10
)

// ValidateDailyLog checks a parsed daily log document. A nil return means the
// document satisfies every structural, type, range and enum constraint. The
// date check is deliberately shallow (length plus separator count, no calendar
// parsing), matching the documents the tool has always accepted.
func ValidateDailyLog(doc interface{}) error {
	data, ok := doc.(map[string]interface{})
	if !ok {
		return structuralf("the log must be a JSON object, not a list or primitive value")
	}

	for _, field := range []string{"date", "activities"} {
		if _, present := data[field]; !present {
			return missingf("missing required top-level field '%s'", field)
		}
	}
	if !hasAny(data, AliasAssessment...) {
		return missingf("missing required top-level field 'self_assessment' or 'self_assesment'")
	}

	date, ok := data["date"].(string)
	if !ok {
		return mismatchf("field 'date' must be a string (format: YYYY-MM-DD)")
	}
	if len(date) != 10 || strings.Count(date, "-") != 2 {
		return rangef("field 'date' must use the YYYY-MM-DD format, got '%s'", date)
	}

	activities, ok := data["activities"].([]interface{})
	if !ok {
		return mismatchf("field 'activities' must be a list")
	}
	if len(activities) == 0 {
		return rangef("field 'activities' must not be empty (at least 1 activity is required)")
	}

	for i, raw := range activities {
		idx := i + 1 // 1-indexed in messages
		activity, ok := raw.(map[string]interface{})
		if !ok {
			return structuralf("activity #%d must be a JSON object", idx)
		}

		if !hasAny(activity, AliasName...) {
			return missingf("activity #%d: must have 'name' or 'description'", idx)
		}
		durationValue, durationKey, hasDuration := resolve(activity, AliasDuration...)
		if !hasDuration {
			return missingf("activity #%d: must have 'duration_minutes' or 'time_invested_minutes'", idx)
		}
		if _, present := activity["output_produced"]; !present {
			return missingf("activity #%d: missing required field 'output_produced'", idx)
		}
		if _, present := activity["type"]; !present {
			return missingf("activity #%d: missing required field 'type'", idx)
		}

		duration, numeric := asNumber(durationValue)
		if !numeric {
			return mismatchf("activity #%d: '%s' must be a number", idx, durationKey)
		}
		if duration <= 0 {
			return rangef("activity #%d: '%s' must be greater than 0", idx, durationKey)
		}

		if _, ok := activity["output_produced"].(string); !ok {
			return mismatchf("activity #%d: 'output_produced' must be a string", idx)
		}

		activityType, ok := activity["type"].(string)
		if !ok {
			return mismatchf("activity #%d: 'type' must be a string", idx)
		}
		if !isValidActivityType(activityType) {
			return enumf("activity #%d: 'type' must be one of %v, got '%s'", idx, ValidActivityTypes, activityType)
		}
	}

	assessmentValue, _, _ := resolve(data, AliasAssessment...)
	assessment, ok := assessmentValue.(map[string]interface{})
	if !ok {
		return structuralf("field 'self_assessment' must be a JSON object")
	}

	honestyValue, _, hasHonesty := resolve(assessment, "honesty_score")
	if !hasHonesty {
		return missingf("self_assessment: missing required field 'honesty_score'")
	}
	honesty, numeric := asNumber(honestyValue)
	if !numeric {
		return mismatchf("self_assessment: 'honesty_score' must be a number")
	}
	if honesty < MinHonestyScore || honesty > MaxHonestyScore {
		return rangef("self_assessment: 'honesty_score' must be between %d and %d, got %v", MinHonestyScore, MaxHonestyScore, honestyValue)
	}

	obstacle, _, hasObstacle := resolve(assessment, AliasObstacle...)
	if !hasObstacle {
		return missingf("self_assessment: missing required field 'main_obstacle' or 'main_blocker'")
	}
	if _, ok := obstacle.(string); !ok {
		return mismatchf("self_assessment: 'main_obstacle' must be a string")
	}

	commitment, _, hasCommitment := resolve(assessment, AliasCommitment...)
	if !hasCommitment {
		return missingf("self_assessment: missing required field 'commitment_tomorrow' or 'tomorrow_commitment'")
	}
	if _, ok := commitment.(string); !ok {
		return mismatchf("self_assessment: 'commitment_tomorrow' must be a string")
	}

	return nil
}

// ValidateLogFile reads one log file and validates its content. I/O and JSON
// parse failures are reported as validation errors so batch callers can
// surface them per file instead of aborting.
func ValidateLogFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return structuralf("file does not exist: %s", path)
		}
		return structuralf("cannot read file %s: %v", path, err)
	}
	if info.IsDir() {
		return structuralf("path is not a regular file: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return structuralf("cannot read file %s: %v", path, err)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return structuralf("invalid JSON in %s: %v", path, err)
	}

	return ValidateDailyLog(doc)
}

func isValidActivityType(t string) bool {
	for _, valid := range ValidActivityTypes {
		if t == valid {
			return true
		}
	}
	return false
}
