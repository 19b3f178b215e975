package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDoc() map[string]interface{} {
	return map[string]interface{}{
		"date": "2026-01-13",
		"activities": []interface{}{
			map[string]interface{}{
				"name":             "Implement the JSON log parser",
				"duration_minutes": 120.0,
				"output_produced":  "parser.go with read and validation helpers",
				"type":             "production",
			},
			map[string]interface{}{
				"name":             "Team sync meeting",
				"duration_minutes": 45.0,
				"output_produced":  "none",
				"type":             "consumption",
			},
		},
		"self_assessment": map[string]interface{}{
			"honesty_score":       9.0,
			"main_obstacle":       "unclear reporting requirements",
			"commitment_tomorrow": "define the three main report formats",
		},
	}
}

func TestValidateDailyLog_Valid(t *testing.T) {
	assert.NoError(t, ValidateDailyLog(validDoc()))
}

func TestValidateDailyLog_NotAnObject(t *testing.T) {
	for _, doc := range []interface{}{
		[]interface{}{"not", "an", "object"},
		"just a string",
		42.0,
		nil,
	} {
		err := ValidateDailyLog(doc)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JSON object")
	}
}

func TestValidateDailyLog_MissingTopLevelFields(t *testing.T) {
	for _, field := range []string{"date", "activities"} {
		doc := validDoc()
		delete(doc, field)
		err := ValidateDailyLog(doc)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), field)
	}

	doc := validDoc()
	delete(doc, "self_assessment")
	err := ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "self_assessment")
	assert.Contains(t, err.Error(), "self_assesment")
}

func TestValidateDailyLog_MisspelledAssessmentKeyAccepted(t *testing.T) {
	// Old files carry the 'self_assesment' misspelling; it must keep working.
	doc := validDoc()
	doc["self_assesment"] = doc["self_assessment"]
	delete(doc, "self_assessment")
	assert.NoError(t, ValidateDailyLog(doc))
}

func TestValidateDailyLog_DateChecks(t *testing.T) {
	doc := validDoc()
	doc["date"] = 20260113.0
	err := ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'date'")

	for _, bad := range []string{"2026/01/13", "2026-1-3", "2026-01-133", ""} {
		doc := validDoc()
		doc["date"] = bad
		assert.Error(t, ValidateDailyLog(doc), "date %q should fail", bad)
	}

	// The check is deliberately shallow: 10 chars and two dashes pass even
	// when the groups are not a real calendar date.
	doc = validDoc()
	doc["date"] = "99-99-999a"
	assert.NoError(t, ValidateDailyLog(doc))
}

func TestValidateDailyLog_ActivitiesShape(t *testing.T) {
	doc := validDoc()
	doc["activities"] = "not a list"
	err := ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a list")

	doc = validDoc()
	doc["activities"] = []interface{}{}
	err = ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")

	doc = validDoc()
	doc["activities"] = []interface{}{"not an object"}
	err = ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "activity #1")
}

func TestValidateDailyLog_ActivityRequiredFields(t *testing.T) {
	cases := []struct {
		remove  string
		wantMsg string
	}{
		{"name", "'name' or 'description'"},
		{"duration_minutes", "'duration_minutes' or 'time_invested_minutes'"},
		{"output_produced", "'output_produced'"},
		{"type", "'type'"},
	}
	for _, tc := range cases {
		doc := validDoc()
		activity := doc["activities"].([]interface{})[0].(map[string]interface{})
		delete(activity, tc.remove)
		err := ValidateDailyLog(doc)
		assert.Error(t, err, "removing %s", tc.remove)
		assert.Contains(t, err.Error(), "activity #1")
		assert.Contains(t, err.Error(), tc.wantMsg)
	}
}

func TestValidateDailyLog_ActivityAliasesAccepted(t *testing.T) {
	doc := validDoc()
	activity := doc["activities"].([]interface{})[0].(map[string]interface{})
	activity["description"] = activity["name"]
	delete(activity, "name")
	activity["time_invested_minutes"] = activity["duration_minutes"]
	delete(activity, "duration_minutes")
	assert.NoError(t, ValidateDailyLog(doc))
}

func TestValidateDailyLog_ActivityTypeAndValueChecks(t *testing.T) {
	doc := validDoc()
	activity := doc["activities"].([]interface{})[0].(map[string]interface{})
	activity["duration_minutes"] = "two hours"
	err := ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")

	for _, bad := range []float64{0, -5} {
		doc := validDoc()
		activity := doc["activities"].([]interface{})[0].(map[string]interface{})
		activity["duration_minutes"] = bad
		err := ValidateDailyLog(doc)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "greater than 0")
	}

	doc = validDoc()
	activity = doc["activities"].([]interface{})[0].(map[string]interface{})
	activity["output_produced"] = 3.0
	err = ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'output_produced' must be a string")

	doc = validDoc()
	activity = doc["activities"].([]interface{})[0].(map[string]interface{})
	activity["type"] = "invalid_type"
	err = ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'type' must be one of")
	assert.Contains(t, err.Error(), "invalid_type")

	doc = validDoc()
	activity = doc["activities"].([]interface{})[0].(map[string]interface{})
	activity["type"] = "learning"
	assert.NoError(t, ValidateDailyLog(doc))
}

func TestValidateDailyLog_SecondActivityIndexedInMessage(t *testing.T) {
	doc := validDoc()
	second := doc["activities"].([]interface{})[1].(map[string]interface{})
	delete(second, "type")
	err := ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "activity #2")
}

func TestValidateDailyLog_SelfAssessmentChecks(t *testing.T) {
	doc := validDoc()
	doc["self_assessment"] = "not an object"
	err := ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'self_assessment' must be a JSON object")

	doc = validDoc()
	assessment := doc["self_assessment"].(map[string]interface{})
	delete(assessment, "honesty_score")
	err = ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "honesty_score")

	for _, bad := range []float64{-1, 10.5, 11} {
		doc := validDoc()
		doc["self_assessment"].(map[string]interface{})["honesty_score"] = bad
		err := ValidateDailyLog(doc)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 10")
	}
	for _, ok := range []float64{0, 10, 7.5} {
		doc := validDoc()
		doc["self_assessment"].(map[string]interface{})["honesty_score"] = ok
		assert.NoError(t, ValidateDailyLog(doc))
	}

	doc = validDoc()
	doc["self_assessment"].(map[string]interface{})["honesty_score"] = "nueve"
	err = ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestValidateDailyLog_AssessmentAliasesAccepted(t *testing.T) {
	doc := validDoc()
	assessment := doc["self_assessment"].(map[string]interface{})
	assessment["main_blocker"] = assessment["main_obstacle"]
	delete(assessment, "main_obstacle")
	assessment["tomorrow_commitment"] = assessment["commitment_tomorrow"]
	delete(assessment, "commitment_tomorrow")
	assert.NoError(t, ValidateDailyLog(doc))
}

func TestValidateDailyLog_AssessmentMissingTextFields(t *testing.T) {
	doc := validDoc()
	assessment := doc["self_assessment"].(map[string]interface{})
	delete(assessment, "main_obstacle")
	err := ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'main_obstacle' or 'main_blocker'")

	doc = validDoc()
	assessment = doc["self_assessment"].(map[string]interface{})
	delete(assessment, "commitment_tomorrow")
	err = ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'commitment_tomorrow' or 'tomorrow_commitment'")

	doc = validDoc()
	doc["self_assessment"].(map[string]interface{})["main_obstacle"] = 1.0
	err = ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'main_obstacle' must be a string")
}

func TestValidateDailyLog_ErrorKinds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]interface{})
		want   Kind
	}{
		{"missing field", func(d map[string]interface{}) { delete(d, "date") }, KindMissingField},
		{"wrong type", func(d map[string]interface{}) { d["date"] = 1.0 }, KindTypeMismatch},
		{"bad range", func(d map[string]interface{}) {
			d["self_assessment"].(map[string]interface{})["honesty_score"] = 11.0
		}, KindRange},
		{"bad enum", func(d map[string]interface{}) {
			d["activities"].([]interface{})[0].(map[string]interface{})["type"] = "leisure"
		}, KindEnum},
		{"bad shape", func(d map[string]interface{}) { d["self_assessment"] = 1.0 }, KindStructural},
	}
	for _, tc := range cases {
		doc := validDoc()
		tc.mutate(doc)
		err := ValidateDailyLog(doc)
		var schemaErr *Error
		assert.True(t, errors.As(err, &schemaErr), tc.name)
		assert.Equal(t, tc.want, schemaErr.Kind, tc.name)
	}
}

func TestValidateDailyLog_FirstFailureWins(t *testing.T) {
	// Two defects: the date and the activity list. Only the earlier check in
	// the fixed order is reported.
	doc := validDoc()
	doc["date"] = "bad"
	doc["activities"] = []interface{}{}
	err := ValidateDailyLog(doc)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'date'")
	assert.NotContains(t, err.Error(), "activities")
}
