package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AFLopez01/ai-execution-coach/internal"
	"github.com/AFLopez01/ai-execution-coach/internal/schema"
)

func activity(output string) map[string]interface{} {
	return map[string]interface{}{
		"name":             "some task",
		"duration_minutes": 60.0,
		"output_produced":  output,
		"type":             "production",
	}
}

func docWith(outputs ...string) map[string]interface{} {
	activities := make([]interface{}, 0, len(outputs))
	for _, out := range outputs {
		activities = append(activities, activity(out))
	}
	return map[string]interface{}{
		"date":       "2026-01-13",
		"activities": activities,
		"self_assessment": map[string]interface{}{
			"honesty_score":       8.0,
			"main_obstacle":       "none worth noting",
			"commitment_tomorrow": "ship the report generator",
		},
	}
}

func TestDailyScore(t *testing.T) {
	cases := []struct {
		name    string
		outputs []string
		want    float64
	}{
		{"all tangible", []string{"module.go", "design doc"}, 100.0},
		{"none tangible", []string{"none", "NONE", "  none  "}, 0.0},
		{"half tangible", []string{"draft post", "none"}, 50.0},
		{"two thirds", []string{"a.go", "b.go", "none"}, 66.67},
		{"one third", []string{"notes.md", "none", "none"}, 33.33},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DailyScore(docWith(tc.outputs...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDailyScore_EmptyActivityListScoresZero(t *testing.T) {
	doc := docWith()
	got, err := DailyScore(doc)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestDailyScore_MalformedDocuments(t *testing.T) {
	doc := docWith("x")
	delete(doc, "activities")
	_, err := DailyScore(doc)
	assert.ErrorIs(t, err, ErrMissingActivities)

	doc = docWith("x")
	doc["activities"] = "not a list"
	_, err = DailyScore(doc)
	assert.ErrorIs(t, err, ErrActivitiesNotList)
}

func TestDailyScore_OrderInvariant(t *testing.T) {
	a, err := DailyScore(docWith("code", "none", "notes"))
	require.NoError(t, err)
	b, err := DailyScore(docWith("none", "notes", "code"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDailyScore_AcceptsAnyValidLog(t *testing.T) {
	// Whatever the validator accepts, the calculator must score.
	doc := docWith("something", "none")
	require.NoError(t, schema.ValidateDailyLog(doc))
	_, err := DailyScore(doc)
	assert.NoError(t, err)
}

func TestWeeklyScore(t *testing.T) {
	logger := internal.NewNopLogger()

	docs := []map[string]interface{}{
		docWith("a", "none"),     // 50
		docWith("a", "b"),        // 100
		docWith("none", "none"),  // 0
		docWith("a", "b", "none"), // 66.67
	}
	got, err := WeeklyScore(docs, logger)
	require.NoError(t, err)
	assert.Equal(t, 54.17, got) // (50+100+0+66.67)/4 = 54.1675 -> 54.17
}

func TestWeeklyScore_IdenticalDaysEqualDaily(t *testing.T) {
	logger := internal.NewNopLogger()
	day := docWith("a", "none")
	got, err := WeeklyScore([]map[string]interface{}{day, day, day}, logger)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)
}

func TestWeeklyScore_SkipsUnscorableLogs(t *testing.T) {
	logger := internal.NewNopLogger()
	bad := map[string]interface{}{"date": "2026-01-14"}
	got, err := WeeklyScore([]map[string]interface{}{docWith("a"), bad}, logger)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestWeeklyScore_Errors(t *testing.T) {
	logger := internal.NewNopLogger()

	_, err := WeeklyScore(nil, logger)
	assert.ErrorIs(t, err, ErrNoLogs)

	bad := map[string]interface{}{"date": "2026-01-14"}
	_, err = WeeklyScore([]map[string]interface{}{bad, bad}, logger)
	assert.ErrorIs(t, err, ErrNoValidScores)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		score float64
		want  Classification
	}{
		{100, Excellent},
		{80.01, Excellent},
		{80, Acceptable},
		{60, Acceptable},
		{59.99, Failure},
		{0, Failure},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.score), "score %v", tc.score)
	}
}

func TestHasTangibleOutput(t *testing.T) {
	assert.True(t, HasTangibleOutput(activity("parser.go")))
	assert.False(t, HasTangibleOutput(activity("none")))
	assert.False(t, HasTangibleOutput(activity(" None ")))
	assert.False(t, HasTangibleOutput(activity("")))
	assert.False(t, HasTangibleOutput(activity("   ")))
	assert.False(t, HasTangibleOutput(map[string]interface{}{"name": "x"}))
	assert.False(t, HasTangibleOutput(map[string]interface{}{"output_produced": 3.0}))
}
