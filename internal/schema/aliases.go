package schema

import "encoding/json"

// Historical field aliases. Two naming conventions coexist in stored logs and
// both must keep validating; new logs are written with the first-listed name.
// "self_assesment" is a literal misspelling present in old files, preserved
// deliberately.
var (
	AliasName       = []string{"name", "description"}
	AliasDuration   = []string{"duration_minutes", "time_invested_minutes"}
	AliasAssessment = []string{"self_assessment", "self_assesment"}
	AliasObstacle   = []string{"main_obstacle", "main_blocker"}
	AliasCommitment = []string{"commitment_tomorrow", "tomorrow_commitment"}
)

// resolve returns the value of the first key present in obj, along with the
// key that matched. Resolution is by key presence, not value truthiness, so a
// present-but-empty value still resolves (and fails the type or range check
// that follows, which names the actual offending field).
func resolve(obj map[string]interface{}, keys ...string) (interface{}, string, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v, k, true
		}
	}
	return nil, "", false
}

// Resolve is the exported form of resolve for callers outside the validator
// (the aggregator resolves durations with the same alias rules).
func Resolve(obj map[string]interface{}, keys ...string) (interface{}, bool) {
	v, _, ok := resolve(obj, keys...)
	return v, ok
}

// Number is the exported form of asNumber.
func Number(v interface{}) (float64, bool) {
	return asNumber(v)
}

func hasAny(obj map[string]interface{}, keys ...string) bool {
	_, _, ok := resolve(obj, keys...)
	return ok
}

// asNumber reports whether v is a JSON number. Decoded JSON yields float64;
// int and json.Number are accepted for documents built in-process.
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
