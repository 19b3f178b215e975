package internal

// Canonical daily log shape. Stored logs may use historical field aliases
// (description, time_invested_minutes, main_blocker, tomorrow_commitment and
// the misspelled self_assesment top-level key); new logs are always written
// with these primary names.

type DailyLog struct {
	Date           string         `json:"date"` // YYYY-MM-DD
	Activities     []Activity     `json:"activities"`
	SelfAssessment SelfAssessment `json:"self_assessment"`
}

type Activity struct {
	Name            string  `json:"name"`
	DurationMinutes float64 `json:"duration_minutes"`
	OutputProduced  string  `json:"output_produced"` // literal "none" means no tangible output
	Type            string  `json:"type"`            // production, consumption, both, learning
}

type SelfAssessment struct {
	HonestyScore       float64 `json:"honesty_score"` // 0-10 scale
	MainObstacle       string  `json:"main_obstacle"`
	CommitmentTomorrow string  `json:"commitment_tomorrow"`
}
