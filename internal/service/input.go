// Package service sits between the interactive layers (CLI prompts, stored
// files) and the validation/scoring core. Candidate records are built and
// checked here so the core never depends on how a record was assembled.
package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/AFLopez01/ai-execution-coach/internal"
	"github.com/AFLopez01/ai-execution-coach/internal/storage"
)

var validate = validator.New()

// DailyLogInput is a candidate record assembled from interactive input.
// Unlike the schema validator, which must stay shallow to keep accepting
// historical files, new records get the strict treatment: real calendar
// dates, canonical field names only.
type DailyLogInput struct {
	Date       string              `validate:"required,datetime=2006-01-02"`
	Activities []ActivityInput     `validate:"required,min=1,dive"`
	Assessment SelfAssessmentInput `validate:"required"`
}

type ActivityInput struct {
	Name            string  `validate:"required"`
	DurationMinutes float64 `validate:"required,gt=0"`
	OutputProduced  string  `validate:"required"`
	Type            string  `validate:"required,oneof=production consumption both learning"`
}

type SelfAssessmentInput struct {
	HonestyScore       float64 `validate:"gte=0,lte=10"`
	MainObstacle       string  `validate:"required"`
	CommitmentTomorrow string  `validate:"required"`
}

func ValidateDailyLogInput(in *DailyLogInput) error {
	return validate.Struct(in)
}

// BuildDailyLog converts a validated input into the canonical stored shape.
func BuildDailyLog(in *DailyLogInput) *internal.DailyLog {
	activities := make([]internal.Activity, 0, len(in.Activities))
	for _, a := range in.Activities {
		activities = append(activities, internal.Activity{
			Name:            a.Name,
			DurationMinutes: a.DurationMinutes,
			OutputProduced:  a.OutputProduced,
			Type:            a.Type,
		})
	}
	return &internal.DailyLog{
		Date:       in.Date,
		Activities: activities,
		SelfAssessment: internal.SelfAssessment{
			HonestyScore:       in.Assessment.HonestyScore,
			MainObstacle:       in.Assessment.MainObstacle,
			CommitmentTomorrow: in.Assessment.CommitmentTomorrow,
		},
	}
}

// CreateDailyLog validates, builds and persists a new daily log.
func CreateDailyLog(ctx context.Context, repo storage.LogRepository, in *DailyLogInput) (*internal.DailyLog, error) {
	if err := ValidateDailyLogInput(in); err != nil {
		return nil, err
	}
	log := BuildDailyLog(in)
	if err := repo.SaveDailyLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}
