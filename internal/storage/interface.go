package storage

import (
	"context"

	"github.com/AFLopez01/ai-execution-coach/internal"
)

// LogRepository persists one canonical daily log per calendar date.
type LogRepository interface {
	SaveDailyLog(ctx context.Context, log *internal.DailyLog) error
	GetDailyLog(ctx context.Context, date string) (*internal.DailyLog, bool, error)
	ListDailyLogs(ctx context.Context) ([]internal.DailyLog, error)
	Close() error
}
