package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/AFLopez01/ai-execution-coach/internal"
	"github.com/AFLopez01/ai-execution-coach/internal/report"
	"github.com/AFLopez01/ai-execution-coach/internal/schema"
	"github.com/AFLopez01/ai-execution-coach/internal/score"
)

// Enricher produces the optional narrative analysis appended to a weekly
// report. The output is opaque text; analysis never depends on it.
type Enricher interface {
	AnalyzeWeeklyReport(ctx context.Context, report string, docs []map[string]interface{}) (string, error)
}

type WeekAnalysis struct {
	ID             string
	UserName       string
	Metrics        report.WeekMetrics
	Classification score.Classification
	Report         string
	Enrichment     string
	GeneratedAt    time.Time
}

// AnalyzeWeek runs the full pipeline over already-validated documents:
// aggregate metrics, classify, render the Markdown report and, when an
// enricher is wired, append its narrative. Enrichment failures degrade to a
// warning; the local report always survives.
func AnalyzeWeek(ctx context.Context, docs []map[string]interface{}, userName string, enricher Enricher, logger internal.Logger) (WeekAnalysis, error) {
	if len(docs) == 0 {
		return WeekAnalysis{}, score.ErrNoLogs
	}

	metrics := report.WeeklyMetrics(docs, logger)
	rendered := report.RenderWeeklyReport(docs, userName, logger)

	analysis := WeekAnalysis{
		ID:             uuid.NewString(),
		UserName:       userName,
		Metrics:        metrics,
		Classification: score.Classify(metrics.WeeklyScore),
		Report:         rendered,
		GeneratedAt:    time.Now(),
	}

	if enricher != nil {
		text, err := enricher.AnalyzeWeeklyReport(ctx, rendered, docs)
		if err != nil {
			logger.Warnf("report enrichment failed, continuing without it: %v", err)
		} else {
			analysis.Enrichment = text
		}
	}
	return analysis, nil
}

// FullReport returns the rendered report with the enrichment section
// appended when present.
func (a WeekAnalysis) FullReport() string {
	if a.Enrichment == "" {
		return a.Report
	}
	return a.Report + "\n## 6. AI Coach Analysis\n\n" + a.Enrichment + "\n"
}

// LoadWeekDocuments validates every log in dir and loads the valid ones as
// parsed documents, in the batch's lexicographic order. Invalid files stay in
// the returned BatchResult for the caller to surface.
func LoadWeekDocuments(dir string) ([]map[string]interface{}, schema.BatchResult, error) {
	res := schema.ValidateFolder(dir)

	docs := make([]map[string]interface{}, 0, len(res.Valid))
	for _, path := range res.Valid {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, res, fmt.Errorf("service: read %s: %w", path, err)
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, res, fmt.Errorf("service: decode %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	return docs, res, nil
}

// Documents converts canonical stored logs into the parsed-document shape the
// validator, scorer and aggregator operate on.
func Documents(logs []internal.DailyLog) ([]map[string]interface{}, error) {
	docs := make([]map[string]interface{}, 0, len(logs))
	for _, log := range logs {
		raw, err := json.Marshal(log)
		if err != nil {
			return nil, err
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
