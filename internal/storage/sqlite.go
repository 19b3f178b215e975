package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AFLopez01/ai-execution-coach/internal"
)

// SQLiteStorage stores the canonical JSON document per date in a single
// table, so the same schema rules apply regardless of backend.
type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger
}

func NewSQLiteStorage(filePath string, logger internal.Logger) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		logger.Errorf("storage: failed to open sqlite db: %v", err)
		return nil, err
	}
	s := &SQLiteStorage{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStorage) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_logs (
			date       TEXT PRIMARY KEY,
			doc        TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`)
	return err
}

func (s *SQLiteStorage) SaveDailyLog(ctx context.Context, log *internal.DailyLog) error {
	if log.Date == "" {
		return errors.New("storage: daily log has no date")
	}
	doc, err := json.Marshal(log)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO daily_logs (date, doc, created_at)
		VALUES (?, ?, ?)`,
		log.Date, string(doc), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		s.logger.Errorf("storage: failed to insert daily log: %v", err)
	}
	return err
}

func (s *SQLiteStorage) GetDailyLog(ctx context.Context, date string) (*internal.DailyLog, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT doc FROM daily_logs WHERE date = ?`, date)
	var doc string
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var log internal.DailyLog
	if err := json.Unmarshal([]byte(doc), &log); err != nil {
		return nil, false, fmt.Errorf("storage: decode %s: %w", date, err)
	}
	return &log, true, nil
}

func (s *SQLiteStorage) ListDailyLogs(ctx context.Context) ([]internal.DailyLog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date, doc FROM daily_logs ORDER BY date`)
	if err != nil {
		s.logger.Errorf("storage: failed to query daily logs: %v", err)
		return nil, err
	}
	defer rows.Close()

	var logs []internal.DailyLog
	for rows.Next() {
		var date, doc string
		if err := rows.Scan(&date, &doc); err != nil {
			return nil, err
		}
		var log internal.DailyLog
		if err := json.Unmarshal([]byte(doc), &log); err != nil {
			s.logger.Warnf("storage: skipping unreadable log %s: %v", date, err)
			continue
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (s *SQLiteStorage) Close() error { return s.db.Close() }

var _ LogRepository = (*SQLiteStorage)(nil)
