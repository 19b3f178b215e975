package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AFLopez01/ai-execution-coach/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	p := &PostgresStorage{pool: pool, logger: logger}
	if err := p.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresStorage) initSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS daily_logs (
			date       TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		p.logger.Errorf("failed to ensure daily_logs table: %v", err)
	}
	return err
}

func (p *PostgresStorage) SaveDailyLog(ctx context.Context, log *internal.DailyLog) error {
	if log.Date == "" {
		return errors.New("storage: daily log has no date")
	}
	doc, err := json.Marshal(log)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO daily_logs (date, doc) VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET doc = EXCLUDED.doc`,
		log.Date, doc)
	if err != nil {
		p.logger.Errorf("failed to upsert daily log: %v", err)
	}
	return err
}

func (p *PostgresStorage) GetDailyLog(ctx context.Context, date string) (*internal.DailyLog, bool, error) {
	row := p.pool.QueryRow(ctx, `SELECT doc FROM daily_logs WHERE date = $1`, date)
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var log internal.DailyLog
	if err := json.Unmarshal(doc, &log); err != nil {
		return nil, false, fmt.Errorf("storage: decode %s: %w", date, err)
	}
	return &log, true, nil
}

func (p *PostgresStorage) ListDailyLogs(ctx context.Context) ([]internal.DailyLog, error) {
	rows, err := p.pool.Query(ctx, `SELECT date, doc FROM daily_logs ORDER BY date`)
	if err != nil {
		p.logger.Errorf("failed to query daily logs: %v", err)
		return nil, err
	}
	defer rows.Close()

	var logs []internal.DailyLog
	for rows.Next() {
		var date string
		var doc []byte
		if err := rows.Scan(&date, &doc); err != nil {
			return nil, err
		}
		var log internal.DailyLog
		if err := json.Unmarshal(doc, &log); err != nil {
			p.logger.Warnf("skipping unreadable log %s: %v", date, err)
			continue
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

var _ LogRepository = (*PostgresStorage)(nil)
