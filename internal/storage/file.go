package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/AFLopez01/ai-execution-coach/internal"
)

// FileStorage keeps one JSON document per day under a logs directory, the
// same layout the validator's batch mode reads. Writes go through a temp
// file and rename so a crash never leaves a half-written log.
type FileStorage struct {
	dir    string
	mu     sync.RWMutex
	logger internal.Logger
}

func NewFileStorage(dir string, logger internal.Logger) (*FileStorage, error) {
	if dir == "" {
		return nil, errors.New("storage: logs directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Errorf("storage: failed to create logs dir: %v", err)
		return nil, err
	}
	return &FileStorage{dir: dir, logger: logger}, nil
}

func (s *FileStorage) SaveDailyLog(ctx context.Context, log *internal.DailyLog) error {
	if log.Date == "" {
		return errors.New("storage: daily log has no date")
	}
	path, err := s.logPath(log.Date)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return atomicWriteFileJSON(path, log)
}

func (s *FileStorage) GetDailyLog(ctx context.Context, date string) (*internal.DailyLog, bool, error) {
	path, err := s.logPath(date)
	if err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var log internal.DailyLog
	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, false, fmt.Errorf("storage: decode %s: %w", date, err)
	}
	return &log, true, nil
}

func (s *FileStorage) ListDailyLogs(ctx context.Context) ([]internal.DailyLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	logs := make([]internal.DailyLog, 0, len(files))
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var log internal.DailyLog
		if err := json.Unmarshal(raw, &log); err != nil {
			s.logger.Warnf("storage: skipping unreadable log %s: %v", path, err)
			continue
		}
		logs = append(logs, log)
	}
	return logs, nil
}

func (s *FileStorage) Close() error { return nil }

// logPath refuses dates carrying path separators or dot segments so a
// malformed date can never name a file outside the logs directory.
func (s *FileStorage) logPath(date string) (string, error) {
	if date == "" || date == "." || date == ".." || filepath.Base(date) != date {
		return "", fmt.Errorf("storage: invalid date %q", date)
	}
	return filepath.Join(s.dir, date+".json"), nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

var _ LogRepository = (*FileStorage)(nil)
