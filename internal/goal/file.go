package goal

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps the goal as a decimal string in a plain-text file. The
// mutex serializes writers; concurrent goal updates are rare (a human editing
// the target) but a torn file would stick until the next write.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Read(ctx context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("goal file read failed", "path", s.path, "error", err)
		}
		return DefaultGoal
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		s.logger.Warn("goal file unparsable", "path", s.path, "error", err)
		return DefaultGoal
	}
	return value
}

func (s *FileStore) Write(ctx context.Context, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, []byte(strconv.FormatFloat(value, 'f', -1, 64)), 0o644)
}
