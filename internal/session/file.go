package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/riskwatch/riskwatch/internal/models"
	"go.uber.org/zap"
)

// FileStore keeps the session as a JSON file on disk. It is the default
// backend and the one tests use.
type FileStore struct {
	path   string
	logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Load(_ context.Context) (*models.User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" {
		s.logger.Warn("discarding malformed session file", zap.String("path", s.path), zap.Error(err))
		return nil, nil
	}
	return &user, nil
}

func (s *FileStore) Save(_ context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
