package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"learnwords/internal/config"
	"learnwords/internal/logger"
	"learnwords/models"
)

// Persisted key names, kept byte-identical to the web client's localStorage
// keys so a session file can be inspected against the original product.
const (
	keyAuthorized = "userAuthorized"
	keyUser       = "user"
	keyUserName   = "user name"
)

type fileSessionStorage struct {
	path     string
	inMemory bool
	log      *logger.Logger

	mu     sync.RWMutex
	values map[string]string
}

// NewSessionStorage opens the session store at cfg.SessionFilePath, loading
// any previously persisted keys. The path ":memory:" keeps all keys in
// process memory, which is what tests use.
func NewSessionStorage(cfg config.ClientStorage, log *logger.Logger) (SessionRepository, error) {
	path := cfg.SessionFilePath
	if path == "" {
		path = ":memory:"
	}

	s := &fileSessionStorage{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
		log:      log,
		values:   make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSessionStorage) SaveSession(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[keyAuthorized] = strconv.FormatBool(true)
	s.values[keyUser] = string(payload)
	s.values[keyUserName] = session.Name

	return s.persist()
}

func (s *fileSessionStorage) RestoreSession(ctx context.Context) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authorized, err := strconv.ParseBool(s.values[keyAuthorized])
	if err != nil || !authorized {
		return models.Session{}, ErrSessionNotFound
	}

	var session models.Session
	if err = json.Unmarshal([]byte(s.values[keyUser]), &session); err != nil {
		s.log.Warn().Err(err).Msg("stored session record is corrupted")
		return models.Session{}, ErrSessionNotFound
	}

	session.IsAuthorized = true
	if session.Name == "" {
		session.Name = s.values[keyUserName]
	}

	return session, nil
}

func (s *fileSessionStorage) SaveUserName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[keyUserName] = name
	return s.persist()
}

func (s *fileSessionStorage) UserName(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.values[keyUserName], nil
}

func (s *fileSessionStorage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, keyAuthorized)
	delete(s.values, keyUser)
	delete(s.values, keyUserName)

	return s.persist()
}

// load reads the persisted key/value map from disk. A missing file is a
// fresh logged-out state, not an error.
func (s *fileSessionStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	values := make(map[string]string)
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}

	s.values = values
	return nil
}

// persist writes the full key/value map. Callers must hold the write lock;
// writing the whole map in one call is what makes ClearSession atomic from
// the caller's perspective.
func (s *fileSessionStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session store: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
