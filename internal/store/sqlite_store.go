//go:build !bolt

package store

import (
	"path/filepath"

	"github.com/inovacc/burnr/internal/model"
	"github.com/inovacc/burnr/internal/params"
	"github.com/inovacc/burnr/internal/store/sqlite"
)

// SQLiteWrapper wraps the sqlite.Store to implement the Store interface.
type SQLiteWrapper struct {
	store *sqlite.Store
}

func initDB() (Store, error) {
	path := filepath.Join(params.AppdataDir, "burnr.db")

	s, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteWrapper{store: s}, nil
}

func (w *SQLiteWrapper) Ping() error {
	return w.store.Ping()
}

func (w *SQLiteWrapper) Close() error {
	return w.store.Close()
}

func (w *SQLiteWrapper) SaveSession(s *model.Session) error {
	return w.store.SaveSession(s)
}

func (w *SQLiteWrapper) GetAllSessions() ([]model.Session, error) {
	sessions, err := w.store.GetAllSessions()
	if err != nil {
		return nil, err
	}

	result := make([]model.Session, len(sessions))
	for i, s := range sessions {
		result[i] = *s
	}

	return result, nil
}

func (w *SQLiteWrapper) RemoveSessionByUID(uid string) error {
	return w.store.RemoveSessionByUID(uid)
}

func (w *SQLiteWrapper) GetConfig() (*model.Config, error) {
	return w.store.GetConfig()
}

func (w *SQLiteWrapper) SaveConfig(cfg *model.Config) error {
	return w.store.SaveConfig(cfg)
}
