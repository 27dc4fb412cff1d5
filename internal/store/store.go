package store

import (
	"sync"

	"github.com/inovacc/burnr/internal/model"
)

// Store defines the database operations used by the app.
type Store interface {
	Ping() error
	Close() error

	// Session history
	SaveSession(s *model.Session) error
	GetAllSessions() ([]model.Session, error)
	RemoveSessionByUID(uid string) error

	// Configuration
	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error
}

var (
	once sync.Once
	db   Store
)

// GetDB returns the initialized database store.
func GetDB() Store {
	once.Do(lazyInit)

	return db
}

func lazyInit() {
	instance, err := initDB()
	if err != nil {
		panic(err)
	}

	_ = instance.Ping()
	db = instance
}
