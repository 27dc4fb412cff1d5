//go:build bolt

package store

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/burnr/internal/encoding"
	"github.com/inovacc/burnr/internal/model"
	"github.com/inovacc/burnr/internal/params"
	"go.etcd.io/bbolt"
)

const (
	boltBucketSessions = "sessions" // key: UID -> Session JSON
	boltBucketConfig   = "config"   // key: "config" -> Config JSON
)

const boltConfigKey = "config"

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a new Bolt database at the specified path.
// This is primarily exposed for testing purposes.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database: %w", err)
	}

	err = instance.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{boltBucketSessions, boltBucketConfig} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("creating bucket %s: %w", bucket, err)
			}
		}

		return nil
	})
	if err != nil {
		_ = instance.Close()
		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func initDB() (Store, error) {
	return NewBolt(filepath.Join(params.AppdataDir, "burnr.storage"))
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltBucketSessions)) == nil {
			return fmt.Errorf("bucket %s missing", boltBucketSessions)
		}

		return nil
	})
}

func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) SaveSession(s *model.Session) error {
	if s.UID == "" {
		s.UID = uuid.New().String()
	}

	data, err := encoding.ToJSON(s)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSessions)).Put([]byte(s.UID), data)
	})
}

func (b *Bolt) GetAllSessions() ([]model.Session, error) {
	var sessions []model.Session

	err := b.storage.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSessions)).ForEach(func(_, v []byte) error {
			s, err := encoding.ParseJSON[model.Session](v)
			if err != nil {
				return err
			}

			sessions = append(sessions, *s)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// Bolt iterates in key order; history wants newest first.
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].EndedAt.After(sessions[j].EndedAt)
	})

	return sessions, nil
}

func (b *Bolt) RemoveSessionByUID(uid string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketSessions))

		if bucket.Get([]byte(uid)) == nil {
			return fmt.Errorf("session %s not found", uid)
		}

		return bucket.Delete([]byte(uid))
	})
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	var cfg *model.Config

	err := b.storage.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(boltBucketConfig)).Get([]byte(boltConfigKey))
		if data == nil {
			defaults := model.DefaultConfig()
			cfg = &defaults

			return nil
		}

		parsed, err := encoding.ParseJSON[model.Config](data)
		if err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg = parsed

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	data, err := encoding.ToJSON(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketConfig)).Put([]byte(boltConfigKey), data)
	})
}
