//go:build bolt

package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/burnr/internal/model"
)

func setupTestDB(t *testing.T) *Bolt {
	t.Helper()

	db, err := NewBolt(filepath.Join(t.TempDir(), "test.storage"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	return db
}

func TestBolt_Ping(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(); err != nil {
		t.Errorf("Ping() error = %v, want nil", err)
	}
}

func TestBolt_SaveSession(t *testing.T) {
	db := setupTestDB(t)

	sess := &model.Session{
		Description: "standup",
		Attendees:   5,
		HourlyRate:  80,
		Currency:    "euro",
		Duration:    900,
		Cost:        100,
		StartedAt:   time.Now().Add(-15 * time.Minute),
		EndedAt:     time.Now(),
	}

	if err := db.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	if sess.UID == "" {
		t.Error("SaveSession() did not assign a UID")
	}

	sessions, err := db.GetAllSessions()
	if err != nil {
		t.Fatalf("GetAllSessions() error = %v", err)
	}

	if len(sessions) != 1 {
		t.Fatalf("GetAllSessions() returned %d sessions, want 1", len(sessions))
	}

	if sessions[0].Description != "standup" {
		t.Errorf("Description = %q, want %q", sessions[0].Description, "standup")
	}
}

func TestBolt_GetAllSessions_NewestFirst(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	for i, desc := range []string{"first", "second", "third"} {
		sess := &model.Session{Description: desc, Currency: "euro", EndedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := db.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession(%q) error = %v", desc, err)
		}
	}

	sessions, err := db.GetAllSessions()
	if err != nil {
		t.Fatalf("GetAllSessions() error = %v", err)
	}

	want := []string{"third", "second", "first"}
	for i, desc := range want {
		if sessions[i].Description != desc {
			t.Errorf("sessions[%d].Description = %q, want %q", i, sessions[i].Description, desc)
		}
	}
}

func TestBolt_RemoveSessionByUID(t *testing.T) {
	db := setupTestDB(t)

	sess := &model.Session{Description: "retro", Currency: "euro", EndedAt: time.Now()}
	if err := db.SaveSession(sess); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	if err := db.RemoveSessionByUID(sess.UID); err != nil {
		t.Fatalf("RemoveSessionByUID() error = %v", err)
	}

	if err := db.RemoveSessionByUID(sess.UID); err == nil {
		t.Error("RemoveSessionByUID() on missing session: want error, got nil")
	}
}

func TestBolt_Config(t *testing.T) {
	db := setupTestDB(t)

	cfg, err := db.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}

	if *cfg != model.DefaultConfig() {
		t.Errorf("GetConfig() with empty store = %+v, want defaults", *cfg)
	}

	cfg.DefaultAttendees = 3
	cfg.DefaultCurrency = "usdollar"

	if err := db.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	got, err := db.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}

	if got.DefaultAttendees != 3 || got.DefaultCurrency != "usdollar" {
		t.Errorf("GetConfig() after save = %+v", *got)
	}
}
