package application

import (
	"path/filepath"
	"testing"
)

func TestGetApplicationDirectory(t *testing.T) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		t.Fatalf("GetApplicationDirectory() error = %v", err)
	}

	if filepath.Base(dir) != AppName {
		t.Errorf("directory = %q, want it to end in %q", dir, AppName)
	}

	// The resolution is cached; a second call returns the same path.
	again, err := GetApplicationDirectory()
	if err != nil {
		t.Fatalf("GetApplicationDirectory() second call error = %v", err)
	}

	if again != dir {
		t.Errorf("second call = %q, want %q", again, dir)
	}
}
