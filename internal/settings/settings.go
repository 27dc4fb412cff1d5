// Package settings loads the optional UI settings file. Everything in it is
// cosmetic; a missing or unreadable file silently falls back to built-ins.
package settings

import (
	"log/slog"
	"path/filepath"

	"github.com/inovacc/burnr/internal/params"
	"gopkg.in/ini.v1"
)

const fileName = "settings.ini"

// Settings holds user-tunable UI preferences.
type Settings struct {
	// AccentColor is the ANSI color code used for highlighted elements
	AccentColor string

	// MutedColor is the ANSI color code used for secondary text
	MutedColor string

	// ShowHelp toggles the key-binding help line at the bottom of views
	ShowHelp bool
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		AccentColor: "205",
		MutedColor:  "240",
		ShowHelp:    true,
	}
}

// Load reads settings.ini from the application directory. Keys that are
// missing or malformed keep their built-in values.
func Load() Settings {
	return loadFrom(filepath.Join(params.AppdataDir, fileName))
}

func loadFrom(path string) Settings {
	s := Default()

	cfg, err := ini.LooseLoad(path)
	if err != nil {
		slog.Warn("failed to load settings file, using defaults", "path", path, "error", err)
		return s
	}

	ui := cfg.Section("ui")
	s.AccentColor = ui.Key("accent_color").MustString(s.AccentColor)
	s.MutedColor = ui.Key("muted_color").MustString(s.MutedColor)
	s.ShowHelp = ui.Key("show_help").MustBool(s.ShowHelp)

	return s
}
