// Package settings persists the two speak toggles to a small JSON file.
// Persistence is best-effort: load falls back to defaults, save failures
// never bubble up to the window.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/accessfs/gsxa/log2"
)

const fileName = "settings.json"

type Settings struct {
	SpeakMenu    bool `json:"speak_menu"`
	SpeakTooltip bool `json:"speak_tooltip"`
}

type Store struct {
	log *log2.Log
	dir string
}

func NewStore(log *log2.Log) *Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		log.Debugf("settings: user config dir (%v)", err)
		dir = "."
	}
	return &Store{log: log, dir: filepath.Join(dir, "gsxa")}
}

// NewStoreDir keeps test files out of the real user profile.
func NewStoreDir(log *log2.Log, dir string) *Store {
	return &Store{log: log, dir: dir}
}

func (st *Store) Path() string { return filepath.Join(st.dir, fileName) }

// Load never fails: missing file, bad JSON, anything -> zero defaults.
func (st *Store) Load() Settings {
	var s Settings
	b, err := os.ReadFile(st.Path())
	if err != nil {
		st.log.Debugf("settings load (%v)", err)
		return Settings{}
	}
	if err := json.Unmarshal(b, &s); err != nil {
		st.log.Debugf("settings parse (%v)", err)
		return Settings{}
	}
	return s
}

// Save overwrites the whole file. Human-readable on purpose.
func (st *Store) Save(s Settings) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		st.log.Debugf("settings marshal (%v)", err)
		return
	}
	if err := os.MkdirAll(st.dir, 0o755); err != nil {
		st.log.Debugf("settings mkdir (%v)", err)
		return
	}
	if err := os.WriteFile(st.Path(), b, 0o644); err != nil {
		st.log.Debugf("settings save (%v)", err)
	}
}
