package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pomoplay/internal/domain"
)

// FilePrefs implements domain.PrefsRepository using a JSON file. It
// holds the default session parameters that `start` falls back to when a
// flag is not given explicitly.
type FilePrefs struct {
	path string
	mu   sync.Mutex
}

var _ domain.PrefsRepository = (*FilePrefs)(nil)

// NewFilePrefs creates a file-based preferences repository. Parent
// directories are created automatically.
func NewFilePrefs(path string) (*FilePrefs, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	return &FilePrefs{path: path}, nil
}

// persisted is the JSON structure on disk. A video URL is a per-run
// argument and is deliberately not persisted.
type persisted struct {
	WorkMinutes  int    `json:"workMinutes"`
	BreakMinutes int    `json:"breakMinutes"`
	Cycles       int    `json:"cycles"`
	Playlist     string `json:"playlist,omitempty"`
	Search       bool   `json:"search"`
	LastBreak    bool   `json:"lastBreak"`
}

// Load reads the stored defaults, or the built-in 25/5/4 defaults when
// no file exists yet. Zero or negative stored values fall back to the
// defaults field by field.
func (f *FilePrefs) Load() (domain.Config, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("read prefs: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Config{}, fmt.Errorf("unmarshal prefs: %w", err)
	}

	cfg := domain.Config{
		WorkMinutes:  p.WorkMinutes,
		BreakMinutes: p.BreakMinutes,
		Cycles:       p.Cycles,
		Playlist:     p.Playlist,
		Search:       p.Search,
		LastBreak:    p.LastBreak,
	}
	defaults := domain.DefaultConfig()
	if cfg.WorkMinutes <= 0 {
		cfg.WorkMinutes = defaults.WorkMinutes
	}
	if cfg.BreakMinutes <= 0 {
		cfg.BreakMinutes = defaults.BreakMinutes
	}
	if cfg.Cycles <= 0 {
		cfg.Cycles = defaults.Cycles
	}
	return cfg, nil
}

// Save persists the defaults to disk atomically.
func (f *FilePrefs) Save(cfg domain.Config) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := persisted{
		WorkMinutes:  cfg.WorkMinutes,
		BreakMinutes: cfg.BreakMinutes,
		Cycles:       cfg.Cycles,
		Playlist:     cfg.Playlist,
		Search:       cfg.Search,
		LastBreak:    cfg.LastBreak,
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}

// DefaultPath returns ~/.config/pomoplay/config.json (or a cwd fallback).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".config", "pomoplay", "config.json")
	}
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, "pomoplay-config.json")
}
