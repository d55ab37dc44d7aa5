package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomoplay/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	repo, err := NewFilePrefs(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, err := NewFilePrefs(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	stored := domain.Config{
		WorkMinutes:  50,
		BreakMinutes: 10,
		Cycles:       3,
		Playlist:     "Deep Focus",
		Search:       true,
		LastBreak:    true,
		VideoURL:     "https://youtu.be/abc", // transient, must not persist
	}
	require.NoError(t, repo.Save(stored))

	cfg, err := repo.Load()
	require.NoError(t, err)

	stored.VideoURL = ""
	assert.Equal(t, stored, cfg)
}

func TestLoadFillsZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cycles": 2}`), 0o644))
	repo, err := NewFilePrefs(path)
	require.NoError(t, err)

	cfg, err := repo.Load()

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.WorkMinutes)
	assert.Equal(t, 5, cfg.BreakMinutes)
	assert.Equal(t, 2, cfg.Cycles)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	repo, err := NewFilePrefs(path)
	require.NoError(t, err)

	_, err = repo.Load()

	assert.Error(t, err)
}
