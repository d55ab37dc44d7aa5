package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomoplay/internal/domain"
)

func TestPositionalURL(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"none", nil, ""},
		{"http", []string{"http://example.com/v"}, "http://example.com/v"},
		{"https", []string{"https://youtu.be/abc"}, "https://youtu.be/abc"},
		{"trimmed", []string{"  https://youtu.be/abc "}, "https://youtu.be/abc"},
		{"notAURL", []string{"lofi beats"}, ""},
		{"otherScheme", []string{"ftp://example.com"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, positionalURL(tc.args))
		})
	}
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "25m", formatOffset(25*time.Minute))
	assert.Equal(t, "0m", formatOffset(0))
	assert.Equal(t, "1.5m", formatOffset(90*time.Second))
}

func TestPlanJSON(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "config.json"),
		"plan", "--json", "-w", "50", "-b", "10", "-i", "2",
	})

	require.NoError(t, root.Execute())

	var entries []struct {
		OffsetMinutes float64 `json:"offsetMinutes"`
		Event         string  `json:"event"`
		Cycle         int     `json:"cycle"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 4)
	assert.Equal(t, 0.0, entries[0].OffsetMinutes)
	assert.Equal(t, "work-start", entries[0].Event)
	assert.Equal(t, 50.0, entries[1].OffsetMinutes)
	assert.Equal(t, "break-start", entries[1].Event)
	assert.Equal(t, 60.0, entries[2].OffsetMinutes)
	assert.Equal(t, "work-start", entries[2].Event)
	assert.Equal(t, 2, entries[2].Cycle)
	assert.Equal(t, 60.0, entries[3].OffsetMinutes)
	assert.Equal(t, "complete", entries[3].Event)
}

func TestPlanRejectsInvalidDurations(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "config.json"),
		"plan", "-w", "0",
	})

	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidWork)
}

func TestConfigSetThenPlanUsesStoredDefaults(t *testing.T) {
	prefs := filepath.Join(t.TempDir(), "config.json")

	set := NewRootCmd()
	set.SetOut(new(bytes.Buffer))
	set.SetArgs([]string{"--config", prefs, "config", "set", "--work", "50", "--cycles", "2"})
	require.NoError(t, set.Execute())

	plan := NewRootCmd()
	var out bytes.Buffer
	plan.SetOut(&out)
	plan.SetArgs([]string{"--config", prefs, "plan", "--json"})
	require.NoError(t, plan.Execute())

	var entries []struct {
		OffsetMinutes float64 `json:"offsetMinutes"`
		Event         string  `json:"event"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	// 50m work + stock 5m break, 2 cycles: break at 50, complete at 55.
	require.Len(t, entries, 4)
	assert.Equal(t, 50.0, entries[1].OffsetMinutes)
	assert.Equal(t, 55.0, entries[2].OffsetMinutes)
	assert.Equal(t, 55.0, entries[3].OffsetMinutes)
	assert.Equal(t, "complete", entries[3].Event)
}
