package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls [][]string
	out   string
	err   error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.out, f.err
}

func newTestController(runner *fakeRunner) (*AppleScriptController, *[]string) {
	opened := &[]string{}
	c := &AppleScriptController{
		runner: runner,
		opener: func(u string) error {
			*opened = append(*opened, u)
			return nil
		},
	}
	return c, opened
}

func TestScriptString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`Deep Focus`, `"Deep Focus"`},
		{`Rock 'n' Roll`, `"Rock 'n' Roll"`},
		{`My "Best" Mix`, `"My \"Best\" Mix"`},
		{`back\slash`, `"back\\slash"`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scriptString(tc.in))
	}
}

func TestPlayPlaylistKeepsQuotedNameIntact(t *testing.T) {
	runner := &fakeRunner{}
	c, _ := newTestController(runner)

	c.PlayPlaylist(context.Background(), "Rock 'n' Roll")

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{
		"osascript", "-e",
		`tell application "Music" to play playlist "Rock 'n' Roll"`,
	}, runner.calls[0])
}

func TestGetVolume(t *testing.T) {
	t.Run("parses output", func(t *testing.T) {
		c, _ := newTestController(&fakeRunner{out: "37"})
		assert.Equal(t, 37, c.GetVolume(context.Background()))
	})

	t.Run("falls back on command failure", func(t *testing.T) {
		c, _ := newTestController(&fakeRunner{err: errors.New("osascript failed")})
		assert.Equal(t, FallbackVolume, c.GetVolume(context.Background()))
	})

	t.Run("falls back on garbage output", func(t *testing.T) {
		c, _ := newTestController(&fakeRunner{out: "execution error"})
		assert.Equal(t, FallbackVolume, c.GetVolume(context.Background()))
	})
}

func TestSetVolumeClamps(t *testing.T) {
	runner := &fakeRunner{}
	c, _ := newTestController(runner)

	c.SetVolume(context.Background(), 150)
	c.SetVolume(context.Background(), -3)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "set volume output volume 100", runner.calls[0][2])
	assert.Equal(t, "set volume output volume 0", runner.calls[1][2])
}

func TestPlaylistExists(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		c, _ := newTestController(&fakeRunner{out: "true"})
		assert.True(t, c.PlaylistExists(context.Background(), "Jazz"))
	})

	t.Run("absent", func(t *testing.T) {
		c, _ := newTestController(&fakeRunner{out: "false"})
		assert.False(t, c.PlaylistExists(context.Background(), "Jazz"))
	})

	t.Run("query failure counts as absent", func(t *testing.T) {
		c, _ := newTestController(&fakeRunner{err: errors.New("timed out")})
		assert.False(t, c.PlaylistExists(context.Background(), "Jazz"))
	})
}

func TestSearchCatalogEscapesTerm(t *testing.T) {
	c, opened := newTestController(&fakeRunner{})

	c.SearchCatalog(context.Background(), "Deep Focus & Chill")

	assert.Equal(t, []string{"https://music.apple.com/search?term=Deep+Focus+%26+Chill"}, *opened)
}

func TestOpenURL(t *testing.T) {
	c, opened := newTestController(&fakeRunner{})

	c.OpenURL(context.Background(), "https://youtu.be/abc")

	assert.Equal(t, []string{"https://youtu.be/abc"}, *opened)
}

func TestConfigurePlayback(t *testing.T) {
	runner := &fakeRunner{}
	c, _ := newTestController(runner)

	c.ConfigurePlayback(context.Background())

	require.Len(t, runner.calls, 2)
	assert.Equal(t, `tell application "Music" to set shuffle enabled to false`, runner.calls[0][2])
	assert.Equal(t, `tell application "Music" to set song repeat to all`, runner.calls[1][2])
}

func TestPlayChime(t *testing.T) {
	runner := &fakeRunner{}
	c, _ := newTestController(runner)

	c.PlayChime(context.Background())

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"afplay", chimePath}, runner.calls[0])
}
