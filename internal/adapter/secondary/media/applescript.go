package media

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/skratchdot/open-golang/open"

	"pomoplay/internal/domain"
	"pomoplay/internal/logging"
)

// FallbackVolume is assumed when the current output volume cannot be
// read.
const FallbackVolume = 50

// chimePath is the short sound cue played on completion.
const chimePath = "/System/Library/Sounds/Glass.aiff"

// catalogSearchURL is the Music catalog search front end.
const catalogSearchURL = "https://music.apple.com/search?term="

// AppleScriptController implements domain.MediaController using macOS
// osascript against the Music app and the system output volume. Every
// operation degrades gracefully: scripting failures are logged and the
// timer keeps running.
type AppleScriptController struct {
	runner ScriptRunner
	opener func(string) error
}

var _ domain.MediaController = (*AppleScriptController)(nil)

// NewAppleScriptController creates the native macOS controller.
func NewAppleScriptController() *AppleScriptController {
	return &AppleScriptController{
		runner: ExecRunner{},
		opener: open.Run,
	}
}

func (c *AppleScriptController) script(ctx context.Context, line string) (string, error) {
	return c.runner.Run(ctx, "osascript", "-e", line)
}

func (c *AppleScriptController) music(ctx context.Context, action string) {
	if _, err := c.script(ctx, `tell application "Music" to `+action); err != nil {
		logging.Warnf("music %s: %v", action, err)
	}
}

// GetVolume reads the current output volume (0-100). Query failures fall
// back to FallbackVolume.
func (c *AppleScriptController) GetVolume(ctx context.Context) int {
	out, err := c.script(ctx, "output volume of (get volume settings)")
	if err != nil {
		logging.Warnf("volume query failed, assuming %d: %v", FallbackVolume, err)
		return FallbackVolume
	}
	level, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		logging.Warnf("unexpected volume output %q, assuming %d", out, FallbackVolume)
		return FallbackVolume
	}
	return level
}

// SetVolume sets the output volume, clamping to 0-100.
func (c *AppleScriptController) SetVolume(ctx context.Context, level int) {
	if level < 0 {
		level = 0
	} else if level > 100 {
		level = 100
	}
	if _, err := c.script(ctx, fmt.Sprintf("set volume output volume %d", level)); err != nil {
		logging.Warnf("set volume %d: %v", level, err)
	}
}

// PlayPlaylist starts playback of a named library playlist.
func (c *AppleScriptController) PlayPlaylist(ctx context.Context, name string) {
	c.music(ctx, "play playlist "+scriptString(name))
}

// PausePlayback pauses the Music app.
func (c *AppleScriptController) PausePlayback(ctx context.Context) {
	c.music(ctx, "pause")
}

// ResumePlayback resumes the Music app.
func (c *AppleScriptController) ResumePlayback(ctx context.Context) {
	c.music(ctx, "play")
}

// StopPlayback stops the Music app.
func (c *AppleScriptController) StopPlayback(ctx context.Context) {
	c.music(ctx, "stop")
}

// PlaylistExists reports whether a named playlist is in the local
// library. Query failures count as not found.
func (c *AppleScriptController) PlaylistExists(ctx context.Context, name string) bool {
	out, err := c.script(ctx, `tell application "Music" to exists playlist `+scriptString(name))
	if err != nil {
		logging.Debugf("playlist lookup %q: %v", name, err)
		return false
	}
	return strings.TrimSpace(out) == "true"
}

// SearchCatalog opens the Music catalog search for the term.
// Best-effort, the result is not observed.
func (c *AppleScriptController) SearchCatalog(ctx context.Context, term string) {
	_ = c.opener(catalogSearchURL + url.QueryEscape(term))
}

// ConfigurePlayback applies shuffle-off / repeat-all. Best-effort, the
// result is not observed.
func (c *AppleScriptController) ConfigurePlayback(ctx context.Context) {
	_, _ = c.script(ctx, `tell application "Music" to set shuffle enabled to false`)
	_, _ = c.script(ctx, `tell application "Music" to set song repeat to all`)
}

// OpenURL opens the URL with the OS default handler.
func (c *AppleScriptController) OpenURL(ctx context.Context, rawURL string) {
	if err := c.opener(rawURL); err != nil {
		logging.Warnf("open %s: %v", rawURL, err)
	}
}

// PlayChime plays the completion sound cue.
func (c *AppleScriptController) PlayChime(ctx context.Context) {
	if _, err := c.runner.Run(ctx, "afplay", chimePath); err != nil {
		logging.Warnf("completion sound: %v", err)
	}
}

// scriptString quotes a user-supplied value as an AppleScript string
// literal. Backslashes and double quotes would otherwise terminate or
// escape the literal; single quotes have no special meaning inside it
// and pass through unchanged.
func scriptString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
