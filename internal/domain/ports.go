package domain

import "context"

// MediaController is a secondary port covering everything that touches
// the OS audio and media environment. Implementations handle their own
// failures: PlaylistExists reports absence, the remaining operations log
// and degrade so a failed scripting call never aborts the timer.
type MediaController interface {
	// GetVolume reads the current output volume (0-100), falling back
	// to a midpoint default when the query fails.
	GetVolume(ctx context.Context) int
	// SetVolume sets the output volume, clamping to 0-100.
	SetVolume(ctx context.Context, level int)
	// PlayPlaylist starts playback of a named library playlist.
	PlayPlaylist(ctx context.Context, name string)
	// PausePlayback pauses the media player.
	PausePlayback(ctx context.Context)
	// ResumePlayback resumes the media player.
	ResumePlayback(ctx context.Context)
	// StopPlayback stops the media player.
	StopPlayback(ctx context.Context)
	// PlaylistExists reports whether a named playlist is in the local
	// library. Query failures count as not found.
	PlaylistExists(ctx context.Context, name string) bool
	// SearchCatalog issues a catalog search for the term. Best-effort,
	// result ignored.
	SearchCatalog(ctx context.Context, term string)
	// ConfigurePlayback applies the fixed shuffle-off / repeat-all
	// playback settings. Best-effort, result ignored.
	ConfigurePlayback(ctx context.Context)
	// OpenURL opens the URL with the OS default handler.
	OpenURL(ctx context.Context, url string)
	// PlayChime plays the short completion sound cue.
	PlayChime(ctx context.Context)
}

// PrefsRepository is a secondary port that persists default session
// parameters between runs.
type PrefsRepository interface {
	Load() (Config, error)
	Save(Config) error
}
