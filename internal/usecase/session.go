package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"pomoplay/internal/domain"
	"pomoplay/internal/logging"
)

// playbackGrace is how long to wait after asking the Music app to play
// before sending the shuffle/repeat settings. The scripting interface
// gives no readiness signal, so a short fixed grace period stands in for
// one.
const playbackGrace = 500 * time.Millisecond

// restoreTimeout bounds the best-effort restore that runs when a session
// is interrupted mid-timeline.
const restoreTimeout = 5 * time.Second

// Session drives one timer run: it selects the operating mode, performs
// that mode's startup protocol, then walks the precomputed timeline and
// fires each event exactly once. All media calls happen from a single
// goroutine, so no two handlers ever run concurrently.
type Session struct {
	media  domain.MediaController
	clock  clockwork.Clock
	config domain.Config

	mode           domain.Mode
	originalVolume int
	started        time.Time
}

// NewSession validates cfg and prepares a session. A nil clock selects
// the real clock; tests inject a fake one.
func NewSession(media domain.MediaController, clock clockwork.Clock, cfg domain.Config) (*Session, error) {
	if media == nil {
		return nil, errors.New("media controller is required")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{media: media, clock: clock, config: cfg}, nil
}

// Mode reports the operating mode chosen by SelectMode.
func (s *Session) Mode() domain.Mode {
	return s.mode
}

// SelectMode performs exactly one of the three startup protocols and
// fixes the muting strategy for the rest of the session. A video URL
// always wins over a playlist. The only fatal outcome is a playlist that
// is absent from the library with catalog search disabled.
func (s *Session) SelectMode(ctx context.Context) error {
	switch {
	case s.config.VideoURL != "":
		s.mode = domain.ModeVideo
		s.media.OpenURL(ctx, s.config.VideoURL)
		s.originalVolume = s.media.GetVolume(ctx)
		logging.Infof("video mode: opened %s, output volume %d", s.config.VideoURL, s.originalVolume)

	case s.config.Playlist != "":
		s.mode = domain.ModeMusic
		if s.media.PlaylistExists(ctx, s.config.Playlist) {
			s.media.PlayPlaylist(ctx, s.config.Playlist)
			// The player accepts commands before it is actually
			// playing; give it a moment before changing settings.
			s.clock.Sleep(playbackGrace)
			s.media.ConfigurePlayback(ctx)
			logging.Infof("music mode: playing playlist %q", s.config.Playlist)
		} else if s.config.Search {
			s.media.SearchCatalog(ctx, s.config.Playlist)
			logging.Infof("music mode: %q is not in the library, searching the catalog", s.config.Playlist)
		} else {
			return fmt.Errorf("%w: %q (pass --search to look it up in the catalog)",
				domain.ErrPlaylistNotFound, s.config.Playlist)
		}

	default:
		s.mode = domain.ModeSystem
		s.originalVolume = s.media.GetVolume(ctx)
		logging.Infof("system mode: output volume %d", s.originalVolume)
	}
	return nil
}

// Run walks the timeline, firing each event exactly once at its absolute
// time computed from a single start timestamp. It returns after the
// completion event, or when ctx is cancelled, in which case all pending
// events are dropped and a best-effort restore puts the audio state
// back.
func (s *Session) Run(ctx context.Context) error {
	timeline := domain.BuildTimeline(s.config)
	s.started = s.clock.Now()
	logging.Debugf("timeline: %d events over %s", len(timeline), s.config.TotalDuration())

	for _, ev := range timeline {
		at := s.started.Add(ev.Offset)
		if wait := at.Sub(s.clock.Now()); wait > 0 {
			timer := s.clock.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				s.restore()
				return ctx.Err()
			case <-timer.Chan():
			}
		}
		if ctx.Err() != nil {
			s.restore()
			return ctx.Err()
		}
		s.dispatch(ctx, ev)
	}
	return nil
}

func (s *Session) dispatch(ctx context.Context, ev domain.CycleEvent) {
	switch ev.Kind {
	case domain.EventWorkStart:
		s.report("work %d/%d — go", ev.Cycle, s.config.Cycles)
		s.unmute(ctx)
	case domain.EventBreakStart:
		s.report("break %d/%d — step away", ev.Cycle, s.config.Cycles)
		s.mute(ctx)
	case domain.EventComplete:
		s.report("all %d cycles done", s.config.Cycles)
		s.complete(ctx)
	}
}

func (s *Session) unmute(ctx context.Context) {
	switch s.mode {
	case domain.ModeMusic:
		s.media.ResumePlayback(ctx)
	default:
		s.media.SetVolume(ctx, s.originalVolume)
	}
}

func (s *Session) mute(ctx context.Context) {
	switch s.mode {
	case domain.ModeMusic:
		s.media.PausePlayback(ctx)
	default:
		s.media.SetVolume(ctx, 0)
	}
}

func (s *Session) complete(ctx context.Context) {
	switch s.mode {
	case domain.ModeMusic:
		s.media.StopPlayback(ctx)
	default:
		s.media.SetVolume(ctx, s.originalVolume)
	}
	s.media.PlayChime(ctx)
}

// restore undoes a mid-break mute after an interrupt so the user is not
// left silenced or paused. The session context is already cancelled at
// this point, so the restore gets its own bounded one.
func (s *Session) restore() {
	ctx, cancel := context.WithTimeout(context.Background(), restoreTimeout)
	defer cancel()

	switch s.mode {
	case domain.ModeMusic:
		s.media.ResumePlayback(ctx)
	default:
		s.media.SetVolume(ctx, s.originalVolume)
	}
	logging.Warnf("interrupted, audio state restored")
}

// report prints a timestamped status line for every transition. These
// lines are the primary user output and show regardless of verbosity.
func (s *Session) report(format string, args ...any) {
	fmt.Printf("%s  %s\n", s.clock.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
}
