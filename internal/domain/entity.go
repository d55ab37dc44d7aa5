package domain

import "time"

// Config represents one timer session's parameters.
// It is assembled once from persisted preferences and CLI flags
// and never mutated afterwards.
type Config struct {
	WorkMinutes  int
	BreakMinutes int
	Cycles       int
	Playlist     string
	Search       bool
	LastBreak    bool
	VideoURL     string
}

// WorkDuration returns the length of one work interval.
func (c Config) WorkDuration() time.Duration {
	return time.Duration(c.WorkMinutes) * time.Minute
}

// BreakDuration returns the length of one break interval.
func (c Config) BreakDuration() time.Duration {
	return time.Duration(c.BreakMinutes) * time.Minute
}

// CycleDuration returns the length of one full work+break cycle.
func (c Config) CycleDuration() time.Duration {
	return c.WorkDuration() + c.BreakDuration()
}

// TotalDuration returns the span from session start to the completion
// event. Without a final break the completion shares the last work
// start's offset.
func (c Config) TotalDuration() time.Duration {
	if c.LastBreak {
		return time.Duration(c.Cycles) * c.CycleDuration()
	}
	return time.Duration(c.Cycles-1) * c.CycleDuration()
}

// Validate checks that the session parameters describe a runnable
// timeline.
func (c Config) Validate() error {
	if c.Cycles < 1 {
		return ErrInvalidCycles
	}
	if c.WorkMinutes <= 0 {
		return ErrInvalidWork
	}
	if c.BreakMinutes <= 0 {
		return ErrInvalidBreak
	}
	return nil
}

// DefaultConfig returns the stock 25/5/4 session.
func DefaultConfig() Config {
	return Config{
		WorkMinutes:  25,
		BreakMinutes: 5,
		Cycles:       4,
	}
}

// Mode identifies which media strategy backs mute and unmute for a
// session. It is selected exactly once before scheduling begins and is
// immutable thereafter.
type Mode int

const (
	// ModeSystem mutes and unmutes the system output volume.
	ModeSystem Mode = iota
	// ModeMusic pauses and resumes a Music app playlist.
	ModeMusic
	// ModeVideo opens a video URL in the browser and drives the system
	// output volume around it.
	ModeVideo
)

func (m Mode) String() string {
	switch m {
	case ModeSystem:
		return "system"
	case ModeMusic:
		return "music"
	case ModeVideo:
		return "video"
	default:
		return "unknown"
	}
}
