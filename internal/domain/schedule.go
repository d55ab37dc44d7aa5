package domain

import "time"

// EventKind discriminates timeline entries.
type EventKind int

const (
	EventWorkStart EventKind = iota
	EventBreakStart
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventWorkStart:
		return "work-start"
	case EventBreakStart:
		return "break-start"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// CycleEvent is one entry of a session timeline: fire the Kind action at
// Offset from session start. Cycle is 1-based; it is zero for the
// completion event.
type CycleEvent struct {
	Offset time.Duration
	Kind   EventKind
	Cycle  int
}

// BuildTimeline expands a validated Config into the ordered event list
// for one session. Cycle k's work starts at (k-1)*(work+break) and its
// break follows one work length later, except that the last cycle has no
// break unless LastBreak is set. Without a final break the completion
// shares the last work start's offset and is dispatched right after it;
// with one it gets its own slot after the final break. Slice order is
// dispatch order.
func BuildTimeline(cfg Config) []CycleEvent {
	work := cfg.WorkDuration()
	cycle := cfg.CycleDuration()

	events := make([]CycleEvent, 0, 2*cfg.Cycles+1)
	for k := 1; k <= cfg.Cycles; k++ {
		start := time.Duration(k-1) * cycle
		events = append(events, CycleEvent{Offset: start, Kind: EventWorkStart, Cycle: k})
		if k == cfg.Cycles && !cfg.LastBreak {
			events = append(events, CycleEvent{Offset: start, Kind: EventComplete})
			continue
		}
		events = append(events, CycleEvent{Offset: start + work, Kind: EventBreakStart, Cycle: k})
	}
	if cfg.LastBreak {
		events = append(events, CycleEvent{Offset: time.Duration(cfg.Cycles) * cycle, Kind: EventComplete})
	}
	return events
}
