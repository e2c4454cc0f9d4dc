package world

import "go.uber.org/zap"

// Event is one entry of the world's append-only log: what a thing did (or
// failed to do) on a given tick. The log grows unboundedly; truncation, if
// any, is the host's business.
type Event struct {
	Tick    int
	Thing   *Thing
	Message string
}

// Events returns the full event log. The returned slice is the world's own
// backing store; callers must not mutate it.
func (w *World) Events() []Event {
	return w.events
}

func (w *World) logEvent(t *Thing, message string) {
	w.events = append(w.events, Event{Tick: w.tick, Thing: t, Message: message})
	w.log.Debug("event",
		zap.Int("tick", w.tick),
		zap.String("thing", t.Name),
		zap.String("message", message),
	)
}
