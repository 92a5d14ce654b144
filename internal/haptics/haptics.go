// Package haptics is the fire-and-forget feedback boundary. Callers never
// see a failure from a pulse.
package haptics

import (
	"context"

	"github.com/aalmasoud/unilife/internal/logging"
)

// Feedback is one of the fixed pulse categories.
type Feedback string

const (
	Light     Feedback = "light"
	Medium    Feedback = "medium"
	Heavy     Feedback = "heavy"
	Success   Feedback = "success"
	Warning   Feedback = "warning"
	Error     Feedback = "error"
	Selection Feedback = "selection"
)

// Sink receives haptic pulses. Implementations must not block the caller.
type Sink interface {
	Pulse(fb Feedback)
}

// LogSink reports pulses as debug log lines. It stands in for a platform
// haptic engine on targets without one.
type LogSink struct {
	log logging.Logger
}

func NewLogSink(log logging.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Pulse(fb Feedback) {
	s.log.Debug(context.Background(), "haptic pulse", "feedback", string(fb))
}

// Discard drops every pulse.
type Discard struct{}

func (Discard) Pulse(Feedback) {}
