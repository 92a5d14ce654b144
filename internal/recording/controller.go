// Package recording implements the audio note lifecycle: one in-progress
// capture per controller, moving through record, stop, preview playback and
// save or discard.
package recording

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aalmasoud/unilife/internal/audio"
	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
)

// State is the controller's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateStopped
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Clock is the time source for the one-second recording tick.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker mirrors the parts of time.Ticker the controller needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realClock struct{}

func (realClock) NewTicker(d time.Duration) Ticker { return &realTicker{t: time.NewTicker(d)} }

type realTicker struct{ t *time.Ticker }

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// Controller owns exactly one audio capture at a time. All transitions are
// guarded by the current state: invalid stop/discard calls are no-ops, a
// failed device acquisition surfaces ErrDeviceUnavailable, and a note may
// only be committed from the stopped state with a captured URI.
//
// The input and output devices are distinct resources, so a loaded sound may
// coexist with the recorder, but the guards never allow two captures or two
// playbacks through the same controller.
type Controller struct {
	recorder audio.Recorder
	player   audio.Player
	haptics  haptics.Sink
	log      logging.Logger
	clock    Clock

	mu       sync.Mutex
	state    State
	elapsed  int
	uri      string
	sound    audio.Sound
	tickDone chan struct{}
	ticker   Ticker
}

// Option tweaks a Controller at construction.
type Option func(*Controller)

// WithClock replaces the real time source, for tests.
func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func NewController(rec audio.Recorder, play audio.Player, sink haptics.Sink, log logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		recorder: rec,
		player:   play,
		haptics:  sink,
		log:      log,
		clock:    realClock{},
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle position.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Elapsed returns the recorded duration in whole seconds.
func (c *Controller) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// URI returns the captured recording's URI, empty until a stop succeeds.
func (c *Controller) URI() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uri
}

// Start acquires the capture device and begins recording. Allowed from Idle
// and from Stopped (starting over replaces the previous capture). Calling
// Start while already recording is a no-op; during playback it is ignored
// as well, the guards keep the two devices single-use.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle && c.state != StateStopped {
		c.mu.Unlock()
		return nil
	}
	// Starting over drops the previous take.
	c.releaseSoundLocked()
	c.uri = ""
	c.elapsed = 0
	c.mu.Unlock()

	if err := c.recorder.Start(ctx); err != nil {
		c.haptics.Pulse(haptics.Error)
		c.log.Error(ctx, "failed to start recording", "error", err)
		return fmt.Errorf("starting capture: %w", err)
	}

	c.mu.Lock()
	c.state = StateRecording
	c.startTickLocked()
	c.mu.Unlock()

	c.haptics.Pulse(haptics.Medium)
	return nil
}

// Stop ends the capture, cancels the duration tick exactly once and keeps
// the resulting URI for preview and save. A no-op unless recording.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateRecording {
		c.mu.Unlock()
		return nil
	}
	c.stopTickLocked()
	c.mu.Unlock()

	uri, err := c.recorder.Stop(ctx)

	c.mu.Lock()
	if err != nil {
		c.state = StateIdle
		c.uri = ""
		c.elapsed = 0
		c.mu.Unlock()
		c.haptics.Pulse(haptics.Error)
		c.log.Error(ctx, "failed to stop recording", "error", err)
		return fmt.Errorf("stopping capture: %w", err)
	}
	c.state = StateStopped
	c.uri = uri
	elapsed := c.elapsed
	c.mu.Unlock()

	c.haptics.Pulse(haptics.Success)
	c.log.Debug(ctx, "recording stopped", "uri", uri, "seconds", elapsed)
	return nil
}

// Play toggles preview playback: from Stopped it loads the capture and
// plays, while playing it pauses, while paused it resumes. Natural
// completion returns the controller to Stopped with the position rewound.
func (c *Controller) Play(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateIdle, StateRecording:
		c.mu.Unlock()
		return nil

	case StatePlaying:
		sound := c.sound
		c.state = StatePaused
		c.mu.Unlock()
		if err := sound.Pause(); err != nil {
			c.haptics.Pulse(haptics.Error)
			return fmt.Errorf("pausing playback: %w", err)
		}
		return nil

	case StatePaused:
		sound := c.sound
		c.state = StatePlaying
		c.mu.Unlock()
		c.haptics.Pulse(haptics.Light)
		if err := sound.Play(); err != nil {
			c.setState(StateStopped)
			c.haptics.Pulse(haptics.Error)
			return fmt.Errorf("resuming playback: %w", err)
		}
		return nil

	default: // StateStopped
		uri := c.uri
		sound := c.sound
		c.mu.Unlock()
		if uri == "" {
			return nil
		}

		if sound == nil {
			loaded, err := c.player.Load(ctx, uri)
			if err != nil {
				c.haptics.Pulse(haptics.Error)
				c.log.Error(ctx, "failed to load recording", "uri", uri, "error", err)
				return fmt.Errorf("loading recording: %w", err)
			}
			loaded.OnComplete(c.onPlaybackFinished)
			c.mu.Lock()
			c.sound = loaded
			sound = loaded
			c.mu.Unlock()
		}

		c.setState(StatePlaying)
		c.haptics.Pulse(haptics.Light)
		if err := sound.Play(); err != nil {
			c.setState(StateStopped)
			c.haptics.Pulse(haptics.Error)
			return fmt.Errorf("starting playback: %w", err)
		}
		return nil
	}
}

// Discard drops the capture and returns to Idle, releasing the loaded
// sound. A no-op unless stopped, so the same controller can be reused for
// a fresh take.
func (c *Controller) Discard(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateStopped {
		c.mu.Unlock()
		return nil
	}
	c.releaseSoundLocked()
	c.uri = ""
	c.elapsed = 0
	c.state = StateIdle
	c.mu.Unlock()

	c.haptics.Pulse(haptics.Warning)
	c.log.Debug(ctx, "recording discarded")
	return nil
}

// Commit returns the capture for saving. Only legal from Stopped with a
// non-empty URI; every other state yields a validation error.
func (c *Controller) Commit() (uri string, seconds int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateStopped || c.uri == "" {
		return "", 0, fmt.Errorf("%w: record a note before saving", common.ErrValidation)
	}
	return c.uri, c.elapsed, nil
}

// Close is the teardown path: an active capture is stopped and the partial
// state discarded, any loaded sound is released, and the tick is cancelled.
// Safe to call repeatedly and from any state.
func (c *Controller) Close(ctx context.Context) error {
	c.mu.Lock()
	recording := c.state == StateRecording
	c.stopTickLocked()
	c.mu.Unlock()

	if recording {
		if _, err := c.recorder.Stop(ctx); err != nil {
			c.log.Warn(ctx, "failed to release capture device", "error", err)
		}
	}

	c.mu.Lock()
	c.releaseSoundLocked()
	c.uri = ""
	c.elapsed = 0
	c.state = StateIdle
	c.mu.Unlock()
	return nil
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// onPlaybackFinished runs on the playback device's goroutine when the sound
// reaches its end. The sound stays loaded with its position rewound.
func (c *Controller) onPlaybackFinished() {
	c.mu.Lock()
	if c.state == StatePlaying {
		c.state = StateStopped
	}
	c.mu.Unlock()
}

// startTickLocked launches the one-second counter. Caller holds mu.
func (c *Controller) startTickLocked() {
	done := make(chan struct{})
	ticker := c.clock.NewTicker(time.Second)
	c.tickDone = done
	c.ticker = ticker

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C():
				c.mu.Lock()
				if c.state == StateRecording {
					c.elapsed++
				}
				c.mu.Unlock()
			}
		}
	}()
}

// stopTickLocked cancels the counter. Idempotent: cancelling an already
// cancelled tick is a no-op. Caller holds mu.
func (c *Controller) stopTickLocked() {
	if c.tickDone == nil {
		return
	}
	close(c.tickDone)
	c.ticker.Stop()
	c.tickDone = nil
	c.ticker = nil
}

func (c *Controller) releaseSoundLocked() {
	if c.sound != nil {
		_ = c.sound.Close()
		c.sound = nil
	}
}
