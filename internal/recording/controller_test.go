package recording

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aalmasoud/unilife/internal/audio"
	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
)

type fakeTicker struct{ ch chan time.Time }

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               {}

type fakeClock struct{ ticker *fakeTicker }

func newFakeClock() *fakeClock {
	return &fakeClock{ticker: &fakeTicker{ch: make(chan time.Time)}}
}

func (f *fakeClock) NewTicker(time.Duration) Ticker { return f.ticker }

// advance delivers n ticks and waits for the controller to absorb them.
func (f *fakeClock) advance(t *testing.T, c *Controller, n, want int) {
	t.Helper()
	for i := 0; i < n; i++ {
		f.ticker.ch <- time.Time{}
	}
	require.Eventually(t, func() bool { return c.Elapsed() == want },
		time.Second, time.Millisecond)
}

type fakeRecorder struct {
	mu       sync.Mutex
	startErr error
	stopErr  error
	uri      string
	starts   int
	stops    int
}

func (r *fakeRecorder) Start(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.startErr != nil {
		return r.startErr
	}
	r.starts++
	return nil
}

func (r *fakeRecorder) Stop(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopErr != nil {
		return "", r.stopErr
	}
	r.stops++
	if r.uri == "" {
		r.uri = fmt.Sprintf("rec-%d.wav", r.stops)
	}
	return r.uri, nil
}

type fakeSound struct {
	mu       sync.Mutex
	playErr  error
	playing  bool
	closed   int
	complete func()
}

func (s *fakeSound) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playErr != nil {
		return s.playErr
	}
	s.playing = true
	return nil
}

func (s *fakeSound) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	return nil
}

func (s *fakeSound) OnComplete(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.complete = fn
}

func (s *fakeSound) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
	s.playing = false
	return nil
}

// finish simulates the sound reaching its natural end.
func (s *fakeSound) finish() {
	s.mu.Lock()
	s.playing = false
	fn := s.complete
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

type fakePlayer struct {
	loadErr error
	sound   *fakeSound
	loads   int
}

func (p *fakePlayer) Load(context.Context, string) (audio.Sound, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	p.loads++
	if p.sound == nil {
		p.sound = &fakeSound{}
	}
	return p.sound, nil
}

type pulseRecorder struct {
	mu     sync.Mutex
	pulses []haptics.Feedback
}

func (p *pulseRecorder) Pulse(fb haptics.Feedback) {
	p.mu.Lock()
	p.pulses = append(p.pulses, fb)
	p.mu.Unlock()
}

func (p *pulseRecorder) last() haptics.Feedback {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.pulses) == 0 {
		return ""
	}
	return p.pulses[len(p.pulses)-1]
}

func newTestController(t *testing.T) (*Controller, *fakeRecorder, *fakePlayer, *fakeClock, *pulseRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	play := &fakePlayer{}
	clock := newFakeClock()
	pulses := &pulseRecorder{}
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	c := NewController(rec, play, pulses, log, WithClock(clock))
	return c, rec, play, clock, pulses
}

func TestRecordStopCommit(t *testing.T) {
	ctx := context.Background()
	c, rec, _, clock, pulses := newTestController(t)

	require.NoError(t, c.Start(ctx))
	require.Equal(t, StateRecording, c.State())
	require.Equal(t, haptics.Medium, pulses.last())

	clock.advance(t, c, 3, 3)

	require.NoError(t, c.Stop(ctx))
	require.Equal(t, StateStopped, c.State())
	require.Equal(t, haptics.Success, pulses.last())
	require.Equal(t, 1, rec.stops)

	uri, seconds, err := c.Commit()
	require.NoError(t, err)
	require.Equal(t, "rec-1.wav", uri)
	require.Equal(t, 3, seconds)
}

func TestCommit_OnlyFromStoppedWithURI(t *testing.T) {
	ctx := context.Background()
	c, _, play, _, _ := newTestController(t)

	_, _, err := c.Commit()
	require.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, c.Start(ctx))
	_, _, err = c.Commit()
	require.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, c.Stop(ctx))
	require.NoError(t, c.Play(ctx))
	_, _, err = c.Commit()
	require.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, c.Play(ctx)) // pause
	require.Equal(t, StatePaused, c.State())
	_, _, err = c.Commit()
	require.ErrorIs(t, err, common.ErrValidation)

	play.sound.finish()
	require.Equal(t, StatePaused, c.State()) // finish while paused leaves state alone
}

func TestStopDiscard_Idempotent(t *testing.T) {
	ctx := context.Background()
	c, rec, _, _, _ := newTestController(t)

	require.NoError(t, c.Stop(ctx))
	require.Equal(t, StateIdle, c.State())
	require.Zero(t, rec.stops)

	require.NoError(t, c.Discard(ctx))
	require.Equal(t, StateIdle, c.State())

	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.Discard(ctx)) // not stopped: no-op
	require.Equal(t, StateRecording, c.State())

	require.NoError(t, c.Stop(ctx))
	require.NoError(t, c.Stop(ctx)) // second stop: no-op
	require.Equal(t, StateStopped, c.State())
	require.Equal(t, 1, rec.stops)
}

func TestStart_DeviceUnavailable(t *testing.T) {
	ctx := context.Background()
	c, rec, _, _, pulses := newTestController(t)
	rec.startErr = fmt.Errorf("%w: permission denied", common.ErrDeviceUnavailable)

	err := c.Start(ctx)
	require.ErrorIs(t, err, common.ErrDeviceUnavailable)
	require.Equal(t, StateIdle, c.State())
	require.Equal(t, haptics.Error, pulses.last())
}

func TestStart_WhileRecordingIsNoop(t *testing.T) {
	ctx := context.Background()
	c, rec, _, _, _ := newTestController(t)

	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.Start(ctx))
	require.Equal(t, 1, rec.starts)
}

func TestTimer_StopsCounting(t *testing.T) {
	ctx := context.Background()
	c, _, _, clock, _ := newTestController(t)

	require.NoError(t, c.Start(ctx))
	clock.advance(t, c, 2, 2)
	require.NoError(t, c.Stop(ctx))

	// Offer one more tick; whether or not the exiting goroutine drains it,
	// the counter must not move once recording has stopped.
	select {
	case clock.ticker.ch <- time.Time{}:
	case <-time.After(50 * time.Millisecond):
	}
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 2, c.Elapsed())
}

func TestPlay_ToggleAndCompletion(t *testing.T) {
	ctx := context.Background()
	c, _, play, _, _ := newTestController(t)

	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.Stop(ctx))

	require.NoError(t, c.Play(ctx))
	require.Equal(t, StatePlaying, c.State())
	require.True(t, play.sound.playing)

	require.NoError(t, c.Play(ctx)) // toggle pauses
	require.Equal(t, StatePaused, c.State())
	require.False(t, play.sound.playing)

	require.NoError(t, c.Play(ctx)) // resumes
	require.Equal(t, StatePlaying, c.State())

	play.sound.finish() // natural end rewinds and stops
	require.Equal(t, StateStopped, c.State())

	require.NoError(t, c.Play(ctx)) // restart from the beginning
	require.Equal(t, StatePlaying, c.State())
	require.Equal(t, 1, play.loads) // sound stays loaded across replays
}

func TestPlay_LoadFailure(t *testing.T) {
	ctx := context.Background()
	c, _, play, _, pulses := newTestController(t)
	play.loadErr = fmt.Errorf("%w: corrupt file", common.ErrPlayback)

	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.Stop(ctx))

	err := c.Play(ctx)
	require.ErrorIs(t, err, common.ErrPlayback)
	require.Equal(t, StateStopped, c.State())
	require.Equal(t, haptics.Error, pulses.last())
}

func TestPlay_FromIdleIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _, play, _, _ := newTestController(t)

	require.NoError(t, c.Play(ctx))
	require.Equal(t, StateIdle, c.State())
	require.Zero(t, play.loads)
}

func TestDiscard_ClearsStateAndAllowsRestart(t *testing.T) {
	ctx := context.Background()
	c, rec, play, clock, pulses := newTestController(t)

	require.NoError(t, c.Start(ctx))
	clock.advance(t, c, 2, 2)
	require.NoError(t, c.Stop(ctx))
	require.NoError(t, c.Play(ctx))
	require.NoError(t, c.Play(ctx)) // paused

	require.NoError(t, c.Discard(ctx)) // paused: no-op
	require.Equal(t, StatePaused, c.State())

	require.NoError(t, c.Play(ctx)) // resume, then let it run out
	play.sound.finish()
	require.Equal(t, StateStopped, c.State())

	require.NoError(t, c.Discard(ctx))
	require.Equal(t, StateIdle, c.State())
	require.Empty(t, c.URI())
	require.Zero(t, c.Elapsed())
	require.Equal(t, haptics.Warning, pulses.last())
	require.Equal(t, 1, play.sound.closed)

	// Same controller records a fresh take.
	rec.uri = "take-2.wav"
	require.NoError(t, c.Start(ctx))
	require.Equal(t, StateRecording, c.State())
}

func TestClose_ReleasesEverything(t *testing.T) {
	ctx := context.Background()
	c, rec, play, clock, _ := newTestController(t)

	require.NoError(t, c.Start(ctx))
	clock.advance(t, c, 1, 1)

	require.NoError(t, c.Close(ctx))
	require.Equal(t, StateIdle, c.State())
	require.Zero(t, c.Elapsed())
	require.Equal(t, 1, rec.stops)

	require.NoError(t, c.Close(ctx)) // second close is a no-op

	// Close also unloads a retained preview sound.
	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.Stop(ctx))
	require.NoError(t, c.Play(ctx))
	require.NoError(t, c.Close(ctx))
	require.Equal(t, 1, play.sound.closed)
}

func TestAllSequences_NeverUndefined(t *testing.T) {
	ctx := context.Background()
	ops := []func(c *Controller) error{
		func(c *Controller) error { return c.Start(ctx) },
		func(c *Controller) error { return c.Stop(ctx) },
		func(c *Controller) error { return c.Play(ctx) },
		func(c *Controller) error { return c.Discard(ctx) },
	}

	// Every op triple from a fresh controller: state stays defined and
	// Commit succeeds exactly when stopped with a URI.
	for i := range ops {
		for j := range ops {
			for k := range ops {
				c, _, _, _, _ := newTestController(t)
				for _, op := range []int{i, j, k} {
					err := ops[op](c)
					if err != nil {
						require.True(t,
							errors.Is(err, common.ErrDeviceUnavailable) || errors.Is(err, common.ErrPlayback))
					}
				}
				st := c.State()
				require.Contains(t, []State{StateIdle, StateRecording, StateStopped, StatePlaying, StatePaused}, st)

				_, _, err := c.Commit()
				if st == StateStopped && c.URI() != "" {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, common.ErrValidation)
				}
				require.NoError(t, c.Close(ctx))
			}
		}
	}
}
