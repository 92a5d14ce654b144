package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/google/uuid"

	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/logging"
)

// MalgoRecorder captures S16 mono PCM from the default input device and
// writes it to a WAV file under dir on Stop.
type MalgoRecorder struct {
	dir string
	log logging.Logger

	mu      sync.Mutex
	ctx     *malgo.AllocatedContext
	device  *malgo.Device
	pcm     []byte
	running bool
}

func NewMalgoRecorder(dir string, log logging.Logger) *MalgoRecorder {
	return &MalgoRecorder{dir: dir, log: log}
}

func (r *MalgoRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("%w: capture already running", common.ErrDeviceUnavailable)
	}

	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		r.log.Debug(ctx, "malgo", "message", message)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDeviceUnavailable, err)
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Capture)
	deviceConfig.Capture.Format = malgo.FormatS16
	deviceConfig.Capture.Channels = numChannels
	deviceConfig.SampleRate = sampleRate
	deviceConfig.Alsa.NoMMap = 1

	r.pcm = r.pcm[:0]
	callbacks := malgo.DeviceCallbacks{
		Data: func(_, pSamples []byte, _ uint32) {
			r.mu.Lock()
			if r.running {
				r.pcm = append(r.pcm, pSamples...)
			}
			r.mu.Unlock()
		},
	}

	device, err := malgo.InitDevice(mctx.Context, deviceConfig, callbacks)
	if err != nil {
		_ = mctx.Uninit()
		mctx.Free()
		return fmt.Errorf("%w: %v", common.ErrDeviceUnavailable, err)
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		_ = mctx.Uninit()
		mctx.Free()
		return fmt.Errorf("%w: %v", common.ErrDeviceUnavailable, err)
	}

	r.ctx = mctx
	r.device = device
	r.running = true
	return nil
}

func (r *MalgoRecorder) Stop(ctx context.Context) (string, error) {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: no capture in progress", common.ErrDeviceUnavailable)
	}
	r.running = false
	device, mctx := r.device, r.ctx
	r.device, r.ctx = nil, nil
	r.mu.Unlock()

	_ = device.Stop()
	device.Uninit()
	_ = mctx.Uninit()
	mctx.Free()

	r.mu.Lock()
	pcm := r.pcm
	r.pcm = nil
	r.mu.Unlock()

	path := filepath.Join(r.dir, uuid.NewString()+".wav")
	if err := savePCMToWAV(path, pcm); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDeviceUnavailable, err)
	}
	r.log.Debug(ctx, "recording saved", "uri", path, "bytes", len(pcm))
	return path, nil
}

// MalgoPlayer opens WAV files and streams them to the default output device.
type MalgoPlayer struct {
	log logging.Logger
}

func NewMalgoPlayer(log logging.Logger) *MalgoPlayer {
	return &MalgoPlayer{log: log}
}

func (p *MalgoPlayer) Load(ctx context.Context, uri string) (Sound, error) {
	pcm, err := loadWAVPCM(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPlayback, err)
	}

	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		p.log.Debug(ctx, "malgo", "message", message)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPlayback, err)
	}

	s := &malgoSound{ctx: mctx, pcm: pcm}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatS16
	deviceConfig.Playback.Channels = numChannels
	deviceConfig.SampleRate = sampleRate
	deviceConfig.Alsa.NoMMap = 1

	device, err := malgo.InitDevice(mctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: s.fill,
	})
	if err != nil {
		_ = mctx.Uninit()
		mctx.Free()
		return nil, fmt.Errorf("%w: %v", common.ErrPlayback, err)
	}
	s.device = device
	return s, nil
}

// malgoSound streams a decoded PCM buffer. Reaching the end pauses the
// device, resets the position to 0 and fires the completion callback.
type malgoSound struct {
	ctx    *malgo.AllocatedContext
	device *malgo.Device

	mu         sync.Mutex
	pcm        []byte
	pos        int
	playing    bool
	closed     bool
	onComplete func()
}

func (s *malgoSound) fill(pOutput, _ []byte, _ uint32) {
	s.mu.Lock()
	n := copy(pOutput, s.pcm[s.pos:])
	s.pos += n
	finished := s.pos >= len(s.pcm)
	cb := s.onComplete
	s.mu.Unlock()

	for i := n; i < len(pOutput); i++ {
		pOutput[i] = 0
	}

	if finished {
		// Stop the device off the audio thread, then rewind.
		go func() {
			_ = s.Pause()
			s.mu.Lock()
			s.pos = 0
			s.mu.Unlock()
			if cb != nil {
				cb()
			}
		}()
	}
}

func (s *malgoSound) Play() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("%w: sound already released", common.ErrPlayback)
	}
	if s.playing {
		s.mu.Unlock()
		return nil
	}
	s.playing = true
	s.mu.Unlock()

	if err := s.device.Start(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPlayback, err)
	}
	return nil
}

func (s *malgoSound) Pause() error {
	s.mu.Lock()
	if s.closed || !s.playing {
		s.mu.Unlock()
		return nil
	}
	s.playing = false
	s.mu.Unlock()

	if err := s.device.Stop(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPlayback, err)
	}
	return nil
}

func (s *malgoSound) OnComplete(fn func()) {
	s.mu.Lock()
	s.onComplete = fn
	s.mu.Unlock()
}

func (s *malgoSound) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.playing = false
	s.mu.Unlock()

	s.device.Uninit()
	_ = s.ctx.Uninit()
	s.ctx.Free()
	return nil
}
