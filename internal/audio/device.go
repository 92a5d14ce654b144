// Package audio defines the capture and playback capability boundaries
// consumed by the recording controller, plus a miniaudio-backed
// implementation that records to WAV files on disk.
package audio

import "context"

// Recorder is an exclusively-held audio input device. At most one capture
// runs at a time; the caller's state guards enforce this, not the driver.
type Recorder interface {
	// Start acquires the device and begins capturing. Returns
	// common.ErrDeviceUnavailable when permission is denied or the device
	// is busy.
	Start(ctx context.Context) error

	// Stop releases the device and returns the URI of the captured audio.
	Stop(ctx context.Context) (uri string, err error)
}

// Sound is one loaded playback resource.
type Sound interface {
	// Play starts or resumes playback from the current position.
	Play() error

	// Pause halts playback, keeping the position.
	Pause() error

	// OnComplete registers fn to run once when playback reaches the end
	// naturally. The position is reset to the start before fn runs, so a
	// subsequent Play restarts from the beginning.
	OnComplete(fn func())

	// Close releases the resource. Safe to call more than once.
	Close() error
}

// Player opens playback resources. Loading a URI that cannot be opened
// returns common.ErrPlayback.
type Player interface {
	Load(ctx context.Context, uri string) (Sound, error)
}
