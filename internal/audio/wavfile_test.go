package audio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWAVRoundTrip(t *testing.T) {
	pcm := []byte{0x01, 0x00, 0xFF, 0x7F, 0x00, 0x80, 0xFE, 0xFF}
	path := filepath.Join(t.TempDir(), "nested", "rec.wav")

	require.NoError(t, savePCMToWAV(path, pcm))

	got, err := loadWAVPCM(path)
	require.NoError(t, err)
	require.Equal(t, pcm, got)
}

func TestSavePCMToWAV_EmptyCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	require.NoError(t, savePCMToWAV(path, nil))

	got, err := loadWAVPCM(path)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLoadWAVPCM_MissingFile(t *testing.T) {
	_, err := loadWAVPCM(filepath.Join(t.TempDir(), "nope.wav"))
	require.Error(t, err)
}

func TestPCMIntConversion(t *testing.T) {
	samples := []int{0, 1, -1, 32767, -32768}
	require.Equal(t, samples, pcmToInts(intsToPCM(samples)))
}
