package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	sampleRate  = 44100
	numChannels = 1
	bitDepth    = 16
)

// savePCMToWAV writes little-endian S16 PCM data as a WAV file, creating
// parent directories as needed.
func savePCMToWAV(path string, pcm []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o770); err != nil {
		return fmt.Errorf("creating recordings dir: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}
	defer out.Close()

	enc := wav.NewEncoder(out, sampleRate, bitDepth, numChannels, 1)
	buf := &goaudio.IntBuffer{
		Data:   pcmToInts(pcm),
		Format: &goaudio.Format{SampleRate: sampleRate, NumChannels: numChannels},
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	return enc.Close()
}

// loadWAVPCM reads a WAV file back into S16 PCM bytes.
func loadWAVPCM(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}
	return intsToPCM(buf.Data), nil
}

// pcmToInts reinterprets a byte stream as 16-bit samples.
func pcmToInts(pcm []byte) []int {
	samples := make([]int, 0, len(pcm)/2)
	buf := bytes.NewBuffer(pcm)
	for {
		var s int16
		if err := binary.Read(buf, binary.LittleEndian, &s); err != nil {
			break
		}
		samples = append(samples, int(s))
	}
	return samples
}

func intsToPCM(samples []int) []byte {
	var buf bytes.Buffer
	buf.Grow(len(samples) * 2)
	for _, s := range samples {
		_ = binary.Write(&buf, binary.LittleEndian, int16(s)) //nolint:gosec // samples are 16-bit by format
	}
	return buf.Bytes()
}
