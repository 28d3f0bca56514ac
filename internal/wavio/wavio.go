// Package wavio loads mono PCM WAV recordings as float64 sample slices.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/wav"
)

var (
	// ErrInvalidWAV is returned when the input is not a readable WAV stream.
	ErrInvalidWAV = errors.New("wavio: invalid WAV file")
	// ErrUnsupportedFormat is returned for WAV files that are not mono
	// 16, 24 or 32 bit integer PCM.
	ErrUnsupportedFormat = errors.New("wavio: unsupported format")
)

// Recording is a decoded mono WAV file. Samples are scaled to [-1, 1).
type Recording struct {
	Samples    []float64
	SampleRate float64
	BitDepth   int
}

// Duration returns the recording length in seconds.
func (r Recording) Duration() float64 {
	if r.SampleRate <= 0 {
		return 0
	}
	return float64(len(r.Samples)) / r.SampleRate
}

// Load opens and decodes the WAV file at path.
func Load(path string) (Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return Recording{}, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := Decode(f)
	if err != nil {
		return Recording{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Decode reads a complete mono WAV stream from r.
func Decode(r io.ReadSeeker) (Recording, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Recording{}, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Recording{}, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}
	if buf == nil || buf.Format == nil {
		return Recording{}, ErrInvalidWAV
	}

	if dec.WavAudioFormat != 1 {
		return Recording{}, fmt.Errorf("%w: audio format %d is not integer PCM", ErrUnsupportedFormat, dec.WavAudioFormat)
	}
	if ch := buf.Format.NumChannels; ch != 1 {
		return Recording{}, fmt.Errorf("%w: %d channels, want mono", ErrUnsupportedFormat, ch)
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 16, 24, 32:
	default:
		return Recording{}, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}
	if buf.Format.SampleRate <= 0 {
		return Recording{}, fmt.Errorf("%w: sample rate %d", ErrInvalidWAV, buf.Format.SampleRate)
	}

	raw := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		raw[i] = float64(v)
	}

	samples := make([]float64, len(raw))
	vecmath.ScaleBlock(samples, raw, 1/float64(int64(1)<<(bitDepth-1)))

	return Recording{
		Samples:    samples,
		SampleRate: float64(buf.Format.SampleRate),
		BitDepth:   bitDepth,
	}, nil
}
