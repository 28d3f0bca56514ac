package wavio

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWAV(t *testing.T, samples []float64, rate, bitDepth, channels int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	full := float64(int64(1)<<(bitDepth-1)) - 1
	data := make([]int, 0, len(samples)*channels)
	for _, s := range samples {
		for range channels {
			data = append(data, int(math.Round(s*full)))
		}
	}

	enc := wav.NewEncoder(f, rate, bitDepth, channels, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	return path
}

func sine(n int, freq, rate, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/rate)
	}
	return out
}

func TestLoad_RoundTrip16Bit(t *testing.T) {
	want := sine(2000, 440, 10000, 0.8)
	path := writeWAV(t, want, 10000, 16, 1)

	rec, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10000.0, rec.SampleRate)
	assert.Equal(t, 16, rec.BitDepth)
	require.Len(t, rec.Samples, len(want))
	assert.InDelta(t, 0.2, rec.Duration(), 1e-12)

	for i := range want {
		require.InDelta(t, want[i], rec.Samples[i], 2.0/32768, "sample %d", i)
	}
}

func TestLoad_RoundTrip24Bit(t *testing.T) {
	want := sine(512, 1000, 48000, 0.5)
	rec, err := Load(writeWAV(t, want, 48000, 24, 1))
	require.NoError(t, err)
	require.Len(t, rec.Samples, len(want))

	for i := range want {
		require.InDelta(t, want[i], rec.Samples[i], 2.0/(1<<23), "sample %d", i)
	}
}

func TestLoad_Stereo(t *testing.T) {
	path := writeWAV(t, sine(256, 440, 8000, 0.5), 8000, 16, 2)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecode_NotWAV(t *testing.T) {
	_, err := Decode(strings.NewReader("definitely not a RIFF stream"))
	require.ErrorIs(t, err, ErrInvalidWAV)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecording_DurationZeroRate(t *testing.T) {
	assert.Zero(t, Recording{Samples: make([]float64, 10)}.Duration())
}
