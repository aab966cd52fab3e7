// Package voice runs a live, bidirectional audio session: microphone frames
// go out as 16-bit PCM, synthesized audio comes back and is queued for
// gapless playback on a running cursor.
package voice

import (
	"encoding/binary"
	"math"
	"time"
)

// Sample rates used by the live service.
const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000
)

// EncodePCM16 converts float samples to little-endian signed 16-bit PCM.
// Samples outside [-1, 1] are clamped.
func EncodePCM16(samples []float32) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(math.Round(float64(s) * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}

// DecodePCM16 converts little-endian signed 16-bit PCM to float samples in
// [-1, 1]. A trailing odd byte is ignored.
func DecodePCM16(data []byte) []float32 {
	out := make([]float32, len(data)/2)
	for i := range out {
		v := int16(binary.LittleEndian.Uint16(data[2*i:]))
		out[i] = float32(v) / 32768
	}
	return out
}

// Frame splits samples into chunks of size; the last chunk may be short.
func Frame(samples []float32, size int) [][]float32 {
	if size <= 0 || len(samples) == 0 {
		return nil
	}
	frames := make([][]float32, 0, (len(samples)+size-1)/size)
	for start := 0; start < len(samples); start += size {
		end := start + size
		if end > len(samples) {
			end = len(samples)
		}
		frames = append(frames, samples[start:end])
	}
	return frames
}

// Duration is how long n samples play at rate.
func Duration(n, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(rate)
}
