// Package audio synthesizes the game's sound cues and music loops and
// plays them through ebiten's audio context.
package audio

import (
	"encoding/binary"
	"math"
)

// Cue is a one-shot sound effect
type Cue int

const (
	CueJump Cue = iota
	CueCollect
	CueSelect
	CueWin
	CueLose
)

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "Jump"
	case CueCollect:
		return "Collect"
	case CueSelect:
		return "Select"
	case CueWin:
		return "Win"
	case CueLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveTriangle
)

// buffer is mono float64 samples at unity gain
type buffer []float64

type synth struct {
	rate int
}

func (s synth) samples(seconds float64) int {
	return int(seconds * float64(s.rate))
}

// oscillator generates raw waveform samples
func (s synth) oscillator(wave int, freq float64, n int) buffer {
	buf := make(buffer, n)
	phase := 0.0
	inc := freq / float64(s.rate)

	for i := range buf {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveTriangle:
			buf[i] = 4*math.Abs(phase-0.5) - 1
		}

		phase += inc
		if phase >= 1 {
			phase--
		}
	}
	return buf
}

// sweep is a sine whose frequency glides linearly from f0 to f1
func (s synth) sweep(f0, f1 float64, n int) buffer {
	buf := make(buffer, n)
	phase := 0.0
	for i := range buf {
		f := f0 + (f1-f0)*float64(i)/float64(n)
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += f / float64(s.rate)
		if phase >= 1 {
			phase--
		}
	}
	return buf
}

// envelope applies a linear attack and release in place
func (s synth) envelope(buf buffer, attack, release float64) {
	total := len(buf)
	a := s.samples(attack)
	r := s.samples(release)

	releaseStart := total - r
	if releaseStart < a {
		releaseStart = a
	}

	for i := range buf {
		vol := 1.0
		if i < a && a > 0 {
			vol = float64(i) / float64(a)
		} else if i >= releaseStart && r > 0 {
			vol = float64(total-i) / float64(r)
		}
		buf[i] *= vol
	}
}

func concat(parts ...buffer) buffer {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(buffer, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// noteFreq returns the frequency in Hz of a MIDI note, A4 (69) = 440Hz.
// Note 0 is a rest.
func noteFreq(midi int) float64 {
	if midi <= 0 {
		return 0
	}
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// melody renders notes of equal length; zero notes are silent
func (s synth) melody(wave int, notes []int, noteSec float64) buffer {
	n := s.samples(noteSec)
	parts := make([]buffer, len(notes))
	for i, note := range notes {
		if note <= 0 {
			parts[i] = make(buffer, n)
			continue
		}
		tone := s.oscillator(wave, noteFreq(note), n)
		s.envelope(tone, 0.005, noteSec/3)
		parts[i] = tone
	}
	return concat(parts...)
}

func (s synth) cue(c Cue) buffer {
	switch c {
	case CueJump:
		buf := s.sweep(320, 760, s.samples(0.12))
		s.envelope(buf, 0.005, 0.06)
		return buf
	case CueCollect:
		return s.melody(waveSquare, []int{83, 88}, 0.07)
	case CueSelect:
		buf := s.oscillator(waveSquare, 660, s.samples(0.05))
		s.envelope(buf, 0.002, 0.03)
		return buf
	case CueWin:
		return s.melody(waveTriangle, []int{72, 76, 79, 84}, 0.12)
	case CueLose:
		buf := s.sweep(440, 110, s.samples(0.5))
		s.envelope(buf, 0.01, 0.25)
		return buf
	}
	return nil
}

// tracks maps music names to looping melodies
var tracks = map[string]struct {
	wave    int
	notes   []int
	noteSec float64
}{
	"menu":   {waveTriangle, []int{60, 64, 67, 72, 67, 64, 60, 0, 57, 60, 64, 69, 64, 60, 57, 0}, 0.22},
	"level1": {waveSquare, []int{64, 0, 67, 64, 62, 60, 62, 0, 64, 67, 69, 67, 64, 62, 60, 0}, 0.16},
	"level2": {waveSquare, []int{57, 60, 64, 60, 57, 0, 55, 59, 62, 59, 55, 0, 53, 57, 60, 0}, 0.15},
	"level3": {waveTriangle, []int{69, 72, 76, 72, 74, 77, 81, 77, 76, 72, 69, 0, 71, 74, 76, 0}, 0.14},
}

// pcm converts mono samples to 16-bit little-endian stereo at gain
func pcm(buf buffer, gain float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		v *= gain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], sample)
		binary.LittleEndian.PutUint16(out[i*4+2:], sample)
	}
	return out
}
