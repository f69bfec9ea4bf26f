package synth

import "math"

// middleC anchors the equal-temperament scale: C4 in Hz.
const middleC = 261.63

// chordCeiling keeps chords quieter than the binaural bed so they layer
// under it rather than over it.
const chordCeiling = 0.2

// SemitoneToFreq converts a semitone offset and octave to a frequency,
// referenced to C4. Offset 12 or octave+1 each double the frequency.
func SemitoneToFreq(semitone, octave int) float64 {
	return middleC * math.Pow(2, float64(semitone)/12) * math.Pow(2, float64(octave-4))
}

// chordVoice is one held note: a sine oscillator and its share of the chord.
type chordVoice struct {
	osc  Osc
	gain float64
}

// chordSet is the currently held chord. At most one exists per Engine;
// pressing a new chord replaces it wholesale (last press wins).
type chordSet struct {
	voices []*chordVoice
	bus    float64
}

func newChordSet(p Params, semitones []int, octave int, volume float64) *chordSet {
	s := &chordSet{bus: clamp(volume, 0, 1) * chordCeiling}
	gain := 1 / float64(len(semitones))
	for _, st := range semitones {
		v := &chordVoice{gain: gain}
		v.osc.InitAudio(p)
		v.osc.SetFreq(SemitoneToFreq(st, octave))
		s.voices = append(s.voices, v)
	}
	return s
}

func (s *chordSet) sing() float64 {
	x := 0.0
	for _, v := range s.voices {
		x += v.osc.Sing() * v.gain
	}
	return x * s.bus
}
