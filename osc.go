package synth

import (
	"fmt"
	"math"
)

// WaveShape selects an oscillator waveform.
type WaveShape int

const (
	Sine WaveShape = iota
	Square
	Sawtooth
	Triangle
)

func (w WaveShape) String() string {
	switch w {
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return "sine"
	}
}

// ParseWaveShape maps a preset/UI string to a WaveShape.
func ParseWaveShape(s string) (WaveShape, error) {
	switch s {
	case "sine", "":
		return Sine, nil
	case "square":
		return Square, nil
	case "sawtooth":
		return Sawtooth, nil
	case "triangle":
		return Triangle, nil
	}
	return Sine, fmt.Errorf("unknown wave shape %q", s)
}

// Osc is a phase-accumulator oscillator with a switchable shape. Frequency
// and shape may be changed while it runs; the phase is never reset, so
// changes are click-free.
type Osc struct {
	Params Params
	shape  WaveShape
	freq   float64
	phase  float64
}

func (o *Osc) InitAudio(p Params) { o.Params = p }

func (o *Osc) SetFreq(freq float64) { o.freq = freq }

func (o *Osc) SetShape(shape WaveShape) { o.shape = shape }

func (o *Osc) Freq() float64 { return o.freq }

func (o *Osc) Shape() WaveShape { return o.shape }

func (o *Osc) Sing() float64 {
	_, o.phase = math.Modf(o.phase + o.freq/o.Params.SampleRate)
	switch o.shape {
	case Square:
		if o.phase < .5 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*o.phase - 1
	case Triangle:
		return 1 - 4*math.Abs(o.phase-.5)
	}
	return math.Sin(2 * math.Pi * o.phase)
}
