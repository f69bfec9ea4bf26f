package synth

import (
	"math"
	"math/rand"
)

// DrumType names one of the synthesized percussion buffers.
type DrumType string

const (
	DrumKick  DrumType = "kick"
	DrumSnare DrumType = "snare"
	DrumHihat DrumType = "hihat"
)

// drumGain is the fixed replay level for every hit.
const drumGain = 0.5

// SampleBuffer is precomputed waveform data. Buffers are synthesized once
// and never mutated; any number of voices may replay one concurrently.
type SampleBuffer []float64

// SampleBank holds the three percussion buffers. Snare and hihat textures
// come from the injected generator, so a seeded source gives reproducible
// buffers.
type SampleBank struct {
	bufs map[DrumType]SampleBuffer
}

func NewSampleBank(p Params, rnd *rand.Rand) *SampleBank {
	rate := p.SampleRate
	return &SampleBank{bufs: map[DrumType]SampleBuffer{
		DrumKick:  synthKick(rate),
		DrumSnare: synthSnare(rate, rnd),
		DrumHihat: synthHihat(rate, rnd),
	}}
}

func (b *SampleBank) Lookup(d DrumType) (SampleBuffer, bool) {
	buf, ok := b.bufs[d]
	return buf, ok
}

// synthKick: half a second of 60 Hz sine under a 100 ms decay. Sub-bass thump.
func synthKick(rate float64) SampleBuffer {
	buf := make(SampleBuffer, int(.5*rate))
	for i := range buf {
		t := float64(i) / rate
		buf[i] = math.Sin(2*math.Pi*60*t) * expDecay(t, .1) * .5
	}
	return buf
}

// synthSnare: noise plus a 200 Hz body under a 50 ms decay.
func synthSnare(rate float64, rnd *rand.Rand) SampleBuffer {
	buf := make(SampleBuffer, int(.2*rate))
	for i := range buf {
		t := float64(i) / rate
		u := 2*rnd.Float64() - 1
		buf[i] = (u*.3 + math.Sin(2*math.Pi*200*t)*.2) * expDecay(t, .05)
	}
	return buf
}

// synthHihat: a 100 ms noise burst with a 20 ms decay.
func synthHihat(rate float64, rnd *rand.Rand) SampleBuffer {
	buf := make(SampleBuffer, int(.1*rate))
	for i := range buf {
		t := float64(i) / rate
		buf[i] = (2*rnd.Float64() - 1) * expDecay(t, .02) * .3
	}
	return buf
}

// drumVoice replays one buffer once at drumGain. Voices are independent;
// overlapping hits on the same buffer each carry their own position.
type drumVoice struct {
	buf SampleBuffer
	i   int
}

func (v *drumVoice) sing() float64 {
	if v.i >= len(v.buf) {
		return 0
	}
	x := v.buf[v.i] * drumGain
	v.i++
	return x
}

func (v *drumVoice) done() bool {
	return v.i >= len(v.buf)
}
