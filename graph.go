package synth

import "math/rand"

const (
	// loudnessCeiling caps the combined tone+noise level. Hard limit, not a
	// knob: the complementary gains always sum to exactly this.
	loudnessCeiling = 0.3

	// delayTime is the fixed length of the feedback delay line.
	delayTime = 0.3
)

// graph is the node set for one binaural session: the tone pair, the noise
// loop, their gains, the feedback delay, the dormant reverb and the panner.
// At most one graph is live per Engine; Engine.Start replaces it wholesale.
type graph struct {
	Left, Right Osc
	Noise       *NoiseLoop
	DelayL      *FeedbackDelay
	DelayR      *FeedbackDelay
	ReverbL     Reverb
	ReverbR     Reverb
	Panner      Panner

	toneGain  float64
	noiseGain float64
	stopped   bool
}

func newGraph(p Params, rnd *rand.Rand, base, beat, mix, pan float64, shape WaveShape) *graph {
	g := &graph{
		Noise:  NewNoiseLoop(rnd),
		DelayL: NewFeedbackDelay(delayTime),
		DelayR: NewFeedbackDelay(delayTime),
	}
	Init(g, p)
	g.setFrequencies(base, beat)
	g.setShape(shape)
	g.setNoiseMix(mix)
	g.Panner.Set(pan)
	return g
}

// setFrequencies puts the base tone in the left ear and base+beat in the
// right; the perceived beat is their arithmetic difference.
func (g *graph) setFrequencies(base, beat float64) {
	g.Left.SetFreq(base)
	g.Right.SetFreq(base + beat)
}

func (g *graph) setShape(shape WaveShape) {
	g.Left.SetShape(shape)
	g.Right.SetShape(shape)
}

func (g *graph) setNoiseMix(mix float64) {
	mix = clamp(mix, 0, 1)
	g.toneGain = (1 - mix) * loudnessCeiling
	g.noiseGain = mix * loudnessCeiling
}

func (g *graph) setDelayFeedback(fb float64) {
	g.DelayL.SetFeedback(fb)
	g.DelayR.SetFeedback(fb)
}

func (g *graph) setReverbMix(m float64) {
	g.ReverbL.SetMix(m)
	g.ReverbR.SetMix(m)
}

// stop retires the graph. Safe to call repeatedly and on nil.
func (g *graph) stop() {
	if g == nil || g.stopped {
		return
	}
	g.stopped = true
}

func (g *graph) sing() (l, r float64) {
	if g.stopped {
		return 0, 0
	}
	nl, nr := g.Noise.Sing()
	l = g.Left.Sing()*g.toneGain + nl*g.noiseGain
	r = g.Right.Sing()*g.toneGain + nr*g.noiseGain
	l = g.ReverbL.Process(g.DelayL.Delay(l))
	r = g.ReverbR.Process(g.DelayR.Delay(r))
	return g.Panner.Pan(l, r)
}
