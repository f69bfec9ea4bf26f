package synth

import (
	"math/rand"
	"testing"
)

func newTestGraph(base, beat, mix, pan float64, shape WaveShape) *graph {
	return newGraph(testParams(), rand.New(rand.NewSource(4)), base, beat, mix, pan, shape)
}

func TestGraphSilentAfterStop(t *testing.T) {
	g := newTestGraph(200, 4, .5, 0, Sine)
	if l, r := g.sing(); l == 0 && r == 0 {
		t.Error("live graph silent")
	}
	g.stop()
	g.stop() // double stop tolerated
	for i := 0; i < 100; i++ {
		if l, r := g.sing(); l != 0 || r != 0 {
			t.Fatal("stopped graph produced output")
		}
	}
}

func TestGraphStopOnNil(t *testing.T) {
	var g *graph
	g.stop() // must not panic
}

func TestPureNoiseMixHasNoTone(t *testing.T) {
	g := newTestGraph(200, 4, 1, 0, Sine)
	if g.toneGain != 0 {
		t.Errorf("tone gain = %v at mix 1", g.toneGain)
	}
	if g.noiseGain != loudnessCeiling {
		t.Errorf("noise gain = %v at mix 1", g.noiseGain)
	}
}

// The delay feedback and reverb stages are built into every graph but stay
// inert until raised.
func TestDormantStagesPassSignalUnchanged(t *testing.T) {
	a := newTestGraph(200, 4, 0, 0, Sine)
	b := newTestGraph(200, 4, 0, 0, Sine)
	for i := 0; i < 10000; i++ {
		al, ar := a.sing()
		bl, br := b.sing()
		if al != bl || ar != br {
			t.Fatalf("sample %d: identical graphs diverged", i)
		}
	}
	if a.DelayL.Feedback() != 0 || a.ReverbL.Mix() != 0 {
		t.Error("stages not dormant by default")
	}
}

func TestDelayFeedbackThickensSignal(t *testing.T) {
	p := testParams()
	g := newTestGraph(200, 0, 0, 0, Sine)
	g.setDelayFeedback(.5)
	lag := int(delayTime * p.SampleRate)
	var energy float64
	for i := 0; i < 2*lag; i++ {
		l, _ := g.sing()
		if i >= lag {
			energy += l * l
		}
	}
	dry := newTestGraph(200, 0, 0, 0, Sine)
	var dryEnergy float64
	for i := 0; i < 2*lag; i++ {
		l, _ := dry.sing()
		if i >= lag {
			dryEnergy += l * l
		}
	}
	if energy <= dryEnergy {
		t.Errorf("feedback energy %v not above dry %v", energy, dryEnergy)
	}
}
