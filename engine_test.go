package synth

import (
	"math"
	"testing"
)

func testParams() Params { return Params{SampleRate: 44100} }

func TestStartSetsOscillatorFrequencies(t *testing.T) {
	e := NewEngine(testParams())
	for _, c := range []struct{ base, beat float64 }{
		{100, 1},
		{200, 4},
		{440, 12.5},
		{1000, 50},
	} {
		e.Start(c.base, c.beat, 0, 0, Sine)
		if got := e.graph.Left.Freq(); got != c.base {
			t.Errorf("base %v: left freq = %v", c.base, got)
		}
		if got := e.graph.Right.Freq(); got != c.base+c.beat {
			t.Errorf("base %v beat %v: right freq = %v", c.base, c.beat, got)
		}
	}
}

func TestNoiseMixComplementaryGains(t *testing.T) {
	e := NewEngine(testParams())
	e.Start(200, 4, 0, 0, Sine)
	for _, mix := range []float64{0, .25, .5, .75, 1} {
		e.SetNoiseMix(mix)
		tone, noise := e.graph.toneGain, e.graph.noiseGain
		if math.Abs(tone+noise-loudnessCeiling) > 1e-12 {
			t.Errorf("mix %v: tone %v + noise %v != %v", mix, tone, noise, loudnessCeiling)
		}
		if math.Abs(tone-loudnessCeiling*(1-mix)) > 1e-12 {
			t.Errorf("mix %v: tone gain = %v", mix, tone)
		}
	}
}

func TestNoiseMixClamped(t *testing.T) {
	e := NewEngine(testParams())
	e.Start(200, 4, 0, 0, Sine)
	e.SetNoiseMix(1.5)
	if e.graph.toneGain != 0 || e.graph.noiseGain != loudnessCeiling {
		t.Errorf("mix 1.5: gains = %v, %v", e.graph.toneGain, e.graph.noiseGain)
	}
}

func TestStopWithoutStart(t *testing.T) {
	e := NewEngine(testParams())
	e.Stop()
	e.Stop()
	if e.Running() {
		t.Error("engine running after Stop with no session")
	}
}

func TestRestartRetiresPreviousGraph(t *testing.T) {
	e := NewEngine(testParams())
	var prev *graph
	for i := 0; i < 5; i++ {
		e.Start(200+float64(i), 4, 0, 0, Sine)
		if prev != nil && !prev.stopped {
			t.Fatalf("start %d: previous graph still live", i)
		}
		prev = e.graph
	}
	if e.graph == nil || e.graph.stopped {
		t.Error("no live graph after restarts")
	}
}

func TestUpdatesNoopWhenInactive(t *testing.T) {
	e := NewEngine(testParams())
	e.SetFrequencies(300, 7)
	e.SetNoiseMix(.5)
	e.SetPan(-1)
	e.SetWaveShape(Square)
	e.SetDelayFeedback(.5)
	e.SetReverbMix(.5)
	if e.graph != nil {
		t.Error("update created a session")
	}
}

func TestSetWaveShapeSwitchesBothOscillators(t *testing.T) {
	e := NewEngine(testParams())
	e.Start(200, 4, 0, 0, Sine)
	e.SetWaveShape(Sawtooth)
	if e.graph.Left.Shape() != Sawtooth || e.graph.Right.Shape() != Sawtooth {
		t.Errorf("shapes = %v, %v", e.graph.Left.Shape(), e.graph.Right.Shape())
	}
}

func TestPanHardLeftSilencesRight(t *testing.T) {
	e := NewEngine(testParams())
	e.Start(200, 4, 0, -1, Sine)
	left := make([]float32, 512)
	right := make([]float32, 512)
	e.RenderPlanar(left, right)
	if rms32(right) != 0 {
		t.Errorf("right channel rms = %v at pan -1", rms32(right))
	}
	if rms32(left) == 0 {
		t.Error("left channel silent at pan -1")
	}
}

func TestRenderSilentWhenIdle(t *testing.T) {
	e := NewEngine(testParams())
	left := make([]float32, 256)
	right := make([]float32, 256)
	e.RenderPlanar(left, right)
	if rms32(left) != 0 || rms32(right) != 0 {
		t.Error("idle engine produced output")
	}
}

func TestEndToEndSequence(t *testing.T) {
	e := NewEngine(testParams())
	e.Start(200, 4, 0, 0, Sine)
	left := make([]float32, 1024)
	right := make([]float32, 1024)
	e.RenderPlanar(left, right)
	if rms32(left) == 0 || rms32(right) == 0 {
		t.Fatal("session produced no output")
	}
	e.SetNoiseMix(.3)
	e.StopChord() // nothing held; must not disturb the session
	e.RenderPlanar(left, right)
	if rms32(left) == 0 {
		t.Fatal("session died after updates")
	}
	e.Stop()
	e.RenderPlanar(left, right)
	if rms32(left) != 0 || rms32(right) != 0 {
		t.Error("residual output after Stop")
	}
}

func rms32(x []float32) float64 {
	sum := 0.0
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(x)))
}

func BenchmarkRenderPlanar(b *testing.B) {
	e := NewEngine(testParams())
	e.Start(200, 4, .3, 0, Sine)
	e.Trigger(DrumKick)
	e.PlayChord([]int{0, 4, 7}, 4, .5)
	left := make([]float32, 512)
	right := make([]float32, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.RenderPlanar(left, right)
	}
}
