package synth

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Engine owns the whole audio graph: at most one binaural session, any
// number of in-flight drum hits, and at most one held chord, all mixed into
// one stereo output and tapped for analysis. Every public operation is
// best-effort: calls that need a live session silently no-op without one,
// and every stop path tolerates being called again.
type Engine struct {
	params Params
	tap    *Analyzer

	mu    sync.Mutex
	rnd   *rand.Rand
	graph *graph // nil when no session is live
	bank  *SampleBank
	hits  map[*drumVoice]struct{}
	chord *chordSet

	scratch []float64
}

func NewEngine(p Params) *Engine {
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Engine{
		params: p,
		tap:    NewAnalyzer(),
		rnd:    rnd,
		bank:   NewSampleBank(p, rnd),
		hits:   map[*drumVoice]struct{}{},
	}
}

func (e *Engine) Params() Params { return e.params }

// Analyzer returns the shared analysis tap for the visualizer to poll.
func (e *Engine) Analyzer() *Analyzer { return e.tap }

// Start builds a fresh binaural session: left tone at base, right tone at
// base+beat, a looping noise bed mixed in with complementary gains. Any
// previous session is fully retired first, so no two graphs ever overlap.
func (e *Engine) Start(baseFreq, beatFreq, noiseMix, pan float64, shape WaveShape) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopGraph()
	e.graph = newGraph(e.params, e.rnd, baseFreq, beatFreq, noiseMix, pan, shape)
}

// Stop retires the current session. Idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopGraph()
}

func (e *Engine) stopGraph() {
	e.graph.stop()
	e.graph = nil
}

// Running reports whether a binaural session is live.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.graph != nil
}

// SetFrequencies retunes both oscillators immediately (no ramp).
func (e *Engine) SetFrequencies(baseFreq, beatFreq float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph == nil {
		return
	}
	e.graph.setFrequencies(baseFreq, beatFreq)
}

// SetNoiseMix rebalances tone against noise; the two gains always sum to the
// loudness ceiling.
func (e *Engine) SetNoiseMix(mix float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph == nil {
		return
	}
	e.graph.setNoiseMix(mix)
}

func (e *Engine) SetPan(pan float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph == nil {
		return
	}
	e.graph.Panner.Set(pan)
}

// SetWaveShape switches both oscillators in place; no restart needed.
func (e *Engine) SetWaveShape(shape WaveShape) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph == nil {
		return
	}
	e.graph.setShape(shape)
}

// SetDelayFeedback raises the otherwise dormant feedback stage of the delay.
func (e *Engine) SetDelayFeedback(fb float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph == nil {
		return
	}
	e.graph.setDelayFeedback(fb)
}

// SetReverbMix raises the otherwise dormant reverb stage.
func (e *Engine) SetReverbMix(m float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph == nil {
		return
	}
	e.graph.setReverbMix(m)
}

// Trigger fires one drum hit. Hits are independent one-shots with no
// polyphony limit; an unknown type is a no-op.
func (e *Engine) Trigger(d DrumType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	buf, ok := e.bank.Lookup(d)
	if !ok {
		return
	}
	e.hits[&drumVoice{buf: buf}] = struct{}{}
}

// PlayChord holds one sine voice per semitone offset, each at 1/N gain,
// under a bus gain of volume*0.2. A held chord is released first.
func (e *Engine) PlayChord(semitones []int, octave int, volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.chord = nil
	if len(semitones) == 0 {
		return
	}
	e.chord = newChordSet(e.params, semitones, octave, volume)
}

// StopChord releases the held chord, if any. Idempotent; UI release events
// routinely double-fire.
func (e *Engine) StopChord() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.chord = nil
}

// RenderPlanar fills one left/right block and pushes the mono downmix into
// the analysis tap. Called by the output backend; len(left) must equal
// len(right).
func (e *Engine) RenderPlanar(left, right []float32) {
	e.mu.Lock()
	if cap(e.scratch) < len(left) {
		e.scratch = make([]float64, len(left))
	}
	block := e.scratch[:len(left)]
	for i := range left {
		l, r := e.step()
		left[i] = float32(l)
		right[i] = float32(r)
		block[i] = (l + r) / 2
	}
	e.mu.Unlock()
	e.tap.Push(block)
}

// step mixes one sample of every live path. Caller holds e.mu.
func (e *Engine) step() (l, r float64) {
	if e.graph != nil {
		l, r = e.graph.sing()
	}
	for v := range e.hits {
		x := v.sing()
		l += x
		r += x
		if v.done() {
			delete(e.hits, v)
		}
	}
	if e.chord != nil {
		x := e.chord.sing()
		l += x
		r += x
	}
	return softClip(l), softClip(r)
}

// softClip keeps the summed paths inside (-1, 1) without hard edges.
func softClip(x float64) float64 {
	return math.Tanh(x)
}
