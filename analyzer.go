package synth

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/ktye/fft"
)

// AnalysisWindow is the number of samples the tap keeps for inspection.
const AnalysisWindow = 2048

// Analyzer is the shared analysis tap: one per Engine, created once,
// never replaced. Every sound path lands in it after mixing; the visualizer
// polls it once per frame. Reads are best-effort snapshots and never block
// rendering for long — the tap has its own lock, separate from the engine's.
type Analyzer struct {
	mu      sync.Mutex
	ring    [AnalysisWindow]float64
	i       int
	fft     fft.FFT
	hann    [AnalysisWindow]float64
	scratch []complex128
}

func NewAnalyzer() *Analyzer {
	f, err := fft.New(AnalysisWindow)
	if err != nil {
		panic("analyzer: " + err.Error())
	}
	a := &Analyzer{fft: f, scratch: make([]complex128, AnalysisWindow)}
	for i := range a.hann {
		a.hann[i] = (1 - math.Cos(2*math.Pi*float64(i)/AnalysisWindow)) / 2
	}
	return a
}

// Push appends one render block. Called from the audio thread.
func (a *Analyzer) Push(block []float64) {
	a.mu.Lock()
	for _, x := range block {
		a.ring[a.i] = x
		a.i = (a.i + 1) % AnalysisWindow
	}
	a.mu.Unlock()
}

// TimeDomainBytes fills dst with the most recent samples, oldest first,
// mapped to [0, 255] around a 128 center. Returns the count written, at most
// AnalysisWindow.
func (a *Analyzer) TimeDomainBytes(dst []byte) int {
	n := len(dst)
	if n > AnalysisWindow {
		n = AnalysisWindow
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	start := (a.i - n + AnalysisWindow) % AnalysisWindow
	for k := 0; k < n; k++ {
		x := a.ring[(start+k)%AnalysisWindow]
		b := math.Round(128 + clamp(x, -1, 1)*127)
		dst[k] = byte(b)
	}
	return n
}

// FrequencyData fills dst with Hann-windowed magnitudes of the current
// window, one per bin of width SampleRate/AnalysisWindow. Returns the count
// written, at most AnalysisWindow/2.
func (a *Analyzer) FrequencyData(dst []float64) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	for k := 0; k < AnalysisWindow; k++ {
		x := a.ring[(a.i+k)%AnalysisWindow]
		a.scratch[k] = complex(x*a.hann[k], 0)
	}
	out := a.fft.Transform(a.scratch)
	n := len(dst)
	if n > AnalysisWindow/2 {
		n = AnalysisWindow / 2
	}
	for k := 0; k < n; k++ {
		dst[k] = cmplx.Abs(out[k]) / (AnalysisWindow / 2)
	}
	return n
}

// RMS reports the amplitude of the current window.
func (a *Analyzer) RMS() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	sum := 0.0
	for _, x := range a.ring {
		sum += x * x
	}
	return math.Sqrt(sum / AnalysisWindow)
}
