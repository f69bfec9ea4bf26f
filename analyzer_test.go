package synth

import (
	"math"
	"testing"
)

func TestTimeDomainBytesSilence(t *testing.T) {
	a := NewAnalyzer()
	dst := make([]byte, AnalysisWindow)
	n := a.TimeDomainBytes(dst)
	if n != AnalysisWindow {
		t.Fatalf("n = %d", n)
	}
	for i, b := range dst {
		if b != 128 {
			t.Fatalf("byte %d = %d, want 128", i, b)
		}
	}
}

func TestTimeDomainBytesRange(t *testing.T) {
	a := NewAnalyzer()
	block := make([]float64, AnalysisWindow)
	for i := range block {
		block[i] = math.Sin(2 * math.Pi * float64(i) / 64)
	}
	a.Push(block)
	dst := make([]byte, AnalysisWindow)
	a.TimeDomainBytes(dst)
	min, max := dst[0], dst[0]
	for _, b := range dst {
		if b < min {
			min = b
		}
		if b > max {
			max = b
		}
	}
	if min != 1 || max != 255 {
		t.Errorf("byte range [%d, %d], want [1, 255]", min, max)
	}
}

func TestFrequencyDataPeakBin(t *testing.T) {
	const bin = 64
	rate := testParams().SampleRate
	freq := bin * rate / AnalysisWindow
	a := NewAnalyzer()
	block := make([]float64, AnalysisWindow)
	for i := range block {
		block[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}
	a.Push(block)
	spectrum := make([]float64, AnalysisWindow/2)
	n := a.FrequencyData(spectrum)
	if n != AnalysisWindow/2 {
		t.Fatalf("n = %d", n)
	}
	peak := 0
	for k, mag := range spectrum {
		if mag > spectrum[peak] {
			peak = k
		}
	}
	if peak != bin {
		t.Errorf("peak bin = %d, want %d", peak, bin)
	}
}

func TestRMSConstantSignal(t *testing.T) {
	a := NewAnalyzer()
	block := make([]float64, AnalysisWindow)
	for i := range block {
		block[i] = .5
	}
	a.Push(block)
	if got := a.RMS(); math.Abs(got-.5) > 1e-12 {
		t.Errorf("RMS = %v, want 0.5", got)
	}
}

func TestPushWrapsRing(t *testing.T) {
	a := NewAnalyzer()
	block := make([]float64, AnalysisWindow/2)
	for i := range block {
		block[i] = 1
	}
	a.Push(block) // half full
	for i := range block {
		block[i] = -1
	}
	a.Push(block)
	a.Push(block) // wrapped: window is now all -1
	dst := make([]byte, AnalysisWindow)
	a.TimeDomainBytes(dst)
	for i, b := range dst {
		if b != 1 {
			t.Fatalf("byte %d = %d after wrap, want 1", i, b)
		}
	}
}
